// File: services/certificate_service.go
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go-ctf-event/models"
)

const defaultQRSize = 256

// Certificate points a participant at their generated certificate.
type Certificate struct {
	FullName   string `json:"fullName"`
	NationalID string `json:"nationalId"`
	URL        string `json:"url"`
}

// CertificateServiceInterface builds certificate links.
type CertificateServiceInterface interface {
	Certificate(ctx context.Context, userID int64) (Certificate, error)
	QRCode(ctx context.Context, userID int64, size int) ([]byte, error)
}

var _ CertificateServiceInterface = (*CertificateService)(nil)

// CertificateService derives certificate URLs from the national ID.
type CertificateService struct {
	profiles ProfileRepository
	baseURL  string
	encode   QREncoder
}

// NewCertificateService wires the service against the certificate
// renderer at baseURL.
func NewCertificateService(profiles ProfileRepository, baseURL string) *CertificateService {
	return &CertificateService{profiles: profiles, baseURL: strings.TrimRight(baseURL, "/")}
}

// CertificateURL is baseURL/<escaped national id>.
func (s *CertificateService) CertificateURL(nationalID string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("certificate url: base url not configured: %w", models.ErrNotFound)
	}
	if nationalID == "" {
		return "", fmt.Errorf("certificate url: %w", models.ErrNotFound)
	}
	return s.baseURL + "/" + url.PathEscape(nationalID), nil
}

// Certificate returns the caller's certificate link.
func (s *CertificateService) Certificate(ctx context.Context, userID int64) (Certificate, error) {
	p, err := s.profiles.ProfileByID(ctx, userID)
	if err != nil {
		return Certificate{}, err
	}
	link, err := s.CertificateURL(p.NationalID)
	if err != nil {
		return Certificate{}, err
	}
	return Certificate{FullName: p.FullName, NationalID: p.NationalID, URL: link}, nil
}

// QRCode renders the caller's certificate link as a PNG.
func (s *CertificateService) QRCode(ctx context.Context, userID int64, size int) ([]byte, error) {
	cert, err := s.Certificate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}
	return GenerateQRCode(cert.URL, size, s.encode)
}
