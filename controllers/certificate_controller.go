// File: controllers/certificate_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/models"
	"go-ctf-event/services"
)

const maxQRSize = 1024

// CertificateController links participants to their certificate.
type CertificateController struct {
	Certificates services.CertificateServiceInterface
	Translator   i18n.T
}

// NewCertificateController initializes a new instance of CertificateController.
func NewCertificateController(certs services.CertificateServiceInterface, tr i18n.T) *CertificateController {
	return &CertificateController{Certificates: certs, Translator: tr}
}

// Get returns the caller's certificate link.
func (cc *CertificateController) Get(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	cert, err := cc.Certificates.Certificate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

// QRCode renders the certificate link as a PNG. ?size= sets the edge in
// pixels (default 256, at most 1024).
func (cc *CertificateController) QRCode(c *gin.Context) {
	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQRSize {
			respondError(c, cc.Translator, &models.FieldError{Field: "size", Message: "size must be between 1 and 1024"})
			return
		}
		size = n
	}
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	png, err := cc.Certificates.QRCode(c.Request.Context(), userID, size)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
