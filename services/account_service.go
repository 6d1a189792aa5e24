// File: services/account_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"go-ctf-event/logger"
	"go-ctf-event/models"
	"go-ctf-event/validation"
)

const minPasswordLength = 6

// RegisterInput is the sign-up form. The binding tags are checked by gin at
// bind time and again by Register.
type RegisterInput struct {
	Email           string `json:"email" binding:"required,institutional_email"`
	Password        string `json:"password" binding:"required,min=6"`
	FullName        string `json:"fullName" binding:"required,person_name"`
	NationalID      string `json:"nationalId" binding:"required,national_id"`
	StudentDigits   string `json:"studentIdNumbers" binding:"required,student_digits"`
	Department      string `json:"department" binding:"required"`
	Career          string `json:"career" binding:"required,career=Department"`
	PhoneNumber     string `json:"phoneNumber"`
	AcceptedPrivacy bool   `json:"acceptedPrivacy" binding:"required"`
}

// AccountServiceInterface covers sign-up and login.
type AccountServiceInterface interface {
	Register(ctx context.Context, in RegisterInput) (models.Profile, error)
	Authenticate(ctx context.Context, email, password string) (models.Profile, error)
	Profile(ctx context.Context, userID int64) (models.Profile, error)
	Promote(ctx context.Context, email string) error
}

var _ AccountServiceInterface = (*AccountService)(nil)

// AccountService manages participant accounts.
type AccountService struct {
	profiles    ProfileRepository
	window      PhaseSource
	emailDomain string
	hashCost    int
	validate    *validator.Validate
}

// NewAccountService wires the service. An empty emailDomain uses the
// default institutional domain.
func NewAccountService(profiles ProfileRepository, window PhaseSource, emailDomain string) *AccountService {
	if emailDomain == "" {
		emailDomain = validation.DefaultEmailDomain
	}
	return &AccountService{
		profiles:    profiles,
		window:      window,
		emailDomain: emailDomain,
		hashCost:    bcrypt.DefaultCost,
		validate:    validation.NewValidator(emailDomain),
	}
}

// SetHashCost lowers the bcrypt cost in tests.
func (s *AccountService) SetHashCost(cost int) {
	s.hashCost = cost
}

// fieldError turns the first validation failure into a FieldError.
func (s *AccountService) fieldError(in RegisterInput) error {
	err := s.validate.Struct(in)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].Field()
	msg := fieldMessages[field]
	switch {
	case field == "email":
		msg = "must be an @" + s.emailDomain + " address"
	case msg == "":
		msg = "invalid value"
	}
	return &models.FieldError{Field: field, Message: msg}
}

var fieldMessages = map[string]string{
	"fullName":         "enter a valid name (letters and spaces only)",
	"nationalId":       "enter a valid 10-digit national ID",
	"studentIdNumbers": "enter the 7 digits of your student ID",
	"department":       "select a department",
	"career":           "select a career of the chosen department",
	"password":         fmt.Sprintf("password must have at least %d characters", minPasswordLength),
	"acceptedPrivacy":  "the privacy policy must be accepted",
}

// Register validates the form, checks the registration window and creates
// the account.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (models.Profile, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.NationalID = strings.TrimSpace(in.NationalID)
	in.StudentDigits = strings.TrimSpace(in.StudentDigits)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

	if err := s.fieldError(in); err != nil {
		return models.Profile{}, err
	}
	if !s.window.RegistrationOpen() {
		return models.Profile{}, models.ErrRegistrationClosed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return models.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	p, err := s.profiles.CreateProfile(ctx, models.NewProfile{
		Email:        strings.ToLower(in.Email),
		FullName:     in.FullName,
		NationalID:   in.NationalID,
		StudentID:    validation.StudentID(in.StudentDigits),
		Department:   in.Department,
		Career:       in.Career,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
	})
	if err != nil {
		logger.Warn.Printf("[AccountService.Register] %s: %v", in.Email, err)
		return models.Profile{}, err
	}
	logger.Info.Printf("[AccountService.Register] profile %d created", p.ID)
	return p, nil
}

// Authenticate checks email and password. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (models.Profile, error) {
	p, err := s.profiles.ProfileByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, models.ErrNotFound) {
		logger.Warn.Printf("[AccountService.Authenticate] unknown email %q", email)
		return models.Profile{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.Profile{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		logger.Warn.Printf("[AccountService.Authenticate] wrong password for profile %d", p.ID)
		return models.Profile{}, models.ErrInvalidCredentials
	}
	return p, nil
}

// Profile loads the caller's profile.
func (s *AccountService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	return s.profiles.ProfileByID(ctx, userID)
}

// Promote grants admin rights to the account with email.
func (s *AccountService) Promote(ctx context.Context, email string) error {
	if err := s.profiles.SetAdmin(ctx, strings.TrimSpace(email), true); err != nil {
		return err
	}
	logger.Info.Printf("[AccountService.Promote] %s is now an admin", email)
	return nil
}
