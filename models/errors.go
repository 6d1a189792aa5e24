// File: models/errors.go
package models

import "errors"

// Domain errors. Repositories and services wrap these with fmt.Errorf so
// callers can match them with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrTeamNameTaken      = errors.New("team name already taken")
	ErrAlreadyInTeam      = errors.New("user already belongs to a team")
	ErrTeamFull           = errors.New("team is full")
	ErrNotInTeam          = errors.New("user does not belong to a team")
	ErrTeamChangesClosed  = errors.New("team changes are closed")
	ErrSubmissionsClosed  = errors.New("flag submissions are closed")
	ErrAlreadySolved      = errors.New("challenge already solved by this team")
	ErrIncorrectFlag      = errors.New("incorrect flag")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNationalIDTaken    = errors.New("national id already registered")
	ErrStudentIDTaken     = errors.New("student id already registered")
	ErrValidation         = errors.New("validation failed")
)

// FieldError describes one rejected input field. It wraps ErrValidation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error { return ErrValidation }
