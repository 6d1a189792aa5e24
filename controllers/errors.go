// Package controllers provides the HTTP handlers of the event API.
// File: controllers/errors.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-ctf-event/i18n"
	"go-ctf-event/logger"
	"go-ctf-event/models"
)

// errorMapping pairs a domain error with its HTTP status and message key.
type errorMapping struct {
	err    error
	status int
	key    string
}

var errorMappings = []errorMapping{
	{models.ErrNotFound, http.StatusNotFound, "error.not_found"},
	{models.ErrTeamNameTaken, http.StatusConflict, "error.team_name_taken"},
	{models.ErrAlreadyInTeam, http.StatusConflict, "error.already_in_team"},
	{models.ErrTeamFull, http.StatusConflict, "error.team_full"},
	{models.ErrNotInTeam, http.StatusConflict, "error.not_in_team"},
	{models.ErrAlreadySolved, http.StatusConflict, "error.already_solved"},
	{models.ErrEmailTaken, http.StatusConflict, "error.email_taken"},
	{models.ErrNationalIDTaken, http.StatusConflict, "error.national_id_taken"},
	{models.ErrStudentIDTaken, http.StatusConflict, "error.student_id_taken"},
	{models.ErrTeamChangesClosed, http.StatusForbidden, "error.team_changes_closed"},
	{models.ErrSubmissionsClosed, http.StatusForbidden, "error.submissions_closed"},
	{models.ErrRegistrationClosed, http.StatusForbidden, "error.registration_closed"},
	{models.ErrIncorrectFlag, http.StatusBadRequest, "error.incorrect_flag"},
	{models.ErrValidation, http.StatusBadRequest, "error.validation"},
	{models.ErrInvalidCredentials, http.StatusUnauthorized, "error.invalid_credentials"},
}

// statusFor resolves err to an HTTP status and message key. Unknown errors
// are 500.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.key
		}
	}
	return http.StatusInternalServerError, "error.internal"
}

// respondError writes {"error": "<localized message>"} with the status
// mapped from err. Field errors also carry "field" and "detail".
func respondError(c *gin.Context, tr i18n.T, err error) {
	status, key := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error.Printf("[%s %s] %v", c.Request.Method, c.FullPath(), err)
	}

	body := gin.H{"error": translate(c, tr, key, err)}
	var fe *models.FieldError
	if errors.As(err, &fe) {
		body["field"] = fe.Field
		body["detail"] = fe.Message
	}
	c.AbortWithStatusJSON(status, body)
}

// respondBindError reports a request body that failed to bind.
func respondBindError(c *gin.Context, tr i18n.T, err error) {
	body := gin.H{"error": translate(c, tr, "error.validation", models.ErrValidation)}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		body["field"] = verrs[0].Field()
		body["detail"] = verrs[0].Tag()
	}
	logger.Debug.Printf("[%s %s] bind: %v", c.Request.Method, c.FullPath(), err)
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

func translate(c *gin.Context, tr i18n.T, key string, err error) string {
	if tr == nil {
		if key == "error.internal" {
			return "internal error"
		}
		return err.Error()
	}
	return tr.T(locale(c), key, nil)
}

func locale(c *gin.Context) string {
	if l := c.Query("lang"); l != "" {
		return l
	}
	return c.GetHeader("Accept-Language")
}
