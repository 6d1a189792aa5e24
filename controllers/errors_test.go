// file: controllers/errors_test.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-ctf-event/i18n"
	"go-ctf-event/models"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("team by id: %w", models.ErrNotFound), http.StatusNotFound},
		{models.ErrTeamFull, http.StatusConflict},
		{models.ErrTeamNameTaken, http.StatusConflict},
		{models.ErrAlreadySolved, http.StatusConflict},
		{models.ErrNationalIDTaken, http.StatusConflict},
		{models.ErrTeamChangesClosed, http.StatusForbidden},
		{models.ErrSubmissionsClosed, http.StatusForbidden},
		{models.ErrRegistrationClosed, http.StatusForbidden},
		{models.ErrIncorrectFlag, http.StatusBadRequest},
		{&models.FieldError{Field: "name", Message: "too long"}, http.StatusBadRequest},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, _ := statusFor(tt.err)
		assert.Equal(t, tt.want, status, tt.err.Error())
	}
}

func TestRespondError_FieldError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/teams", nil)

	respondError(c, nil, &models.FieldError{Field: "name", Message: "too long"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"name: too long","field":"name","detail":"too long"}`, w.Body.String())
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/team", nil)

	respondError(c, nil, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestRespondError_Localized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tr := i18n.NewTranslator("es")

	render := func(lang string) string {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/team?lang="+lang, nil)
		respondError(c, tr, models.ErrTeamFull)
		return w.Body.String()
	}

	assert.NotEqual(t, render("en"), render("es"))
	assert.NotContains(t, render("en"), "error.team_full")
}
