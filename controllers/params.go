// File: controllers/params.go
package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-ctf-event/middleware"
	"go-ctf-event/models"
)

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &models.FieldError{Field: name, Message: fmt.Sprintf("invalid %s", name)}
	}
	return id, nil
}

// currentUser is the ID stored by AuthRequired/AdminRequired.
func currentUser(c *gin.Context) (int64, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, fmt.Errorf("no user in context: %w", models.ErrInvalidCredentials)
	}
	return id, nil
}
