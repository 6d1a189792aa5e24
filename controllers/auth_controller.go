// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/logger"
	"go-ctf-event/middleware"
	"go-ctf-event/models"
	"go-ctf-event/services"
)

// AuthController handles sign-up, login and the caller's profile.
type AuthController struct {
	Accounts   services.AccountServiceInterface
	Translator i18n.T
}

// NewAuthController initializes a new instance of AuthController.
func NewAuthController(accounts services.AccountServiceInterface, tr i18n.T) *AuthController {
	return &AuthController{Accounts: accounts, Translator: tr}
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an account and logs it in.
func (ac *AuthController) Signup(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, ac.Translator, err)
		return
	}

	p, err := ac.Accounts.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	if err := startSession(c, p); err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Login authenticates with email and password and stores the user in the
// session.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, ac.Translator, err)
		return
	}

	p, err := ac.Accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	if err := startSession(c, p); err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	logger.Info.Printf("[AuthController.Login] user %d logged in (admin=%v)", p.ID, p.IsAdmin)
	c.JSON(http.StatusOK, p)
}

// Logout clears the session.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		logger.Error.Printf("[AuthController.Logout] failed to save session: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}

// Me returns the caller's profile.
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	p, err := ac.Accounts.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func startSession(c *gin.Context, p models.Profile) error {
	session := sessions.Default(c)
	session.Set(middleware.SessionUser, p.ID)
	session.Set(middleware.SessionAdmin, p.IsAdmin)
	return session.Save()
}
