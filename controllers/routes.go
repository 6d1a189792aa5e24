// File: controllers/routes.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/middleware"
	"go-ctf-event/services"
)

// Deps are the services the HTTP layer is built on.
type Deps struct {
	Events       services.EventServiceInterface
	Teams        services.TeamServiceInterface
	Challenges   services.ChallengeServiceInterface
	Submissions  services.SubmissionServiceInterface
	Scoreboard   services.ScoreboardServiceInterface
	Accounts     services.AccountServiceInterface
	Certificates services.CertificateServiceInterface
	Translator   i18n.T

	Database  Pinger           // optional, used by /health
	WebSocket http.HandlerFunc // optional, mounted at /ws/event
}

// RegisterRoutes mounts the whole API on router. Session middleware must
// already be installed.
func RegisterRoutes(router *gin.Engine, d Deps) {
	tr := d.Translator
	auth := NewAuthController(d.Accounts, tr)
	event := NewEventController(d.Events, tr)
	teams := NewTeamController(d.Teams, tr)
	challenges := NewChallengeController(d.Challenges, d.Submissions, tr)
	scoreboard := NewScoreboardController(d.Scoreboard, tr)
	certs := NewCertificateController(d.Certificates, tr)
	admin := NewAdminController(d.Challenges, d.Teams, tr)

	teamGate := middleware.PhaseGate(d.Events, middleware.TeamChangesGate, tr)
	flagGate := middleware.PhaseGate(d.Events, middleware.SubmissionsGate, tr)

	router.GET("/health", Health(d.Database))
	if d.WebSocket != nil {
		router.GET("/ws/event", gin.WrapF(d.WebSocket))
	}

	// Public routes
	api := router.Group("/api")
	{
		api.GET("/event", event.GetEvent)
		api.GET("/scoreboard", scoreboard.Get)
		api.POST("/signup", auth.Signup)
		api.POST("/login", auth.Login)
		api.POST("/logout", auth.Logout)
	}

	// Participant routes
	participant := api.Group("", middleware.AuthRequired(tr))
	{
		participant.GET("/me", auth.Me)
		participant.GET("/team", teams.MyTeam)
		participant.GET("/teams", teams.Available)
		participant.POST("/teams", teamGate, teams.Create)
		participant.POST("/teams/:id/join", teamGate, teams.Join)
		participant.POST("/team/leave", teamGate, teams.Leave)
		participant.GET("/challenges", challenges.List)
		participant.POST("/challenges/:id/submit", flagGate, challenges.Submit)
		participant.GET("/certificate", certs.Get)
		participant.GET("/certificate/qrcode", certs.QRCode)
	}

	// Admin routes
	adm := api.Group("/admin", middleware.AdminRequired(tr))
	{
		adm.GET("/challenges", admin.ListChallenges)
		adm.POST("/challenges", admin.CreateChallenge)
		adm.POST("/challenges/:id/visibility", admin.ToggleChallenge)
		adm.DELETE("/challenges/:id", admin.DeleteChallenge)

		adm.GET("/teams", admin.ListTeams)
		adm.POST("/teams", admin.CreateTeam)
		adm.DELETE("/teams/:id", admin.DeleteTeam)
		adm.DELETE("/teams/:id/members/:userId", admin.RemoveMember)

		adm.GET("/users", admin.ListUsers)
		adm.POST("/users/:id/team", admin.AssignUser)
		adm.PUT("/users/:id/team", admin.MoveUser)

		adm.GET("/settings", event.GetSettings)
		adm.PUT("/settings", event.UpdateSettings)
	}
}
