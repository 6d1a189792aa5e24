// File: controllers/team_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/services"
)

// TeamController serves participant team management.
type TeamController struct {
	Teams      services.TeamServiceInterface
	Translator i18n.T
}

// NewTeamController initializes a new instance of TeamController.
func NewTeamController(teams services.TeamServiceInterface, tr i18n.T) *TeamController {
	return &TeamController{Teams: teams, Translator: tr}
}

// TeamNameRequest is the body of team creation.
type TeamNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// MyTeam returns the caller's team with members and rank.
func (tc *TeamController) MyTeam(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	detail, err := tc.Teams.MyTeam(c.Request.Context(), userID)
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Available lists teams with free places.
func (tc *TeamController) Available(c *gin.Context) {
	teams, err := tc.Teams.AvailableTeams(c.Request.Context())
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// Create makes a team with the caller as first member.
func (tc *TeamController) Create(c *gin.Context) {
	var req TeamNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, tc.Translator, err)
		return
	}
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	team, err := tc.Teams.CreateTeam(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// Join adds the caller to team :id.
func (tc *TeamController) Join(c *gin.Context) {
	teamID, err := idParam(c, "id")
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	if err := tc.Teams.JoinTeam(c.Request.Context(), userID, teamID); err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teamId": teamID})
}

// Leave removes the caller from their team.
func (tc *TeamController) Leave(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	if err := tc.Teams.LeaveTeam(c.Request.Context(), userID); err != nil {
		respondError(c, tc.Translator, err)
		return
	}
	c.Status(http.StatusNoContent)
}
