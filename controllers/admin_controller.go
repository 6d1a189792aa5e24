// File: controllers/admin_controller.go
package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/logger"
	"go-ctf-event/models"
	"go-ctf-event/services"
)

// ---------------- Admin Controller ----------------

// AdminController provides the admin panel operations: challenges, teams
// and users. None of them are phase gated.
type AdminController struct {
	Challenges services.ChallengeServiceInterface
	Teams      services.TeamServiceInterface
	Translator i18n.T
}

// NewAdminController initializes a new instance of AdminController.
func NewAdminController(challenges services.ChallengeServiceInterface, teams services.TeamServiceInterface, tr i18n.T) *AdminController {
	return &AdminController{Challenges: challenges, Teams: teams, Translator: tr}
}

// AssignRequest names the target team of an assign or move.
type AssignRequest struct {
	TeamID int64 `json:"teamId" binding:"required,gt=0"`
}

// ---------------- challenges ----------------

// ListChallenges returns every challenge, hidden ones included.
func (ac *AdminController) ListChallenges(c *gin.Context) {
	list, err := ac.Challenges.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateChallenge adds a hidden challenge.
func (ac *AdminController) CreateChallenge(c *gin.Context) {
	var in services.ChallengeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, ac.Translator, err)
		return
	}
	ch, err := ac.Challenges.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// ToggleChallenge flips the visibility of challenge :id.
func (ac *AdminController) ToggleChallenge(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	ch, err := ac.Challenges.ToggleVisibility(c.Request.Context(), id)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// DeleteChallenge removes challenge :id and its submissions.
func (ac *AdminController) DeleteChallenge(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	if err := ac.Challenges.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- teams ----------------

// ListTeams returns every team with its member count. ?search= filters by
// name.
func (ac *AdminController) ListTeams(c *gin.Context) {
	teams, err := ac.Teams.ListTeams(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam makes an empty team owned by the admin.
func (ac *AdminController) CreateTeam(c *gin.Context) {
	var req TeamNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, ac.Translator, err)
		return
	}
	adminID, err := currentUser(c)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	team, err := ac.Teams.AdminCreateTeam(c.Request.Context(), adminID, req.Name)
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// DeleteTeam removes team :id after detaching its members.
func (ac *AdminController) DeleteTeam(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	if err := ac.Teams.DeleteTeam(c.Request.Context(), id); err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	logger.Info.Printf("[AdminController.DeleteTeam] team %d deleted", id)
	c.Status(http.StatusNoContent)
}

// RemoveMember detaches :userId from team :id.
func (ac *AdminController) RemoveMember(c *gin.Context) {
	teamID, err := idParam(c, "id")
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	userID, err := idParam(c, "userId")
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	if err := ac.Teams.RemoveMember(c.Request.Context(), teamID, userID); err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- users ----------------

// ListUsers returns participants. ?filter=all|with_team|without_team and
// ?search= (name or student id).
func (ac *AdminController) ListUsers(c *gin.Context) {
	filter := models.ParseUserFilter(c.Query("filter"))
	users, err := ac.Teams.ListUsers(c.Request.Context(), filter, c.Query("search"))
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AssignUser puts user :id, who has no team, into the body's team.
func (ac *AdminController) AssignUser(c *gin.Context) {
	ac.placeUser(c, ac.Teams.AssignUser)
}

// MoveUser transfers user :id to the body's team.
func (ac *AdminController) MoveUser(c *gin.Context) {
	ac.placeUser(c, ac.Teams.MoveUser)
}

func (ac *AdminController) placeUser(c *gin.Context, place func(ctx context.Context, userID, teamID int64) error) {
	userID, err := idParam(c, "id")
	if err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, ac.Translator, err)
		return
	}
	if err := place(c.Request.Context(), userID, req.TeamID); err != nil {
		respondError(c, ac.Translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "teamId": req.TeamID})
}
