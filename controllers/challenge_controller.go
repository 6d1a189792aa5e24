// File: controllers/challenge_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/services"
)

// ChallengeController serves the participant challenge board.
type ChallengeController struct {
	Challenges  services.ChallengeServiceInterface
	Submissions services.SubmissionServiceInterface
	Translator  i18n.T
}

// NewChallengeController initializes a new instance of ChallengeController.
func NewChallengeController(challenges services.ChallengeServiceInterface, submissions services.SubmissionServiceInterface, tr i18n.T) *ChallengeController {
	return &ChallengeController{Challenges: challenges, Submissions: submissions, Translator: tr}
}

// FlagRequest is the body of a submission.
type FlagRequest struct {
	Flag string `json:"flag"`
}

// List returns the visible challenges with the caller's solved markers.
func (cc *ChallengeController) List(c *gin.Context) {
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	list, err := cc.Challenges.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Submit checks a flag for challenge :id.
func (cc *ChallengeController) Submit(c *gin.Context) {
	challengeID, err := idParam(c, "id")
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	var req FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, cc.Translator, err)
		return
	}
	userID, err := currentUser(c)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}

	res, err := cc.Submissions.Submit(c.Request.Context(), userID, challengeID, req.Flag)
	if err != nil {
		respondError(c, cc.Translator, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
