// File: controllers/scoreboard_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/i18n"
	"go-ctf-event/services"
)

// ScoreboardController serves the public ranking.
type ScoreboardController struct {
	Scoreboard services.ScoreboardServiceInterface
	Translator i18n.T
}

// NewScoreboardController initializes a new instance of ScoreboardController.
func NewScoreboardController(scoreboard services.ScoreboardServiceInterface, tr i18n.T) *ScoreboardController {
	return &ScoreboardController{Scoreboard: scoreboard, Translator: tr}
}

// Get returns every team ranked by score.
func (sc *ScoreboardController) Get(c *gin.Context) {
	entries, err := sc.Scoreboard.Scoreboard(c.Request.Context())
	if err != nil {
		respondError(c, sc.Translator, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
