// File: controllers/event_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-ctf-event/eventphase"
	"go-ctf-event/i18n"
	"go-ctf-event/services"
)

// EventController exposes the schedule and the derived phase.
type EventController struct {
	Events     services.EventServiceInterface
	Translator i18n.T
}

// NewEventController initializes a new instance of EventController.
func NewEventController(events services.EventServiceInterface, tr i18n.T) *EventController {
	return &EventController{Events: events, Translator: tr}
}

// EventResponse is the public view of the event.
type EventResponse struct {
	eventphase.DisplayState
	Settings         eventphase.Snapshot `json:"settings"`
	RegistrationOpen bool                `json:"registrationOpen"`
	Message          string              `json:"message"`
	ServerTime       time.Time           `json:"serverTime"`
}

// GetEvent returns phase, gates, countdowns and the localized banner.
func (ec *EventController) GetEvent(c *gin.Context) {
	d := ec.Events.Display()
	resp := EventResponse{
		DisplayState:     d,
		Settings:         ec.Events.Snapshot().ToSnapshot(),
		RegistrationOpen: ec.Events.RegistrationOpen(),
		ServerTime:       time.Now().UTC(),
	}
	if ec.Translator != nil {
		resp.Message = i18n.StatusMessage(ec.Translator, locale(c), d)
	} else {
		resp.Message = string(d.Status)
	}
	c.JSON(http.StatusOK, resp)
}

// GetSettings returns the raw schedule (admin).
func (ec *EventController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"settings":  ec.Events.Snapshot().ToSnapshot(),
		"ordered":   ec.Events.Snapshot().Ordered(),
		"updatedAt": ec.Events.UpdatedAt(),
	})
}

// UpdateSettings replaces the schedule (admin). Each field is an ISO-8601
// timestamp or null; malformed values are rejected.
func (ec *EventController) UpdateSettings(c *gin.Context) {
	var snap eventphase.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		respondBindError(c, ec.Translator, err)
		return
	}
	settings, err := eventphase.ParseSnapshot(snap)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  translate(c, ec.Translator, "error.validation", err),
			"detail": err.Error(),
		})
		return
	}

	saved, err := ec.Events.UpdateSettings(c.Request.Context(), settings)
	if err != nil {
		respondError(c, ec.Translator, err)
		return
	}
	schedule := saved.Schedule()
	c.JSON(http.StatusOK, gin.H{
		"settings":  schedule.ToSnapshot(),
		"ordered":   schedule.Ordered(),
		"updatedAt": saved.UpdatedAt,
	})
}
