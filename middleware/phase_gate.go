// file: middleware/phase_gate.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-ctf-event/eventphase"
	"go-ctf-event/i18n"
	"go-ctf-event/logger"
)

// PhaseSource reports the current event phase.
type PhaseSource interface {
	Phase() eventphase.Phase
}

// Gate names one of the phase-derived permissions.
type Gate struct {
	Allow func(eventphase.Phase) bool
	Key   string // message key for the rejection
	Text  string // untranslated fallback
}

var (
	TeamChangesGate = Gate{Allow: eventphase.CanManageTeam, Key: "error.team_changes_closed", Text: "team changes are closed"}
	SubmissionsGate = Gate{Allow: eventphase.CanSubmitFlag, Key: "error.submissions_closed", Text: "flag submissions are closed"}
)

// PhaseGate rejects the request with 403 and the current phase while gate
// is closed.
func PhaseGate(src PhaseSource, gate Gate, tr i18n.T) gin.HandlerFunc {
	return func(c *gin.Context) {
		phase := src.Phase()
		if !gate.Allow(phase) {
			logger.Debug.Printf("[PhaseGate] %s rejected during %s", c.Request.URL.Path, phase)
			abortWith(c, http.StatusForbidden, tr, gate.Key, gate.Text, gin.H{"phase": phase})
			return
		}
		c.Next()
	}
}
