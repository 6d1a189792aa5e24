// File: models/challenge.go
package models

import (
	"strings"
	"time"
)

// Challenge as stored. The flag never leaves the server.
type Challenge struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  int       `json:"difficulty"`
	Points      int       `json:"points"`
	Flag        string    `json:"-"`
	Hints       []string  `json:"hints"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PublicChallenge is what a participant sees.
type PublicChallenge struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Difficulty  int      `json:"difficulty"`
	Points      int      `json:"points"`
	Hints       []string `json:"hints"`
	Solved      bool     `json:"solved"`
}

// Public strips the flag and marks whether the viewer's team solved it.
func (c Challenge) Public(solved bool) PublicChallenge {
	hints := c.Hints
	if hints == nil {
		hints = []string{}
	}
	return PublicChallenge{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Difficulty:  c.Difficulty,
		Points:      c.Points,
		Hints:       hints,
		Solved:      solved,
	}
}

// NewChallenge is the admin create form after validation.
type NewChallenge struct {
	Title       string
	Description string
	Category    string
	Difficulty  int
	Points      int
	Flag        string
	Hints       []string
}

// SplitHints turns a comma separated list into trimmed, non-empty hints.
func SplitHints(raw string) []string {
	hints := []string{}
	for _, h := range strings.Split(raw, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hints = append(hints, h)
		}
	}
	return hints
}
