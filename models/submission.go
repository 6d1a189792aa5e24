// File: models/submission.go
package models

import "time"

// Submission is one recorded flag attempt.
type Submission struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	TeamID        int64     `json:"teamId"`
	ChallengeID   int64     `json:"challengeId"`
	SubmittedFlag string    `json:"-"`
	Correct       bool      `json:"correct"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SolveEvent is broadcast to live clients on a correct submission.
type SolveEvent struct {
	TeamID         int64     `json:"teamId"`
	TeamName       string    `json:"teamName"`
	ChallengeID    int64     `json:"challengeId"`
	ChallengeTitle string    `json:"challengeTitle"`
	Points         int       `json:"points"`
	SolvedAt       time.Time `json:"solvedAt"`
}

// ScoreboardEntry is one ranked row. Rank is 1-based.
type ScoreboardEntry struct {
	Rank        int        `json:"rank"`
	TeamID      int64      `json:"teamId"`
	TeamName    string     `json:"teamName"`
	Score       int        `json:"score"`
	Solves      int        `json:"solves"`
	LastSolveAt *time.Time `json:"lastSolveAt"`
}
