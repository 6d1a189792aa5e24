// Package services holds the application logic between the HTTP layer and
// the database.
// File: services/repositories.go
package services

import (
	"context"

	"go-ctf-event/models"
)

// ProfileRepository persists participant accounts.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, np models.NewProfile) (models.Profile, error)
	ProfileByID(ctx context.Context, id int64) (models.Profile, error)
	ProfileByEmail(ctx context.Context, email string) (models.Profile, error)
	SetAdmin(ctx context.Context, email string, admin bool) error
	ListUsers(ctx context.Context, filter models.UserFilter, search string) ([]models.UserListing, error)
}

// TeamRepository persists teams and memberships. Capacity checks happen
// inside the repository so they are atomic with the insert.
type TeamRepository interface {
	CreateTeamWithMember(ctx context.Context, name string, creatorID int64) (models.Team, error)
	CreateTeam(ctx context.Context, name string, creatorID int64) (models.Team, error)
	TeamByID(ctx context.Context, id int64) (models.Team, error)
	TeamIDForUser(ctx context.Context, userID int64) (int64, error)
	TeamMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error)
	ListTeamSummaries(ctx context.Context, search string) ([]models.TeamSummary, error)
	AddMember(ctx context.Context, teamID, userID int64, maxSize int) error
	RemoveMember(ctx context.Context, teamID, userID int64) error
	DeleteTeam(ctx context.Context, teamID int64) error
	MoveMember(ctx context.Context, userID, toTeamID int64, maxSize int) error
}

// ChallengeRepository persists challenges.
type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, nc models.NewChallenge) (models.Challenge, error)
	ChallengeByID(ctx context.Context, id int64) (models.Challenge, error)
	ListChallenges(ctx context.Context, visibleOnly bool) ([]models.Challenge, error)
	SetChallengeVisibility(ctx context.Context, id int64, visible bool) (models.Challenge, error)
	DeleteChallenge(ctx context.Context, id int64) error
}

// SubmissionRepository persists flag attempts.
type SubmissionRepository interface {
	RecordSubmission(ctx context.Context, sub models.Submission) (models.Submission, error)
	SolvedChallengeIDs(ctx context.Context, teamID int64) (map[int64]bool, error)
	HasSolved(ctx context.Context, teamID, challengeID int64) (bool, error)
}

// ScoreboardRepository reads the ranked view.
type ScoreboardRepository interface {
	Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error)
}

// SettingsRepository reads and writes the singleton schedule row.
type SettingsRepository interface {
	LoadSettings(ctx context.Context) (models.EventSettings, error)
	SaveSettings(ctx context.Context, s models.EventSettings) (models.EventSettings, error)
}
