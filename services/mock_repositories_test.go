// file: services/mock_repositories_test.go
package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-ctf-event/eventphase"
	"go-ctf-event/models"
)

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) CreateProfile(ctx context.Context, np models.NewProfile) (models.Profile, error) {
	args := m.Called(ctx, np)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *mockProfileRepo) ProfileByID(ctx context.Context, id int64) (models.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *mockProfileRepo) ProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *mockProfileRepo) SetAdmin(ctx context.Context, email string, admin bool) error {
	return m.Called(ctx, email, admin).Error(0)
}

func (m *mockProfileRepo) ListUsers(ctx context.Context, filter models.UserFilter, search string) ([]models.UserListing, error) {
	args := m.Called(ctx, filter, search)
	return args.Get(0).([]models.UserListing), args.Error(1)
}

type mockTeamRepo struct{ mock.Mock }

func (m *mockTeamRepo) CreateTeamWithMember(ctx context.Context, name string, creatorID int64) (models.Team, error) {
	args := m.Called(ctx, name, creatorID)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *mockTeamRepo) CreateTeam(ctx context.Context, name string, creatorID int64) (models.Team, error) {
	args := m.Called(ctx, name, creatorID)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *mockTeamRepo) TeamByID(ctx context.Context, id int64) (models.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *mockTeamRepo) TeamIDForUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTeamRepo) TeamMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *mockTeamRepo) ListTeamSummaries(ctx context.Context, search string) ([]models.TeamSummary, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]models.TeamSummary), args.Error(1)
}

func (m *mockTeamRepo) AddMember(ctx context.Context, teamID, userID int64, maxSize int) error {
	return m.Called(ctx, teamID, userID, maxSize).Error(0)
}

func (m *mockTeamRepo) RemoveMember(ctx context.Context, teamID, userID int64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *mockTeamRepo) DeleteTeam(ctx context.Context, teamID int64) error {
	return m.Called(ctx, teamID).Error(0)
}

func (m *mockTeamRepo) MoveMember(ctx context.Context, userID, toTeamID int64, maxSize int) error {
	return m.Called(ctx, userID, toTeamID, maxSize).Error(0)
}

type mockChallengeRepo struct{ mock.Mock }

func (m *mockChallengeRepo) CreateChallenge(ctx context.Context, nc models.NewChallenge) (models.Challenge, error) {
	args := m.Called(ctx, nc)
	return args.Get(0).(models.Challenge), args.Error(1)
}

func (m *mockChallengeRepo) ChallengeByID(ctx context.Context, id int64) (models.Challenge, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Challenge), args.Error(1)
}

func (m *mockChallengeRepo) ListChallenges(ctx context.Context, visibleOnly bool) ([]models.Challenge, error) {
	args := m.Called(ctx, visibleOnly)
	return args.Get(0).([]models.Challenge), args.Error(1)
}

func (m *mockChallengeRepo) SetChallengeVisibility(ctx context.Context, id int64, visible bool) (models.Challenge, error) {
	args := m.Called(ctx, id, visible)
	return args.Get(0).(models.Challenge), args.Error(1)
}

func (m *mockChallengeRepo) DeleteChallenge(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSubmissionRepo struct{ mock.Mock }

func (m *mockSubmissionRepo) RecordSubmission(ctx context.Context, sub models.Submission) (models.Submission, error) {
	args := m.Called(ctx, sub)
	return args.Get(0).(models.Submission), args.Error(1)
}

func (m *mockSubmissionRepo) SolvedChallengeIDs(ctx context.Context, teamID int64) (map[int64]bool, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *mockSubmissionRepo) HasSolved(ctx context.Context, teamID, challengeID int64) (bool, error) {
	args := m.Called(ctx, teamID, challengeID)
	return args.Bool(0), args.Error(1)
}

type mockScoreboardRepo struct{ mock.Mock }

func (m *mockScoreboardRepo) Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ScoreboardEntry), args.Error(1)
}

type mockSettingsRepo struct{ mock.Mock }

func (m *mockSettingsRepo) LoadSettings(ctx context.Context) (models.EventSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.EventSettings), args.Error(1)
}

func (m *mockSettingsRepo) SaveSettings(ctx context.Context, s models.EventSettings) (models.EventSettings, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.EventSettings), args.Error(1)
}

// fixedPhase is a PhaseSource pinned to one phase.
type fixedPhase struct {
	phase   eventphase.Phase
	regOpen bool
}

func (f fixedPhase) Phase() eventphase.Phase { return f.phase }
func (f fixedPhase) RegistrationOpen() bool  { return f.regOpen }

type recordingNotifier struct {
	events []models.SolveEvent
}

func (r *recordingNotifier) NotifySolve(ev models.SolveEvent) {
	r.events = append(r.events, ev)
}
