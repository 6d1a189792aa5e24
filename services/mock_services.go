// File: services/mock_services.go
package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"go-ctf-event/eventphase"
	"go-ctf-event/models"
)

var (
	_ EventServiceInterface       = (*MockEventService)(nil)
	_ TeamServiceInterface        = (*MockTeamService)(nil)
	_ ChallengeServiceInterface   = (*MockChallengeService)(nil)
	_ SubmissionServiceInterface  = (*MockSubmissionService)(nil)
	_ ScoreboardServiceInterface  = (*MockScoreboardService)(nil)
	_ AccountServiceInterface     = (*MockAccountService)(nil)
	_ CertificateServiceInterface = (*MockCertificateService)(nil)
)

// MockEventService is a testify mock of EventServiceInterface.
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Phase() eventphase.Phase {
	return m.Called().Get(0).(eventphase.Phase)
}

func (m *MockEventService) RegistrationOpen() bool {
	return m.Called().Bool(0)
}

func (m *MockEventService) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockEventService) Snapshot() eventphase.Settings {
	return m.Called().Get(0).(eventphase.Settings)
}

func (m *MockEventService) Gates() eventphase.Gates {
	return m.Called().Get(0).(eventphase.Gates)
}

func (m *MockEventService) Display() eventphase.DisplayState {
	return m.Called().Get(0).(eventphase.DisplayState)
}

func (m *MockEventService) UpdatedAt() time.Time {
	return m.Called().Get(0).(time.Time)
}

func (m *MockEventService) UpdateSettings(ctx context.Context, s eventphase.Settings) (models.EventSettings, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.EventSettings), args.Error(1)
}

// MockTeamService is a testify mock of TeamServiceInterface.
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, userID int64, name string) (models.Team, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *MockTeamService) JoinTeam(ctx context.Context, userID, teamID int64) error {
	return m.Called(ctx, userID, teamID).Error(0)
}

func (m *MockTeamService) LeaveTeam(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockTeamService) MyTeam(ctx context.Context, userID int64) (models.TeamDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.TeamDetail), args.Error(1)
}

func (m *MockTeamService) AvailableTeams(ctx context.Context) ([]models.TeamSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TeamSummary), args.Error(1)
}

func (m *MockTeamService) ListTeams(ctx context.Context, search string) ([]models.TeamSummary, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]models.TeamSummary), args.Error(1)
}

func (m *MockTeamService) ListUsers(ctx context.Context, filter models.UserFilter, search string) ([]models.UserListing, error) {
	args := m.Called(ctx, filter, search)
	return args.Get(0).([]models.UserListing), args.Error(1)
}

func (m *MockTeamService) AdminCreateTeam(ctx context.Context, adminID int64, name string) (models.Team, error) {
	args := m.Called(ctx, adminID, name)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, teamID int64) error {
	return m.Called(ctx, teamID).Error(0)
}

func (m *MockTeamService) RemoveMember(ctx context.Context, teamID, userID int64) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *MockTeamService) AssignUser(ctx context.Context, userID, teamID int64) error {
	return m.Called(ctx, userID, teamID).Error(0)
}

func (m *MockTeamService) MoveUser(ctx context.Context, userID, teamID int64) error {
	return m.Called(ctx, userID, teamID).Error(0)
}

// MockChallengeService is a testify mock of ChallengeServiceInterface.
type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) Create(ctx context.Context, in ChallengeInput) (models.Challenge, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Challenge), args.Error(1)
}

func (m *MockChallengeService) ToggleVisibility(ctx context.Context, id int64) (models.Challenge, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Challenge), args.Error(1)
}

func (m *MockChallengeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockChallengeService) ListAll(ctx context.Context) ([]models.Challenge, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Challenge), args.Error(1)
}

func (m *MockChallengeService) ListForUser(ctx context.Context, userID int64) ([]models.PublicChallenge, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.PublicChallenge), args.Error(1)
}

// MockSubmissionService is a testify mock of SubmissionServiceInterface.
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, userID, challengeID int64, flag string) (SubmissionResult, error) {
	args := m.Called(ctx, userID, challengeID, flag)
	return args.Get(0).(SubmissionResult), args.Error(1)
}

// MockScoreboardService is a testify mock of ScoreboardServiceInterface.
type MockScoreboardService struct {
	mock.Mock
}

func (m *MockScoreboardService) Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ScoreboardEntry), args.Error(1)
}

func (m *MockScoreboardService) TeamRank(ctx context.Context, teamID int64) (int, error) {
	args := m.Called(ctx, teamID)
	return args.Int(0), args.Error(1)
}

// MockAccountService is a testify mock of AccountServiceInterface.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, in RegisterInput) (models.Profile, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *MockAccountService) Authenticate(ctx context.Context, email, password string) (models.Profile, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *MockAccountService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.Profile), args.Error(1)
}

func (m *MockAccountService) Promote(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// MockCertificateService is a testify mock of CertificateServiceInterface.
type MockCertificateService struct {
	mock.Mock
}

func (m *MockCertificateService) Certificate(ctx context.Context, userID int64) (Certificate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(Certificate), args.Error(1)
}

func (m *MockCertificateService) QRCode(ctx context.Context, userID int64, size int) ([]byte, error) {
	args := m.Called(ctx, userID, size)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}
