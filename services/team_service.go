// File: services/team_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go-ctf-event/eventphase"
	"go-ctf-event/logger"
	"go-ctf-event/models"
)

const maxTeamNameLength = 50

// TeamServiceInterface covers participant and admin team operations.
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, userID int64, name string) (models.Team, error)
	JoinTeam(ctx context.Context, userID, teamID int64) error
	LeaveTeam(ctx context.Context, userID int64) error
	MyTeam(ctx context.Context, userID int64) (models.TeamDetail, error)
	AvailableTeams(ctx context.Context) ([]models.TeamSummary, error)

	ListTeams(ctx context.Context, search string) ([]models.TeamSummary, error)
	ListUsers(ctx context.Context, filter models.UserFilter, search string) ([]models.UserListing, error)
	AdminCreateTeam(ctx context.Context, adminID int64, name string) (models.Team, error)
	DeleteTeam(ctx context.Context, teamID int64) error
	RemoveMember(ctx context.Context, teamID, userID int64) error
	AssignUser(ctx context.Context, userID, teamID int64) error
	MoveUser(ctx context.Context, userID, teamID int64) error
}

var _ TeamServiceInterface = (*TeamService)(nil)

// TeamService applies the team-change gate and the size limit.
type TeamService struct {
	teams      TeamRepository
	profiles   ProfileRepository
	scoreboard ScoreboardRepository
	phase      PhaseSource
	maxSize    int
}

// NewTeamService wires the service. maxSize <= 0 disables the limit.
func NewTeamService(teams TeamRepository, profiles ProfileRepository, scoreboard ScoreboardRepository, phase PhaseSource, maxSize int) *TeamService {
	return &TeamService{teams: teams, profiles: profiles, scoreboard: scoreboard, phase: phase, maxSize: maxSize}
}

// MaxSize is the configured team capacity.
func (s *TeamService) MaxSize() int {
	return s.maxSize
}

func (s *TeamService) checkGate(op string) error {
	if phase := s.phase.Phase(); !eventphase.CanManageTeam(phase) {
		logger.Info.Printf("[TeamService.%s] rejected in phase %s", op, phase)
		return fmt.Errorf("%s: %w", op, models.ErrTeamChangesClosed)
	}
	return nil
}

func normalizeTeamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &models.FieldError{Field: "name", Message: "team name is required"}
	}
	if utf8.RuneCountInString(name) > maxTeamNameLength {
		return "", &models.FieldError{Field: "name", Message: fmt.Sprintf("team name must be at most %d characters", maxTeamNameLength)}
	}
	return name, nil
}

// currentTeam maps "no membership row" to ErrNotInTeam.
func (s *TeamService) currentTeam(ctx context.Context, userID int64) (int64, error) {
	teamID, err := s.teams.TeamIDForUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return 0, models.ErrNotInTeam
	}
	return teamID, err
}

// CreateTeam creates a team with the caller as its first member.
func (s *TeamService) CreateTeam(ctx context.Context, userID int64, name string) (models.Team, error) {
	if err := s.checkGate("CreateTeam"); err != nil {
		return models.Team{}, err
	}
	name, err := normalizeTeamName(name)
	if err != nil {
		return models.Team{}, err
	}

	_, err = s.currentTeam(ctx, userID)
	switch {
	case err == nil:
		return models.Team{}, models.ErrAlreadyInTeam
	case !errors.Is(err, models.ErrNotInTeam):
		return models.Team{}, err
	}

	team, err := s.teams.CreateTeamWithMember(ctx, name, userID)
	if err != nil {
		logger.Warn.Printf("[TeamService.CreateTeam] user %d: %v", userID, err)
		return models.Team{}, err
	}
	logger.Info.Printf("[TeamService.CreateTeam] user %d created team %d (%s)", userID, team.ID, team.Name)
	return team, nil
}

// JoinTeam adds the caller to an existing team with room left.
func (s *TeamService) JoinTeam(ctx context.Context, userID, teamID int64) error {
	if err := s.checkGate("JoinTeam"); err != nil {
		return err
	}
	if err := s.teams.AddMember(ctx, teamID, userID, s.maxSize); err != nil {
		logger.Warn.Printf("[TeamService.JoinTeam] user %d team %d: %v", userID, teamID, err)
		return err
	}
	logger.Info.Printf("[TeamService.JoinTeam] user %d joined team %d", userID, teamID)
	return nil
}

// LeaveTeam removes the caller from their team.
func (s *TeamService) LeaveTeam(ctx context.Context, userID int64) error {
	if err := s.checkGate("LeaveTeam"); err != nil {
		return err
	}
	teamID, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.teams.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}
	logger.Info.Printf("[TeamService.LeaveTeam] user %d left team %d", userID, teamID)
	return nil
}

// MyTeam returns the caller's team with members and current rank.
func (s *TeamService) MyTeam(ctx context.Context, userID int64) (models.TeamDetail, error) {
	teamID, err := s.currentTeam(ctx, userID)
	if err != nil {
		return models.TeamDetail{}, err
	}
	team, err := s.teams.TeamByID(ctx, teamID)
	if err != nil {
		return models.TeamDetail{}, err
	}
	members, err := s.teams.TeamMembers(ctx, teamID)
	if err != nil {
		return models.TeamDetail{}, err
	}

	detail := models.TeamDetail{Team: team, Members: members}
	entries, err := s.scoreboard.Scoreboard(ctx)
	if err != nil {
		logger.Warn.Printf("[TeamService.MyTeam] scoreboard unavailable: %v", err)
		return detail, nil
	}
	detail.Rank = RankOf(entries, teamID)
	return detail, nil
}

// AvailableTeams lists teams that still have room.
func (s *TeamService) AvailableTeams(ctx context.Context) ([]models.TeamSummary, error) {
	all, err := s.teams.ListTeamSummaries(ctx, "")
	if err != nil {
		return nil, err
	}
	open := make([]models.TeamSummary, 0, len(all))
	for _, t := range all {
		if !t.IsFull(s.maxSize) {
			open = append(open, t)
		}
	}
	return open, nil
}

// ---------------------- admin operations ----------------------
// Admin operations ignore the phase gate but keep the size limit.

// ListTeams lists every team, optionally filtered by name.
func (s *TeamService) ListTeams(ctx context.Context, search string) ([]models.TeamSummary, error) {
	return s.teams.ListTeamSummaries(ctx, strings.TrimSpace(search))
}

// ListUsers lists participants for the admin console.
func (s *TeamService) ListUsers(ctx context.Context, filter models.UserFilter, search string) ([]models.UserListing, error) {
	return s.profiles.ListUsers(ctx, filter, strings.TrimSpace(search))
}

// AdminCreateTeam creates an empty team owned by the admin.
func (s *TeamService) AdminCreateTeam(ctx context.Context, adminID int64, name string) (models.Team, error) {
	name, err := normalizeTeamName(name)
	if err != nil {
		return models.Team{}, err
	}
	team, err := s.teams.CreateTeam(ctx, name, adminID)
	if err != nil {
		return models.Team{}, err
	}
	logger.Info.Printf("[TeamService.AdminCreateTeam] admin %d created team %d (%s)", adminID, team.ID, team.Name)
	return team, nil
}

// DeleteTeam removes a team and its memberships.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID int64) error {
	if err := s.teams.DeleteTeam(ctx, teamID); err != nil {
		return err
	}
	logger.Info.Printf("[TeamService.DeleteTeam] team %d deleted", teamID)
	return nil
}

// RemoveMember takes a user out of a team.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID int64) error {
	if err := s.teams.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}
	logger.Info.Printf("[TeamService.RemoveMember] user %d removed from team %d", userID, teamID)
	return nil
}

// AssignUser puts a user without a team into teamID.
func (s *TeamService) AssignUser(ctx context.Context, userID, teamID int64) error {
	if err := s.teams.AddMember(ctx, teamID, userID, s.maxSize); err != nil {
		return err
	}
	logger.Info.Printf("[TeamService.AssignUser] user %d assigned to team %d", userID, teamID)
	return nil
}

// MoveUser moves a user from their current team (if any) into teamID.
func (s *TeamService) MoveUser(ctx context.Context, userID, teamID int64) error {
	if current, err := s.currentTeam(ctx, userID); err == nil && current == teamID {
		return nil
	}
	if err := s.teams.MoveMember(ctx, userID, teamID, s.maxSize); err != nil {
		return err
	}
	logger.Info.Printf("[TeamService.MoveUser] user %d moved to team %d", userID, teamID)
	return nil
}
