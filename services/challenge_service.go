// File: services/challenge_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"go-ctf-event/logger"
	"go-ctf-event/models"
)

const (
	minDifficulty = 1
	maxDifficulty = 5
)

// ChallengeInput is the admin create form.
type ChallengeInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  int    `json:"difficulty"`
	Points      int    `json:"points"`
	Flag        string `json:"flag" binding:"required"`
	Hints       string `json:"hints"`
}

// ChallengeServiceInterface covers admin and participant challenge reads.
type ChallengeServiceInterface interface {
	Create(ctx context.Context, in ChallengeInput) (models.Challenge, error)
	ToggleVisibility(ctx context.Context, id int64) (models.Challenge, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]models.Challenge, error)
	ListForUser(ctx context.Context, userID int64) ([]models.PublicChallenge, error)
}

var _ ChallengeServiceInterface = (*ChallengeService)(nil)

// ChallengeService manages challenges.
type ChallengeService struct {
	challenges  ChallengeRepository
	submissions SubmissionRepository
	teams       TeamRepository
}

// NewChallengeService wires the service.
func NewChallengeService(challenges ChallengeRepository, submissions SubmissionRepository, teams TeamRepository) *ChallengeService {
	return &ChallengeService{challenges: challenges, submissions: submissions, teams: teams}
}

// Create validates the form and stores a hidden challenge.
func (s *ChallengeService) Create(ctx context.Context, in ChallengeInput) (models.Challenge, error) {
	nc := models.NewChallenge{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Difficulty:  in.Difficulty,
		Points:      in.Points,
		Flag:        strings.TrimSpace(in.Flag),
		Hints:       models.SplitHints(in.Hints),
	}
	if nc.Category == "" {
		nc.Category = "Web"
	}
	if nc.Difficulty == 0 {
		nc.Difficulty = minDifficulty
	}

	switch {
	case nc.Title == "":
		return models.Challenge{}, &models.FieldError{Field: "title", Message: "title is required"}
	case nc.Flag == "":
		return models.Challenge{}, &models.FieldError{Field: "flag", Message: "flag is required"}
	case nc.Points < 0:
		return models.Challenge{}, &models.FieldError{Field: "points", Message: "points must not be negative"}
	case nc.Difficulty < minDifficulty || nc.Difficulty > maxDifficulty:
		return models.Challenge{}, &models.FieldError{Field: "difficulty", Message: "difficulty must be between 1 and 5"}
	}

	c, err := s.challenges.CreateChallenge(ctx, nc)
	if err != nil {
		logger.Error.Printf("[ChallengeService.Create] %v", err)
		return models.Challenge{}, err
	}
	logger.Info.Printf("[ChallengeService.Create] challenge %d (%s) created hidden", c.ID, c.Title)
	return c, nil
}

// ToggleVisibility flips a challenge between hidden and visible.
func (s *ChallengeService) ToggleVisibility(ctx context.Context, id int64) (models.Challenge, error) {
	current, err := s.challenges.ChallengeByID(ctx, id)
	if err != nil {
		return models.Challenge{}, err
	}
	updated, err := s.challenges.SetChallengeVisibility(ctx, id, !current.Visible)
	if err != nil {
		return models.Challenge{}, err
	}
	logger.Info.Printf("[ChallengeService.ToggleVisibility] challenge %d visible=%v", id, updated.Visible)
	return updated, nil
}

// Delete removes a challenge.
func (s *ChallengeService) Delete(ctx context.Context, id int64) error {
	if err := s.challenges.DeleteChallenge(ctx, id); err != nil {
		return err
	}
	logger.Info.Printf("[ChallengeService.Delete] challenge %d deleted", id)
	return nil
}

// ListAll returns every challenge for the admin console.
func (s *ChallengeService) ListAll(ctx context.Context) ([]models.Challenge, error) {
	return s.challenges.ListChallenges(ctx, false)
}

// ListForUser returns the visible challenges without flags, marking those
// solved by the user's team.
func (s *ChallengeService) ListForUser(ctx context.Context, userID int64) ([]models.PublicChallenge, error) {
	list, err := s.challenges.ListChallenges(ctx, true)
	if err != nil {
		return nil, err
	}

	solved := map[int64]bool{}
	teamID, err := s.teams.TeamIDForUser(ctx, userID)
	switch {
	case err == nil:
		if solved, err = s.submissions.SolvedChallengeIDs(ctx, teamID); err != nil {
			return nil, err
		}
	case !errors.Is(err, models.ErrNotFound):
		return nil, err
	}

	out := make([]models.PublicChallenge, 0, len(list))
	for _, c := range list {
		out = append(out, c.Public(solved[c.ID]))
	}
	return out, nil
}
