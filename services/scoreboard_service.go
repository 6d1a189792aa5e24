// File: services/scoreboard_service.go
package services

import (
	"context"

	"go-ctf-event/cache"
	"go-ctf-event/logger"
	"go-ctf-event/models"
)

// ScoreboardServiceInterface serves the public ranking.
type ScoreboardServiceInterface interface {
	Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error)
	TeamRank(ctx context.Context, teamID int64) (int, error)
}

var _ ScoreboardServiceInterface = (*ScoreboardService)(nil)

// ScoreboardService reads the ranking and falls back to the last cached one
// when the database fails.
type ScoreboardService struct {
	repo  ScoreboardRepository
	cache cache.Store
}

// NewScoreboardService wires the service. store may be nil.
func NewScoreboardService(repo ScoreboardRepository, store cache.Store) *ScoreboardService {
	return &ScoreboardService{repo: repo, cache: store}
}

// Scoreboard returns every team ranked by score.
func (s *ScoreboardService) Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	entries, err := s.repo.Scoreboard(ctx)
	if err != nil {
		logger.Warn.Printf("[ScoreboardService.Scoreboard] %v", err)
		if s.cache != nil {
			if cached, found, cerr := s.cache.LoadScoreboard(); cerr == nil && found {
				return cached, nil
			}
		}
		return nil, err
	}
	if entries == nil {
		entries = []models.ScoreboardEntry{}
	}
	if s.cache != nil {
		if err := s.cache.SaveScoreboard(entries); err != nil {
			logger.Warn.Printf("[ScoreboardService.Scoreboard] cache write failed: %v", err)
		}
	}
	return entries, nil
}

// TeamRank is the 1-based position of teamID, or 0 if absent.
func (s *ScoreboardService) TeamRank(ctx context.Context, teamID int64) (int, error) {
	entries, err := s.Scoreboard(ctx)
	if err != nil {
		return 0, err
	}
	return RankOf(entries, teamID), nil
}

// RankOf finds teamID in a ranked list. Entries without a rank are
// numbered by position.
func RankOf(entries []models.ScoreboardEntry, teamID int64) int {
	for i, e := range entries {
		if e.TeamID == teamID {
			if e.Rank > 0 {
				return e.Rank
			}
			return i + 1
		}
	}
	return 0
}
