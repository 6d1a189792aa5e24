// File: database/submission_repo.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5"

	"go-ctf-event/models"
)

// RecordSubmission stores an attempt. A second correct solve for the same
// team and challenge fails with ErrAlreadySolved.
func (s *Store) RecordSubmission(ctx context.Context, sub models.Submission) (models.Submission, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO submissions (user_id, team_id, challenge_id, submitted_flag, is_correct)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		sub.UserID, sub.TeamID, sub.ChallengeID, sub.SubmittedFlag, sub.Correct).
		Scan(&sub.ID, &sub.CreatedAt)
	return sub, mapError("record submission", err)
}

// SolvedChallengeIDs returns the set of challenges teamID solved.
func (s *Store) SolvedChallengeIDs(ctx context.Context, teamID int64) (map[int64]bool, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT challenge_id FROM submissions WHERE team_id = $1 AND is_correct`, teamID)
	if err != nil {
		return nil, mapError("solved challenges", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, mapError("solved challenges", err)
	}
	solved := make(map[int64]bool, len(ids))
	for _, id := range ids {
		solved[id] = true
	}
	return solved, nil
}

// HasSolved reports whether teamID already solved challengeID.
func (s *Store) HasSolved(ctx context.Context, teamID, challengeID int64) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM submissions WHERE team_id = $1 AND challenge_id = $2 AND is_correct
		)`, teamID, challengeID).Scan(&exists)
	return exists, mapError("has solved", err)
}

// CountSubmissions returns total and correct attempts, for metrics.
func (s *Store) CountSubmissions(ctx context.Context) (total, correct int64, err error) {
	err = s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_correct) FROM submissions`).Scan(&total, &correct)
	return total, correct, mapError("count submissions", err)
}
