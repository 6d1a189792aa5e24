// File: database/scoreboard_repo.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"go-ctf-event/models"
)

// Scoreboard ranks every team by score, breaking ties by the earliest last
// solve and then by name.
func (s *Store) Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT
			ROW_NUMBER() OVER (ORDER BY score DESC, last_solve_at ASC NULLS LAST, team_name ASC)::INT,
			team_id, team_name, score, solves, last_solve_at
		FROM scoreboard
		ORDER BY 1`)
	if err != nil {
		return nil, mapError("scoreboard", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ScoreboardEntry, error) {
		var (
			e    models.ScoreboardEntry
			last pgtype.Timestamptz
		)
		err := row.Scan(&e.Rank, &e.TeamID, &e.TeamName, &e.Score, &e.Solves, &last)
		e.LastSolveAt = timestamptzToPtr(last)
		return e, err
	})
	return entries, mapError("scoreboard", err)
}
