// File: database/challenge_repo.go
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"go-ctf-event/models"
)

const challengeColumns = `id, title, description, category, difficulty, points, flag, hints, is_visible, created_at`

func scanChallenge(row pgx.Row) (models.Challenge, error) {
	var c models.Challenge
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Difficulty, &c.Points,
		&c.Flag, &c.Hints, &c.Visible, &c.CreatedAt)
	return c, err
}

// CreateChallenge inserts a hidden challenge.
func (s *Store) CreateChallenge(ctx context.Context, nc models.NewChallenge) (models.Challenge, error) {
	hints := nc.Hints
	if hints == nil {
		hints = []string{}
	}
	c, err := scanChallenge(s.pool.QueryRow(ctx, `
		INSERT INTO challenges (title, description, category, difficulty, points, flag, hints, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING `+challengeColumns,
		nc.Title, nc.Description, nc.Category, nc.Difficulty, nc.Points, nc.Flag, hints))
	return c, mapError("create challenge", err)
}

// ChallengeByID loads one challenge, flag included.
func (s *Store) ChallengeByID(ctx context.Context, id int64) (models.Challenge, error) {
	c, err := scanChallenge(s.pool.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1`, id))
	return c, mapError("challenge by id", err)
}

// ListChallenges returns challenges ordered by category then points.
func (s *Store) ListChallenges(ctx context.Context, visibleOnly bool) ([]models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges`
	if visibleOnly {
		query += ` WHERE is_visible`
	}
	query += ` ORDER BY category, points, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError("list challenges", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Challenge, error) {
		return scanChallenge(row)
	})
	return list, mapError("list challenges", err)
}

// SetChallengeVisibility shows or hides a challenge.
func (s *Store) SetChallengeVisibility(ctx context.Context, id int64, visible bool) (models.Challenge, error) {
	c, err := scanChallenge(s.pool.QueryRow(ctx, `
		UPDATE challenges SET is_visible = $2 WHERE id = $1
		RETURNING `+challengeColumns, id, visible))
	return c, mapError("set challenge visibility", err)
}

// DeleteChallenge removes a challenge and, by cascade, its submissions.
func (s *Store) DeleteChallenge(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM challenges WHERE id = $1`, id)
	if err != nil {
		return mapError("delete challenge", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete challenge: %w", models.ErrNotFound)
	}
	return nil
}
