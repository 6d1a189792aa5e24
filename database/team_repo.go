// File: database/team_repo.go
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"go-ctf-event/models"
)

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertTeam(ctx context.Context, q querier, name string, creatorID int64) (models.Team, error) {
	var t models.Team
	err := q.QueryRow(ctx, `
		INSERT INTO teams (name, creator_id) VALUES ($1, $2)
		RETURNING id, name, COALESCE(creator_id, 0), created_at`, name, creatorID).
		Scan(&t.ID, &t.Name, &t.CreatorID, &t.CreatedAt)
	return t, err
}

// addMemberTx locks the team row, checks capacity and inserts the member.
func addMemberTx(ctx context.Context, tx pgx.Tx, teamID, userID int64, maxSize int) error {
	var locked int64
	if err := tx.QueryRow(ctx, `SELECT id FROM teams WHERE id = $1 FOR UPDATE`, teamID).Scan(&locked); err != nil {
		return err
	}
	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM team_members WHERE team_id = $1`, teamID).Scan(&count); err != nil {
		return err
	}
	if maxSize > 0 && count >= maxSize {
		return models.ErrTeamFull
	}
	_, err := tx.Exec(ctx, `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`, teamID, userID)
	return err
}

// CreateTeamWithMember creates a team and makes its creator the first member.
func (s *Store) CreateTeamWithMember(ctx context.Context, name string, creatorID int64) (models.Team, error) {
	var team models.Team
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		if team, err = insertTeam(ctx, tx, name, creatorID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`, team.ID, creatorID)
		return err
	})
	return team, mapError("create team", err)
}

// CreateTeam creates an empty team owned by creatorID.
func (s *Store) CreateTeam(ctx context.Context, name string, creatorID int64) (models.Team, error) {
	t, err := insertTeam(ctx, s.pool, name, creatorID)
	return t, mapError("create team", err)
}

// TeamByID loads one team.
func (s *Store) TeamByID(ctx context.Context, id int64) (models.Team, error) {
	var t models.Team
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, COALESCE(creator_id, 0), created_at FROM teams WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatorID, &t.CreatedAt)
	return t, mapError("team by id", err)
}

// TeamIDForUser returns the team the user belongs to, or ErrNotFound.
func (s *Store) TeamIDForUser(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `SELECT team_id FROM team_members WHERE user_id = $1`, userID).Scan(&id)
	return id, mapError("team for user", err)
}

// TeamMembers lists a team's members in join order.
func (s *Store) TeamMembers(ctx context.Context, teamID int64) ([]models.TeamMember, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.id, p.full_name, p.student_id, tm.joined_at
		FROM team_members tm
		JOIN profiles p ON p.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at, p.id`, teamID)
	if err != nil {
		return nil, mapError("team members", err)
	}
	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TeamMember, error) {
		var m models.TeamMember
		err := row.Scan(&m.UserID, &m.FullName, &m.StudentID, &m.JoinedAt)
		return m, err
	})
	return members, mapError("team members", err)
}

// ListTeamSummaries returns every team with its member count, optionally
// filtered by name.
func (s *Store) ListTeamSummaries(ctx context.Context, search string) ([]models.TeamSummary, error) {
	query := `
		SELECT t.id, t.name, COUNT(tm.user_id)::INT
		FROM teams t
		LEFT JOIN team_members tm ON tm.team_id = t.id`
	args := []any{}
	if search != "" {
		args = append(args, likePattern(search))
		query += ` WHERE t.name ILIKE $1`
	}
	query += ` GROUP BY t.id, t.name ORDER BY t.name`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list teams", err)
	}
	teams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TeamSummary, error) {
		var t models.TeamSummary
		err := row.Scan(&t.ID, &t.Name, &t.MemberCount)
		return t, err
	})
	return teams, mapError("list teams", err)
}

// AddMember adds userID to teamID unless the team already has maxSize
// members. maxSize <= 0 means unlimited.
func (s *Store) AddMember(ctx context.Context, teamID, userID int64, maxSize int) error {
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		return addMemberTx(ctx, tx, teamID, userID, maxSize)
	})
	return mapError("add member", err)
}

// RemoveMember deletes one membership.
func (s *Store) RemoveMember(ctx context.Context, teamID, userID int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return mapError("remove member", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("remove member: %w", models.ErrNotInTeam)
	}
	return nil
}

// DeleteTeam removes the members first, then the team.
func (s *Store) DeleteTeam(ctx context.Context, teamID int64) error {
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	})
	return mapError("delete team", err)
}

// MoveMember puts userID in toTeamID, leaving any current team, atomically.
func (s *Store) MoveMember(ctx context.Context, userID, toTeamID int64, maxSize int) error {
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE user_id = $1`, userID); err != nil {
			return err
		}
		return addMemberTx(ctx, tx, toTeamID, userID, maxSize)
	})
	return mapError("move member", err)
}
