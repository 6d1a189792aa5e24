// File: database/profile_repo.go
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"go-ctf-event/models"
)

const profileColumns = `id, email, full_name, national_id, student_id, department, career,
	phone_number, password_hash, is_admin, created_at`

func scanProfile(row pgx.Row) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.NationalID, &p.StudentID, &p.Department,
		&p.Career, &p.PhoneNumber, &p.PasswordHash, &p.IsAdmin, &p.CreatedAt)
	return p, err
}

// CreateProfile inserts a new participant account.
func (s *Store) CreateProfile(ctx context.Context, np models.NewProfile) (models.Profile, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO profiles (email, full_name, national_id, student_id, department, career, phone_number, password_hash)
		VALUES (LOWER($1), $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+profileColumns,
		np.Email, np.FullName, np.NationalID, np.StudentID, np.Department, np.Career, np.PhoneNumber, np.PasswordHash)
	p, err := scanProfile(row)
	return p, mapError("create profile", err)
}

// ProfileByID loads one profile.
func (s *Store) ProfileByID(ctx context.Context, id int64) (models.Profile, error) {
	p, err := scanProfile(s.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	return p, mapError("profile by id", err)
}

// ProfileByEmail loads one profile, matching the email case-insensitively.
func (s *Store) ProfileByEmail(ctx context.Context, email string) (models.Profile, error) {
	p, err := scanProfile(s.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = LOWER($1)`, email))
	return p, mapError("profile by email", err)
}

// SetAdmin grants or revokes the admin flag.
func (s *Store) SetAdmin(ctx context.Context, email string, admin bool) error {
	tag, err := s.pool.Exec(ctx, `UPDATE profiles SET is_admin = $2 WHERE email = LOWER($1)`, email, admin)
	if err != nil {
		return mapError("set admin", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set admin: %w", models.ErrNotFound)
	}
	return nil
}

// ListUsers returns non-admin profiles with their team, filtered by team
// membership and an optional name or student id search.
func (s *Store) ListUsers(ctx context.Context, filter models.UserFilter, search string) ([]models.UserListing, error) {
	query := `
		SELECT p.id, p.full_name, p.student_id, p.email, t.id, COALESCE(t.name, '')
		FROM profiles p
		LEFT JOIN team_members tm ON tm.user_id = p.id
		LEFT JOIN teams t ON t.id = tm.team_id
		WHERE NOT p.is_admin`
	args := []any{}

	switch filter {
	case models.UserFilterWithTeam:
		query += ` AND tm.team_id IS NOT NULL`
	case models.UserFilterWithoutTeam:
		query += ` AND tm.team_id IS NULL`
	}
	if search != "" {
		args = append(args, likePattern(search))
		query += fmt.Sprintf(` AND (p.full_name ILIKE $%d OR p.student_id ILIKE $%d)`, len(args), len(args))
	}
	query += ` ORDER BY p.full_name`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list users", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UserListing, error) {
		var u models.UserListing
		err := row.Scan(&u.ID, &u.FullName, &u.StudentID, &u.Email, &u.TeamID, &u.TeamName)
		return u, err
	})
	return users, mapError("list users", err)
}
