// File: database/errors.go
package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"go-ctf-event/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintErrors maps unique constraint names to domain errors.
var constraintErrors = map[string]error{
	"profiles_email_key":        models.ErrEmailTaken,
	"profiles_national_id_key":  models.ErrNationalIDTaken,
	"profiles_student_id_key":   models.ErrStudentIDTaken,
	"teams_name_key":            models.ErrTeamNameTaken,
	"team_members_user_id_key":  models.ErrAlreadyInTeam,
	"team_members_pkey":         models.ErrAlreadyInTeam,
	"submissions_one_solve_idx": models.ErrAlreadySolved,
}

// mapError wraps err with op and translates driver errors into the domain
// sentinels. A nil err stays nil.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if sentinel, ok := constraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s: %w", op, sentinel)
			}
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
