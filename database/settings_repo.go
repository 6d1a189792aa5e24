// File: database/settings_repo.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"go-ctf-event/models"
)

// LoadSettings reads the singleton schedule row.
func (s *Store) LoadSettings(ctx context.Context) (models.EventSettings, error) {
	var (
		reg, start, end pgtype.Timestamptz
		out             models.EventSettings
	)
	err := s.pool.QueryRow(ctx, `
		SELECT registration_end_time, event_start_time, event_end_time, updated_at
		FROM event_settings WHERE id = 1`).Scan(&reg, &start, &end, &out.UpdatedAt)
	if err != nil {
		return models.EventSettings{}, mapError("load settings", err)
	}
	out.RegistrationEnd = timestamptzToPtr(reg)
	out.EventStart = timestamptzToPtr(start)
	out.EventEnd = timestamptzToPtr(end)
	return out, nil
}

// SaveSettings upserts the singleton row. Nil fields clear the boundary.
func (s *Store) SaveSettings(ctx context.Context, in models.EventSettings) (models.EventSettings, error) {
	var (
		reg, start, end pgtype.Timestamptz
		out             models.EventSettings
	)
	err := s.pool.QueryRow(ctx, `
		INSERT INTO event_settings (id, registration_end_time, event_start_time, event_end_time, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			registration_end_time = EXCLUDED.registration_end_time,
			event_start_time = EXCLUDED.event_start_time,
			event_end_time = EXCLUDED.event_end_time,
			updated_at = EXCLUDED.updated_at
		RETURNING registration_end_time, event_start_time, event_end_time, updated_at`,
		ptrToTimestamptz(in.RegistrationEnd), ptrToTimestamptz(in.EventStart), ptrToTimestamptz(in.EventEnd)).
		Scan(&reg, &start, &end, &out.UpdatedAt)
	if err != nil {
		return models.EventSettings{}, mapError("save settings", err)
	}
	out.RegistrationEnd = timestamptzToPtr(reg)
	out.EventStart = timestamptzToPtr(start)
	out.EventEnd = timestamptzToPtr(end)
	return out, nil
}
