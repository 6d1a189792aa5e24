// File: database/mapper.go
package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// timestamptzToPtr returns nil for SQL NULL.
func timestamptzToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

// ptrToTimestamptz is the inverse of timestamptzToPtr.
func ptrToTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// likePattern builds a case-insensitive substring pattern, escaping the
// LIKE metacharacters in s.
func likePattern(s string) string {
	out := make([]rune, 0, len(s)+2)
	out = append(out, '%')
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(append(out, '%'))
}
