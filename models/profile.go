// Package models defines data structures used across the application.
// File: models/profile.go
package models

import "time"

// Profile is a registered participant or administrator.
type Profile struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	NationalID   string    `json:"nationalId"`
	StudentID    string    `json:"studentId"`
	Department   string    `json:"department"`
	Career       string    `json:"career"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	IsAdmin      bool      `json:"isAdmin"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewProfile carries the already validated sign-up fields.
type NewProfile struct {
	Email        string
	FullName     string
	NationalID   string
	StudentID    string
	Department   string
	Career       string
	PhoneNumber  string
	PasswordHash string
}

// UserFilter narrows the admin user listing.
type UserFilter string

const (
	UserFilterAll         UserFilter = "all"
	UserFilterWithTeam    UserFilter = "with_team"
	UserFilterWithoutTeam UserFilter = "without_team"
)

// ParseUserFilter maps unknown values to UserFilterAll.
func ParseUserFilter(s string) UserFilter {
	switch UserFilter(s) {
	case UserFilterWithTeam, UserFilterWithoutTeam:
		return UserFilter(s)
	default:
		return UserFilterAll
	}
}

// UserListing is one row of the admin user table.
type UserListing struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	StudentID string `json:"studentId"`
	Email     string `json:"email"`
	TeamID    *int64 `json:"teamId"`
	TeamName  string `json:"teamName,omitempty"`
}
