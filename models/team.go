// File: models/team.go
package models

import "time"

// Team is a group of participants competing together.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatorID int64     `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamMember is a participant as listed inside a team.
type TeamMember struct {
	UserID    int64     `json:"userId"`
	FullName  string    `json:"fullName"`
	StudentID string    `json:"studentId"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// TeamDetail is the participant's own team view. Rank is 0 when the team
// has no entry on the scoreboard yet.
type TeamDetail struct {
	Team
	Members []TeamMember `json:"members"`
	Rank    int          `json:"rank"`
}

// TeamSummary is a team with its head count, used for join and admin lists.
type TeamSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}

// IsFull reports whether the team reached max members.
func (t TeamSummary) IsFull(max int) bool {
	return max > 0 && t.MemberCount >= max
}
