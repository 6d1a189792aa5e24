// file: controllers/admin_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-ctf-event/models"
	"go-ctf-event/services"
)

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	router, _ := setupTestRouter(t)
	participant := sessionCookie(t, router, 7, false)

	assert.Equal(t, http.StatusUnauthorized, doJSON(router, http.MethodGet, "/api/admin/teams", nil, nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(router, http.MethodGet, "/api/admin/teams", nil, participant).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(router, http.MethodDelete, "/api/admin/challenges/1", nil, participant).Code)
}

func TestAdminCreateChallenge(t *testing.T) {
	router, d := setupTestRouter(t)
	admin := sessionCookie(t, router, 1, true)
	d.challenges.On("Create", mock.Anything, mock.MatchedBy(func(in services.ChallengeInput) bool {
		return in.Title == "Cookie Monster" && in.Flag == "CTF{c00k13}" && in.Points == 150
	})).Return(models.Challenge{ID: 9, Title: "Cookie Monster", Flag: "CTF{c00k13}", Points: 150}, nil)

	w := doJSON(router, http.MethodPost, "/api/admin/challenges", map[string]interface{}{
		"title": "Cookie Monster", "flag": "CTF{c00k13}", "points": 150, "hints": "look at cookies",
	}, admin)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "c00k13", "flag never serialized")
}

func TestAdminToggleAndDeleteChallenge(t *testing.T) {
	router, d := setupTestRouter(t)
	admin := sessionCookie(t, router, 1, true)
	d.challenges.On("ToggleVisibility", mock.Anything, int64(9)).Return(models.Challenge{ID: 9, Visible: true}, nil)
	d.challenges.On("Delete", mock.Anything, int64(9)).Return(nil)
	d.challenges.On("Delete", mock.Anything, int64(10)).Return(models.ErrNotFound)

	toggle := doJSON(router, http.MethodPost, "/api/admin/challenges/9/visibility", nil, admin)
	require.Equal(t, http.StatusOK, toggle.Code)
	assert.Equal(t, true, decode(t, toggle)["visible"])

	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/api/admin/challenges/9", nil, admin).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodDelete, "/api/admin/challenges/10", nil, admin).Code)
}

func TestAdminTeams(t *testing.T) {
	router, d := setupTestRouter(t)
	admin := sessionCookie(t, router, 1, true)
	d.teams.On("ListTeams", mock.Anything, "root").Return([]models.TeamSummary{{ID: 2, Name: "root@espe", MemberCount: 4}}, nil)
	d.teams.On("AdminCreateTeam", mock.Anything, int64(1), "staff").Return(models.Team{ID: 5, Name: "staff", CreatorID: 1}, nil)
	d.teams.On("DeleteTeam", mock.Anything, int64(2)).Return(nil)
	d.teams.On("RemoveMember", mock.Anything, int64(2), int64(7)).Return(nil)

	list := doJSON(router, http.MethodGet, "/api/admin/teams?search=root", nil, admin)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), `"memberCount":4`)

	assert.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/admin/teams", map[string]string{"name": "staff"}, admin).Code)
	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/api/admin/teams/2", nil, admin).Code)
	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/api/admin/teams/2/members/7", nil, admin).Code)
}

func TestAdminUsers(t *testing.T) {
	router, d := setupTestRouter(t)
	admin := sessionCookie(t, router, 1, true)
	d.teams.On("ListUsers", mock.Anything, models.UserFilterWithoutTeam, "L00").Return([]models.UserListing{{ID: 7, FullName: "Ana"}}, nil)
	d.teams.On("ListUsers", mock.Anything, models.UserFilterAll, "").Return([]models.UserListing{}, nil)
	d.teams.On("AssignUser", mock.Anything, int64(7), int64(2)).Return(nil)
	d.teams.On("MoveUser", mock.Anything, int64(7), int64(3)).Return(models.ErrTeamFull)

	filtered := doJSON(router, http.MethodGet, "/api/admin/users?filter=without_team&search=L00", nil, admin)
	require.Equal(t, http.StatusOK, filtered.Code)
	assert.Contains(t, filtered.Body.String(), `"teamId":null`)

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/api/admin/users?filter=bogus", nil, admin).Code)

	assign := doJSON(router, http.MethodPost, "/api/admin/users/7/team", map[string]int64{"teamId": 2}, admin)
	assert.Equal(t, http.StatusOK, assign.Code)

	move := doJSON(router, http.MethodPut, "/api/admin/users/7/team", map[string]int64{"teamId": 3}, admin)
	assert.Equal(t, http.StatusConflict, move.Code)

	missing := doJSON(router, http.MethodPut, "/api/admin/users/7/team", map[string]int64{}, admin)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}
