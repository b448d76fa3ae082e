// internal/api/roster/handlers.go
package roster

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/apiutil"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/roster"
)

var (
	queries *dbgen.Queries
	engine  *roster.Engine
)

const rosterQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q *dbgen.Queries, e *roster.Engine) {
	queries = q
	engine = e
}

// GET /api/v1/orgs/{org_id}/roster
func HandleRosterList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if engine == nil {
		logger.Error().Msg("Roster engine not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	teamID, err := apiutil.OptionalQueryID(r, "team_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	filter := roster.Filter{
		TeamID: teamID,
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	rows, err := engine.ListRoster(ctx, orgID, filter)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"roster": rows})
}

// GET /api/v1/orgs/{org_id}/teams
func HandleTeamsList(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	teams, err := engine.ListTeams(ctx, orgID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": teams})
}

// GET /api/v1/orgs/{org_id}/teams/{team_id}/members
func HandleTeamMembersList(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	teamID, err := apiutil.PathID(r, "team_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	members, err := engine.ListTeamMembers(ctx, orgID, teamID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"members": members})
}

type createTeamRequest struct {
	Name        string `json:"name"`
	AdminUserID int64  `json:"adminUserId"`
}

// POST /api/v1/orgs/{org_id}/teams
func HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	var req createTeamRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	team, err := engine.CreateTeamWithAdmin(ctx, orgID, req.Name, req.AdminUserID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, team)
}

type addMemberRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// POST /api/v1/orgs/{org_id}/teams/{team_id}/members
func HandleAddTeamMember(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	teamID, err := apiutil.PathID(r, "team_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	var req addMemberRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	member, err := engine.AddPlayerToTeam(ctx, orgID, teamID, strings.TrimSpace(req.Email), req.Status)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, member)
}

// DELETE /api/v1/orgs/{org_id}/teams/{team_id}/members/{user_id}
func HandleRemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	teamID, err := apiutil.PathID(r, "team_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	userID, err := apiutil.PathID(r, "user_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	if err := engine.RemovePlayerFromTeam(ctx, orgID, teamID, userID); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/v1/orgs/{org_id}/roster/{roster_id}
func HandleRemoveRosterEntry(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	rosterID, err := apiutil.PathID(r, "roster_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	if err := engine.RemovePlayerFromRoster(ctx, orgID, rosterID); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/v1/orgs/{org_id}/roster/{roster_id}/status
func HandleUpdateRosterStatus(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	rosterID, err := apiutil.PathID(r, "roster_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	var req updateStatusRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), rosterQueryTimeout)
	defer cancel()

	entry, err := engine.UpdatePlayerStatus(ctx, orgID, rosterID, req.Status)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, entry)
}
