// internal/api/leagues/handlers.go
package leagues

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/apiutil"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/leagues"
	"github.com/leaguedesk/leaguedesk/internal/schedule"
)

var (
	queries *dbgen.Queries
	engine  *leagues.Engine
)

const leaguesQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q *dbgen.Queries, e *leagues.Engine) {
	queries = q
	engine = e
}

type createLeagueRequest struct {
	Name      string            `json:"name"`
	AgeGroup  string            `json:"ageGroup"`
	Schedule  schedule.Schedule `json:"schedule"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
}

// POST /api/v1/orgs/{org_id}/leagues
func HandleCreateLeague(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if engine == nil {
		logger.Error().Msg("League engine not initialized")
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

	var req createLeagueRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	startDate, err := apiutil.ParseDateField(req.StartDate, "startDate")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	endDate, err := apiutil.ParseDateField(req.EndDate, "endDate")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	league, err := engine.CreateLeague(ctx, orgID, leagues.CreateLeagueInput{
		Name:      req.Name,
		AgeGroup:  req.AgeGroup,
		Schedule:  req.Schedule,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, league)
}

// GET /api/v1/orgs/{org_id}/leagues
func HandleLeaguesList(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	rows, err := engine.ListLeagues(ctx, orgID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"leagues": rows})
}

// GET /api/v1/orgs/{org_id}/leagues/{league_id}/teams
func HandleLeagueTeamsList(w http.ResponseWriter, r *http.Request) {
	orgID, leagueID, ok := leaguePath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	rows, err := engine.ListParticipants(ctx, orgID, leagueID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": rows})
}

// GET /api/v1/orgs/{org_id}/leagues/{league_id}/available-teams
func HandleAvailableTeamsList(w http.ResponseWriter, r *http.Request) {
	orgID, leagueID, ok := leaguePath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	rows, err := engine.ListAvailable(ctx, orgID, leagueID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": rows})
}

type addLeagueTeamRequest struct {
	TeamID int64 `json:"teamId"`
}

// POST /api/v1/orgs/{org_id}/leagues/{league_id}/teams
func HandleAddLeagueTeam(w http.ResponseWriter, r *http.Request) {
	orgID, leagueID, ok := leaguePath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	var req addLeagueTeamRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	row, err := engine.AddTeamToLeague(ctx, orgID, leagueID, req.TeamID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, row)
}

// DELETE /api/v1/orgs/{org_id}/leagues/{league_id}/teams/{team_id}
func HandleRemoveLeagueTeam(w http.ResponseWriter, r *http.Request) {
	orgID, leagueID, ok := leaguePath(w, r)
	if !ok {
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

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	if err := engine.RemoveTeamFromLeague(ctx, orgID, leagueID, teamID); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reconcileRequest struct {
	TeamIDs []int64 `json:"teamIds"`
}

// PUT /api/v1/orgs/{org_id}/leagues/{league_id}/teams
func HandleReconcileLeagueTeams(w http.ResponseWriter, r *http.Request) {
	orgID, leagueID, ok := leaguePath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	var req reconcileRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	result, err := engine.Reconcile(ctx, orgID, leagueID, req.TeamIDs)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, result)
}

func leaguePath(w http.ResponseWriter, r *http.Request) (orgID, leagueID int64, ok bool) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return 0, 0, false
	}
	leagueID, err = apiutil.PathID(r, "league_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return 0, 0, false
	}
	return orgID, leagueID, true
}
