// internal/api/leagues/schedule.go
package leagues

import (
	"context"
	"net/http"

	"github.com/leaguedesk/leaguedesk/internal/api/apiutil"
	"github.com/leaguedesk/leaguedesk/internal/schedule"
)

type scheduleResponse struct {
	Schedule schedule.Schedule  `json:"schedule"`
	Groups   []schedule.Group   `json:"groups"`
	Form     schedule.FormState `json:"form"`
}

// GET /api/v1/orgs/{org_id}/leagues/{league_id}/schedule
func HandleLeagueSchedule(w http.ResponseWriter, r *http.Request) {
	orgID, leagueID, ok := leaguePath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	s, err := engine.GetSchedule(ctx, orgID, leagueID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, scheduleResponse{
		Schedule: s,
		Groups:   s.Groups(),
		Form:     s.FormState(),
	})
}

type setScheduleRequest struct {
	Schedule schedule.Schedule  `json:"schedule"`
	Form     schedule.FormState `json:"form"`
}

// PUT /api/v1/orgs/{org_id}/leagues/{league_id}/schedule
//
// Accepts either the canonical schedule shape or the seven-day form shape;
// the form wins when both are present.
func HandleSetLeagueSchedule(w http.ResponseWriter, r *http.Request) {
	orgID, leagueID, ok := leaguePath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	var req setScheduleRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	s := req.Schedule
	if len(req.Form) > 0 {
		var err error
		s, err = schedule.FromFormState(req.Form)
		if err != nil {
			apiutil.WriteError(w, r, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), leaguesQueryTimeout)
	defer cancel()

	if err := engine.SetSchedule(ctx, orgID, leagueID, s); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, scheduleResponse{
		Schedule: s,
		Groups:   s.Groups(),
		Form:     s.FormState(),
	})
}
