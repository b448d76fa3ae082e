// internal/api/facilities/handlers.go
package facilities

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/apiutil"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/facilities"
	"github.com/leaguedesk/leaguedesk/internal/schedule"
)

var (
	queries *dbgen.Queries
	engine  *facilities.Engine
)

const facilitiesQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q *dbgen.Queries, e *facilities.Engine) {
	queries = q
	engine = e
}

type createFacilityRequest struct {
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Schedule schedule.Schedule `json:"schedule"`
}

// POST /api/v1/orgs/{org_id}/facilities
func HandleCreateFacility(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if engine == nil {
		logger.Error().Msg("Facilities engine not initialized")
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

	var req createFacilityRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), facilitiesQueryTimeout)
	defer cancel()

	facility, err := engine.CreateFacility(ctx, orgID, facilities.CreateFacilityInput{
		Name:     req.Name,
		Address:  req.Address,
		Schedule: req.Schedule,
	})
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, facility)
}

// GET /api/v1/orgs/{org_id}/facilities
func HandleFacilitiesList(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), facilitiesQueryTimeout)
	defer cancel()

	rows, err := engine.ListFacilities(ctx, orgID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"facilities": rows})
}

type scheduleResponse struct {
	Schedule schedule.Schedule  `json:"schedule"`
	Groups   []schedule.Group   `json:"groups"`
	Form     schedule.FormState `json:"form"`
}

// GET /api/v1/orgs/{org_id}/facilities/{facility_id}/schedule
func HandleFacilitySchedule(w http.ResponseWriter, r *http.Request) {
	orgID, facilityID, ok := facilityPath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), facilitiesQueryTimeout)
	defer cancel()

	s, err := engine.GetSchedule(ctx, orgID, facilityID)
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

// PUT /api/v1/orgs/{org_id}/facilities/{facility_id}/schedule
func HandleSetFacilitySchedule(w http.ResponseWriter, r *http.Request) {
	orgID, facilityID, ok := facilityPath(w, r)
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

	ctx, cancel := context.WithTimeout(r.Context(), facilitiesQueryTimeout)
	defer cancel()

	if err := engine.SetSchedule(ctx, orgID, facilityID, s); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, scheduleResponse{
		Schedule: s,
		Groups:   s.Groups(),
		Form:     s.FormState(),
	})
}

type createSurfaceRequest struct {
	Name        string `json:"name"`
	SurfaceType string `json:"surfaceType"`
	SortOrder   int64  `json:"sortOrder"`
}

// POST /api/v1/orgs/{org_id}/facilities/{facility_id}/surfaces
func HandleCreateSurface(w http.ResponseWriter, r *http.Request) {
	orgID, facilityID, ok := facilityPath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	var req createSurfaceRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), facilitiesQueryTimeout)
	defer cancel()

	surface, err := engine.AddSurface(ctx, orgID, facilityID, req.Name, req.SurfaceType, req.SortOrder)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, surface)
}

// GET /api/v1/orgs/{org_id}/facilities/{facility_id}/surfaces
func HandleSurfacesList(w http.ResponseWriter, r *http.Request) {
	orgID, facilityID, ok := facilityPath(w, r)
	if !ok {
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), facilitiesQueryTimeout)
	defer cancel()

	rows, err := engine.ListSurfaces(ctx, orgID, facilityID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"surfaces": rows})
}

func facilityPath(w http.ResponseWriter, r *http.Request) (orgID, facilityID int64, ok bool) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return 0, 0, false
	}
	facilityID, err = apiutil.PathID(r, "facility_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return 0, 0, false
	}
	return orgID, facilityID, true
}
