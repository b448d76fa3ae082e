// internal/api/orgs/handlers.go
package orgs

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/apiutil"
	"github.com/leaguedesk/leaguedesk/internal/api/authz"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/orgs"
)

var (
	queries *dbgen.Queries
	engine  *orgs.Engine
)

const orgsQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q *dbgen.Queries, e *orgs.Engine) {
	queries = q
	engine = e
}

type createOrgRequest struct {
	Name string `json:"name"`
}

// POST /api/v1/orgs
func HandleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if engine == nil {
		logger.Error().Msg("Orgs engine not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user := authz.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createOrgRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), orgsQueryTimeout)
	defer cancel()

	org, err := engine.CreateOrganization(ctx, req.Name, user.ID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, org)
}

// GET /api/v1/orgs/by-slug/{slug}
func HandleGetOrganizationBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	ctx, cancel := context.WithTimeout(r.Context(), orgsQueryTimeout)
	defer cancel()

	org, err := engine.GetBySlug(ctx, slug)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, org.ID) == nil {
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, org)
}

// GET /api/v1/orgs/{org_id}
func HandleGetOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if apiutil.RequireOrganizationMember(w, r, queries, orgID) == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), orgsQueryTimeout)
	defer cancel()

	org, err := engine.Get(ctx, orgID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, org)
}
