// internal/api/staff/handlers.go
package staff

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/apiutil"
	"github.com/leaguedesk/leaguedesk/internal/api/authz"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/staff"
)

var (
	queries *dbgen.Queries
	engine  *staff.Engine
)

const staffQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q *dbgen.Queries, e *staff.Engine) {
	queries = q
	engine = e
}

// GET /api/v1/orgs/{org_id}/staff
func HandleStaffList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if engine == nil {
		logger.Error().Msg("Staff engine not initialized")
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

	ctx, cancel := context.WithTimeout(r.Context(), staffQueryTimeout)
	defer cancel()

	rows, err := engine.List(ctx, orgID)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusOK, map[string]any{"staff": rows})
}

// DELETE /api/v1/orgs/{org_id}/staff/{member_id}
func HandleRemoveStaff(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	memberID, err := apiutil.PathID(r, "member_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	membership := apiutil.RequireOrganizationMember(w, r, queries, orgID)
	if membership == nil {
		return
	}
	if !authz.CanManageStaff(membership) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	user := authz.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), staffQueryTimeout)
	defer cancel()

	if err := engine.Remove(ctx, orgID, memberID, user.ID); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// POST /api/v1/orgs/{org_id}/staff/invitations
func HandleCreateInvitation(w http.ResponseWriter, r *http.Request) {
	orgID, err := apiutil.PathID(r, "org_id")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	membership := apiutil.RequireOrganizationMember(w, r, queries, orgID)
	if membership == nil {
		return
	}
	if !authz.CanManageStaff(membership) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req inviteRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), staffQueryTimeout)
	defer cancel()

	invitation, err := engine.Invite(ctx, orgID, req.Email, req.Role)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, invitation)
}

type acceptRequest struct {
	Token string `json:"token"`
}

// POST /api/v1/invitations/accept
func HandleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	user := authz.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req acceptRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), staffQueryTimeout)
	defer cancel()

	member, err := engine.Accept(ctx, req.Token, user.ID, user.Email)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, member)
}
