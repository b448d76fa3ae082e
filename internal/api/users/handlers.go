// internal/api/users/handlers.go
package users

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api/apiutil"
	"github.com/leaguedesk/leaguedesk/internal/identity"
)

var service *identity.Service

const usersQueryTimeout = 5 * time.Second

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s *identity.Service) {
	service = s
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// POST /api/v1/users
//
// Called by the fronting auth layer after signup; not exposed to end users
// directly.
func HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if service == nil {
		logger.Error().Msg("Identity service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req createUserRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usersQueryTimeout)
	defer cancel()

	user, err := service.CreateUser(ctx, identity.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	apiutil.WriteJSON(w, http.StatusCreated, user)
}
