// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/api"
	facilitiesapi "github.com/leaguedesk/leaguedesk/internal/api/facilities"
	leaguesapi "github.com/leaguedesk/leaguedesk/internal/api/leagues"
	orgsapi "github.com/leaguedesk/leaguedesk/internal/api/orgs"
	rosterapi "github.com/leaguedesk/leaguedesk/internal/api/roster"
	staffapi "github.com/leaguedesk/leaguedesk/internal/api/staff"
	usersapi "github.com/leaguedesk/leaguedesk/internal/api/users"
	"github.com/leaguedesk/leaguedesk/internal/config"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	"github.com/leaguedesk/leaguedesk/internal/email"
	"github.com/leaguedesk/leaguedesk/internal/facilities"
	"github.com/leaguedesk/leaguedesk/internal/identity"
	"github.com/leaguedesk/leaguedesk/internal/leagues"
	"github.com/leaguedesk/leaguedesk/internal/orgs"
	"github.com/leaguedesk/leaguedesk/internal/roster"
	"github.com/leaguedesk/leaguedesk/internal/staff"
)

func newServer(cfg *config.Config, database *db.DB) (*http.Server, error) {
	rosterEngine, err := roster.NewEngine(database)
	if err != nil {
		return nil, err
	}
	leaguesEngine, err := leagues.NewEngine(database)
	if err != nil {
		return nil, err
	}
	facilitiesEngine, err := facilities.NewEngine(database)
	if err != nil {
		return nil, err
	}
	orgsEngine, err := orgs.NewEngine(database)
	if err != nil {
		return nil, err
	}
	identityService, err := identity.NewService(database)
	if err != nil {
		return nil, err
	}

	sender := newEmailSender(cfg)
	staffEngine, err := staff.NewEngine(database, sender, cfg.App.BaseURL)
	if err != nil {
		return nil, err
	}

	rosterapi.InitHandlers(database.Queries, rosterEngine)
	leaguesapi.InitHandlers(database.Queries, leaguesEngine)
	facilitiesapi.InitHandlers(database.Queries, facilitiesEngine)
	orgsapi.InitHandlers(database.Queries, orgsEngine)
	staffapi.InitHandlers(database.Queries, staffEngine)
	usersapi.InitHandlers(identityService)

	router := http.NewServeMux()
	registerRoutes(router)

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithAuth(database.Queries),
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

// newEmailSender picks SES when credentials are configured and falls back to
// log-only delivery otherwise, so development never needs AWS access.
func newEmailSender(cfg *config.Config) email.Sender {
	if cfg.Email.Sender == "" || cfg.Email.AccessKeyID == "" {
		log.Info().Msg("Email not configured, using log-only delivery")
		return email.LogSender{}
	}
	client, err := email.NewSESClient(cfg.Email.AccessKeyID, cfg.Email.SecretAccessKey, cfg.Email.Region, cfg.Email.Sender)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build SES client, using log-only delivery")
		return email.LogSender{}
	}
	return client
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/v1/users", usersapi.HandleCreateUser)

	// Organizations
	mux.HandleFunc("POST /api/v1/orgs", orgsapi.HandleCreateOrganization)
	mux.HandleFunc("GET /api/v1/orgs/by-slug/{slug}", orgsapi.HandleGetOrganizationBySlug)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}", orgsapi.HandleGetOrganization)

	// Roster and teams
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/roster", rosterapi.HandleRosterList)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/teams", rosterapi.HandleTeamsList)
	mux.HandleFunc("POST /api/v1/orgs/{org_id}/teams", rosterapi.HandleCreateTeam)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/teams/{team_id}/members", rosterapi.HandleTeamMembersList)
	mux.HandleFunc("POST /api/v1/orgs/{org_id}/teams/{team_id}/members", rosterapi.HandleAddTeamMember)
	mux.HandleFunc("DELETE /api/v1/orgs/{org_id}/teams/{team_id}/members/{user_id}", rosterapi.HandleRemoveTeamMember)
	mux.HandleFunc("DELETE /api/v1/orgs/{org_id}/roster/{roster_id}", rosterapi.HandleRemoveRosterEntry)
	mux.HandleFunc("PUT /api/v1/orgs/{org_id}/roster/{roster_id}/status", rosterapi.HandleUpdateRosterStatus)

	// Leagues
	mux.HandleFunc("POST /api/v1/orgs/{org_id}/leagues", leaguesapi.HandleCreateLeague)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/leagues", leaguesapi.HandleLeaguesList)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/leagues/{league_id}/teams", leaguesapi.HandleLeagueTeamsList)
	mux.HandleFunc("POST /api/v1/orgs/{org_id}/leagues/{league_id}/teams", leaguesapi.HandleAddLeagueTeam)
	mux.HandleFunc("PUT /api/v1/orgs/{org_id}/leagues/{league_id}/teams", leaguesapi.HandleReconcileLeagueTeams)
	mux.HandleFunc("DELETE /api/v1/orgs/{org_id}/leagues/{league_id}/teams/{team_id}", leaguesapi.HandleRemoveLeagueTeam)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/leagues/{league_id}/available-teams", leaguesapi.HandleAvailableTeamsList)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/leagues/{league_id}/schedule", leaguesapi.HandleLeagueSchedule)
	mux.HandleFunc("PUT /api/v1/orgs/{org_id}/leagues/{league_id}/schedule", leaguesapi.HandleSetLeagueSchedule)

	// Facilities
	mux.HandleFunc("POST /api/v1/orgs/{org_id}/facilities", facilitiesapi.HandleCreateFacility)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/facilities", facilitiesapi.HandleFacilitiesList)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/facilities/{facility_id}/schedule", facilitiesapi.HandleFacilitySchedule)
	mux.HandleFunc("PUT /api/v1/orgs/{org_id}/facilities/{facility_id}/schedule", facilitiesapi.HandleSetFacilitySchedule)
	mux.HandleFunc("POST /api/v1/orgs/{org_id}/facilities/{facility_id}/surfaces", facilitiesapi.HandleCreateSurface)
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/facilities/{facility_id}/surfaces", facilitiesapi.HandleSurfacesList)

	// Staff
	mux.HandleFunc("GET /api/v1/orgs/{org_id}/staff", staffapi.HandleStaffList)
	mux.HandleFunc("DELETE /api/v1/orgs/{org_id}/staff/{member_id}", staffapi.HandleRemoveStaff)
	mux.HandleFunc("POST /api/v1/orgs/{org_id}/staff/invitations", staffapi.HandleCreateInvitation)
	mux.HandleFunc("POST /api/v1/invitations/accept", staffapi.HandleAcceptInvitation)
}
