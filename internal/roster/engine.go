// internal/roster/engine.go
package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/identity"
	"github.com/leaguedesk/leaguedesk/internal/slug"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"

	DefaultPlayerStatus = "active"
	// Team creation seeds the admin's roster entry as inactive; staff flip it
	// to active once the player actually shows up.
	adminSeedStatus = "inactive"

	defaultTeamStatus  = "active"
	teamCodeLength     = 8
	teamCodeRetryLimit = 5
)

var playerStatuses = map[string]bool{
	"active":    true,
	"inactive":  true,
	"banned":    true,
	"suspended": true,
	"injured":   true,
}

// Engine maintains the organization roster and the single-team-membership
// invariant. Pre-checks here are advisory; the team_members.user_id UNIQUE
// constraint is the authority under concurrent requests.
type Engine struct {
	db *db.DB
}

func NewEngine(database *db.DB) (*Engine, error) {
	if database == nil {
		return nil, errors.New("roster engine requires a database")
	}
	return &Engine{db: database}, nil
}

// Filter narrows ListRoster. A zero TeamID means all teams; Search matches
// name or email as a case-insensitive substring.
type Filter struct {
	TeamID int64
	Search string
}

// Row is one roster listing entry. TeamID is nil for free agents.
type Row struct {
	RosterID  int64  `json:"rosterId"`
	UserID    int64  `json:"userId"`
	Status    string `json:"status"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone,omitempty"`
	TeamID    *int64 `json:"teamId,omitempty"`
	TeamName  string `json:"teamName,omitempty"`
	TeamSlug  string `json:"teamSlug,omitempty"`
}

// ListRoster returns the organization's players with their current team, if
// any. An entry with no team is a free agent.
func (e *Engine) ListRoster(ctx context.Context, orgID int64, filter Filter) ([]Row, error) {
	rows, err := e.db.Queries.ListRoster(ctx, dbgen.ListRosterParams{
		OrganizationID: orgID,
		TeamID:         filter.TeamID,
		Search:         filter.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		row := Row{
			RosterID:  r.RosterID,
			UserID:    r.UserID,
			Status:    r.Status,
			UserName:  r.FirstName + " " + r.LastName,
			UserEmail: r.Email,
			UserPhone: identity.FormatNational(r.Phone.String),
		}
		if r.TeamID.Valid {
			teamID := r.TeamID.Int64
			row.TeamID = &teamID
			row.TeamName = r.TeamName.String
			row.TeamSlug = r.TeamSlug.String
		}
		out = append(out, row)
	}
	return out, nil
}

// ListTeams returns the organization's teams ordered by name.
func (e *Engine) ListTeams(ctx context.Context, orgID int64) ([]dbgen.Team, error) {
	rows, err := e.db.Queries.ListTeams(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return rows, nil
}

// ListTeamMembers returns a team's members with user details in join order.
func (e *Engine) ListTeamMembers(ctx context.Context, orgID, teamID int64) ([]dbgen.ListTeamMembersRow, error) {
	if _, err := e.db.Queries.GetTeamByID(ctx, dbgen.GetTeamByIDParams{ID: teamID, OrganizationID: orgID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("team not found")
		}
		return nil, fmt.Errorf("load team: %w", err)
	}
	rows, err := e.db.Queries.ListTeamMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return rows, nil
}

// AddPlayerToTeam resolves email to a user account, upserts the roster entry
// (existing status untouched), and inserts the membership with role member.
// A user already on any team, anywhere, is a Conflict.
func (e *Engine) AddPlayerToTeam(ctx context.Context, orgID, teamID int64, email, status string) (dbgen.TeamMember, error) {
	if status == "" {
		status = DefaultPlayerStatus
	}
	if !playerStatuses[status] {
		return dbgen.TeamMember{}, apperr.Invalidf("unknown player status %q", status)
	}

	var member dbgen.TeamMember
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		if _, err := q.GetTeamByID(ctx, dbgen.GetTeamByIDParams{ID: teamID, OrganizationID: orgID}); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("team not found")
			}
			return fmt.Errorf("load team: %w", err)
		}

		user, err := q.GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("no account exists for %s", email)
			}
			return fmt.Errorf("resolve user by email: %w", err)
		}

		// Advisory pre-check for a friendly error; the UNIQUE constraint below
		// still decides under races.
		count, err := q.CountTeamMembershipsForUser(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("count memberships: %w", err)
		}
		if count > 0 {
			return apperr.Conflictf("this user is already assigned to a team")
		}

		if _, err := q.UpsertRosterEntry(ctx, dbgen.UpsertRosterEntryParams{
			OrganizationID: orgID,
			UserID:         user.ID,
			Status:         status,
		}); err != nil {
			return fmt.Errorf("upsert roster entry: %w", err)
		}

		member, err = q.CreateTeamMember(ctx, dbgen.CreateTeamMemberParams{
			TeamID: teamID,
			UserID: user.ID,
			Role:   RoleMember,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return apperr.Conflictf("this user is already assigned to a team")
			}
			return fmt.Errorf("create team member: %w", err)
		}
		return nil
	})
	if err != nil {
		return dbgen.TeamMember{}, err
	}

	log.Ctx(ctx).Info().
		Int64("org_id", orgID).
		Int64("team_id", teamID).
		Int64("user_id", member.UserID).
		Msg("Player added to team")
	return member, nil
}

// RemovePlayerFromTeam deletes the membership. When the departing member is
// the admin and others remain, the earliest-joined remaining member is
// promoted first, so a team with two or more members never ends the operation
// adminless. A sole admin leaving leaves zero rows, which is expected.
func (e *Engine) RemovePlayerFromTeam(ctx context.Context, orgID, teamID, userID int64) error {
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		if _, err := q.GetTeamByID(ctx, dbgen.GetTeamByIDParams{ID: teamID, OrganizationID: orgID}); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("team not found")
			}
			return fmt.Errorf("load team: %w", err)
		}

		member, err := q.GetTeamMember(ctx, dbgen.GetTeamMemberParams{TeamID: teamID, UserID: userID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("this user is not on the team")
			}
			return fmt.Errorf("load team member: %w", err)
		}

		if member.Role == RoleAdmin {
			successor, err := q.FirstRemainingTeamMember(ctx, dbgen.FirstRemainingTeamMemberParams{
				TeamID: teamID,
				UserID: userID,
			})
			switch {
			case err == nil:
				if _, err := q.PromoteTeamMemberToAdmin(ctx, successor.ID); err != nil {
					return fmt.Errorf("promote successor: %w", err)
				}
				log.Ctx(ctx).Info().
					Int64("team_id", teamID).
					Int64("promoted_user_id", successor.UserID).
					Msg("Team admin succession")
			case errors.Is(err, sql.ErrNoRows):
				// Last member leaving; nothing to promote.
			default:
				return fmt.Errorf("find successor: %w", err)
			}
		}

		deleted, err := q.DeleteTeamMember(ctx, dbgen.DeleteTeamMemberParams{TeamID: teamID, UserID: userID})
		if err != nil {
			return fmt.Errorf("delete team member: %w", err)
		}
		if deleted == 0 {
			return apperr.NotFoundf("this user is not on the team")
		}
		return nil
	})
	return err
}

// RemovePlayerFromRoster deletes the roster entry and any membership the user
// holds on this organization's teams. Memberships on other organizations'
// teams are left alone: roster removal is organization-scoped even though
// membership exclusivity is not.
func (e *Engine) RemovePlayerFromRoster(ctx context.Context, orgID, rosterEntryID int64) error {
	return e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		entry, err := q.GetRosterEntryByID(ctx, dbgen.GetRosterEntryByIDParams{
			ID:             rosterEntryID,
			OrganizationID: orgID,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("roster entry not found")
			}
			return fmt.Errorf("load roster entry: %w", err)
		}

		if _, err := q.DeleteTeamMembershipsForUserInOrg(ctx, dbgen.DeleteTeamMembershipsForUserInOrgParams{
			UserID:         entry.UserID,
			OrganizationID: orgID,
		}); err != nil {
			return fmt.Errorf("delete team memberships: %w", err)
		}

		if _, err := q.DeleteRosterEntry(ctx, dbgen.DeleteRosterEntryParams{
			ID:             rosterEntryID,
			OrganizationID: orgID,
		}); err != nil {
			return fmt.Errorf("delete roster entry: %w", err)
		}
		return nil
	})
}

// UpdatePlayerStatus changes the roster status only; team membership is
// untouched.
func (e *Engine) UpdatePlayerStatus(ctx context.Context, orgID, rosterEntryID int64, status string) (dbgen.RosterEntry, error) {
	if !playerStatuses[status] {
		return dbgen.RosterEntry{}, apperr.Invalidf("unknown player status %q", status)
	}

	entry, err := e.db.Queries.UpdateRosterEntryStatus(ctx, dbgen.UpdateRosterEntryStatusParams{
		Status:         status,
		ID:             rosterEntryID,
		OrganizationID: orgID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.RosterEntry{}, apperr.NotFoundf("roster entry not found")
		}
		return dbgen.RosterEntry{}, fmt.Errorf("update roster status: %w", err)
	}
	return entry, nil
}

// CreateTeamWithAdmin creates the team, seeds the admin's roster entry, and
// inserts the admin membership, all in one transaction: a team is never left
// adminless by a partial failure.
func (e *Engine) CreateTeamWithAdmin(ctx context.Context, orgID int64, name string, adminUserID int64) (dbgen.Team, error) {
	if name == "" {
		return dbgen.Team{}, apperr.Invalidf("team name is required")
	}

	var team dbgen.Team
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		if _, err := q.GetUserByID(ctx, adminUserID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("admin user not found")
			}
			return fmt.Errorf("load admin user: %w", err)
		}

		count, err := q.CountTeamMembershipsForUser(ctx, adminUserID)
		if err != nil {
			return fmt.Errorf("count memberships: %w", err)
		}
		if count > 0 {
			return apperr.Conflictf("this user is already assigned to a team")
		}

		team, err = createTeamWithCode(ctx, q, orgID, name)
		if err != nil {
			return err
		}

		if _, err := q.UpsertRosterEntry(ctx, dbgen.UpsertRosterEntryParams{
			OrganizationID: orgID,
			UserID:         adminUserID,
			Status:         adminSeedStatus,
		}); err != nil {
			return fmt.Errorf("upsert admin roster entry: %w", err)
		}

		if _, err := q.CreateTeamMember(ctx, dbgen.CreateTeamMemberParams{
			TeamID: team.ID,
			UserID: adminUserID,
			Role:   RoleAdmin,
		}); err != nil {
			if db.IsUniqueViolation(err) {
				return apperr.Conflictf("this user is already assigned to a team")
			}
			return fmt.Errorf("create admin membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return dbgen.Team{}, err
	}

	log.Ctx(ctx).Info().
		Int64("org_id", orgID).
		Int64("team_id", team.ID).
		Str("slug", team.Slug).
		Msg("Team created")
	return team, nil
}

// createTeamWithCode inserts the team under a storage-generated code,
// regenerating on the rare code collision.
func createTeamWithCode(ctx context.Context, q *dbgen.Queries, orgID int64, name string) (dbgen.Team, error) {
	for attempt := 0; attempt < teamCodeRetryLimit; attempt++ {
		code, err := slug.RandomCode(teamCodeLength)
		if err != nil {
			return dbgen.Team{}, err
		}
		team, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{
			OrganizationID: orgID,
			Name:           name,
			Slug:           code,
			Status:         defaultTeamStatus,
		})
		if err == nil {
			return team, nil
		}
		if !db.IsUniqueViolation(err) {
			return dbgen.Team{}, fmt.Errorf("create team: %w", err)
		}
	}
	return dbgen.Team{}, fmt.Errorf("could not find a free team code after %d attempts", teamCodeRetryLimit)
}
