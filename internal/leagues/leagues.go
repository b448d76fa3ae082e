// internal/leagues/leagues.go
package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/schedule"
	"github.com/leaguedesk/leaguedesk/internal/slug"
)

const leagueSlugFallback = "league"

var ageGroups = map[string]bool{
	"u8": true, "u10": true, "u12": true, "u14": true,
	"u16": true, "u18": true, "adult": true, "senior": true,
}

// CreateLeagueInput carries the optional fields a league can start with.
type CreateLeagueInput struct {
	Name      string
	AgeGroup  string
	Schedule  schedule.Schedule
	StartDate time.Time
	EndDate   time.Time
}

// CreateLeague allocates a per-organization slug and inserts the league. The
// UNIQUE(organization_id) constraint pins one league per organization; a
// second create is a Conflict.
func (e *Engine) CreateLeague(ctx context.Context, orgID int64, input CreateLeagueInput) (dbgen.League, error) {
	if input.Name == "" {
		return dbgen.League{}, apperr.Invalidf("league name is required")
	}
	if input.AgeGroup != "" && !ageGroups[input.AgeGroup] {
		return dbgen.League{}, apperr.Invalidf("unknown age group %q", input.AgeGroup)
	}
	if err := input.Schedule.Validate(); err != nil {
		return dbgen.League{}, err
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return dbgen.League{}, apperr.Invalidf("end date must not be before start date")
	}

	var league dbgen.League
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		leagueSlug, err := slug.Allocate(ctx, input.Name, leagueSlugFallback,
			func(ctx context.Context, candidate string) (bool, error) {
				count, err := q.LeagueSlugExists(ctx, dbgen.LeagueSlugExistsParams{
					OrganizationID: orgID,
					Slug:           candidate,
				})
				return count > 0, err
			})
		if err != nil {
			return err
		}

		params := dbgen.CreateLeagueParams{
			OrganizationID: orgID,
			Name:           input.Name,
			Slug:           leagueSlug,
		}
		if input.AgeGroup != "" {
			params.AgeGroup = sql.NullString{String: input.AgeGroup, Valid: true}
		}
		if len(input.Schedule) > 0 {
			encoded, err := input.Schedule.Encode()
			if err != nil {
				return err
			}
			params.OperatingSchedule = sql.NullString{String: string(encoded), Valid: true}
		}
		if !input.StartDate.IsZero() {
			params.StartDate = sql.NullTime{Time: input.StartDate, Valid: true}
		}
		if !input.EndDate.IsZero() {
			params.EndDate = sql.NullTime{Time: input.EndDate, Valid: true}
		}

		league, err = q.CreateLeague(ctx, params)
		if err != nil {
			if db.IsUniqueViolation(err) {
				return apperr.Conflictf("this organization already has a league")
			}
			return fmt.Errorf("create league: %w", err)
		}
		return nil
	})
	if err != nil {
		return dbgen.League{}, err
	}
	return league, nil
}

// ListLeagues returns the organization's leagues. The schema allows one, but
// the listing shape stays plural to match the admin screens.
func (e *Engine) ListLeagues(ctx context.Context, orgID int64) ([]dbgen.League, error) {
	rows, err := e.db.Queries.ListLeagues(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return rows, nil
}

// GetSchedule loads and parses the league's operating schedule.
func (e *Engine) GetSchedule(ctx context.Context, orgID, leagueID int64) (schedule.Schedule, error) {
	league, err := e.db.Queries.GetLeagueByID(ctx, dbgen.GetLeagueByIDParams{ID: leagueID, OrganizationID: orgID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("league not found")
		}
		return nil, fmt.Errorf("load league: %w", err)
	}
	return schedule.Parse([]byte(league.OperatingSchedule.String))
}

// SetSchedule validates and stores the league's operating schedule.
func (e *Engine) SetSchedule(ctx context.Context, orgID, leagueID int64, s schedule.Schedule) error {
	if err := s.Validate(); err != nil {
		return err
	}
	encoded, err := s.Encode()
	if err != nil {
		return err
	}
	_, err = e.db.Queries.UpdateLeagueSchedule(ctx, dbgen.UpdateLeagueScheduleParams{
		OperatingSchedule: sql.NullString{String: string(encoded), Valid: true},
		ID:                leagueID,
		OrganizationID:    orgID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("league not found")
		}
		return fmt.Errorf("update league schedule: %w", err)
	}
	return nil
}
