// internal/facilities/facilities.go
package facilities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/schedule"
	"github.com/leaguedesk/leaguedesk/internal/slug"
)

const facilitySlugFallback = "facility"

var surfaceTypes = map[string]bool{
	"field": true, "court": true, "diamond": true, "rink": true, "other": true,
}

type Engine struct {
	db *db.DB
}

func NewEngine(database *db.DB) (*Engine, error) {
	if database == nil {
		return nil, errors.New("facilities engine requires a database")
	}
	return &Engine{db: database}, nil
}

type CreateFacilityInput struct {
	Name     string
	Address  string
	Schedule schedule.Schedule
}

// CreateFacility allocates a per-organization slug and inserts the facility.
func (e *Engine) CreateFacility(ctx context.Context, orgID int64, input CreateFacilityInput) (dbgen.Facility, error) {
	if input.Name == "" {
		return dbgen.Facility{}, apperr.Invalidf("facility name is required")
	}
	if err := input.Schedule.Validate(); err != nil {
		return dbgen.Facility{}, err
	}

	var facility dbgen.Facility
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		facilitySlug, err := slug.Allocate(ctx, input.Name, facilitySlugFallback,
			func(ctx context.Context, candidate string) (bool, error) {
				count, err := q.FacilitySlugExists(ctx, dbgen.FacilitySlugExistsParams{
					OrganizationID: orgID,
					Slug:           candidate,
				})
				return count > 0, err
			})
		if err != nil {
			return err
		}

		params := dbgen.CreateFacilityParams{
			OrganizationID: orgID,
			Name:           input.Name,
			Slug:           facilitySlug,
		}
		if input.Address != "" {
			params.Address = sql.NullString{String: input.Address, Valid: true}
		}
		if len(input.Schedule) > 0 {
			encoded, err := input.Schedule.Encode()
			if err != nil {
				return err
			}
			params.OperatingSchedule = sql.NullString{String: string(encoded), Valid: true}
		}

		facility, err = q.CreateFacility(ctx, params)
		if err != nil {
			if db.IsUniqueViolation(err) {
				// Lost the probe/insert race; surface as a retryable conflict.
				return apperr.Conflictf("a facility with this name was just created, try again")
			}
			return fmt.Errorf("create facility: %w", err)
		}
		return nil
	})
	if err != nil {
		return dbgen.Facility{}, err
	}
	return facility, nil
}

func (e *Engine) ListFacilities(ctx context.Context, orgID int64) ([]dbgen.Facility, error) {
	rows, err := e.db.Queries.ListFacilities(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return rows, nil
}

// GetSchedule loads and parses the facility's operating schedule.
func (e *Engine) GetSchedule(ctx context.Context, orgID, facilityID int64) (schedule.Schedule, error) {
	facility, err := e.db.Queries.GetFacilityByID(ctx, dbgen.GetFacilityByIDParams{ID: facilityID, OrganizationID: orgID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("facility not found")
		}
		return nil, fmt.Errorf("load facility: %w", err)
	}
	return schedule.Parse([]byte(facility.OperatingSchedule.String))
}

// SetSchedule validates and stores the facility's operating schedule.
func (e *Engine) SetSchedule(ctx context.Context, orgID, facilityID int64, s schedule.Schedule) error {
	if err := s.Validate(); err != nil {
		return err
	}
	encoded, err := s.Encode()
	if err != nil {
		return err
	}
	_, err = e.db.Queries.UpdateFacilitySchedule(ctx, dbgen.UpdateFacilityScheduleParams{
		OperatingSchedule: sql.NullString{String: string(encoded), Valid: true},
		ID:                facilityID,
		OrganizationID:    orgID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("facility not found")
		}
		return fmt.Errorf("update facility schedule: %w", err)
	}
	return nil
}

// AddSurface creates a playing surface under the facility. Surface names are
// unique per facility.
func (e *Engine) AddSurface(ctx context.Context, orgID, facilityID int64, name, surfaceType string, sortOrder int64) (dbgen.FacilitySurface, error) {
	if name == "" {
		return dbgen.FacilitySurface{}, apperr.Invalidf("surface name is required")
	}
	if !surfaceTypes[surfaceType] {
		return dbgen.FacilitySurface{}, apperr.Invalidf("unknown surface type %q", surfaceType)
	}

	if _, err := e.db.Queries.GetFacilityByID(ctx, dbgen.GetFacilityByIDParams{ID: facilityID, OrganizationID: orgID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.FacilitySurface{}, apperr.NotFoundf("facility not found")
		}
		return dbgen.FacilitySurface{}, fmt.Errorf("load facility: %w", err)
	}

	surface, err := e.db.Queries.CreateFacilitySurface(ctx, dbgen.CreateFacilitySurfaceParams{
		FacilityID:  facilityID,
		Name:        name,
		SurfaceType: surfaceType,
		SortOrder:   sortOrder,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return dbgen.FacilitySurface{}, apperr.Conflictf("a surface named %q already exists at this facility", name)
		}
		return dbgen.FacilitySurface{}, fmt.Errorf("create surface: %w", err)
	}
	return surface, nil
}

func (e *Engine) ListSurfaces(ctx context.Context, orgID, facilityID int64) ([]dbgen.FacilitySurface, error) {
	if _, err := e.db.Queries.GetFacilityByID(ctx, dbgen.GetFacilityByIDParams{ID: facilityID, OrganizationID: orgID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFoundf("facility not found")
		}
		return nil, fmt.Errorf("load facility: %w", err)
	}
	rows, err := e.db.Queries.ListFacilitySurfaces(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list surfaces: %w", err)
	}
	return rows, nil
}
