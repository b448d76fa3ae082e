// internal/orgs/orgs.go
package orgs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/slug"
)

const (
	orgSlugFallback = "org"

	creatorRole = "admin"
)

type Engine struct {
	db *db.DB
}

func NewEngine(database *db.DB) (*Engine, error) {
	if database == nil {
		return nil, errors.New("orgs engine requires a database")
	}
	return &Engine{db: database}, nil
}

// CreateOrganization allocates a globally unique slug, inserts the
// organization, and makes the creator its first admin, all in one
// transaction.
func (e *Engine) CreateOrganization(ctx context.Context, name string, creatorUserID int64) (dbgen.Organization, error) {
	if name == "" {
		return dbgen.Organization{}, apperr.Invalidf("organization name is required")
	}

	var org dbgen.Organization
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		orgSlug, err := slug.Allocate(ctx, name, orgSlugFallback,
			func(ctx context.Context, candidate string) (bool, error) {
				count, err := q.OrganizationSlugExists(ctx, candidate)
				return count > 0, err
			})
		if err != nil {
			return err
		}

		org, err = q.CreateOrganization(ctx, dbgen.CreateOrganizationParams{
			Name: name,
			Slug: orgSlug,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return apperr.Conflictf("an organization with this name was just created, try again")
			}
			return fmt.Errorf("create organization: %w", err)
		}

		if _, err := q.CreateOrganizationMember(ctx, dbgen.CreateOrganizationMemberParams{
			OrganizationID: org.ID,
			UserID:         creatorUserID,
			Role:           creatorRole,
		}); err != nil {
			return fmt.Errorf("create founder membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return dbgen.Organization{}, err
	}

	log.Ctx(ctx).Info().
		Int64("org_id", org.ID).
		Str("slug", org.Slug).
		Int64("creator_user_id", creatorUserID).
		Msg("Organization created")
	return org, nil
}

// Get loads one organization by id.
func (e *Engine) Get(ctx context.Context, orgID int64) (dbgen.Organization, error) {
	org, err := e.db.Queries.GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Organization{}, apperr.NotFoundf("organization not found")
		}
		return dbgen.Organization{}, fmt.Errorf("load organization: %w", err)
	}
	return org, nil
}

// GetBySlug resolves a slug to its organization. Fronting routers use this
// to map a tenant hostname or path segment to an organization id.
func (e *Engine) GetBySlug(ctx context.Context, slug string) (dbgen.Organization, error) {
	org, err := e.db.Queries.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Organization{}, apperr.NotFoundf("organization not found")
		}
		return dbgen.Organization{}, fmt.Errorf("load organization: %w", err)
	}
	return org, nil
}
