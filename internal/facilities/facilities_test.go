// internal/facilities/facilities_test.go
package facilities

import (
	"context"
	"errors"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	"github.com/leaguedesk/leaguedesk/internal/testutil"
)

func TestCreateFacilitySlugs(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")

	first, err := engine.CreateFacility(ctx, org.ID, CreateFacilityInput{Name: "Riverside Park"})
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}
	if first.Slug != "riverside-park" {
		t.Errorf("expected slug riverside-park, got %q", first.Slug)
	}

	// Same name again gets a numeric suffix instead of failing.
	second, err := engine.CreateFacility(ctx, org.ID, CreateFacilityInput{Name: "Riverside Park"})
	if err != nil {
		t.Fatalf("create second facility: %v", err)
	}
	if second.Slug != "riverside-park-1" {
		t.Errorf("expected slug riverside-park-1, got %q", second.Slug)
	}
}

func TestAddSurface(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	facility, err := engine.CreateFacility(ctx, org.ID, CreateFacilityInput{Name: "Riverside Park"})
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}

	if _, err := engine.AddSurface(ctx, org.ID, facility.ID, "Field 1", "field", 1); err != nil {
		t.Fatalf("add surface: %v", err)
	}
	if _, err := engine.AddSurface(ctx, org.ID, facility.ID, "Field 1", "field", 2); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected Conflict for duplicate surface name, got %v", err)
	}
	if _, err := engine.AddSurface(ctx, org.ID, facility.ID, "Pool", "lava", 3); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("expected Invalid for unknown surface type, got %v", err)
	}
	if _, err := engine.AddSurface(ctx, org.ID, 9999, "Field 2", "field", 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound for missing facility, got %v", err)
	}

	surfaces, err := engine.ListSurfaces(ctx, org.ID, facility.ID)
	if err != nil {
		t.Fatalf("list surfaces: %v", err)
	}
	if len(surfaces) != 1 || surfaces[0].Name != "Field 1" {
		t.Errorf("expected one surface named Field 1, got %+v", surfaces)
	}
}
