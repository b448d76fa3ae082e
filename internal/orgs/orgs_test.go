// internal/orgs/orgs_test.go
package orgs

import (
	"context"
	"errors"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	"github.com/leaguedesk/leaguedesk/internal/testutil"
)

func TestCreateOrganization(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, err := NewEngine(database)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	ctx := context.Background()

	founder := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")

	org, err := engine.CreateOrganization(ctx, "Bayside Athletics", founder.ID)
	if err != nil {
		t.Fatalf("create organization: %v", err)
	}
	if org.Slug != "bayside-athletics" {
		t.Errorf("expected slug bayside-athletics, got %q", org.Slug)
	}
	if n := testutil.CountRows(t, database,
		"SELECT COUNT(*) FROM organization_members WHERE organization_id = ? AND user_id = ? AND role = 'admin'",
		org.ID, founder.ID); n != 1 {
		t.Errorf("founder should hold an admin membership, got %d rows", n)
	}

	// A second organization with the same name gets a suffixed slug.
	second, err := engine.CreateOrganization(ctx, "Bayside Athletics", founder.ID)
	if err != nil {
		t.Fatalf("second organization: %v", err)
	}
	if second.Slug != "bayside-athletics-1" {
		t.Errorf("expected slug bayside-athletics-1, got %q", second.Slug)
	}
}

func TestCreateOrganizationRequiresName(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)

	founder := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")
	if _, err := engine.CreateOrganization(context.Background(), "", founder.ID); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("expected Invalid for empty name, got %v", err)
	}
}

func TestGetOrganization(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	seeded := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	org, err := engine.Get(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("get organization: %v", err)
	}
	if org.Name != "Bayside Athletics" {
		t.Errorf("unexpected organization: %+v", org)
	}
	if _, err := engine.Get(ctx, 9999); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}
