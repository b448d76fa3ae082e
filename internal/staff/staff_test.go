// internal/staff/staff_test.go
package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	"github.com/leaguedesk/leaguedesk/internal/testutil"
)

func TestRemoveStaffMember(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, err := NewEngine(database, nil, "http://localhost:8080")
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	admin := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")
	editor := testutil.SeedUser(t, database, "Blair", "Editor", "blair@example.com")
	testutil.SeedStaff(t, database, org.ID, admin.ID, RoleAdmin)
	target := testutil.SeedStaff(t, database, org.ID, editor.ID, RoleEditor)

	if err := engine.Remove(ctx, org.ID, target.ID, admin.ID); err != nil {
		t.Fatalf("remove staff: %v", err)
	}
	rows, err := engine.List(ctx, org.ID)
	if err != nil {
		t.Fatalf("list staff: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != admin.ID {
		t.Errorf("expected only the admin to remain, got %+v", rows)
	}
}

func TestRemoveSelfForbidden(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database, nil, "")
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	admin := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")
	membership := testutil.SeedStaff(t, database, org.ID, admin.ID, RoleAdmin)

	err := engine.Remove(ctx, org.ID, membership.ID, admin.ID)
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("expected Forbidden for self-removal, got %v", err)
	}
	if n := testutil.CountRows(t, database, "SELECT COUNT(*) FROM organization_members WHERE organization_id = ?", org.ID); n != 1 {
		t.Errorf("membership must survive a refused removal, got %d rows", n)
	}
}

func TestInviteAndAccept(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database, nil, "http://localhost:8080")
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	invitee := testutil.SeedUser(t, database, "Casey", "New", "casey@example.com")

	invitation, err := engine.Invite(ctx, org.ID, "Casey@Example.com", RoleEditor)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if invitation.Email != "casey@example.com" {
		t.Errorf("invitation email should be lowercased, got %q", invitation.Email)
	}
	if invitation.Status != statusPending {
		t.Errorf("expected pending invitation, got %q", invitation.Status)
	}

	member, err := engine.Accept(ctx, invitation.Token, invitee.ID, "casey@example.com")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if member.OrganizationID != org.ID || member.Role != RoleEditor {
		t.Errorf("unexpected membership: %+v", member)
	}

	// A second accept finds the invitation spent.
	if _, err := engine.Accept(ctx, invitation.Token, invitee.ID, "casey@example.com"); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected Conflict on reuse, got %v", err)
	}
}

func TestAcceptWrongEmail(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database, nil, "")
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	other := testutil.SeedUser(t, database, "Drew", "Other", "drew@example.com")

	invitation, err := engine.Invite(ctx, org.ID, "casey@example.com", RoleViewer)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if _, err := engine.Accept(ctx, invitation.Token, other.ID, "drew@example.com"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("expected Forbidden for mismatched email, got %v", err)
	}
}

func TestInviteValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database, nil, "")
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")

	if _, err := engine.Invite(ctx, org.ID, "not-an-email", RoleViewer); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("expected Invalid for bad email, got %v", err)
	}
	if _, err := engine.Invite(ctx, org.ID, "x@example.com", "owner"); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("expected Invalid for unknown role, got %v", err)
	}
	if _, err := engine.Invite(ctx, org.ID, "x@example.com", RoleViewer); err != nil {
		t.Fatalf("first invite: %v", err)
	}
	if _, err := engine.Invite(ctx, org.ID, "x@example.com", RoleViewer); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected Conflict for duplicate invite, got %v", err)
	}
	if _, err := engine.Invite(ctx, 9999, "y@example.com", RoleViewer); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound for missing organization, got %v", err)
	}
}

func TestAcceptUnknownToken(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database, nil, "")
	ctx := context.Background()

	user := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")
	if _, err := engine.Accept(ctx, "NOSUCHTOKEN", user.ID, "alex@example.com"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}
