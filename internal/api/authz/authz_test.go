package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/api/authz"
	"github.com/leaguedesk/leaguedesk/internal/testutil"
)

func TestRequireOrganizationMemberUnauthenticated(t *testing.T) {
	database := testutil.NewTestDB(t)
	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")

	_, err := authz.RequireOrganizationMember(context.Background(), database.Queries, org.ID)
	if !errors.Is(err, authz.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireOrganizationMemberNonMemberForbidden(t *testing.T) {
	database := testutil.NewTestDB(t)
	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	user := testutil.SeedUser(t, database, "Dana", "Waters", "dana@example.com")

	ctx := authz.ContextWithUser(context.Background(), &authz.AuthUser{ID: user.ID, Email: user.Email})
	_, err := authz.RequireOrganizationMember(ctx, database.Queries, org.ID)
	if !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireOrganizationMemberWrongOrgForbidden(t *testing.T) {
	database := testutil.NewTestDB(t)
	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	other := testutil.SeedOrganization(t, database, "Hilltop Rec", "hilltop-rec")
	user := testutil.SeedUser(t, database, "Dana", "Waters", "dana@example.com")
	testutil.SeedStaff(t, database, other.ID, user.ID, "admin")

	ctx := authz.ContextWithUser(context.Background(), &authz.AuthUser{ID: user.ID, Email: user.Email})
	_, err := authz.RequireOrganizationMember(ctx, database.Queries, org.ID)
	if !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireOrganizationMemberReturnsMembership(t *testing.T) {
	database := testutil.NewTestDB(t)
	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	user := testutil.SeedUser(t, database, "Dana", "Waters", "dana@example.com")
	seeded := testutil.SeedStaff(t, database, org.ID, user.ID, "editor")

	ctx := authz.ContextWithUser(context.Background(), &authz.AuthUser{ID: user.ID, Email: user.Email})
	member, err := authz.RequireOrganizationMember(ctx, database.Queries, org.ID)
	if err != nil {
		t.Fatalf("RequireOrganizationMember() error = %v", err)
	}
	if member.ID != seeded.ID {
		t.Errorf("membership id = %d, want %d", member.ID, seeded.ID)
	}
	if member.Role != "editor" {
		t.Errorf("membership role = %q, want %q", member.Role, "editor")
	}
}

func TestUserFromContextMissing(t *testing.T) {
	if user := authz.UserFromContext(context.Background()); user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestCanManageStaff(t *testing.T) {
	tests := []struct {
		name   string
		member *authz.Membership
		want   bool
	}{
		{"admin", &authz.Membership{ID: 1, Role: "admin"}, true},
		{"admin mixed case", &authz.Membership{ID: 1, Role: "Admin"}, true},
		{"editor", &authz.Membership{ID: 1, Role: "editor"}, false},
		{"viewer", &authz.Membership{ID: 1, Role: "viewer"}, false},
		{"nil membership", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authz.CanManageStaff(tt.member); got != tt.want {
				t.Errorf("CanManageStaff() = %v, want %v", got, tt.want)
			}
		})
	}
}
