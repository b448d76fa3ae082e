// internal/roster/engine_test.go
package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/testutil"
)

func TestAddPlayerToTeamExclusivity(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, err := NewEngine(database)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	falcons := testutil.SeedTeam(t, database, org.ID, "Falcons", "FALC0NS1")
	eagles := testutil.SeedTeam(t, database, org.ID, "Eagles", "EAGLES22")
	player := testutil.SeedUser(t, database, "Jordan", "Lee", "jordan@example.com")

	member, err := engine.AddPlayerToTeam(ctx, org.ID, falcons.ID, "jordan@example.com", "")
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if member.Role != RoleMember {
		t.Errorf("expected role member, got %q", member.Role)
	}

	// Second team, same user: must fail with Conflict and leave exactly one
	// membership row.
	_, err = engine.AddPlayerToTeam(ctx, org.ID, eagles.ID, "jordan@example.com", "")
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}

	count := testutil.CountRows(t, database, "SELECT COUNT(*) FROM team_members WHERE user_id = ?", player.ID)
	if count != 1 {
		t.Errorf("expected exactly 1 membership row, got %d", count)
	}
}

func TestAddPlayerToTeamUnknownEmail(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	team := testutil.SeedTeam(t, database, org.ID, "Falcons", "FALC0NS1")

	_, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "nobody@example.com", "")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound for unknown email, got %v", err)
	}
}

func TestAddPlayerToTeamCrossTenantTeam(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	orgA := testutil.SeedOrganization(t, database, "Org A", "org-a")
	orgB := testutil.SeedOrganization(t, database, "Org B", "org-b")
	teamB := testutil.SeedTeam(t, database, orgB.ID, "Other Org Team", "OTHERORG")
	testutil.SeedUser(t, database, "Sam", "Reyes", "sam@example.com")

	// Team belongs to orgB; calling under orgA must not find it.
	_, err := engine.AddPlayerToTeam(ctx, orgA.ID, teamB.ID, "sam@example.com", "")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound for cross-tenant team, got %v", err)
	}
}

func TestAddPlayerKeepsExistingRosterStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	team := testutil.SeedTeam(t, database, org.ID, "Falcons", "FALC0NS1")
	player := testutil.SeedUser(t, database, "Jordan", "Lee", "jordan@example.com")

	entry, err := database.Queries.UpsertRosterEntry(ctx, dbgen.UpsertRosterEntryParams{
		OrganizationID: org.ID,
		UserID:         player.ID,
		Status:         "injured",
	})
	if err != nil {
		t.Fatalf("seed roster entry: %v", err)
	}

	if _, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "jordan@example.com", "active"); err != nil {
		t.Fatalf("add player: %v", err)
	}

	after, err := database.Queries.GetRosterEntryByID(ctx, dbgen.GetRosterEntryByIDParams{
		ID:             entry.ID,
		OrganizationID: org.ID,
	})
	if err != nil {
		t.Fatalf("reload entry: %v", err)
	}
	if after.Status != "injured" {
		t.Errorf("existing roster status must be untouched, got %q", after.Status)
	}
}

func TestAdminSuccession(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	admin := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")
	second := testutil.SeedUser(t, database, "Blair", "Member", "blair@example.com")

	team, err := engine.CreateTeamWithAdmin(ctx, org.ID, "Falcons", admin.ID)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "blair@example.com", ""); err != nil {
		t.Fatalf("add second player: %v", err)
	}

	if err := engine.RemovePlayerFromTeam(ctx, org.ID, team.ID, admin.ID); err != nil {
		t.Fatalf("remove admin: %v", err)
	}

	promoted, err := database.Queries.GetTeamMember(ctx, dbgen.GetTeamMemberParams{TeamID: team.ID, UserID: second.ID})
	if err != nil {
		t.Fatalf("load successor: %v", err)
	}
	if promoted.Role != RoleAdmin {
		t.Errorf("expected successor promoted to admin, got %q", promoted.Role)
	}

	if n := testutil.CountRows(t, database, "SELECT COUNT(*) FROM team_members WHERE user_id = ?", admin.ID); n != 0 {
		t.Errorf("expected no row left for removed admin, got %d", n)
	}
}

func TestAdminSuccessionPromotesEarliestJoined(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	admin := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")
	first := testutil.SeedUser(t, database, "Blair", "First", "blair@example.com")
	later := testutil.SeedUser(t, database, "Casey", "Later", "casey@example.com")

	team, err := engine.CreateTeamWithAdmin(ctx, org.ID, "Falcons", admin.ID)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "blair@example.com", ""); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if _, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "casey@example.com", ""); err != nil {
		t.Fatalf("add later: %v", err)
	}

	if err := engine.RemovePlayerFromTeam(ctx, org.ID, team.ID, admin.ID); err != nil {
		t.Fatalf("remove admin: %v", err)
	}

	promoted, err := database.Queries.GetTeamMember(ctx, dbgen.GetTeamMemberParams{TeamID: team.ID, UserID: first.ID})
	if err != nil {
		t.Fatalf("load first member: %v", err)
	}
	if promoted.Role != RoleAdmin {
		t.Errorf("expected earliest-joined member promoted, got %q", promoted.Role)
	}
	unchanged, err := database.Queries.GetTeamMember(ctx, dbgen.GetTeamMemberParams{TeamID: team.ID, UserID: later.ID})
	if err != nil {
		t.Fatalf("load later member: %v", err)
	}
	if unchanged.Role != RoleMember {
		t.Errorf("later member must stay member, got %q", unchanged.Role)
	}
}

func TestRemoveSoleAdminLeavesEmptyTeam(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	admin := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")

	team, err := engine.CreateTeamWithAdmin(ctx, org.ID, "Falcons", admin.ID)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if err := engine.RemovePlayerFromTeam(ctx, org.ID, team.ID, admin.ID); err != nil {
		t.Fatalf("remove sole admin: %v", err)
	}
	if n := testutil.CountRows(t, database, "SELECT COUNT(*) FROM team_members WHERE team_id = ?", team.ID); n != 0 {
		t.Errorf("expected empty team, got %d rows", n)
	}
}

func TestRemovePlayerFromTeamNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	team := testutil.SeedTeam(t, database, org.ID, "Falcons", "FALC0NS1")
	user := testutil.SeedUser(t, database, "Jordan", "Lee", "jordan@example.com")

	if err := engine.RemovePlayerFromTeam(ctx, org.ID, team.ID, user.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestFreeAgentDerivation(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	team := testutil.SeedTeam(t, database, org.ID, "Falcons", "FALC0NS1")
	assigned := testutil.SeedUser(t, database, "Jordan", "Lee", "jordan@example.com")
	free := testutil.SeedUser(t, database, "Morgan", "Quinn", "morgan@example.com")

	if _, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "jordan@example.com", ""); err != nil {
		t.Fatalf("add assigned player: %v", err)
	}
	if _, err := database.Queries.UpsertRosterEntry(ctx, dbgen.UpsertRosterEntryParams{
		OrganizationID: org.ID,
		UserID:         free.ID,
		Status:         "active",
	}); err != nil {
		t.Fatalf("seed free agent: %v", err)
	}

	rows, err := engine.ListRoster(ctx, org.ID, Filter{})
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 roster rows, got %d", len(rows))
	}

	byUser := map[int64]Row{}
	for _, row := range rows {
		byUser[row.UserID] = row
	}
	if byUser[assigned.ID].TeamID == nil || *byUser[assigned.ID].TeamID != team.ID {
		t.Errorf("assigned player should carry team id, got %+v", byUser[assigned.ID])
	}
	if byUser[free.ID].TeamID != nil {
		t.Errorf("free agent must have no team id, got %+v", byUser[free.ID])
	}
}

func TestListRosterSearch(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	jordan := testutil.SeedUser(t, database, "Jordan", "Lee", "jordan.lee@example.com")
	morgan := testutil.SeedUser(t, database, "Morgan", "Quinn", "mq@example.com")
	for _, u := range []int64{jordan.ID, morgan.ID} {
		if _, err := database.Queries.UpsertRosterEntry(ctx, dbgen.UpsertRosterEntryParams{
			OrganizationID: org.ID, UserID: u, Status: "active",
		}); err != nil {
			t.Fatalf("seed roster: %v", err)
		}
	}

	rows, err := engine.ListRoster(ctx, org.ID, Filter{Search: "JORDAN"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != jordan.ID {
		t.Errorf("case-insensitive name search failed: %+v", rows)
	}

	rows, err = engine.ListRoster(ctx, org.ID, Filter{Search: "mq@"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(rows) != 1 || rows[0].UserID != morgan.ID {
		t.Errorf("email substring search failed: %+v", rows)
	}
}

func TestRemovePlayerFromRosterDropsOrgMembershipOnly(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	otherOrg := testutil.SeedOrganization(t, database, "Harbor League", "harbor-league")
	team := testutil.SeedTeam(t, database, org.ID, "Falcons", "FALC0NS1")
	otherTeam := testutil.SeedTeam(t, database, otherOrg.ID, "Sharks", "SHARKS99")

	player := testutil.SeedUser(t, database, "Jordan", "Lee", "jordan@example.com")
	outsider := testutil.SeedUser(t, database, "Robin", "Park", "robin@example.com")

	if _, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "jordan@example.com", ""); err != nil {
		t.Fatalf("add player: %v", err)
	}
	// Outsider is on a team in the other organization.
	if _, err := engine.AddPlayerToTeam(ctx, otherOrg.ID, otherTeam.ID, "robin@example.com", ""); err != nil {
		t.Fatalf("add outsider: %v", err)
	}

	rows, err := engine.ListRoster(ctx, org.ID, Filter{})
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 roster row, got %d", len(rows))
	}

	if err := engine.RemovePlayerFromRoster(ctx, org.ID, rows[0].RosterID); err != nil {
		t.Fatalf("remove from roster: %v", err)
	}

	if n := testutil.CountRows(t, database, "SELECT COUNT(*) FROM team_members WHERE user_id = ?", player.ID); n != 0 {
		t.Errorf("roster removal must drop the org-scoped membership, got %d", n)
	}
	if n := testutil.CountRows(t, database, "SELECT COUNT(*) FROM team_members WHERE user_id = ?", outsider.ID); n != 1 {
		t.Errorf("other organization's membership must survive, got %d", n)
	}
}

func TestUpdatePlayerStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	player := testutil.SeedUser(t, database, "Jordan", "Lee", "jordan@example.com")
	entry, err := database.Queries.UpsertRosterEntry(ctx, dbgen.UpsertRosterEntryParams{
		OrganizationID: org.ID, UserID: player.ID, Status: "active",
	})
	if err != nil {
		t.Fatalf("seed roster: %v", err)
	}

	updated, err := engine.UpdatePlayerStatus(ctx, org.ID, entry.ID, "suspended")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != "suspended" {
		t.Errorf("expected suspended, got %q", updated.Status)
	}

	if _, err := engine.UpdatePlayerStatus(ctx, org.ID, entry.ID, "retired"); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("expected Invalid for unknown status, got %v", err)
	}
	if _, err := engine.UpdatePlayerStatus(ctx, org.ID, 9999, "active"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected NotFound for missing entry, got %v", err)
	}
}

func TestCreateTeamWithAdminScenario(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	u1 := testutil.SeedUser(t, database, "Uma", "One", "u1@example.com")
	u2 := testutil.SeedUser(t, database, "Vic", "Two", "u2@example.com")

	team, err := engine.CreateTeamWithAdmin(ctx, org.ID, "Falcons", u1.ID)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if team.Name != "Falcons" || len(team.Slug) != 8 {
		t.Errorf("unexpected team row: %+v", team)
	}

	rows, err := engine.ListRoster(ctx, org.ID, Filter{})
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	if len(rows) != 1 || rows[0].TeamID == nil || *rows[0].TeamID != team.ID {
		t.Fatalf("admin should appear on roster with the new team: %+v", rows)
	}
	if rows[0].Status != "inactive" {
		t.Errorf("admin roster entry should default to inactive, got %q", rows[0].Status)
	}

	if _, err := engine.AddPlayerToTeam(ctx, org.ID, team.ID, "u2@example.com", ""); err != nil {
		t.Fatalf("add u2: %v", err)
	}

	rows, err = engine.ListRoster(ctx, org.ID, Filter{TeamID: team.ID})
	if err != nil {
		t.Fatalf("list roster by team: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 players on the team, got %d", len(rows))
	}

	if err := engine.RemovePlayerFromTeam(ctx, org.ID, team.ID, u1.ID); err != nil {
		t.Fatalf("remove u1: %v", err)
	}
	promoted, err := database.Queries.GetTeamMember(ctx, dbgen.GetTeamMemberParams{TeamID: team.ID, UserID: u2.ID})
	if err != nil {
		t.Fatalf("load u2 membership: %v", err)
	}
	if promoted.Role != RoleAdmin {
		t.Errorf("u2 should be admin after u1 leaves, got %q", promoted.Role)
	}
}

func TestCreateTeamWithAdminAlreadyAssigned(t *testing.T) {
	database := testutil.NewTestDB(t)
	engine, _ := NewEngine(database)
	ctx := context.Background()

	org := testutil.SeedOrganization(t, database, "Bayside Athletics", "bayside-athletics")
	admin := testutil.SeedUser(t, database, "Alex", "Admin", "alex@example.com")

	if _, err := engine.CreateTeamWithAdmin(ctx, org.ID, "Falcons", admin.ID); err != nil {
		t.Fatalf("first team: %v", err)
	}
	_, err := engine.CreateTeamWithAdmin(ctx, org.ID, "Eagles", admin.ID)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	// The second team must not persist: the whole operation is one
	// transaction.
	if n := testutil.CountRows(t, database, "SELECT COUNT(*) FROM teams WHERE organization_id = ?", org.ID); n != 1 {
		t.Errorf("expected 1 team after failed create, got %d", n)
	}
}
