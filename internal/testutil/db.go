package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// SeedUser inserts a user account.
func SeedUser(t *testing.T, database *db.DB, first, last, email string) dbgen.User {
	t.Helper()
	user, err := database.Queries.CreateUser(context.Background(), dbgen.CreateUserParams{
		FirstName: first,
		LastName:  last,
		Email:     email,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// SeedOrganization inserts an organization with a pre-chosen slug.
func SeedOrganization(t *testing.T, database *db.DB, name, slug string) dbgen.Organization {
	t.Helper()
	org, err := database.Queries.CreateOrganization(context.Background(), dbgen.CreateOrganizationParams{
		Name: name,
		Slug: slug,
	})
	if err != nil {
		t.Fatalf("seed organization %s: %v", name, err)
	}
	return org
}

// SeedStaff adds a user to an organization's staff.
func SeedStaff(t *testing.T, database *db.DB, orgID, userID int64, role string) dbgen.OrganizationMember {
	t.Helper()
	member, err := database.Queries.CreateOrganizationMember(context.Background(), dbgen.CreateOrganizationMemberParams{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	})
	if err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return member
}

// SeedLeague inserts a league directly, bypassing slug allocation.
func SeedLeague(t *testing.T, database *db.DB, orgID int64, name, slug string) dbgen.League {
	t.Helper()
	league, err := database.Queries.CreateLeague(context.Background(), dbgen.CreateLeagueParams{
		OrganizationID: orgID,
		Name:           name,
		Slug:           slug,
	})
	if err != nil {
		t.Fatalf("seed league %s: %v", name, err)
	}
	return league
}

// SeedTeam inserts a team directly with a fixed slug.
func SeedTeam(t *testing.T, database *db.DB, orgID int64, name, slug string) dbgen.Team {
	t.Helper()
	team, err := database.Queries.CreateTeam(context.Background(), dbgen.CreateTeamParams{
		OrganizationID: orgID,
		Name:           name,
		Slug:           slug,
		Status:         "active",
	})
	if err != nil {
		t.Fatalf("seed team %s: %v", name, err)
	}
	return team
}

// CountRows runs a COUNT query and returns the result.
func CountRows(t *testing.T, database *db.DB, query string, args ...any) int64 {
	t.Helper()
	var count int64
	if err := database.QueryRowContext(context.Background(), query, args...).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0
		}
		t.Fatalf("count rows: %v", err)
	}
	return count
}
