// internal/leagues/participation.go
package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
)

// Engine keeps the league/team junction consistent. Junction uniqueness is
// enforced by the (league_id, team_id) constraint; engine pre-checks exist
// only for friendlier errors.
type Engine struct {
	db *db.DB
}

func NewEngine(database *db.DB) (*Engine, error) {
	if database == nil {
		return nil, errors.New("league engine requires a database")
	}
	return &Engine{db: database}, nil
}

// TeamRow is a participant or candidate team in list responses.
type TeamRow struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Status string `json:"status"`
}

// ReconcileResult reports what a reconciliation actually changed.
type ReconcileResult struct {
	Added   []int64 `json:"added"`
	Removed []int64 `json:"removed"`
}

// ListParticipants returns the teams joined to the league.
func (e *Engine) ListParticipants(ctx context.Context, orgID, leagueID int64) ([]TeamRow, error) {
	if err := e.leagueInOrg(ctx, e.db.Queries, orgID, leagueID); err != nil {
		return nil, err
	}
	rows, err := e.db.Queries.ListLeagueTeams(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list league teams: %w", err)
	}
	out := make([]TeamRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, TeamRow{ID: r.ID, Name: r.Name, Slug: r.Slug, Status: r.Status})
	}
	return out, nil
}

// ListAvailable returns the organization's teams with no junction row for
// this league.
func (e *Engine) ListAvailable(ctx context.Context, orgID, leagueID int64) ([]TeamRow, error) {
	if err := e.leagueInOrg(ctx, e.db.Queries, orgID, leagueID); err != nil {
		return nil, err
	}
	rows, err := e.db.Queries.ListAvailableTeams(ctx, dbgen.ListAvailableTeamsParams{
		LeagueID:       leagueID,
		OrganizationID: orgID,
	})
	if err != nil {
		return nil, fmt.Errorf("list available teams: %w", err)
	}
	out := make([]TeamRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, TeamRow{ID: r.ID, Name: r.Name, Slug: r.Slug, Status: r.Status})
	}
	return out, nil
}

// AddTeamToLeague validates that both sides belong to the organization, then
// inserts the junction row. A duplicate pair is a Conflict.
func (e *Engine) AddTeamToLeague(ctx context.Context, orgID, leagueID, teamID int64) (dbgen.LeagueTeam, error) {
	var row dbgen.LeagueTeam
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		var err error
		row, err = e.addTeam(ctx, txdb.Queries, orgID, leagueID, teamID)
		return err
	})
	return row, err
}

// RemoveTeamFromLeague deletes the junction row; an absent pair is NotFound.
func (e *Engine) RemoveTeamFromLeague(ctx context.Context, orgID, leagueID, teamID int64) error {
	return e.db.RunInTx(ctx, func(txdb *db.DB) error {
		if err := e.leagueInOrg(ctx, txdb.Queries, orgID, leagueID); err != nil {
			return err
		}
		return e.removeTeam(ctx, txdb.Queries, leagueID, teamID)
	})
}

// Reconcile diffs the desired participant set against current state and
// applies the whole diff in one transaction. This is the recommended form:
// a failure partway leaves the junction exactly as it was.
func (e *Engine) Reconcile(ctx context.Context, orgID, leagueID int64, desired []int64) (ReconcileResult, error) {
	var result ReconcileResult
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries
		if err := e.leagueInOrg(ctx, q, orgID, leagueID); err != nil {
			return err
		}

		current, err := q.ListLeagueTeamIDs(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list current participants: %w", err)
		}

		toAdd, toRemove := diffIDs(current, desired)
		for _, teamID := range toAdd {
			if _, err := e.addTeam(ctx, q, orgID, leagueID, teamID); err != nil {
				return err
			}
			result.Added = append(result.Added, teamID)
		}
		for _, teamID := range toRemove {
			if err := e.removeTeam(ctx, q, leagueID, teamID); err != nil {
				return err
			}
			result.Removed = append(result.Removed, teamID)
		}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	log.Ctx(ctx).Info().
		Int64("league_id", leagueID).
		Ints64("added", result.Added).
		Ints64("removed", result.Removed).
		Msg("League participants reconciled")
	return result, nil
}

// ReconcileBatched preserves the legacy save contract: the add batch is
// dispatched concurrently and completes before the remove batch starts, and
// the two batches are not transactionally linked. Re-adding an existing pair
// or re-removing an absent one is tolerated so a caller can blindly retry
// after a partial failure; any other error aborts and the caller must re-read
// state to learn what was actually saved.
func (e *Engine) ReconcileBatched(ctx context.Context, orgID, leagueID int64, toAdd, toRemove []int64) error {
	if err := e.leagueInOrg(ctx, e.db.Queries, orgID, leagueID); err != nil {
		return err
	}

	g, addCtx := errgroup.WithContext(ctx)
	for _, teamID := range toAdd {
		g.Go(func() error {
			_, err := e.AddTeamToLeague(addCtx, orgID, leagueID, teamID)
			if errors.Is(err, apperr.ErrConflict) {
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("apply add batch: %w", err)
	}

	g, removeCtx := errgroup.WithContext(ctx)
	for _, teamID := range toRemove {
		g.Go(func() error {
			err := e.RemoveTeamFromLeague(removeCtx, orgID, leagueID, teamID)
			if errors.Is(err, apperr.ErrNotFound) {
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("apply remove batch: %w", err)
	}
	return nil
}

func (e *Engine) addTeam(ctx context.Context, q *dbgen.Queries, orgID, leagueID, teamID int64) (dbgen.LeagueTeam, error) {
	if err := e.leagueInOrg(ctx, q, orgID, leagueID); err != nil {
		return dbgen.LeagueTeam{}, err
	}
	if _, err := q.GetTeamByID(ctx, dbgen.GetTeamByIDParams{ID: teamID, OrganizationID: orgID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.LeagueTeam{}, apperr.NotFoundf("team not found")
		}
		return dbgen.LeagueTeam{}, fmt.Errorf("load team: %w", err)
	}

	row, err := q.CreateLeagueTeam(ctx, dbgen.CreateLeagueTeamParams{LeagueID: leagueID, TeamID: teamID})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return dbgen.LeagueTeam{}, apperr.Conflictf("this team is already in the league")
		}
		return dbgen.LeagueTeam{}, fmt.Errorf("create league team: %w", err)
	}
	return row, nil
}

func (e *Engine) removeTeam(ctx context.Context, q *dbgen.Queries, leagueID, teamID int64) error {
	deleted, err := q.DeleteLeagueTeam(ctx, dbgen.DeleteLeagueTeamParams{LeagueID: leagueID, TeamID: teamID})
	if err != nil {
		return fmt.Errorf("delete league team: %w", err)
	}
	if deleted == 0 {
		return apperr.NotFoundf("this team is not in the league")
	}
	return nil
}

// leagueInOrg reports NotFound for both an absent league and a cross-tenant
// reference.
func (e *Engine) leagueInOrg(ctx context.Context, q *dbgen.Queries, orgID, leagueID int64) error {
	if _, err := q.GetLeagueByID(ctx, dbgen.GetLeagueByIDParams{ID: leagueID, OrganizationID: orgID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("league not found")
		}
		return fmt.Errorf("load league: %w", err)
	}
	return nil
}

func diffIDs(current, desired []int64) (toAdd, toRemove []int64) {
	currentSet := make(map[int64]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	desiredSet := make(map[int64]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
		if !currentSet[id] {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if !desiredSet[id] {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
