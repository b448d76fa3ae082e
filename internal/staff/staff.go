// internal/staff/staff.go
package staff

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
	"github.com/leaguedesk/leaguedesk/internal/email"
	"github.com/leaguedesk/leaguedesk/internal/slug"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"

	invitationTokenLength = 32

	statusPending  = "pending"
	statusAccepted = "accepted"
	statusRevoked  = "revoked"
)

var staffRoles = map[string]bool{
	RoleAdmin: true, RoleEditor: true, RoleViewer: true,
}

// Engine manages staff memberships and the invitation flow that creates
// them. Email delivery is best-effort: a persisted invitation whose email
// bounced can still be resent or accepted by token.
type Engine struct {
	db      *db.DB
	sender  email.Sender
	baseURL string
}

func NewEngine(database *db.DB, sender email.Sender, baseURL string) (*Engine, error) {
	if database == nil {
		return nil, errors.New("staff engine requires a database")
	}
	if sender == nil {
		sender = email.LogSender{}
	}
	return &Engine{db: database, sender: sender, baseURL: baseURL}, nil
}

// List returns the organization's staff members with user details.
func (e *Engine) List(ctx context.Context, orgID int64) ([]dbgen.ListOrganizationMembersRow, error) {
	rows, err := e.db.Queries.ListOrganizationMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return rows, nil
}

// Remove deletes a staff membership. Removing your own membership is
// Forbidden so an organization cannot lock itself out by accident.
func (e *Engine) Remove(ctx context.Context, orgID, memberID, callerUserID int64) error {
	return e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		member, err := q.GetOrganizationMemberByID(ctx, dbgen.GetOrganizationMemberByIDParams{
			ID:             memberID,
			OrganizationID: orgID,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("staff member not found")
			}
			return fmt.Errorf("load staff member: %w", err)
		}
		if member.UserID == callerUserID {
			return apperr.Forbiddenf("you cannot remove your own staff membership")
		}

		deleted, err := q.DeleteOrganizationMember(ctx, dbgen.DeleteOrganizationMemberParams{
			ID:             memberID,
			OrganizationID: orgID,
		})
		if err != nil {
			return fmt.Errorf("delete staff member: %w", err)
		}
		if deleted == 0 {
			return apperr.NotFoundf("staff member not found")
		}
		return nil
	})
}

// Invite persists a pending invitation and emails the accept link. A send
// failure is logged, not returned; the invitation row is the source of truth.
func (e *Engine) Invite(ctx context.Context, orgID int64, emailAddr, role string) (dbgen.OrganizationInvitation, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return dbgen.OrganizationInvitation{}, apperr.Invalidf("a valid email address is required")
	}
	if !staffRoles[role] {
		return dbgen.OrganizationInvitation{}, apperr.Invalidf("unknown staff role %q", role)
	}

	org, err := e.db.Queries.GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.OrganizationInvitation{}, apperr.NotFoundf("organization not found")
		}
		return dbgen.OrganizationInvitation{}, fmt.Errorf("load organization: %w", err)
	}

	token, err := slug.RandomCode(invitationTokenLength)
	if err != nil {
		return dbgen.OrganizationInvitation{}, err
	}

	invitation, err := e.db.Queries.CreateInvitation(ctx, dbgen.CreateInvitationParams{
		OrganizationID: orgID,
		Email:          emailAddr,
		Role:           role,
		Token:          token,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return dbgen.OrganizationInvitation{}, apperr.Conflictf("an invitation for this email already exists")
		}
		return dbgen.OrganizationInvitation{}, fmt.Errorf("create invitation: %w", err)
	}

	subject := email.InvitationSubject(org.Name)
	body := email.InvitationBody(org.Name, role, e.baseURL, token)
	if err := e.sender.Send(ctx, emailAddr, subject, body); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Int64("org_id", orgID).
			Str("email", emailAddr).
			Msg("Failed to send invitation email")
	}
	return invitation, nil
}

// Accept converts a pending invitation into a staff membership for the
// authenticated user. The invitation email must match the accepting account.
func (e *Engine) Accept(ctx context.Context, token string, userID int64, userEmail string) (dbgen.OrganizationMember, error) {
	var member dbgen.OrganizationMember
	err := e.db.RunInTx(ctx, func(txdb *db.DB) error {
		q := txdb.Queries

		invitation, err := q.GetInvitationByToken(ctx, token)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("invitation not found")
			}
			return fmt.Errorf("load invitation: %w", err)
		}
		if invitation.Status != statusPending {
			return apperr.Conflictf("this invitation is no longer valid")
		}
		if !strings.EqualFold(invitation.Email, userEmail) {
			return apperr.Forbiddenf("this invitation was issued to a different email address")
		}

		member, err = q.CreateOrganizationMember(ctx, dbgen.CreateOrganizationMemberParams{
			OrganizationID: invitation.OrganizationID,
			UserID:         userID,
			Role:           invitation.Role,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return apperr.Conflictf("you are already a staff member of this organization")
			}
			return fmt.Errorf("create staff membership: %w", err)
		}

		if _, err := q.MarkInvitationAccepted(ctx, invitation.ID); err != nil {
			return fmt.Errorf("mark invitation accepted: %w", err)
		}
		return nil
	})
	if err != nil {
		return dbgen.OrganizationMember{}, err
	}

	log.Ctx(ctx).Info().
		Int64("org_id", member.OrganizationID).
		Int64("user_id", userID).
		Str("role", member.Role).
		Msg("Invitation accepted")
	return member, nil
}
