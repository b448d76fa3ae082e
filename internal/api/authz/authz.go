package authz

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// AuthUser is the identity the fronting auth layer established for this
// request. Session issuance and verification live outside this service; by
// the time a request reaches a handler the user id is trusted.
type AuthUser struct {
	ID    int64
	Email string
}

// Membership is the caller's staff membership in the organization a request
// targets, resolved by RequireOrganizationMember.
type Membership struct {
	ID   int64
	Role string
}

type userContextKey struct{}

func ContextWithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the AuthUser stored in ctx.
// It returns nil if ctx is nil, if no user is stored, or if the stored value
// has a different type.
func UserFromContext(ctx context.Context) *AuthUser {
	if ctx == nil {
		return nil
	}
	user, ok := ctx.Value(userContextKey{}).(*AuthUser)
	if !ok {
		return nil
	}
	return user
}

// RequireOrganizationMember is the guard every organization-scoped operation
// runs before touching an engine: the caller must hold a staff membership in
// the target organization. Engines receive the orgID only after this passes.
func RequireOrganizationMember(ctx context.Context, q *dbgen.Queries, orgID int64) (*Membership, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, ErrUnauthenticated
	}

	member, err := q.GetOrganizationMember(ctx, dbgen.GetOrganizationMemberParams{
		OrganizationID: orgID,
		UserID:         user.ID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	return &Membership{ID: member.ID, Role: member.Role}, nil
}

// CanManageStaff reports whether a membership may add or remove other staff.
// Editors manage content, not people.
func CanManageStaff(m *Membership) bool {
	return m != nil && strings.EqualFold(m.Role, "admin")
}
