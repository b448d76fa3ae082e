// internal/identity/users.go
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/leaguedesk/leaguedesk/internal/apperr"
	db "github.com/leaguedesk/leaguedesk/internal/db"
	dbgen "github.com/leaguedesk/leaguedesk/internal/db/generated"
)

// Service provisions user accounts. The fronting auth layer calls this after
// signup; everything else in the system only reads users.
type Service struct {
	db *db.DB
}

func NewService(database *db.DB) (*Service, error) {
	if database == nil {
		return nil, errors.New("identity service requires a database")
	}
	return &Service{db: database}, nil
}

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// CreateUser inserts an account with a normalized E.164 phone. The email is
// unique case-insensitively; a duplicate signup is a Conflict.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (dbgen.User, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.FirstName == "" || input.LastName == "" {
		return dbgen.User{}, apperr.Invalidf("first and last name are required")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return dbgen.User{}, apperr.Invalidf("a valid email address is required")
	}
	phone, err := NormalizePhone(input.Phone)
	if err != nil {
		return dbgen.User{}, err
	}

	params := dbgen.CreateUserParams{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if phone != "" {
		params.Phone = sqlNullString(phone)
	}

	user, err := s.db.Queries.CreateUser(ctx, params)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return dbgen.User{}, apperr.Conflictf("an account with this email already exists")
		}
		return dbgen.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Ctx(ctx).Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Msg("User account created")
	return user, nil
}
