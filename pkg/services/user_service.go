// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/user"
)

const serviceTimeout = 5 * time.Second

// UserService manages account records. The OAuth dance happens outside the
// core; this layer only resolves bearer identities to rows.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	if client == nil {
		panic("NewUserService: client must not be nil")
	}
	return &UserService{client: client}
}

// RegisterInput contains the fields needed to create an account.
type RegisterInput struct {
	Email       string
	DisplayName string
}

// Register returns the existing user for the email or creates one.
// Returns (user, created, error) where created indicates a new row.
func (s *UserService) Register(httpCtx context.Context, input RegisterInput) (*ent.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, false, NewValidationError("email", "required")
	}
	if !strings.Contains(email, "@") {
		return nil, false, NewValidationError("email", "not a valid address")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	existing, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	created, err := s.client.User.Create().
		SetEmail(email).
		SetDisplayName(input.DisplayName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: another request registered the email first; fetch it
			existing, queryErr := s.client.User.Query().
				Where(user.EmailEQ(email)).
				Only(ctx)
			if queryErr != nil {
				return nil, false, fmt.Errorf("failed to query user after constraint error: %w", queryErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return created, true, nil
}

// GetByToken resolves a bearer token to its user. Used by the auth
// middleware on every request.
func (s *UserService) GetByToken(httpCtx context.Context, token string) (*ent.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	u, err := s.client.User.Query().
		Where(user.APITokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return u, nil
}

// Get fetches a user by id.
func (s *UserService) Get(httpCtx context.Context, id uuid.UUID) (*ent.User, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// SetAdmin toggles the admin flag. Only used by operational tooling and tests.
func (s *UserService) SetAdmin(httpCtx context.Context, id uuid.UUID, isAdmin bool) error {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	err := s.client.User.UpdateOneID(id).
		SetIsAdmin(isAdmin).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
