package ports

import (
	"context"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// RegisterInput carries the fields for creating a new account.
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// SessionService owns the credential pair and the authenticated/current-user
// state. It is the only component allowed to store or drop a full token pair.
type SessionService interface {
	// Login exchanges credentials for a token pair, persists it and runs the
	// identity check. Rejected credentials yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// Register creates an account without authenticating the caller. A taken
	// username yields domain.ErrConflict.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// CurrentUser returns the profile of the authenticated user.
	CurrentUser(ctx context.Context) (*domain.User, error)
	// Restore re-establishes a session from persisted tokens at startup.
	// A failed identity check clears the stored pair.
	Restore(ctx context.Context) (*domain.User, error)
	// Logout drops the credential pair and session state unconditionally;
	// it succeeds without any network call.
	Logout(ctx context.Context) error
	// Authenticated reports whether the last identity check succeeded and a
	// credential pair exists.
	Authenticated() bool
}
