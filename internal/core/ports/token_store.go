package ports

import (
	"context"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// TokenStore persists the session credential pair. A zero TokenPair means no
// credentials are stored. Only the session service and the refresh
// coordinator may mutate the store.
type TokenStore interface {
	// Tokens returns the stored pair, or a zero pair when none exists.
	Tokens(ctx context.Context) (domain.TokenPair, error)
	// Save replaces both tokens.
	Save(ctx context.Context, pair domain.TokenPair) error
	// SetAccess replaces only the access token, keeping the refresh token.
	SetAccess(ctx context.Context, access string) error
	// Clear removes both tokens. Clearing an empty store succeeds.
	Clear(ctx context.Context) error
}
