package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hausbar/drinkwise/internal/core/domain"
	"github.com/hausbar/drinkwise/internal/core/ports"
)

// SessionService implements ports.SessionService. It is the single writer
// of full credential pairs; the request pipeline only ever swaps the access
// token during a refresh.
type SessionService struct {
	api    ports.Requester
	store  ports.TokenStore
	logger zerolog.Logger

	mu            sync.RWMutex
	authenticated bool
	currentUser   *domain.User
}

func NewSessionService(api ports.Requester, store ports.TokenStore, logger zerolog.Logger) *SessionService {
	return &SessionService{api: api, store: store, logger: logger}
}

// Login exchanges the credentials for a token pair, persists it, and runs
// the identity check. The session is authenticated only when both steps
// succeed; a failed identity check rolls the stored pair back.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	var pair domain.TokenPair
	err := s.api.Do(ctx, ports.Call{
		Method:   http.MethodPost,
		Path:     "/token/",
		Body:     map[string]string{"username": username, "password": password},
		SkipAuth: true,
	}, &pair)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, pair); err != nil {
		return nil, fmt.Errorf("persist tokens: %w", err)
	}

	user, err := s.fetchIdentity(ctx)
	if err != nil {
		_ = s.store.Clear(ctx)
		s.setState(false, nil)
		return nil, err
	}

	s.setState(true, user)
	s.logger.Info().Str("username", user.Username).Msg("logged in")
	return user, nil
}

// Register creates a new account. It never authenticates the caller.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	var user domain.User
	err := s.api.Do(ctx, ports.Call{
		Method:   http.MethodPost,
		Path:     "/users/",
		Body:     input,
		SkipAuth: true,
	}, &user)
	if err != nil {
		return nil, registerError(err)
	}
	return &user, nil
}

// registerError maps the server's taken-username rejection (a 400 field
// error rather than a 409) onto ErrConflict.
func registerError(err error) error {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) &&
		reqErr.Status == http.StatusBadRequest &&
		strings.Contains(reqErr.Message, "already exists") {
		return fmt.Errorf("%w: %s", domain.ErrConflict, reqErr.Message)
	}
	return err
}

// CurrentUser returns the cached profile, refetching when the cache is
// empty but a credential pair exists.
func (s *SessionService) CurrentUser(ctx context.Context) (*domain.User, error) {
	s.mu.RLock()
	cached := s.currentUser
	s.mu.RUnlock()
	if cached != nil {
		u := *cached
		return &u, nil
	}
	return s.Restore(ctx)
}

// Restore re-establishes the session from persisted tokens at startup. A
// failed identity check destroys the pair so the next start begins clean.
func (s *SessionService) Restore(ctx context.Context) (*domain.User, error) {
	pair, err := s.store.Tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("read token store: %w", err)
	}
	if pair.Empty() {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.fetchIdentity(ctx)
	if err != nil {
		_ = s.store.Clear(ctx)
		s.setState(false, nil)
		return nil, err
	}

	s.setState(true, user)
	return user, nil
}

// Logout destroys the credential pair and session state unconditionally.
// No network call is involved, so it cannot fail due to the server.
func (s *SessionService) Logout(ctx context.Context) error {
	s.setState(false, nil)
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear token store: %w", err)
	}
	s.logger.Info().Msg("logged out")
	return nil
}

// Authenticated reports whether a credential pair exists and the last
// identity check succeeded.
func (s *SessionService) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *SessionService) fetchIdentity(ctx context.Context) (*domain.User, error) {
	var user domain.User
	err := s.api.Do(ctx, ports.Call{Method: http.MethodGet, Path: "/users/me/"}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SessionService) setState(authenticated bool, user *domain.User) {
	s.mu.Lock()
	s.authenticated = authenticated
	s.currentUser = user
	s.mu.Unlock()
}
