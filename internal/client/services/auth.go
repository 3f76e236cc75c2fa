// Package services contains the client's application services: the flows
// that span the HTTP client, the local session and the scanner.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/session"
	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/dmitrijs2005/ipms/internal/logging"
)

// AuthAPI is the part of the HTTP client used for authentication.
type AuthAPI interface {
	ObtainToken(ctx context.Context, username, password string) (models.Tokens, error)
	Me(ctx context.Context) (models.Me, error)
}

// SessionStore persists the token pair between runs.
type SessionStore interface {
	Save(ctx context.Context, tokens models.Tokens, username string) error
	Clear(ctx context.Context) error
	Username(ctx context.Context) string
	HasSession(ctx context.Context) bool
	Claims(ctx context.Context) (session.Claims, error)
}

// Identity is what whoami prints.
type Identity struct {
	// Username is the one typed at login, kept locally.
	Username string
	// Me is the backend's view of the account; zero when it could not be
	// fetched.
	Me     models.Me
	Claims session.Claims
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for tokens, store them, then look up the account.
//   - Logout: forget the stored tokens.
//   - WhoAmI: describe the stored session.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.Me, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (Identity, error)
}

type authService struct {
	api      AuthAPI
	sessions SessionStore
	log      logging.Logger
}

func NewAuthService(api AuthAPI, sessions SessionStore, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{api: api, sessions: sessions, log: log}
}

// Login stores the token pair before anything else so the account lookup
// runs authenticated. A failed lookup does not undo the login.
func (a *authService) Login(ctx context.Context, username, password string) (models.Me, error) {
	tokens, err := a.api.ObtainToken(ctx, username, password)
	if err != nil {
		return models.Me{}, fmt.Errorf("login error: %w", err)
	}
	if tokens.Access == "" {
		return models.Me{}, fmt.Errorf("login error: %w", common.ErrUnauthorized)
	}

	if err := a.sessions.Save(ctx, tokens, username); err != nil {
		return models.Me{}, fmt.Errorf("session saving error: %w", err)
	}

	me, err := a.api.Me(ctx)
	if err != nil {
		a.log.Warn(ctx, "account lookup failed after login", "username", username, "error", err)
		return models.Me{Username: username}, nil
	}
	return me, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	return nil
}

// WhoAmI returns common.ErrNoSession when nobody is logged in. A rejected
// token surfaces as the client's unauthorized error.
func (a *authService) WhoAmI(ctx context.Context) (Identity, error) {
	if !a.sessions.HasSession(ctx) {
		return Identity{}, common.ErrNoSession
	}

	id := Identity{Username: a.sessions.Username(ctx)}
	if claims, err := a.sessions.Claims(ctx); err == nil {
		id.Claims = claims
	} else if !errors.Is(err, common.ErrNoSession) {
		a.log.Debug(ctx, "token claims unreadable", "error", err)
	}

	me, err := a.api.Me(ctx)
	if err != nil {
		return id, err
	}
	id.Me = me
	return id, nil
}
