// Package session is the persisted login session: the token pair issued by
// the backend, stored in the local metadata table. Presence of an access
// token is all the client checks; contents are never validated.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/models"
	"github.com/dmitrijs2005/ipms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ipms/internal/common"
	"github.com/dmitrijs2005/ipms/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

// Storage keys.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUsername     = "username"
)

// Store reads and writes the session. Every call goes to the database; there
// is no in-memory copy.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// AccessToken returns common.ErrNoSession when no token is stored.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, KeyAccessToken)
}

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, KeyRefreshToken)
}

// Username returns the name the session was opened with, or "".
func (s *Store) Username(ctx context.Context) string {
	v, _, _ := s.repo().Get(ctx, KeyUsername)
	return v
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	v, ok, err := s.repo().Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	if !ok || v == "" {
		return "", common.ErrNoSession
	}
	return v, nil
}

// HasSession reports whether an access token is present.
func (s *Store) HasSession(ctx context.Context) bool {
	_, err := s.AccessToken(ctx)
	return err == nil
}

// Save stores a freshly issued token pair in one transaction.
func (s *Store) Save(ctx context.Context, tokens models.Tokens, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAccessToken, tokens.Access); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyRefreshToken, tokens.Refresh); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUsername, username)
	})
}

// Clear ends the session. Other local settings are left alone.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo().Delete(ctx, KeyAccessToken, KeyRefreshToken, KeyUsername); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Claims is what the prompt shows about the current token.
type Claims struct {
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp is in the past relative to now.
// Tokens without exp never expire here.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Claims decodes the access token without checking its signature. The result
// is for display only and must not gate access.
func (s *Store) Claims(ctx context.Context) (Claims, error) {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return Claims{}, err
	}
	return ParseClaims(token)
}

// ParseClaims reads user_id (simplejwt's claim) or sub, and exp.
func ParseClaims(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}

	var out Claims
	switch v := claims["user_id"].(type) {
	case string:
		out.UserID = v
	case float64:
		out.UserID = fmt.Sprintf("%.0f", v)
	}
	if out.UserID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			out.UserID = sub
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
