package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/store"
	"github.com/aussiebroadwan/labdash/pkg/cryptox"
	"github.com/aussiebroadwan/labdash/pkg/jwtx"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
	"github.com/google/uuid"
)

// SessionService issues and checks dashboard sessions. A session is a signed
// cookie token bound to a server-side row, so it can be revoked before it
// expires.
type SessionService struct {
	Store    store.Store
	Keys     *jwtx.KeyManager
	Profiles *ProfileService
	Issuer   string
	TTL      time.Duration

	now func() time.Time
}

func NewSessionService(st store.Store, keys *jwtx.KeyManager, profiles *ProfileService, issuer string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	return &SessionService{
		Store:    st,
		Keys:     keys,
		Profiles: profiles,
		Issuer:   issuer,
		TTL:      ttl,
		now:      time.Now,
	}
}

// LoginResult is what a successful login hands back to the transport.
type LoginResult struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	Profile   domain.Profile
}

// SessionInfo describes a live session and its current profile.
type SessionInfo struct {
	Session domain.Session
	Profile domain.Profile
}

// SessionReady is the payload a page receives once the session check passes:
// who the user is and which modules to show.
type SessionReady struct {
	Profile domain.Profile
	Modules domain.ModuleSet
}

// Login checks the password and opens a session. Unknown email and wrong
// password are indistinguishable.
func (s *SessionService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	email, err := normalizeEmail(email)
	if err != nil || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	p, err := s.Store.Profiles().GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed", slog.String("reason", "unknown_email"))
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("load profile: %w", err)
	}

	if err := cryptox.VerifyPassword(password, p.PasswordHash); err != nil {
		l.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", p.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	now := s.now().UTC()
	sess := domain.Session{
		ID:        uuid.NewString(),
		UserID:    p.ID,
		ExpiresAt: now.Add(s.TTL),
		CreatedAt: now,
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	claims := jwtx.NewSessionClaims(p.ID, sess.ID, string(p.Role), p.FullName, s.Issuer, s.TTL, now)
	token, err := s.Keys.Sign(claims)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign session token: %w", err)
	}

	l.Info("login succeeded", slog.String("user_id", p.ID), slog.String("sid", sess.ID))
	return LoginResult{Token: token, SessionID: sess.ID, ExpiresAt: sess.ExpiresAt, Profile: p}, nil
}

// Check validates a cookie token against the signing keys and the session
// row, then loads the current profile.
func (s *SessionService) Check(ctx context.Context, token string) (SessionInfo, error) {
	claims, err := s.Keys.Verifier.Verify(token)
	if err != nil {
		return SessionInfo{}, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	sess, err := s.Store.Sessions().GetSession(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SessionInfo{}, ErrNoSession
		}
		return SessionInfo{}, fmt.Errorf("load session: %w", err)
	}
	if sess.UserID != claims.Subject || !sess.Active(s.now()) {
		return SessionInfo{}, ErrNoSession
	}

	p, err := s.Profiles.Get(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return SessionInfo{}, ErrNoSession
		}
		return SessionInfo{}, err
	}

	return SessionInfo{Session: sess, Profile: p}, nil
}

// Logout revokes sid. Unknown ids are ignored.
func (s *SessionService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.Store.Sessions().RevokeSession(ctx, sid); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	slogx.FromContext(ctx).Info("session revoked", slog.String("sid", sid))
	return nil
}

// Ready builds the session-ready payload for p.
func (s *SessionService) Ready(p domain.Profile) SessionReady {
	return SessionReady{Profile: p, Modules: domain.VisibleModules(p.Role)}
}
