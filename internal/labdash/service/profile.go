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
	"github.com/aussiebroadwan/labdash/pkg/slogx"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ProfileService reads profiles through a small expiring cache and owns the
// self-service writes. Every write drops the cached entry.
type ProfileService struct {
	Store store.Store

	cache *expirable.LRU[string, domain.Profile]
	now   func() time.Time
}

// NewProfileService caches up to size profiles for ttl. Zero values pick
// 256 entries and one minute.
func NewProfileService(st store.Store, size int, ttl time.Duration) *ProfileService {
	if size <= 0 {
		size = 256
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ProfileService{
		Store: st,
		cache: expirable.NewLRU[string, domain.Profile](size, nil, ttl),
		now:   time.Now,
	}
}

// Get returns the profile with id, from cache when possible.
func (s *ProfileService) Get(ctx context.Context, id string) (domain.Profile, error) {
	if p, ok := s.cache.Get(id); ok {
		return p, nil
	}

	p, err := s.Store.Profiles().GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrUserNotFound
		}
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	s.cache.Add(id, p)
	return p, nil
}

// Invalidate drops id from the cache.
func (s *ProfileService) Invalidate(id string) {
	s.cache.Remove(id)
}

// UpdateFullName trims and stores a new display name.
func (s *ProfileService) UpdateFullName(ctx context.Context, id, fullName string) (domain.Profile, error) {
	name, err := normalizeFullName(fullName)
	if err != nil {
		return domain.Profile{}, err
	}

	err = s.Store.Profiles().UpdateFullName(ctx, id, name, s.now())
	s.Invalidate(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrUserNotFound
		}
		return domain.Profile{}, fmt.Errorf("update full name: %w", err)
	}

	slogx.FromContext(ctx).Info("profile name updated", slog.String("user_id", id))
	return s.Get(ctx, id)
}

// ChangePassword re-hashes the caller's password and revokes every other
// session of theirs. confirm is optional; when given it must match.
func (s *ProfileService) ChangePassword(ctx context.Context, id, currentSID, newPassword, confirm string) error {
	if confirm != "" && confirm != newPassword {
		return ErrPasswordMismatch
	}
	if err := s.setPassword(ctx, id, newPassword, currentSID); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", id))
	return nil
}

// setPassword stores a new hash and revokes the user's sessions except keepSID.
func (s *ProfileService) setPassword(ctx context.Context, id, password, keepSID string) error {
	if err := checkPassword(password); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().UpdatePasswordHash(ctx, id, hash, s.now()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return tx.Sessions().RevokeUserSessions(ctx, id, keepSID)
	})
	s.Invalidate(id)
	return err
}
