package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/store"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap disabled")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

type BootstrapInput struct {
	Email    string
	Password string
	FullName string
}

// BootstrapService creates the first administration profile on an empty
// database, guarded by a pre-shared token.
type BootstrapService struct {
	Store store.Store
	Token string
}

func (s *BootstrapService) Enabled() bool { return s.Token != "" }

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Profiles().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, in BootstrapInput) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	if !s.Enabled() {
		return domain.Profile{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return domain.Profile{}, ErrBootstrapUnauthorized
	}

	p, err := newProfile(in.Email, in.Password, in.FullName, string(domain.RoleAdministration), time.Now())
	if err != nil {
		return domain.Profile{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Profiles().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		return tx.Profiles().CreateProfile(ctx, p)
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
			return domain.Profile{}, err
		}
		return domain.Profile{}, fmt.Errorf("bootstrap: %w", err)
	}

	l.Info("bootstrap completed", slog.String("user_id", p.ID), slog.String("email", p.Email))
	return p, nil
}
