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
	"github.com/aussiebroadwan/labdash/pkg/idx"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
)

// Actor is the signed-in user performing an administrative action.
type Actor struct {
	ID   string
	Role domain.Role
}

type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// UpdateUserInput changes only the fields that are non-nil.
type UpdateUserInput struct {
	UserID   string
	FullName *string
	Role     *string
}

// UserAdminService is the user-management backend of the gestion_usuarios
// module.
type UserAdminService struct {
	Store    store.Store
	Profiles *ProfileService

	now func() time.Time
}

func NewUserAdminService(st store.Store, profiles *ProfileService) *UserAdminService {
	return &UserAdminService{Store: st, Profiles: profiles, now: time.Now}
}

// List returns every profile. The caller must be able to see the user
// management module.
func (s *UserAdminService) List(ctx context.Context, actor Actor) ([]domain.Profile, error) {
	if !domain.VisibleModules(actor.Role).Has(domain.ModuleGestionUsuarios) {
		return nil, ErrForbidden
	}
	list, err := s.Store.Profiles().ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return list, nil
}

func (s *UserAdminService) Create(ctx context.Context, actor Actor, in CreateUserInput) (domain.Profile, error) {
	if !actor.Role.CanManageUsers() {
		return domain.Profile{}, ErrForbidden
	}

	p, err := newProfile(in.Email, in.Password, in.FullName, in.Role, s.now())
	if err != nil {
		return domain.Profile{}, err
	}

	if err := s.Store.Profiles().CreateProfile(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Profile{}, ErrEmailTaken
		}
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	slogx.FromContext(ctx).Info("user created",
		slog.String("actor_id", actor.ID),
		slog.String("user_id", p.ID),
		slog.String("role", string(p.Role)),
	)
	return p, nil
}

func (s *UserAdminService) Update(ctx context.Context, actor Actor, in UpdateUserInput) (domain.Profile, error) {
	if !actor.Role.CanManageUsers() {
		return domain.Profile{}, ErrForbidden
	}

	var (
		name string
		role domain.Role
		err  error
	)
	if in.FullName != nil {
		if name, err = normalizeFullName(*in.FullName); err != nil {
			return domain.Profile{}, err
		}
	}
	if in.Role != nil {
		if role, err = parseKnownRole(*in.Role); err != nil {
			return domain.Profile{}, err
		}
	}

	now := s.now()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Profiles().GetProfileByID(ctx, in.UserID); err != nil {
			return err
		}
		if in.FullName != nil {
			if err := tx.Profiles().UpdateFullName(ctx, in.UserID, name, now); err != nil {
				return err
			}
		}
		if in.Role != nil {
			if err := tx.Profiles().UpdateRole(ctx, in.UserID, role, now); err != nil {
				return err
			}
		}
		return nil
	})
	s.Profiles.Invalidate(in.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrUserNotFound
		}
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	slogx.FromContext(ctx).Info("user updated", slog.String("actor_id", actor.ID), slog.String("user_id", in.UserID))
	return s.Profiles.Get(ctx, in.UserID)
}

// Delete removes a profile and, through the schema, its sessions.
func (s *UserAdminService) Delete(ctx context.Context, actor Actor, userID string) error {
	if !actor.Role.CanDeleteUsers() {
		return ErrForbidden
	}
	if userID == actor.ID {
		return ErrCannotDeleteSelf
	}

	err := s.Store.Profiles().DeleteProfile(ctx, userID)
	s.Profiles.Invalidate(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}

	slogx.FromContext(ctx).Info("user deleted", slog.String("actor_id", actor.ID), slog.String("user_id", userID))
	return nil
}

// ResetPassword sets a new password for another user and signs them out
// everywhere.
func (s *UserAdminService) ResetPassword(ctx context.Context, actor Actor, userID, newPassword string) error {
	if !actor.Role.CanManageUsers() {
		return ErrForbidden
	}
	if err := s.Profiles.setPassword(ctx, userID, newPassword, ""); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user password reset", slog.String("actor_id", actor.ID), slog.String("user_id", userID))
	return nil
}

func newProfile(email, password, fullName, role string, now time.Time) (domain.Profile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.Profile{}, err
	}
	name, err := normalizeFullName(fullName)
	if err != nil {
		return domain.Profile{}, err
	}
	r, err := parseKnownRole(role)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := checkPassword(password); err != nil {
		return domain.Profile{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("hash password: %w", err)
	}

	now = now.UTC()
	return domain.Profile{
		ID:           idx.NewAt(now).String(),
		Email:        email,
		FullName:     name,
		Role:         r,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
