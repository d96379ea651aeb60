package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/stretchr/testify/require"
)

func TestUpdateFullName(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.createUser(t, "ana@lab.test", "secret1", "Ana", domain.RoleOperator)

	// Warm the cache so the update must invalidate it.
	_, err := e.profiles.Get(ctx, p.ID)
	require.NoError(t, err)

	got, err := e.profiles.UpdateFullName(ctx, p.ID, "  Ana Gómez  ")
	require.NoError(t, err)
	require.Equal(t, "Ana Gómez", got.FullName)

	cached, err := e.profiles.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana Gómez", cached.FullName)
}

func TestUpdateFullNameValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.createUser(t, "ana@lab.test", "secret1", "Ana", domain.RoleOperator)

	_, err := e.profiles.UpdateFullName(ctx, p.ID, "   ")
	require.ErrorIs(t, err, service.ErrInvalidName)

	_, err = e.profiles.UpdateFullName(ctx, p.ID, strings.Repeat("x", service.MaxFullNameLength+1))
	require.ErrorIs(t, err, service.ErrInvalidName)
	require.True(t, service.IsValidation(err))

	_, err = e.profiles.UpdateFullName(ctx, "missing", "Name")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.createUser(t, "ana@lab.test", "secret1", "Ana", domain.RoleOperator)

	first, err := e.sessions.Login(ctx, "ana@lab.test", "secret1")
	require.NoError(t, err)
	other, err := e.sessions.Login(ctx, "ana@lab.test", "secret1")
	require.NoError(t, err)

	require.NoError(t, e.profiles.ChangePassword(ctx, p.ID, first.SessionID, "newpass", "newpass"))

	// The session that changed the password survives; the other one does not.
	_, err = e.sessions.Check(ctx, first.Token)
	require.NoError(t, err)
	_, err = e.sessions.Check(ctx, other.Token)
	require.ErrorIs(t, err, service.ErrNoSession)

	_, err = e.sessions.Login(ctx, "ana@lab.test", "secret1")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = e.sessions.Login(ctx, "ana@lab.test", "newpass")
	require.NoError(t, err)
}

func TestChangePasswordValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	p := e.createUser(t, "ana@lab.test", "secret1", "Ana", domain.RoleOperator)

	tests := []struct {
		name, pw, confirm string
		want              error
	}{
		{"too short", "12345", "", service.ErrPasswordTooShort},
		{"too long", strings.Repeat("a", service.MaxPasswordLength+1), "", service.ErrPasswordTooLong},
		{"mismatch", "abcdef", "abcdeg", service.ErrPasswordMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := e.profiles.ChangePassword(ctx, p.ID, "", tc.pw, tc.confirm)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Exactly the minimum is fine and confirmation is optional.
	require.NoError(t, e.profiles.ChangePassword(ctx, p.ID, "", "123456", ""))
}
