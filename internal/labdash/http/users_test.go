package http_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUsers_ListGatedByModule(t *testing.T) {
	h := newHarness(t, "")
	h.user(t, "op@lab.test", "Zoe Operaria", domain.RoleOperator)
	h.user(t, "tec@lab.test", "Bruno Técnico", domain.RoleTechnician)
	h.user(t, "coord@lab.test", "Ana Coordinadora", domain.RoleCoordination)

	tests := []struct {
		email  string
		status int
	}{
		{"op@lab.test", http.StatusForbidden},
		{"tec@lab.test", http.StatusForbidden},
		{"coord@lab.test", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			rec := h.do(t, http.MethodGet, "/api/users", nil, h.login(t, tt.email))
			require.Equal(t, tt.status, rec.Code)
		})
	}

	rec := h.do(t, http.MethodGet, "/api/users", nil, h.login(t, "coord@lab.test"))
	users := decode[dashsdk.UsersResponse](t, rec).Users
	require.Len(t, users, 3)
	require.Equal(t, "Ana Coordinadora", users[0].FullName)
	require.Equal(t, "Zoe Operaria", users[2].FullName)
}

func TestUsers_Create(t *testing.T) {
	h := newHarness(t, "")
	h.user(t, "admin@lab.test", "Admin", domain.RoleAdministration)
	h.user(t, "tec@lab.test", "Tec", domain.RoleTechnician)
	admin := h.login(t, "admin@lab.test")

	req := dashsdk.CreateUserRequest{Email: "nuevo@lab.test", Password: "secreto-2", FullName: "Nuevo", Role: "técnico"}

	rec := h.do(t, http.MethodPost, "/api/admin/create-user", req, h.login(t, "tec@lab.test"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/admin/create-user", req, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dashsdk.UserResponse](t, rec).User
	require.Equal(t, "technician", created.Role)
	require.Equal(t, "nuevo@lab.test", created.Email)

	rec = h.do(t, http.MethodPost, "/api/admin/create-user", req, admin)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "conflict", decode[dashsdk.ErrorResponse](t, rec).Error)

	bad := req
	bad.Email = "otro@lab.test"
	bad.Role = "gerente"
	rec = h.do(t, http.MethodPost, "/api/admin/create-user", bad, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode[dashsdk.ErrorResponse](t, rec).Details, "role")

	short := req
	short.Email = "corto@lab.test"
	short.Password = "123"
	rec = h.do(t, http.MethodPost, "/api/admin/create-user", short, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode[dashsdk.ErrorResponse](t, rec).Details, "password")
}

func TestUsers_UpdateChangesVisibleModules(t *testing.T) {
	h := newHarness(t, "")
	h.user(t, "admin@lab.test", "Admin", domain.RoleAdministration)
	coord := h.user(t, "coord@lab.test", "Coord", domain.RoleCoordination)
	admin := h.login(t, "admin@lab.test")
	coordCookie := h.login(t, "coord@lab.test")

	rec := h.do(t, http.MethodPost, "/api/admin/update-user",
		dashsdk.UpdateUserRequest{UserID: coord.ID, Role: ptr("operator")}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dashsdk.UserResponse](t, rec).User
	require.Equal(t, "operator", updated.Role)
	require.Equal(t, "Coord", updated.FullName)

	// The demoted user's live session picks up the new role.
	rec = h.do(t, http.MethodGet, "/api/session", nil, coordCookie)
	require.ElementsMatch(t, []string{"despacho", "perfil"}, decode[dashsdk.SessionResponse](t, rec).Modules)
	require.Equal(t, http.StatusForbidden, h.do(t, http.MethodGet, "/api/users", nil, coordCookie).Code)

	rec = h.do(t, http.MethodPost, "/api/admin/update-user",
		dashsdk.UpdateUserRequest{UserID: "missing", FullName: ptr("X")}, admin)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers_UpdateActiveUserResponse(t *testing.T) {
	h := newHarness(t, "")
	h.user(t, "admin@lab.test", "Admin", domain.RoleAdministration)
	op := h.user(t, "op@lab.test", "Op", domain.RoleOperator)
	admin := h.login(t, "admin@lab.test")
	opCookie := h.login(t, "op@lab.test")

	rec := h.do(t, http.MethodGet, "/api/session", nil, opCookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/admin/update-user",
		dashsdk.UpdateUserRequest{UserID: op.ID, FullName: ptr("Op Senior"), Role: ptr("technician")}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dashsdk.UserResponse](t, rec).User
	require.Equal(t, "technician", updated.Role)
	require.Equal(t, "Op Senior", updated.FullName)

	rec = h.do(t, http.MethodGet, "/api/session", nil, opCookie)
	sess := decode[dashsdk.SessionResponse](t, rec)
	require.Equal(t, "Op Senior", sess.Profile.FullName)
	require.ElementsMatch(t, []string{"despacho", "calibracion", "perfil"}, sess.Modules)
}

func TestUsers_Delete(t *testing.T) {
	h := newHarness(t, "")
	root := h.user(t, "admin@lab.test", "Admin", domain.RoleAdministration)
	h.user(t, "coord@lab.test", "Coord", domain.RoleCoordination)
	victim := h.user(t, "op@lab.test", "Op", domain.RoleOperator)
	admin := h.login(t, "admin@lab.test")
	victimCookie := h.login(t, "op@lab.test")

	rec := h.do(t, http.MethodPost, "/api/admin/delete-user", dashsdk.DeleteUserRequest{UserID: victim.ID}, h.login(t, "coord@lab.test"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/admin/delete-user", dashsdk.DeleteUserRequest{UserID: root.ID}, admin)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "cannot_delete_self", decode[dashsdk.ErrorResponse](t, rec).Error)

	rec = h.do(t, http.MethodPost, "/api/admin/delete-user", dashsdk.DeleteUserRequest{UserID: victim.ID}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, http.StatusUnauthorized, h.do(t, http.MethodGet, "/api/session", nil, victimCookie).Code)

	rec = h.do(t, http.MethodPost, "/api/admin/delete-user", dashsdk.DeleteUserRequest{UserID: victim.ID}, admin)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsers_ResetPassword(t *testing.T) {
	h := newHarness(t, "")
	h.user(t, "coord@lab.test", "Coord", domain.RoleCoordination)
	target := h.user(t, "op@lab.test", "Op", domain.RoleOperator)
	coord := h.login(t, "coord@lab.test")
	targetCookie := h.login(t, "op@lab.test")

	rec := h.do(t, http.MethodPost, "/api/admin/reset-user-password",
		dashsdk.ResetUserPasswordRequest{UserID: target.ID, NewPassword: "reiniciada"}, coord)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusUnauthorized, h.do(t, http.MethodGet, "/api/session", nil, targetCookie).Code)

	rec = h.do(t, http.MethodPost, "/api/login", dashsdk.LoginRequest{Email: "op@lab.test", Password: "reiniciada"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/admin/reset-user-password",
		dashsdk.ResetUserPasswordRequest{UserID: "missing", NewPassword: "reiniciada"}, coord)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
