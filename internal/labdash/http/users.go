package http

import (
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
)

// UsersHandler backs the user management module.
type UsersHandler struct {
	UserAdminService *service.UserAdminService
}

// HandleList handles GET /api/users
//
//	@Summary		List users
//	@Description	Lists every profile ordered by full name. Requires the gestion_usuarios module.
//	@Tags			Users
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	dashsdk.UsersResponse
//	@Failure		401	{object}	dashsdk.ErrorResponse	"No session"
//	@Failure		403	{object}	dashsdk.ErrorResponse	"forbidden"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	list, err := h.UserAdminService.List(r.Context(), actorFrom(p))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := dashsdk.UsersResponse{Users: make([]dashsdk.ProfileResponse, 0, len(list))}
	for _, u := range list {
		out.Users = append(out.Users, toProfileResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /api/admin/create-user
//
//	@Summary		Create user
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		dashsdk.CreateUserRequest	true	"New user"
//	@Success		201		{object}	dashsdk.UserResponse
//	@Failure		400		{object}	dashsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	dashsdk.ErrorResponse	"forbidden"
//	@Failure		409		{object}	dashsdk.ErrorResponse	"conflict"
//	@Router			/api/admin/create-user [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	var req dashsdk.CreateUserRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	u, err := h.UserAdminService.Create(r.Context(), actorFrom(p), service.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, dashsdk.UserResponse{Message: "User created", User: toProfileResponse(u)})
}

// HandleUpdate handles POST /api/admin/update-user
//
//	@Summary		Update user
//	@Description	Changes only the fields present in the body.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		dashsdk.UpdateUserRequest	true	"Changes"
//	@Success		200		{object}	dashsdk.UserResponse
//	@Failure		400		{object}	dashsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	dashsdk.ErrorResponse	"forbidden"
//	@Failure		404		{object}	dashsdk.ErrorResponse	"not_found"
//	@Router			/api/admin/update-user [post].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	var req dashsdk.UpdateUserRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	u, err := h.UserAdminService.Update(r.Context(), actorFrom(p), service.UpdateUserInput{
		UserID:   req.UserID,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dashsdk.UserResponse{Message: "User updated", User: toProfileResponse(u)})
}

// HandleDelete handles POST /api/admin/delete-user
//
//	@Summary		Delete user
//	@Description	Administration only. Users cannot delete themselves.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		dashsdk.DeleteUserRequest	true	"Target"
//	@Success		200		{object}	dashsdk.MessageResponse		"User deleted"
//	@Failure		403		{object}	dashsdk.ErrorResponse		"forbidden or cannot_delete_self"
//	@Failure		404		{object}	dashsdk.ErrorResponse		"not_found"
//	@Router			/api/admin/delete-user [post].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	var req dashsdk.DeleteUserRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.UserAdminService.Delete(r.Context(), actorFrom(p), req.UserID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, "User deleted")
}

// HandleResetPassword handles POST /api/admin/reset-user-password
//
//	@Summary		Reset a user's password
//	@Description	Sets a new password and revokes every session of the target user.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		dashsdk.ResetUserPasswordRequest	true	"Target and new password"
//	@Success		200		{object}	dashsdk.MessageResponse				"Password reset"
//	@Failure		400		{object}	dashsdk.ErrorResponse				"validation_error"
//	@Failure		403		{object}	dashsdk.ErrorResponse				"forbidden"
//	@Failure		404		{object}	dashsdk.ErrorResponse				"not_found"
//	@Router			/api/admin/reset-user-password [post].
func (h *UsersHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	var req dashsdk.ResetUserPasswordRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.UserAdminService.ResetPassword(r.Context(), actorFrom(p), req.UserID, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, "Password reset")
}
