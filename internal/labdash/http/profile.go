package http

import (
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
)

// ProfileHandler serves the signed-in user's own profile.
type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet handles GET /api/profile
//
//	@Summary		Current profile
//	@Tags			Profile
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	dashsdk.ProfileResponse
//	@Failure		401	{object}	dashsdk.ErrorResponse	"No session"
//	@Router			/api/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	profile, err := h.ProfileService.Get(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

// HandleUpdate handles POST /api/profile/update
//
//	@Summary		Update full name
//	@Description	Trims and stores the signed-in user's full name.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		dashsdk.UpdateProfileRequest	true	"New name"
//	@Success		200		{object}	dashsdk.MessageResponse			"Profile updated"
//	@Failure		400		{object}	dashsdk.ErrorResponse			"validation_error"
//	@Failure		401		{object}	dashsdk.ErrorResponse			"No session"
//	@Router			/api/profile/update [post].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	var req dashsdk.UpdateProfileRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	if _, err := h.ProfileService.UpdateFullName(r.Context(), p.UserID, req.FullName); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, "Profile updated")
}

// HandleChangePassword handles POST /api/profile/change-password
//
//	@Summary		Change password
//	@Description	Sets a new password and signs the user out of every other session.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		dashsdk.ChangePasswordRequest	true	"New password"
//	@Success		200		{object}	dashsdk.MessageResponse			"Password updated"
//	@Failure		400		{object}	dashsdk.ErrorResponse			"validation_error"
//	@Failure		401		{object}	dashsdk.ErrorResponse			"No session"
//	@Router			/api/profile/change-password [post].
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	var req dashsdk.ChangePasswordRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	err := h.ProfileService.ChangePassword(r.Context(), p.UserID, p.SessionID, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, "Password updated")
}
