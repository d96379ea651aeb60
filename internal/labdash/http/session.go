package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
)

// SessionHandler handles login, logout and the session check.
type SessionHandler struct {
	SessionService *service.SessionService
	ProfileService *service.ProfileService
	Cookie         httpx.SessionCookieOptions
}

// HandleLogin handles POST /api/login
//
//	@Summary		Sign in
//	@Description	Checks the email and password and sets the session cookie.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dashsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	dashsdk.MessageResponse	"Session cookie set"
//	@Failure		400		{object}	dashsdk.ErrorResponse	"Invalid request body or validation failed"
//	@Failure		401		{object}	dashsdk.ErrorResponse	"invalid_credentials"
//	@Failure		429		{object}	dashsdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/api/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dashsdk.LoginRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	res, err := h.SessionService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	httpx.SetSessionCookie(w, h.Cookie, res.Token, maxAge)
	httpx.WriteMessage(w, "Logged in")
}

// HandleLogout handles POST /api/logout
//
//	@Summary		Sign out
//	@Description	Revokes the current session and clears the cookie. Succeeds without a session.
//	@Tags			Session
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	dashsdk.MessageResponse	"Logged out"
//	@Router			/api/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r)
	httpx.WriteMessage(w, "Logged out")
}

// HandleForceLogout handles GET /force-logout. Pages link to it so a user
// can always escape a broken session.
func (h *SessionHandler) HandleForceLogout(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *SessionHandler) endSession(w http.ResponseWriter, r *http.Request) {
	if p, ok := httpx.PrincipalFrom(r.Context()); ok {
		if err := h.SessionService.Logout(r.Context(), p.SessionID); err != nil {
			slogx.FromContext(r.Context()).Error("failed to revoke session", "err", err)
		}
	}
	httpx.ClearSessionCookie(w, h.Cookie)
}

// HandleSession handles GET /api/session
//
//	@Summary		Session check
//	@Description	Returns the signed-in profile and the dashboard modules its role may see.
//	@Tags			Session
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	dashsdk.SessionResponse	"profile, modules"
//	@Failure		401	{object}	dashsdk.ErrorResponse	"No session"
//	@Router			/api/session [get].
func (h *SessionHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFrom(r.Context())

	profile, err := h.ProfileService.Get(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	ready := h.SessionService.Ready(profile)
	httpx.WriteJSON(w, http.StatusOK, dashsdk.SessionResponse{
		Profile: toProfileResponse(ready.Profile),
		Modules: ready.Modules.Strings(),
	})
}
