package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the dashboard
//	@Description	Creates the first administration profile. Only available when a bootstrap token is configured and no profile exists yet.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token for authorization"
//	@Param			request				body		dashsdk.BootstrapRequest	true	"First administrator"
//	@Success		201					{object}	dashsdk.BootstrapResponse	"Administrator created"
//	@Failure		400					{object}	dashsdk.ErrorResponse		"Invalid request body or validation failed"
//	@Failure		401					{object}	dashsdk.ErrorResponse		"Missing or invalid bootstrap token, or system already bootstrapped"
//	@Failure		404					{object}	dashsdk.ErrorResponse		"Bootstrap not enabled (no token configured)"
//	@Failure		500					{object}	dashsdk.ErrorResponse		"Failed to create the administrator"
//	@Router			/api/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	// 1. Check if enabled
	if !h.BootstrapService.Enabled() {
		httpx.WriteError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound)
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// 3. Parse request body and validate
	var req dashsdk.BootstrapRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	// 4. Perform bootstrap
	p, err := h.BootstrapService.Bootstrap(r.Context(), token, service.BootstrapInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready), errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		case service.IsValidation(err):
			writeServiceError(w, r, err)
		default:
			l.Error("bootstrap failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError)
		}
		return
	}

	// 5. Respond with the created administrator
	httpx.WriteJSON(w, http.StatusCreated, dashsdk.BootstrapResponse{
		UserID: p.ID,
		Email:  p.Email,
	})
}
