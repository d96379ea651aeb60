package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/service"
	"github.com/aussiebroadwan/labdash/pkg/dashsdk"
	"github.com/aussiebroadwan/labdash/pkg/httpx"
	"github.com/aussiebroadwan/labdash/pkg/slogx"
)

// validationFields names the request field each service validation error
// belongs to.
var validationFields = []struct {
	err    error
	field  string
	reason string
}{
	{service.ErrInvalidName, "full_name", "is required and must be at most 120 characters"},
	{service.ErrInvalidRole, "role", "must be one of operator technician administration coordination"},
	{service.ErrInvalidEmail, "email", "must be a valid email"},
	{service.ErrPasswordTooShort, "password", "must be at least 6 characters"},
	{service.ErrPasswordTooLong, "password", "must be at most 128 characters"},
	{service.ErrPasswordMismatch, "confirm_password", "does not match"},
}

// writeServiceError maps a service error to its HTTP response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, v := range validationFields {
		if errors.Is(err, v.err) {
			httpx.WriteJSON(w, http.StatusBadRequest, dashsdk.ErrorResponse{
				Error:   dashsdk.ErrorCodeValidation,
				Details: map[string]string{v.field: v.reason},
			})
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, dashsdk.ErrorCodeInvalidLogin)
	case errors.Is(err, service.ErrNoSession):
		httpx.WriteError(w, http.StatusUnauthorized, dashsdk.ErrorCodeNoSession)
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, dashsdk.ErrorCodeForbidden)
	case errors.Is(err, service.ErrCannotDeleteSelf):
		httpx.WriteError(w, http.StatusForbidden, "cannot_delete_self")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, dashsdk.ErrorCodeNotFound)
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteJSON(w, http.StatusConflict, dashsdk.ErrorResponse{
			Error:   dashsdk.ErrorCodeConflict,
			Details: map[string]string{"email": "is already registered"},
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("err", err))
		httpx.WriteError(w, http.StatusInternalServerError, dashsdk.ErrorCodeServerError)
	}
}

func toProfileResponse(p domain.Profile) dashsdk.ProfileResponse {
	return dashsdk.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func actorFrom(p httpx.Principal) service.Actor {
	return service.Actor{ID: p.UserID, Role: domain.ParseRole(p.Role)}
}
