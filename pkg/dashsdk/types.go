package dashsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse is the body of simple success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Session
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// ProfileResponse is the public view of a profile. The password hash never
// leaves the server.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionResponse is the "session ready" payload: who is signed in and which
// dashboard modules they may see.
type SessionResponse struct {
	Profile ProfileResponse `json:"profile"`
	Modules []string        `json:"modules"`
}

// CanSee reports whether module is among the visible modules.
func (s SessionResponse) CanSee(module string) bool {
	for _, m := range s.Modules {
		if m == module {
			return true
		}
	}
	return false
}

// ============================================================================
// Profile self-service
// ============================================================================

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirm_password,omitempty" validate:"omitempty,max=128"`
}

// ============================================================================
// User administration
// ============================================================================

type UsersResponse struct {
	Users []ProfileResponse `json:"users"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	FullName string `json:"full_name" validate:"required,max=120"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserRequest changes only the fields that are present.
type UpdateUserRequest struct {
	UserID   string  `json:"user_id" validate:"required"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=120"`
	Role     *string `json:"role,omitempty"`
}

type DeleteUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type ResetUserPasswordRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=128"`
}

// UserResponse wraps a single profile returned by admin writes.
type UserResponse struct {
	Message string          `json:"message"`
	User    ProfileResponse `json:"user"`
}

// ============================================================================
// Bootstrap
// ============================================================================

type BootstrapRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	FullName string `json:"full_name" validate:"required,max=120"`
}

type BootstrapResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// ============================================================================
// Dashboard
// ============================================================================

type DashboardSummaryResponse struct {
	DosisAltasPendientes  int `json:"dosis_altas_pendientes"`
	SolicitudesPendientes int `json:"solicitudes_pendientes"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
