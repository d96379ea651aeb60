package domain

import "time"

// Profile is a dashboard user. Email is unique and Role is stored as parsed.
type Profile struct {
	ID           string
	Email        string
	FullName     string
	Role         Role
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is what the header shows; it falls back to the email.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}

// Visible is the module set for this profile.
func (p Profile) Visible() ModuleSet { return VisibleModules(p.Role) }
