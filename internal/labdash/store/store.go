package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and hand out
// sub-repositories; nested transactions are not supported.
type Store interface {
	Profiles() Profiles
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Profiles interface {
	GetProfileByID(ctx context.Context, id string) (domain.Profile, error)

	// GetProfileByEmail matches case-insensitively.
	GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error)

	// ListProfiles returns every profile ordered by full name.
	ListProfiles(ctx context.Context) ([]domain.Profile, error)

	// CreateProfile inserts p. Returns ErrAlreadyExists on a duplicate email.
	CreateProfile(ctx context.Context, p domain.Profile) error

	UpdateFullName(ctx context.Context, id, fullName string, now time.Time) error
	UpdateRole(ctx context.Context, id string, role domain.Role, now time.Time) error
	UpdatePasswordHash(ctx context.Context, id, hash string, now time.Time) error

	// DeleteProfile cascades to sessions.
	DeleteProfile(ctx context.Context, id string) error

	// IsEmpty returns true if there are no profiles.
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSession(ctx context.Context, id string) (domain.Session, error)

	RevokeSession(ctx context.Context, id string) error

	// RevokeUserSessions revokes every session of userID except keepID.
	RevokeUserSessions(ctx context.Context, userID, keepID string) error

	// DeleteStaleSessions removes revoked and expired rows and reports how
	// many went.
	DeleteStaleSessions(ctx context.Context, now time.Time) (int64, error)
}
