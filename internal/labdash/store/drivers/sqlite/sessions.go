package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	err := r.q.CreateSession(ctx, gen.CreateSessionParams{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt.Unix(),
		CreatedAt: s.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	row, err := r.q.GetSession(ctx, id)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return mapSession(row), nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id string) error {
	return r.q.RevokeSession(ctx, id)
}

func (r *sessionsRepo) RevokeUserSessions(ctx context.Context, userID, keepID string) error {
	return r.q.RevokeUserSessions(ctx, gen.RevokeUserSessionsParams{UserID: userID, KeepID: keepID})
}

func (r *sessionsRepo) DeleteStaleSessions(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteStaleSessions(ctx, now.Unix())
}
