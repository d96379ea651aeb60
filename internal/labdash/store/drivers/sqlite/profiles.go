package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/aussiebroadwan/labdash/internal/labdash/store/drivers/sqlite/gen"
)

type profilesRepo struct {
	q *gen.Queries
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	row, err := r.q.GetProfileByID(ctx, id)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return mapProfile(row), nil
}

func (r *profilesRepo) GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error) {
	row, err := r.q.GetProfileByEmail(ctx, email)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return mapProfile(row), nil
}

func (r *profilesRepo) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.q.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProfile(row))
	}
	return out, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	err := r.q.CreateProfile(ctx, gen.CreateProfileParams{
		ID:           p.ID,
		Email:        p.Email,
		FullName:     p.FullName,
		Role:         string(p.Role),
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt.UTC(),
		UpdatedAt:    p.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *profilesRepo) UpdateFullName(ctx context.Context, id, fullName string, now time.Time) error {
	return rowsOrNotFound(r.q.UpdateProfileFullName(ctx, gen.UpdateProfileFullNameParams{
		FullName:  fullName,
		UpdatedAt: now.UTC(),
		ID:        id,
	}))
}

func (r *profilesRepo) UpdateRole(ctx context.Context, id string, role domain.Role, now time.Time) error {
	return rowsOrNotFound(r.q.UpdateProfileRole(ctx, gen.UpdateProfileRoleParams{
		Role:      string(role),
		UpdatedAt: now.UTC(),
		ID:        id,
	}))
}

func (r *profilesRepo) UpdatePasswordHash(ctx context.Context, id, hash string, now time.Time) error {
	return rowsOrNotFound(r.q.UpdateProfilePasswordHash(ctx, gen.UpdateProfilePasswordHashParams{
		PasswordHash: hash,
		UpdatedAt:    now.UTC(),
		ID:           id,
	}))
}

func (r *profilesRepo) DeleteProfile(ctx context.Context, id string) error {
	return rowsOrNotFound(r.q.DeleteProfile(ctx, id))
}

func (r *profilesRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountProfiles(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
