package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"hartlog/internal/domain/profile"
)

type ProfileRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewProfileRepository(db *Storage, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:  db,
		log: log.With("component", "profile_repository"),
	}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*profile.Profile, error) {
	const query = `SELECT id, is_subscriber FROM users WHERE id = $1`

	var p profile.Profile
	err := r.db.Pool().QueryRow(ctx, query, userID).Scan(&p.UserID, &p.IsSubscriber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
