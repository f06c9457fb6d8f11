package profile

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	IsSubscriber(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "profile_service"),
	}
}

// Get returns the profile for a user. A user without a stored row still has
// a profile, just without entitlements.
func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) IsSubscriber(ctx context.Context, userID string) (bool, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return p.IsSubscriber, nil
}
