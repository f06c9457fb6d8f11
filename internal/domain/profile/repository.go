package profile

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, userID string) (*Profile, error)
}
