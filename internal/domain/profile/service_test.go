package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored profile", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Get", ctx, "u1").Return(&Profile{UserID: "u1", IsSubscriber: true}, nil)

		p, err := svc.Get(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, p.IsSubscriber)
	})

	t.Run("missing row yields unsubscribed profile", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Get", ctx, "u1").Return(nil, ErrNotFound)

		p, err := svc.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "u1", p.UserID)
		assert.False(t, p.IsSubscriber)
	})

	t.Run("repo errors propagate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Get", ctx, "u1").Return(nil, assert.AnError)

		_, err := svc.Get(ctx, "u1")
		assert.Error(t, err)
	})
}

func TestServiceIsSubscriber(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Get", ctx, "u1").Return(&Profile{UserID: "u1", IsSubscriber: false}, nil)

	sub, err := svc.IsSubscriber(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, sub)
}
