package collection

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"hartlog/internal/app/server/api/http/middleware/auth"
	"hartlog/internal/domain/document"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, collection, ownerID string) ([]document.Document, error) {
	args := m.Called(ctx, collection, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, collection, handle, ownerID string) (*document.Document, error) {
	args := m.Called(ctx, collection, handle, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockService) Upsert(ctx context.Context, collection, handle, ownerID string, body json.RawMessage) error {
	args := m.Called(ctx, collection, handle, ownerID, body)
	return args.Error(0)
}

func (m *MockService) Delete(ctx context.Context, collection, handle, ownerID string) error {
	args := m.Called(ctx, collection, handle, ownerID)
	return args.Error(0)
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestHandlerList(t *testing.T) {
	t.Run("requires auth", func(t *testing.T) {
		h := NewHandler(new(MockService), slog.Default(), huma.Middlewares{})

		_, err := h.list(context.Background(), &listInput{Collection: "workoutLogs"})
		require.Error(t, err)
	})

	t.Run("rejects foreign userId filter", func(t *testing.T) {
		h := NewHandler(new(MockService), slog.Default(), huma.Middlewares{})

		_, err := h.list(authedCtx("u1"), &listInput{Collection: "workoutLogs", UserID: "u2"})
		require.Error(t, err)
	})

	t.Run("returns caller documents", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		ctx := authedCtx("u1")
		svc.On("List", mock.Anything, "workoutLogs", "u1").Return([]document.Document{
			{Handle: "u1_a", OwnerID: "u1", Body: json.RawMessage(`{"id":"a"}`)},
		}, nil)

		out, err := h.list(ctx, &listInput{Collection: "workoutLogs", UserID: "u1"})
		require.NoError(t, err)
		require.Len(t, out.Body.Documents, 1)
		assert.Equal(t, "u1_a", out.Body.Documents[0].Handle)
	})
}

func TestHandlerUpsert(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), huma.Middlewares{})

	body := []byte(`{"id":"a","userId":"u1"}`)
	svc.On("Upsert", mock.Anything, "eatingLogs", "u1_a", "u1", json.RawMessage(body)).Return(nil)

	out, err := h.upsert(authedCtx("u1"), &upsertInput{
		Collection: "eatingLogs",
		Handle:     "u1_a",
		RawBody:    body,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	svc.AssertExpectations(t)
}

func TestHandlerDelete(t *testing.T) {
	t.Run("maps not found", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		svc.On("Delete", mock.Anything, "eatingLogs", "u1_x", "u1").Return(document.ErrNotFound)

		_, err := h.delete(authedCtx("u1"), &getInput{Collection: "eatingLogs", Handle: "u1_x"})
		require.Error(t, err)
	})

	t.Run("deletes", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), huma.Middlewares{})

		svc.On("Delete", mock.Anything, "eatingLogs", "u1_a", "u1").Return(nil)

		out, err := h.delete(authedCtx("u1"), &getInput{Collection: "eatingLogs", Handle: "u1_a"})
		require.NoError(t, err)
		assert.Equal(t, "Ok", out.Body.Status)
	})
}
