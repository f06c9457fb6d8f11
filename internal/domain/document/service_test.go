package document

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, collection, ownerID string) ([]Document, error) {
	args := m.Called(ctx, collection, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Document), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, collection, handle string) (*Document, error) {
	args := m.Called(ctx, collection, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Document), args.Error(1)
}

func (m *MockRepository) Upsert(ctx context.Context, doc *Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, collection, handle string) error {
	args := m.Called(ctx, collection, handle)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.Default())
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown collection rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		_, err := svc.List(ctx, "secrets", "u1")
		assert.ErrorIs(t, err, ErrUnknownCollection)
		repo.AssertNotCalled(t, "List")
	})

	t.Run("lists owner documents", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		docs := []Document{{Collection: CollectionWorkoutLogs, Handle: "u1_a", OwnerID: "u1"}}
		repo.On("List", ctx, CollectionWorkoutLogs, "u1").Return(docs, nil)

		got, err := svc.List(ctx, CollectionWorkoutLogs, "u1")
		require.NoError(t, err)
		assert.Equal(t, docs, got)
	})
}

func TestServiceFind(t *testing.T) {
	ctx := context.Background()

	t.Run("owner mismatch is forbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Get", ctx, CollectionUserJournal, "u2").Return(
			&Document{Collection: CollectionUserJournal, Handle: "u2", OwnerID: "u2"}, nil)

		_, err := svc.Find(ctx, CollectionUserJournal, "u2", "u1")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing document propagates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Get", ctx, CollectionUserJournal, "u1").Return(nil, ErrNotFound)

		_, err := svc.Find(ctx, CollectionUserJournal, "u1", "u1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceUpsert(t *testing.T) {
	ctx := context.Background()
	body := json.RawMessage(`{"id":"a"}`)

	t.Run("creates when absent", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Get", ctx, CollectionWorkoutLogs, "u1_a").Return(nil, ErrNotFound)
		repo.On("Upsert", ctx, mock.MatchedBy(func(doc *Document) bool {
			return doc.Handle == "u1_a" && doc.OwnerID == "u1" && string(doc.Body) == `{"id":"a"}`
		})).Return(nil)

		err := svc.Upsert(ctx, CollectionWorkoutLogs, "u1_a", "u1", body)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("refuses to overwrite another user's document", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Get", ctx, CollectionWorkoutLogs, "u2_a").Return(
			&Document{Collection: CollectionWorkoutLogs, Handle: "u2_a", OwnerID: "u2"}, nil)

		err := svc.Upsert(ctx, CollectionWorkoutLogs, "u2_a", "u1", body)
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Upsert")
	})

	t.Run("empty body rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		err := svc.Upsert(ctx, CollectionWorkoutLogs, "u1_a", "u1", nil)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes own document", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Get", ctx, CollectionEatingLogs, "u1_a").Return(
			&Document{Collection: CollectionEatingLogs, Handle: "u1_a", OwnerID: "u1"}, nil)
		repo.On("Delete", ctx, CollectionEatingLogs, "u1_a").Return(nil)

		err := svc.Delete(ctx, CollectionEatingLogs, "u1_a", "u1")
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("owner mismatch is forbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)

		repo.On("Get", ctx, CollectionEatingLogs, "u2_a").Return(
			&Document{Collection: CollectionEatingLogs, Handle: "u2_a", OwnerID: "u2"}, nil)

		err := svc.Delete(ctx, CollectionEatingLogs, "u2_a", "u1")
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Delete")
	})
}
