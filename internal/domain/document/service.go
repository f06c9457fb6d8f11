package document

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, collection, ownerID string) ([]Document, error)
	Find(ctx context.Context, collection, handle, ownerID string) (*Document, error)
	Upsert(ctx context.Context, collection, handle, ownerID string, body json.RawMessage) error
	Delete(ctx context.Context, collection, handle, ownerID string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "document_service"),
	}
}

func (s *Service) List(ctx context.Context, collection, ownerID string) ([]Document, error) {
	if !ValidCollection(collection) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	docs, err := s.repo.List(ctx, collection, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Find returns a document, checking it belongs to the caller.
func (s *Service) Find(ctx context.Context, collection, handle, ownerID string) (*Document, error) {
	if !ValidCollection(collection) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	doc, err := s.repo.Get(ctx, collection, handle)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != ownerID {
		s.log.Warn("cross-user document access denied",
			"collection", collection, "handle", handle)
		return nil, ErrForbidden
	}
	return doc, nil
}

// Upsert stores the full body under (collection, handle). An existing
// document owned by someone else is never overwritten.
func (s *Service) Upsert(ctx context.Context, collection, handle, ownerID string, body json.RawMessage) error {
	if !ValidCollection(collection) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}

	existing, err := s.repo.Get(ctx, collection, handle)
	if err == nil && existing.OwnerID != ownerID {
		s.log.Warn("cross-user document write denied",
			"collection", collection, "handle", handle)
		return ErrForbidden
	}

	doc := &Document{
		Collection: collection,
		Handle:     handle,
		OwnerID:    ownerID,
		Body:       body,
		UpdatedAt:  time.Now(),
	}
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, collection, handle, ownerID string) error {
	if !ValidCollection(collection) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	doc, err := s.repo.Get(ctx, collection, handle)
	if err != nil {
		return err
	}
	if doc.OwnerID != ownerID {
		s.log.Warn("cross-user document delete denied",
			"collection", collection, "handle", handle)
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, collection, handle); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
