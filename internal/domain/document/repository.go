package document

import (
	"context"
)

type Repository interface {
	List(ctx context.Context, collection, ownerID string) ([]Document, error)
	Get(ctx context.Context, collection, handle string) (*Document, error)
	Upsert(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, collection, handle string) error
}
