package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"hartlog/internal/domain/document"
)

type DocumentRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewDocumentRepository(db *Storage, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:  db,
		log: log.With("component", "document_repository"),
	}
}

func (r *DocumentRepository) List(ctx context.Context, collection, ownerID string) ([]document.Document, error) {
	const query = `
		SELECT collection, handle, user_id, body, updated_at
		FROM documents
		WHERE collection = $1 AND user_id = $2
		ORDER BY updated_at DESC`

	rows, err := r.db.Pool().Query(ctx, query, collection, ownerID)
	if err != nil {
		r.log.Error("failed to list documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var doc document.Document
		if err := rows.Scan(&doc.Collection, &doc.Handle, &doc.OwnerID, &doc.Body, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Get(ctx context.Context, collection, handle string) (*document.Document, error) {
	const query = `
		SELECT collection, handle, user_id, body, updated_at
		FROM documents
		WHERE collection = $1 AND handle = $2`

	var doc document.Document
	err := r.db.Pool().QueryRow(ctx, query, collection, handle).
		Scan(&doc.Collection, &doc.Handle, &doc.OwnerID, &doc.Body, &doc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, document.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) Upsert(ctx context.Context, doc *document.Document) error {
	const query = `
		INSERT INTO documents (collection, handle, user_id, body, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (collection, handle)
		DO UPDATE SET user_id = EXCLUDED.user_id, body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

	_, err := r.db.Pool().Exec(ctx, query,
		doc.Collection, doc.Handle, doc.OwnerID, doc.Body, doc.UpdatedAt)
	if err != nil {
		r.log.Error("failed to upsert document",
			"collection", doc.Collection, "handle", doc.Handle, "error", err)
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, collection, handle string) error {
	const query = `DELETE FROM documents WHERE collection = $1 AND handle = $2`

	tag, err := r.db.Pool().Exec(ctx, query, collection, handle)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}
