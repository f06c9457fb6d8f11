package collection

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/api/collections/{collection}/documents",
		Summary:     "List the caller's documents in a collection",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-get",
		Method:      http.MethodGet,
		Path:        "/api/collections/{collection}/documents/{handle}",
		Summary:     "Get one document",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) upsertOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-upsert",
		Method:      http.MethodPut,
		Path:        "/api/collections/{collection}/documents/{handle}",
		Summary:     "Create or replace a document",
		Description: "Stores the full request body as the document under the given handle.",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-delete",
		Method:      http.MethodDelete,
		Path:        "/api/collections/{collection}/documents/{handle}",
		Summary:     "Delete a document",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
