package collection

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"hartlog/internal/app/server/api/http/middleware/auth"
	"hartlog/internal/domain/document"
)

type Handler struct {
	service    document.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service document.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.upsertOp(), h.upsert)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	if input.UserID != "" && input.UserID != userID {
		return nil, huma.Error403Forbidden("userId filter must match the authenticated user")
	}

	docs, err := h.service.List(ctx, input.Collection, userID)
	if err != nil {
		return nil, mapError(err)
	}

	out := listResponse{Documents: make([]documentPayload, 0, len(docs))}
	for _, doc := range docs {
		out.Documents = append(out.Documents, documentPayload{
			Handle: doc.Handle,
			Body:   doc.Body,
		})
	}
	return &listOutput{Body: out}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	doc, err := h.service.Find(ctx, input.Collection, input.Handle, userID)
	if err != nil {
		return nil, mapError(err)
	}

	return &getOutput{
		Body: documentPayload{
			Handle: doc.Handle,
			Body:   doc.Body,
		},
	}, nil
}

func (h *Handler) upsert(ctx context.Context, input *upsertInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Upsert(ctx, input.Collection, input.Handle, userID, input.RawBody)
	if err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *getInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Delete(ctx, input.Collection, input.Handle, userID)
	if err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrUnknownCollection):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, document.ErrEmptyBody):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, document.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, document.ErrForbidden):
		return huma.Error403Forbidden(err.Error())
	default:
		return err
	}
}
