package profile

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"hartlog/internal/app/server/api/http/middleware/auth"
	"hartlog/internal/domain/profile"
)

type Handler struct {
	service    profile.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service profile.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &getOutput{Body: *p}, nil
}
