package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"hartlog/internal/app/server/api/http/middleware/auth"
	"hartlog/internal/app/server/config"
	"hartlog/internal/domain/profile"
)

// Handler relays chat requests to the upstream AI endpoint, gating them on
// the caller's subscription. The server-side API key never reaches clients.
type Handler struct {
	profiles   profile.Servicer
	client     *http.Client
	upstream   string
	apiKey     string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(profiles profile.Servicer, cfg *config.Config, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		profiles: profiles,
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
		upstream:   cfg.Coach.UpstreamURL,
		apiKey:     cfg.Coach.APIKey,
		log:        log.With("component", "ai_proxy"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.chatOp(), h.chat)
}

func (h *Handler) chat(ctx context.Context, input *chatInput) (*chatOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	subscribed, err := h.profiles.IsSubscriber(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check subscription: %w", err)
	}
	if !subscribed {
		return nil, huma.NewError(http.StatusPaymentRequired, "Pro subscription required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.upstream, bytes.NewReader(input.RawBody))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Error("upstream request failed", "error", err)
		return nil, huma.Error502BadGateway("AI upstream unavailable")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		h.log.Error("upstream returned error",
			"status", resp.StatusCode, "user_id", userID)
		return nil, huma.Error502BadGateway(fmt.Sprintf("AI upstream error (status %d)", resp.StatusCode))
	}

	return &chatOutput{Body: body}, nil
}
