package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"hartlog/internal/app/client/config"
)

// RemoteStore is the per-user cloud document collection the sync engine
// writes to. Documents are keyed by an opaque handle and queried by owner.
type RemoteStore interface {
	Query(ctx context.Context, collection, userID string) ([]RemoteDocument, error)
	Get(ctx context.Context, collection, handle string) (*RemoteDocument, error)
	Upsert(ctx context.Context, collection, handle string, body any) error
	Delete(ctx context.Context, collection, handle string) error
}

// RemoteDocument is one stored document plus the handle it lives under.
type RemoteDocument struct {
	Handle string          `json:"handle"`
	Body   json.RawMessage `json:"body"`
}

// Profile is the per-user entitlement record.
type Profile struct {
	UserID       string `json:"user_id"`
	IsSubscriber bool   `json:"is_subscriber"`
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "HartLog-Client/1.0",
	}, nil
}

// SetToken sets the bearer token attached to authenticated requests.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck verifies the server is reachable.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Query(ctx context.Context, collection, userID string) ([]RemoteDocument, error) {
	path := fmt.Sprintf("/api/collections/%s/documents?userId=%s",
		url.PathEscape(collection), url.QueryEscape(userID))
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Documents []RemoteDocument `json:"documents"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

func (h *httpClient) Get(ctx context.Context, collection, handle string) (*RemoteDocument, error) {
	path := fmt.Sprintf("/api/collections/%s/documents/%s",
		url.PathEscape(collection), url.PathEscape(handle))
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var doc RemoteDocument
	if err := h.parseResponse(resp, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (h *httpClient) Upsert(ctx context.Context, collection, handle string, body any) error {
	path := fmt.Sprintf("/api/collections/%s/documents/%s",
		url.PathEscape(collection), url.PathEscape(handle))
	resp, err := h.doRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Delete(ctx context.Context, collection, handle string) error {
	path := fmt.Sprintf("/api/collections/%s/documents/%s",
		url.PathEscape(collection), url.PathEscape(handle))
	resp, err := h.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// FetchProfile reads the caller's entitlement flags.
func (h *httpClient) FetchProfile(ctx context.Context) (*Profile, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := h.parseResponse(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Chat sends a coaching chat request and returns the generated feedback
// text. A 402 maps to ErrSubscriptionRequired; every other failure maps to
// ErrCoachFailed carrying the server's detail message when present.
func (h *httpClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/ai/groq-chat", req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCoachFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return "", ErrSubscriptionRequired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if detail := readDetail(resp.Body); detail != "" {
			return "", fmt.Errorf("%w: %s", ErrCoachFailed, detail)
		}
		return "", fmt.Errorf("%w: server returned %d", ErrCoachFailed, resp.StatusCode)
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrCoachFailed, err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "No feedback received.", nil
	}
	return out.Choices[0].Message.Content, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// parseResponse closes the body, checks the status and decodes into out when
// non-nil.
func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if detail := readDetail(resp.Body); detail != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, detail)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
