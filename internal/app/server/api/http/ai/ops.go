package ai

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) chatOp() huma.Operation {
	return huma.Operation{
		OperationID: "ai-chat",
		Method:      http.MethodPost,
		Path:        "/ai/groq-chat",
		Summary:     "Proxy a coaching chat request to the AI upstream",
		Description: "Forwards the chat body to the configured OpenAI-compatible upstream. Requires an active subscription.",
		Tags:        []string{"ai"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
