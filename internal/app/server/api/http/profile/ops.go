package profile

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-get",
		Method:      http.MethodGet,
		Path:        "/api/profile",
		Summary:     "Get the caller's profile and entitlement flags",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
