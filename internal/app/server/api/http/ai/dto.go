package ai

import (
	"encoding/json"
)

type chatInput struct {
	RawBody []byte `contentType:"application/json"`
}

type chatOutput struct {
	Body json.RawMessage
}
