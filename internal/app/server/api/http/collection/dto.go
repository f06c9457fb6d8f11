package collection

import (
	"encoding/json"
)

type listInput struct {
	Collection string `path:"collection" example:"workoutLogs" doc:"Collection name"`
	UserID     string `query:"userId" doc:"Owner filter, must match the authenticated user"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Documents []documentPayload `json:"documents"`
}

type documentPayload struct {
	Handle string          `json:"handle"`
	Body   json.RawMessage `json:"body"`
}

type getInput struct {
	Collection string `path:"collection" example:"userJournal" doc:"Collection name"`
	Handle     string `path:"handle" doc:"Document handle"`
}

type getOutput struct {
	Body documentPayload
}

type upsertInput struct {
	Collection string `path:"collection" example:"workoutLogs" doc:"Collection name"`
	Handle     string `path:"handle" doc:"Document handle"`
	RawBody    []byte `contentType:"application/json"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
