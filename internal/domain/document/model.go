package document

import (
	"encoding/json"
	"time"
)

// Collections this store accepts. Anything else is rejected before it
// reaches the database.
const (
	CollectionWorkoutLogs = "workoutLogs"
	CollectionEatingLogs  = "eatingLogs"
	CollectionUserJournal = "userJournal"
)

var allowedCollections = map[string]struct{}{
	CollectionWorkoutLogs: {},
	CollectionEatingLogs:  {},
	CollectionUserJournal: {},
}

// ValidCollection reports whether documents may be stored under the name.
func ValidCollection(name string) bool {
	_, ok := allowedCollections[name]
	return ok
}

// Document is one stored JSON body, keyed by collection and handle and
// owned by a single user.
type Document struct {
	Collection string          `json:"collection"`
	Handle     string          `json:"handle"`
	OwnerID    string          `json:"user_id"`
	Body       json.RawMessage `json:"body"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
