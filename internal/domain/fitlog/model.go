package fitlog

import "time"

// SubmitState tracks an in-flight coaching request for a single record. It
// lives on the record itself rather than in a side table keyed by id, so the
// state disappears together with the record.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	SubmitPending
)

// Entry is one category-specific sub-record of a log: an exercise row for
// workout logs, a meal for eating logs. All detail fields are free-form user
// text; which of them the client presents depends on the entry kind.
type Entry struct {
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	Sets     string `json:"sets,omitempty"`
	Reps     string `json:"reps,omitempty"`
	Weight   string `json:"weight,omitempty"`
	Duration string `json:"duration,omitempty"`
	Distance string `json:"distance,omitempty"`
	Pace     string `json:"pace,omitempty"`
	Calories string `json:"calories,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Record is one dated journal entry. ID is the durable identity used for
// merge, update and delete; RemoteHandle is the key of the corresponding
// remote document once the record has been synced, and must be reused on
// every subsequent remote write.
type Record struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"userId,omitempty"`
	RemoteHandle string    `json:"remoteHandle,omitempty"`
	Date         time.Time `json:"date"`
	Collapsed    bool      `json:"collapsed"`
	Entries      []Entry   `json:"entries"`
	Feedback     string    `json:"feedback,omitempty"`

	// submit is runtime-only state and never serialized.
	submit SubmitState
}

// NewRecord creates an empty record dated now with a freshly allocated id.
func NewRecord() Record {
	return Record{
		ID:      NewID(),
		Date:    time.Now(),
		Entries: []Entry{},
	}
}

// Handle returns the remote document key for the record: the stored handle
// when one exists, otherwise the composed <ownerID>_<id> fallback.
func (r Record) Handle(ownerID string) string {
	if r.RemoteHandle != "" {
		return r.RemoteHandle
	}
	return ownerID + "_" + r.ID
}

// Submit reports the record's coaching request state.
func (r Record) Submit() SubmitState {
	return r.submit
}

// WithSubmit returns a copy of the record with the given submit state.
func (r Record) WithSubmit(s SubmitState) Record {
	r.submit = s
	return r
}

// Find returns the index of the record with the given id, or -1.
func Find(list []Record, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
