// Package journal holds the user's personal goals and memories, the context
// bundle embedded into every coaching request.
package journal

import (
	"encoding/json"
	"strings"
)

// Item is one goal or memory. Older clients stored these as plain strings,
// newer ones as {"text": ...} objects; both decode into the canonical string.
type Item string

func (i *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = Item(s)
		return nil
	}

	var wrapped struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*i = Item(wrapped.Text)
	return nil
}

func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(i))
}

// Data is the journal document as stored locally and remotely.
type Data struct {
	Goals    []Item `json:"goals"`
	Memories []Item `json:"memories"`
}

// Empty reports whether the journal holds nothing after normalization.
func (d Data) Empty() bool {
	return len(Normalize(d.Goals)) == 0 && len(Normalize(d.Memories)) == 0
}

// Normalize trims every item and drops blanks, yielding the canonical
// string list.
func Normalize(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		s := strings.TrimSpace(string(it))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ContextText renders goals and memories as the prompt block the coaching
// request embeds verbatim.
func ContextText(goals, memories []string) string {
	return "User Goals:\n" + bulleted(goals) + "\n\nImportant Memories:\n" + bulleted(memories)
}

func bulleted(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}
