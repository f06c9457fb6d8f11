package fitlog

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const idSuffixLen = 7

// NewID allocates a record identifier: millisecond timestamp plus a short
// base-36 random suffix. Two calls in the same process collide only if both
// the millisecond and all seven random digits match.
func NewID() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('-')
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < idSuffixLen; i++ {
		b.WriteByte(digits[rand.Intn(len(digits))])
	}
	return b.String()
}

// EnsureUniqueIDs assigns a fresh id to every record that lacks one and
// re-allocates on duplicates, checked against the ids already seen in this
// pass. It returns the corrected list and whether anything changed; running
// it on an already-unique list changes nothing.
func EnsureUniqueIDs(list []Record) ([]Record, bool) {
	seen := make(map[string]struct{}, len(list))
	out := make([]Record, len(list))
	changed := false

	for i, rec := range list {
		id := rec.ID
		if id == "" {
			id = NewID()
			changed = true
		}
		for {
			if _, dup := seen[id]; !dup {
				break
			}
			id = NewID()
			changed = true
		}
		seen[id] = struct{}{}
		rec.ID = id
		out[i] = rec
	}

	return out, changed
}
