package fitlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Format(t *testing.T) {
	id := NewID()
	require.Regexp(t, `^\d+-[0-9a-z]{7}$`, id)
}

func TestNewID_NoCollisions(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestEnsureUniqueIDs(t *testing.T) {
	tests := []struct {
		name        string
		list        []Record
		wantChanged bool
	}{
		{
			name:        "empty list",
			list:        nil,
			wantChanged: false,
		},
		{
			name: "already unique",
			list: []Record{
				{ID: "a"}, {ID: "b"}, {ID: "c"},
			},
			wantChanged: false,
		},
		{
			name: "missing id assigned",
			list: []Record{
				{ID: "a"}, {ID: ""},
			},
			wantChanged: true,
		},
		{
			name: "duplicate reallocated",
			list: []Record{
				{ID: "a"}, {ID: "a"}, {ID: "b"},
			},
			wantChanged: true,
		},
		{
			name: "all duplicates",
			list: []Record{
				{ID: "x"}, {ID: "x"}, {ID: "x"},
			},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed := EnsureUniqueIDs(tt.list)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Len(t, out, len(tt.list))

			seen := make(map[string]struct{})
			for _, rec := range out {
				require.NotEmpty(t, rec.ID)
				_, dup := seen[rec.ID]
				require.False(t, dup, "duplicate id %s survived", rec.ID)
				seen[rec.ID] = struct{}{}
			}
		})
	}
}

func TestEnsureUniqueIDs_Idempotent(t *testing.T) {
	list := []Record{{ID: "a"}, {ID: "a"}, {ID: ""}}

	once, changed := EnsureUniqueIDs(list)
	require.True(t, changed)

	twice, changed := EnsureUniqueIDs(once)
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestEnsureUniqueIDs_KeepsFirstOccurrence(t *testing.T) {
	d := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	list := []Record{
		{ID: "a", Date: d, Feedback: "first"},
		{ID: "a", Date: d, Feedback: "second"},
	}

	out, changed := EnsureUniqueIDs(list)
	require.True(t, changed)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "first", out[0].Feedback)
	assert.NotEqual(t, "a", out[1].ID)
	assert.Equal(t, "second", out[1].Feedback)
}
