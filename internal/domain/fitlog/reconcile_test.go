package fitlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
}

func TestReconcile_BothEmpty(t *testing.T) {
	out, changed := Reconcile(nil, nil)

	require.Len(t, out, 1)
	assert.False(t, changed)
	assert.NotEmpty(t, out[0].ID)
	assert.Empty(t, out[0].Entries)
	assert.Empty(t, out[0].Feedback)
	assert.WithinDuration(t, time.Now(), out[0].Date, time.Minute)
}

func TestReconcile_RemoteWinsWholesale(t *testing.T) {
	local := []Record{
		{ID: "local-1", Date: day(1)},
		{ID: "local-2", Date: day(2)},
		{ID: "shared", Date: day(3), Feedback: "local copy"},
	}
	remote := []Record{
		{ID: "shared", Date: day(1), Feedback: "remote copy"},
	}

	out, changed := Reconcile(local, remote)

	require.Len(t, out, 1)
	assert.False(t, changed)
	assert.Equal(t, "shared", out[0].ID)
	// Source selection, not field merge: the older remote copy still wins.
	assert.Equal(t, "remote copy", out[0].Feedback)
}

func TestReconcile_LocalFallback(t *testing.T) {
	local := []Record{{ID: "a", Date: day(1)}, {ID: "b", Date: day(2)}}

	out, changed := Reconcile(local, nil)

	assert.False(t, changed)
	assert.Equal(t, local, out)
}

func TestReconcile_DedupeKeepsLaterDate(t *testing.T) {
	tests := []struct {
		name         string
		remote       []Record
		wantFeedback string
	}{
		{
			name: "later date wins regardless of order",
			remote: []Record{
				{ID: "a", Date: day(5), Feedback: "newer"},
				{ID: "a", Date: day(1), Feedback: "older"},
			},
			wantFeedback: "newer",
		},
		{
			name: "tie keeps last seen",
			remote: []Record{
				{ID: "a", Date: day(5), Feedback: "first"},
				{ID: "a", Date: day(5), Feedback: "second"},
			},
			wantFeedback: "second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed := Reconcile(nil, tt.remote)

			require.Len(t, out, 1)
			assert.False(t, changed)
			assert.Equal(t, "a", out[0].ID)
			assert.Equal(t, tt.wantFeedback, out[0].Feedback)
		})
	}
}

func TestReconcile_AssignsMissingIDs(t *testing.T) {
	remote := []Record{
		{ID: "", Date: day(1)},
		{ID: "b", Date: day(2)},
	}

	out, changed := Reconcile(nil, remote)

	require.Len(t, out, 2)
	assert.True(t, changed, "id assignment must be reported for write-through")
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}

func TestReconcile_PreservesOrder(t *testing.T) {
	remote := []Record{
		{ID: "c", Date: day(3)},
		{ID: "a", Date: day(1)},
		{ID: "b", Date: day(2)},
	}

	out, _ := Reconcile(nil, remote)

	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "b", out[2].ID)
}

func TestReconcile_IdempotentOnOwnOutput(t *testing.T) {
	remote := []Record{
		{ID: "a", Date: day(1)},
		{ID: "a", Date: day(2)},
		{ID: "", Date: day(3)},
	}

	once, _ := Reconcile(nil, remote)
	twice, changed := Reconcile(nil, once)

	assert.False(t, changed)
	assert.Equal(t, once, twice)
}
