package journal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Item
	}{
		{
			name: "plain strings",
			raw:  `["run a 5k","drink water"]`,
			want: []Item{"run a 5k", "drink water"},
		},
		{
			name: "text wrappers",
			raw:  `[{"text":"run a 5k"},{"text":"drink water"}]`,
			want: []Item{"run a 5k", "drink water"},
		},
		{
			name: "mixed",
			raw:  `["run a 5k",{"text":"drink water"}]`,
			want: []Item{"run a 5k", "drink water"},
		},
		{
			name: "wrapper without text field",
			raw:  `[{"note":"x"}]`,
			want: []Item{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Item
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItem_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Data{Goals: []Item{"a"}, Memories: []Item{"b"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"goals":["a"],"memories":["b"]}`, string(out))
}

func TestNormalize(t *testing.T) {
	got := Normalize([]Item{"  run a 5k  ", "", "   ", "sleep more"})
	assert.Equal(t, []string{"run a 5k", "sleep more"}, got)
}

func TestContextText(t *testing.T) {
	got := ContextText([]string{"run a 5k"}, nil)
	want := "User Goals:\n- run a 5k\n\nImportant Memories:\nNone"
	assert.Equal(t, want, got)

	assert.Equal(t,
		"User Goals:\nNone\n\nImportant Memories:\nNone",
		ContextText(nil, nil))
}

func TestData_Empty(t *testing.T) {
	assert.True(t, Data{}.Empty())
	assert.True(t, Data{Goals: []Item{"  "}}.Empty())
	assert.False(t, Data{Memories: []Item{"pr at 225"}}.Empty())
}
