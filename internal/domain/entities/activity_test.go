package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_HasParticipant(t *testing.T) {
	a := Activity{Participants: []string{"michael@mergington.edu", "daniel@mergington.edu"}}

	assert.True(t, a.HasParticipant("michael@mergington.edu"))
	assert.False(t, a.HasParticipant("Michael@mergington.edu"), "match is case-sensitive")
	assert.False(t, a.HasParticipant(" michael@mergington.edu"), "match is whitespace-sensitive")
}

func TestActivity_SpotsLeft(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		want     int
	}{
		{"room left", Activity{MaxParticipants: 12, Participants: []string{"a", "b"}}, 10},
		{"full", Activity{MaxParticipants: 2, Participants: []string{"a", "b"}}, 0},
		{"over capacity", Activity{MaxParticipants: 1, Participants: []string{"a", "b"}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.activity.SpotsLeft())
		})
	}
}

func TestActivity_Clone(t *testing.T) {
	orig := Activity{Description: "d", Participants: []string{"a@x"}}
	c := orig.Clone()
	c.Participants[0] = "changed"

	assert.Equal(t, "a@x", orig.Participants[0])
}

func TestActivity_CloneEncodesEmptyRosterAsArray(t *testing.T) {
	c := Activity{Description: "d", Schedule: "s", MaxParticipants: 3}.Clone()

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"d","schedule":"s","max_participants":3,"participants":[]}`, string(raw))
}
