package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorly/models"
)

func TestLevelsRoundTrip(t *testing.T) {
	labels := []string{
		"",
		"L1",
		"L1 + L2",
		"CP + CE1 + CE2",
	}
	for _, label := range labels {
		t.Run("label "+label, func(t *testing.T) {
			parts := Levels(label)
			if label == "" {
				assert.Nil(t, parts)
				return
			}
			assert.Equal(t, label, JoinLevels(parts))
		})
	}
}

func TestHasLevel(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		target string
		want   bool
	}{
		{name: "single match", level: "L1", target: "L1", want: true},
		{name: "single mismatch", level: "L1", target: "L2", want: false},
		{name: "composite first", level: "L1 + L2", target: "L1", want: true},
		{name: "composite second", level: "L1 + L2", target: "L2", want: true},
		{name: "composite absent", level: "L1 + L2", target: "L3", want: false},
		{name: "case mismatch is not a match", level: "L1", target: "l1", want: false},
		{name: "whitespace is not trimmed", level: "L1", target: " L1", want: false},
		{name: "no level never matches", level: "", target: "L1", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.Session{Level: tt.level}
			assert.Equal(t, tt.want, HasLevel(s, tt.target))
		})
	}
}
