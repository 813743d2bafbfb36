package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	start := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	t.Run("creates event with valid window", func(t *testing.T) {
		e, err := NewEvent("Spring Lunch", "Quarterly team lunch", start, end)
		require.NoError(t, err)
		assert.Equal(t, "Spring Lunch", e.Name)
		assert.NotEqual(t, "", e.ID.String())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewEvent("", "", start, end)
		assert.Error(t, err)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := NewEvent("Backwards", "", end, start)
		assert.Error(t, err)
	})

	t.Run("rejects zero-length window", func(t *testing.T) {
		_, err := NewEvent("Instant", "", start, start)
		assert.Error(t, err)
	})
}

func TestEvent_IsActiveAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	e, err := NewEvent("Lunch", "", start, end)
	require.NoError(t, err)

	tests := []struct {
		name   string
		at     time.Time
		active bool
	}{
		{"before start", start.Add(-time.Minute), false},
		{"exactly at start", start, true},
		{"mid window", start.Add(time.Hour), true},
		{"exactly at end", end, true},
		{"after end", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, e.IsActiveAt(tt.at))
		})
	}
}
