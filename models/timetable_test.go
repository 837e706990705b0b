package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	s := NewSchedule()
	require.Len(t, s, 6)
	for _, day := range WeekDays {
		slots, ok := s[day]
		assert.True(t, ok, "day %s must be present", day)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	}
}

func TestScheduleSlotsFor(t *testing.T) {
	s := Schedule{Monday: {{Time: "9:00-10:00", Subject: "Maths"}}}

	assert.Len(t, s.SlotsFor(Monday), 1)
	// Never nil, even for a key the map does not carry.
	assert.NotNil(t, s.SlotsFor(Friday))
	assert.Empty(t, s.SlotsFor(Friday))
}

func TestScheduleTotalSlotCount(t *testing.T) {
	t.Run("Empty Schedule", func(t *testing.T) {
		assert.Zero(t, NewSchedule().TotalSlotCount())
	})

	t.Run("Counts Across Days", func(t *testing.T) {
		s := NewSchedule()
		s[Monday] = []TimeSlot{{Subject: "a"}, {Subject: "b"}}
		s[Saturday] = []TimeSlot{{Subject: "c"}}
		assert.Equal(t, 3, s.TotalSlotCount())
	})
}

func TestScheduleNormalize(t *testing.T) {
	s := Schedule{
		Monday:   {{Time: "9:00-10:00", Subject: "Maths"}},
		"Sunday": {{Time: "9:00-10:00", Subject: "Nope"}},
	}
	n := s.Normalize()

	require.Len(t, n, 6)
	assert.Len(t, n[Monday], 1)
	_, hasSunday := n["Sunday"]
	assert.False(t, hasSunday)

	// Normalize copies: mutating the result leaves the source alone.
	n[Monday][0].Subject = "Changed"
	assert.Equal(t, "Maths", s[Monday][0].Subject)
}

func TestCopySlots(t *testing.T) {
	src := []TimeSlot{{Time: "9:00-10:00", Subject: "Physics", Room: "101"}}
	dst := CopySlots(src)

	require.Len(t, dst, 1)
	dst[0].Room = "202"
	assert.Equal(t, "101", src[0].Room)
}
