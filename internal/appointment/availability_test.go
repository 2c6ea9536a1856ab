package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailability_ReserveRelease(t *testing.T) {
	a := NewAvailability([]Slot{
		{Date: "2025-06-01", Time: "09:00"},
		{Date: "2025-06-01", Time: "10:00"},
		{Date: "2025-06-01", Time: "09:00"},
	})
	require.Equal(t, 2, a.Len())

	assert.True(t, a.IsAvailable("2025-06-01", "09:00"))
	assert.False(t, a.IsAvailable("2025-06-02", "09:00"))

	require.NoError(t, a.Reserve("2025-06-01", "09:00"))
	assert.False(t, a.IsAvailable("2025-06-01", "09:00"))
	assert.ErrorIs(t, a.Reserve("2025-06-01", "09:00"), ErrSlotUnavailable)

	a.Release("2025-06-01", "09:00")
	a.Release("2025-06-01", "09:00")
	assert.Equal(t, []Slot{
		{Date: "2025-06-01", Time: "10:00"},
		{Date: "2025-06-01", Time: "09:00"},
	}, a.Slots())
}

func TestAvailability_SlotsIsACopy(t *testing.T) {
	a := NewAvailability([]Slot{{Date: "2025-06-01", Time: "09:00"}})

	slots := a.Slots()
	slots[0].Time = "23:59"

	assert.True(t, a.IsAvailable("2025-06-01", "09:00"))
}

func TestAvailability_Empty(t *testing.T) {
	a := NewAvailability(nil)

	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.Slots())
	assert.ErrorIs(t, a.Reserve("2025-06-01", "09:00"), ErrSlotUnavailable)
}
