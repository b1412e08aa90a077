package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempobook/backend/internal/domain"
)

func TestNewAvailability(t *testing.T) {
	t.Parallel()

	a := domain.NewAvailability()

	require.Len(t, a.Weekly, 7)
	assert.Empty(t, a.SpecialDays)

	for day := 1; day <= 5; day++ {
		ds := a.Weekly[day]
		assert.True(t, ds.Enabled, "weekday %d should be enabled", day)
		assert.Equal(t, []domain.TimeSlot{{Start: "09:00", End: "17:00"}}, ds.TimeSlots)
	}
	for _, day := range []int{0, 6} {
		ds := a.Weekly[day]
		assert.False(t, ds.Enabled, "weekday %d should be disabled", day)
		assert.Empty(t, ds.TimeSlots)
	}
}

func TestWeeklyOperations(t *testing.T) {
	t.Parallel()

	t.Run("toggle weekday", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		a.ToggleWeekday(0)
		assert.True(t, a.Weekly[0].Enabled)

		a.ToggleWeekday(0)
		assert.False(t, a.Weekly[0].Enabled)

		// Toggling must not create or touch any override.
		assert.Empty(t, a.SpecialDays)
	})

	t.Run("toggle weekday out of range panics", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		assert.Panics(t, func() { a.ToggleWeekday(7) })
		assert.Panics(t, func() { a.ToggleWeekday(-1) })
	})

	t.Run("add time slot", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		a.AddTimeSlot(1)
		require.Len(t, a.Weekly[1].TimeSlots, 2)
		assert.Equal(t, domain.TimeSlot{Start: "09:00", End: "17:00"}, a.Weekly[1].TimeSlots[1])
	})

	t.Run("remove only slot keeps day enabled", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		require.NoError(t, a.RemoveTimeSlot(1, 0))
		assert.Empty(t, a.Weekly[1].TimeSlots)
		assert.True(t, a.Weekly[1].Enabled)
	})

	t.Run("remove slot out of range", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		assert.Error(t, a.RemoveTimeSlot(1, 1))
		assert.Error(t, a.RemoveTimeSlot(1, -1))
		assert.Error(t, a.RemoveTimeSlot(0, 0))
	})

	t.Run("update time slot", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		require.NoError(t, a.UpdateTimeSlot(2, 0, domain.SlotFieldStart, "08:30"))
		require.NoError(t, a.UpdateTimeSlot(2, 0, domain.SlotFieldEnd, "12:00"))
		assert.Equal(t, domain.TimeSlot{Start: "08:30", End: "12:00"}, a.Weekly[2].TimeSlots[0])

		// No start < end enforcement.
		require.NoError(t, a.UpdateTimeSlot(2, 0, domain.SlotFieldEnd, "07:00"))
		assert.Equal(t, "07:00", a.Weekly[2].TimeSlots[0].End)
	})

	t.Run("update slot bad input", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		assert.Error(t, a.UpdateTimeSlot(2, 5, domain.SlotFieldStart, "08:00"))
		assert.Error(t, a.UpdateTimeSlot(2, 0, domain.SlotField("middle"), "08:00"))
	})
}

func TestToggleSpecialDay(t *testing.T) {
	t.Parallel()

	t.Run("first toggle seeds from enabled weekday", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		// 2024-07-08 is a Monday.
		require.NoError(t, a.ToggleSpecialDay("2024-07-08"))

		ds := a.SpecialDays["2024-07-08"]
		assert.True(t, ds.Enabled)
		assert.Equal(t, a.Weekly[1].TimeSlots, ds.TimeSlots)
	})

	t.Run("first toggle on disabled weekday seeds empty", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		// 2024-07-07 is a Sunday.
		require.NoError(t, a.ToggleSpecialDay("2024-07-07"))

		ds := a.SpecialDays["2024-07-07"]
		assert.True(t, ds.Enabled)
		assert.Empty(t, ds.TimeSlots)
	})

	t.Run("second toggle flips enabled and keeps slots", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		require.NoError(t, a.ToggleSpecialDay("2024-07-08"))
		require.NoError(t, a.ToggleSpecialDay("2024-07-08"))

		ds, ok := a.SpecialDays["2024-07-08"]
		require.True(t, ok, "toggling off must not delete the override")
		assert.False(t, ds.Enabled)
		assert.Equal(t, []domain.TimeSlot{{Start: "09:00", End: "17:00"}}, ds.TimeSlots)

		require.NoError(t, a.ToggleSpecialDay("2024-07-08"))
		assert.True(t, a.SpecialDays["2024-07-08"].Enabled)
	})

	t.Run("seed is a deep copy", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		require.NoError(t, a.ToggleSpecialDay("2024-07-08"))
		require.NoError(t, a.UpdateTimeSlot(1, 0, domain.SlotFieldStart, "10:00"))

		assert.Equal(t, "09:00", a.SpecialDays["2024-07-08"].TimeSlots[0].Start,
			"editing the weekly template must not leak into the override")
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		assert.Error(t, a.ToggleSpecialDay("08/07/2024"))
		assert.Error(t, a.ToggleSpecialDay(""))
	})
}

func TestSpecialSlotOperations(t *testing.T) {
	t.Parallel()

	t.Run("add creates the override implicitly", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		require.NoError(t, a.AddSpecialTimeSlot("2024-07-08"))

		ds := a.SpecialDays["2024-07-08"]
		assert.True(t, ds.Enabled)
		assert.Equal(t, []domain.TimeSlot{{Start: "09:00", End: "17:00"}}, ds.TimeSlots)
	})

	t.Run("remove and update", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		require.NoError(t, a.AddSpecialTimeSlot("2024-07-08"))
		require.NoError(t, a.AddSpecialTimeSlot("2024-07-08"))
		require.NoError(t, a.UpdateSpecialTimeSlot("2024-07-08", 1, domain.SlotFieldStart, "18:00"))
		require.NoError(t, a.RemoveSpecialTimeSlot("2024-07-08", 0))

		ds := a.SpecialDays["2024-07-08"]
		require.Len(t, ds.TimeSlots, 1)
		assert.Equal(t, "18:00", ds.TimeSlots[0].Start)
	})

	t.Run("index out of range on absent override", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		assert.Error(t, a.RemoveSpecialTimeSlot("2024-07-08", 0))
		assert.Error(t, a.UpdateSpecialTimeSlot("2024-07-08", 0, domain.SlotFieldEnd, "18:00"))
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("no override falls back to the weekday entry", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		ds, err := a.Resolve("2024-07-08") // Monday
		require.NoError(t, err)
		assert.Equal(t, a.Weekly[1], ds)

		ds, err = a.Resolve("2024-07-07") // Sunday
		require.NoError(t, err)
		assert.False(t, ds.Enabled)
	})

	t.Run("override replaces the weekday entry wholesale", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		a.SpecialDays["2024-07-08"] = domain.DaySchedule{Enabled: false, TimeSlots: []domain.TimeSlot{}}

		ds, err := a.Resolve("2024-07-08")
		require.NoError(t, err)
		assert.Equal(t, domain.DaySchedule{Enabled: false, TimeSlots: []domain.TimeSlot{}}, ds,
			"a disabled override wins even though Monday is enabled in the template")
	})

	t.Run("override slots are not merged with the template", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		override := domain.DaySchedule{
			Enabled:   true,
			TimeSlots: []domain.TimeSlot{{Start: "13:00", End: "15:00"}},
		}
		a.SpecialDays["2024-07-08"] = override

		ds, err := a.Resolve("2024-07-08")
		require.NoError(t, err)
		assert.Equal(t, override, ds)
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()
		a := domain.NewAvailability()

		_, err := a.Resolve("not-a-date")
		assert.Error(t, err)
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("fills missing weekdays and maps", func(t *testing.T) {
		t.Parallel()
		a := &domain.Availability{
			Weekly: map[int]domain.DaySchedule{
				1: {Enabled: true},
			},
		}

		require.NoError(t, a.Normalize())
		require.Len(t, a.Weekly, 7)
		assert.NotNil(t, a.SpecialDays)
		assert.NotNil(t, a.Weekly[1].TimeSlots)
		assert.False(t, a.Weekly[0].Enabled)
	})

	t.Run("rejects bad weekday keys", func(t *testing.T) {
		t.Parallel()
		a := &domain.Availability{
			Weekly: map[int]domain.DaySchedule{7: {}},
		}
		assert.Error(t, a.Normalize())
	})

	t.Run("rejects bad special day keys", func(t *testing.T) {
		t.Parallel()
		a := &domain.Availability{
			SpecialDays: map[string]domain.DaySchedule{"someday": {}},
		}
		assert.Error(t, a.Normalize())
	})
}
