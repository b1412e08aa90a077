package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date key format used by special days.
const DateLayout = "2006-01-02"

const (
	defaultSlotStart = "09:00"
	defaultSlotEnd   = "17:00"
)

// TimeSlot is a bookable window within a day. Start and End are "HH:MM"
// strings; the model does not enforce Start < End or slot non-overlap.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotField string

const (
	SlotFieldStart SlotField = "start"
	SlotFieldEnd   SlotField = "end"
)

// DaySchedule describes one day. When Enabled is false, TimeSlots may still
// be non-empty but has no effect.
type DaySchedule struct {
	Enabled   bool       `json:"enabled"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Availability holds a provider's weekly template plus date-specific
// overrides. Weekly always carries exactly 7 entries, keyed by weekday index
// (0 = Sunday .. 6 = Saturday). SpecialDays is sparse, keyed "YYYY-MM-DD";
// an entry fully replaces the weekday entry for that date, and a disabled
// entry is distinct from no entry at all.
type Availability struct {
	Weekly      map[int]DaySchedule    `json:"weekly"`
	SpecialDays map[string]DaySchedule `json:"specialDays"`
}

// NewAvailability returns the fixed default template: Monday through Friday
// enabled 09:00-17:00, Saturday and Sunday disabled.
func NewAvailability() *Availability {
	weekly := make(map[int]DaySchedule, 7)
	for day := 0; day < 7; day++ {
		if day == 0 || day == 6 {
			weekly[day] = DaySchedule{Enabled: false, TimeSlots: []TimeSlot{}}
			continue
		}
		weekly[day] = DaySchedule{
			Enabled:   true,
			TimeSlots: []TimeSlot{{Start: defaultSlotStart, End: defaultSlotEnd}},
		}
	}

	return &Availability{
		Weekly:      weekly,
		SpecialDays: make(map[string]DaySchedule),
	}
}

func mustWeekday(day int) {
	if day < 0 || day > 6 {
		panic(fmt.Sprintf("weekday index %d out of range", day))
	}
}

func cloneSlots(slots []TimeSlot) []TimeSlot {
	cloned := make([]TimeSlot, len(slots))
	copy(cloned, slots)
	return cloned
}

// ToggleWeekday flips the enabled flag of a weekday. Overrides are left
// untouched. A weekday outside [0,6] is a programming error.
func (a *Availability) ToggleWeekday(day int) {
	mustWeekday(day)

	ds := a.Weekly[day]
	ds.Enabled = !ds.Enabled
	a.Weekly[day] = ds
}

// AddTimeSlot appends a 09:00-17:00 slot to a weekday. No deduplication or
// overlap check is performed.
func (a *Availability) AddTimeSlot(day int) {
	mustWeekday(day)

	ds := a.Weekly[day]
	ds.TimeSlots = append(cloneSlots(ds.TimeSlots), TimeSlot{Start: defaultSlotStart, End: defaultSlotEnd})
	a.Weekly[day] = ds
}

// RemoveTimeSlot removes the slot at index from a weekday. The enabled flag
// is not touched, so a day can stay enabled with zero slots.
func (a *Availability) RemoveTimeSlot(day int, index int) error {
	mustWeekday(day)

	ds := a.Weekly[day]
	if index < 0 || index >= len(ds.TimeSlots) {
		return fmt.Errorf("slot index %d out of range for weekday %d", index, day)
	}

	slots := cloneSlots(ds.TimeSlots)
	ds.TimeSlots = append(slots[:index], slots[index+1:]...)
	a.Weekly[day] = ds
	return nil
}

// UpdateTimeSlot replaces the start or end of the slot at index. The result
// is not checked to keep start < end.
func (a *Availability) UpdateTimeSlot(day int, index int, field SlotField, value string) error {
	mustWeekday(day)

	ds := a.Weekly[day]
	if index < 0 || index >= len(ds.TimeSlots) {
		return fmt.Errorf("slot index %d out of range for weekday %d", index, day)
	}

	slots := cloneSlots(ds.TimeSlots)
	switch field {
	case SlotFieldStart:
		slots[index].Start = value
	case SlotFieldEnd:
		slots[index].End = value
	default:
		return fmt.Errorf("unknown slot field %q", field)
	}

	ds.TimeSlots = slots
	a.Weekly[day] = ds
	return nil
}

// ToggleSpecialDay creates or flips an override for a calendar date. On
// first toggle the entry is seeded from that date's weekday (a deep copy of
// its slots when the weekday is enabled, empty otherwise) and enabled. On
// every later toggle only the enabled flag flips; the entry is never
// removed, so a disabled override still shadows the weekly template.
func (a *Availability) ToggleSpecialDay(date string) error {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	if existing, ok := a.SpecialDays[date]; ok {
		existing.Enabled = !existing.Enabled
		a.SpecialDays[date] = existing
		return nil
	}

	weekday := a.Weekly[int(parsed.Weekday())]
	slots := []TimeSlot{}
	if weekday.Enabled {
		slots = cloneSlots(weekday.TimeSlots)
	}

	a.SpecialDays[date] = DaySchedule{Enabled: true, TimeSlots: slots}
	return nil
}

func (a *Availability) specialDay(date string) (DaySchedule, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return DaySchedule{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if existing, ok := a.SpecialDays[date]; ok {
		return existing, nil
	}
	return DaySchedule{Enabled: true, TimeSlots: []TimeSlot{}}, nil
}

// AddSpecialTimeSlot appends a default slot to a date's override, creating
// the override first when none exists.
func (a *Availability) AddSpecialTimeSlot(date string) error {
	ds, err := a.specialDay(date)
	if err != nil {
		return err
	}

	ds.TimeSlots = append(cloneSlots(ds.TimeSlots), TimeSlot{Start: defaultSlotStart, End: defaultSlotEnd})
	a.SpecialDays[date] = ds
	return nil
}

// RemoveSpecialTimeSlot removes the slot at index from a date's override.
func (a *Availability) RemoveSpecialTimeSlot(date string, index int) error {
	ds, err := a.specialDay(date)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(ds.TimeSlots) {
		return fmt.Errorf("slot index %d out of range for %s", index, date)
	}

	slots := cloneSlots(ds.TimeSlots)
	ds.TimeSlots = append(slots[:index], slots[index+1:]...)
	a.SpecialDays[date] = ds
	return nil
}

// UpdateSpecialTimeSlot replaces the start or end of the slot at index in a
// date's override.
func (a *Availability) UpdateSpecialTimeSlot(date string, index int, field SlotField, value string) error {
	ds, err := a.specialDay(date)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(ds.TimeSlots) {
		return fmt.Errorf("slot index %d out of range for %s", index, date)
	}

	slots := cloneSlots(ds.TimeSlots)
	switch field {
	case SlotFieldStart:
		slots[index].Start = value
	case SlotFieldEnd:
		slots[index].End = value
	default:
		return fmt.Errorf("unknown slot field %q", field)
	}

	ds.TimeSlots = slots
	a.SpecialDays[date] = ds
	return nil
}

// Resolve answers "what is the effective schedule for this date". An
// override entry replaces the weekday entry wholesale; there is no merging
// of slots between the two.
func (a *Availability) Resolve(date string) (DaySchedule, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return DaySchedule{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if ds, ok := a.SpecialDays[date]; ok {
		return ds, nil
	}
	return a.Weekly[int(parsed.Weekday())], nil
}

// Normalize repairs a client-supplied document: nil maps become empty ones,
// every weekday 0..6 gets an entry, and nil slot slices become empty. Keys
// outside the weekday range or special-day keys that are not calendar dates
// are rejected.
func (a *Availability) Normalize() error {
	if a.Weekly == nil {
		a.Weekly = make(map[int]DaySchedule, 7)
	}
	if a.SpecialDays == nil {
		a.SpecialDays = make(map[string]DaySchedule)
	}

	for day := range a.Weekly {
		if day < 0 || day > 6 {
			return fmt.Errorf("weekday index %d out of range", day)
		}
	}
	for day := 0; day < 7; day++ {
		ds, ok := a.Weekly[day]
		if !ok {
			a.Weekly[day] = DaySchedule{Enabled: false, TimeSlots: []TimeSlot{}}
			continue
		}
		if ds.TimeSlots == nil {
			ds.TimeSlots = []TimeSlot{}
			a.Weekly[day] = ds
		}
	}

	for date, ds := range a.SpecialDays {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return fmt.Errorf("invalid special day %q: %w", date, err)
		}
		if ds.TimeSlots == nil {
			ds.TimeSlots = []TimeSlot{}
			a.SpecialDays[date] = ds
		}
	}

	return nil
}
