package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // понедельник

func at(day time.Time, hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func window(day time.Time, fromHour, toHour int) domain.AvailabilityWindow {
	return domain.AvailabilityWindow{
		Start: at(day, fromHour, 0),
		End:   at(day, toHour, 0),
	}
}

func appointment(id int64, start time.Time, duration time.Duration) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		PatientID: 100 + id,
		StartTime: start,
		Duration:  duration,
		Priority:  domain.PriorityNormal,
		Type:      domain.TypeConsultation,
		Status:    domain.StatusScheduled,
	}
}

func TestFreeSlots(t *testing.T) {
	tests := map[string]struct {
		availability []domain.AvailabilityWindow
		appointments []*domain.Appointment
		expected     []domain.FreeSlot
	}{
		"empty_window_without_appointments": {
			availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
			expected:     []domain.FreeSlot{{Start: at(testDay, 9, 0), End: at(testDay, 17, 0)}},
		},
		"appointments_split_window": {
			availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
			appointments: []*domain.Appointment{
				appointment(1, at(testDay, 10, 0), 30*time.Minute),
				appointment(2, at(testDay, 11, 0), time.Hour),
			},
			expected: []domain.FreeSlot{
				{Start: at(testDay, 9, 0), End: at(testDay, 10, 0)},
				{Start: at(testDay, 10, 30), End: at(testDay, 11, 0)},
				{Start: at(testDay, 12, 0), End: at(testDay, 17, 0)},
			},
		},
		"back_to_back_appointments_leave_no_gap": {
			availability: []domain.AvailabilityWindow{window(testDay, 9, 12)},
			appointments: []*domain.Appointment{
				appointment(1, at(testDay, 9, 0), time.Hour),
				appointment(2, at(testDay, 10, 0), time.Hour),
			},
			expected: []domain.FreeSlot{
				{Start: at(testDay, 11, 0), End: at(testDay, 12, 0)},
			},
		},
		"nested_appointments_do_not_break_cursor": {
			availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
			appointments: []*domain.Appointment{
				appointment(1, at(testDay, 10, 0), 2*time.Hour),
				appointment(2, at(testDay, 10, 30), 30*time.Minute),
			},
			expected: []domain.FreeSlot{
				{Start: at(testDay, 9, 0), End: at(testDay, 10, 0)},
				{Start: at(testDay, 12, 0), End: at(testDay, 17, 0)},
			},
		},
		"window_clipped_to_day_boundaries": {
			availability: []domain.AvailabilityWindow{
				{Start: at(testDay, -2, 0), End: at(testDay, 2, 0)}, // 22:00 накануне - 02:00
			},
			expected: []domain.FreeSlot{
				{Start: at(testDay, 0, 0), End: at(testDay, 2, 0)},
			},
		},
		"fully_booked_window": {
			availability: []domain.AvailabilityWindow{window(testDay, 9, 10)},
			appointments: []*domain.Appointment{
				appointment(1, at(testDay, 9, 0), time.Hour),
			},
			expected: []domain.FreeSlot{},
		},
		"no_availability": {
			availability: nil,
			expected:     []domain.FreeSlot{},
		},
		"windows_sorted_by_start": {
			availability: []domain.AvailabilityWindow{
				window(testDay, 14, 17),
				window(testDay, 9, 12),
			},
			expected: []domain.FreeSlot{
				{Start: at(testDay, 9, 0), End: at(testDay, 12, 0)},
				{Start: at(testDay, 14, 0), End: at(testDay, 17, 0)},
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			provider := &domain.Provider{
				ID:           1,
				Availability: tc.availability,
				Appointments: tc.appointments,
			}
			assert.Equal(t, tc.expected, scheduling.FreeSlots(provider, testDay))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	provider := &domain.Provider{
		ID:           1,
		Availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
		Appointments: []*domain.Appointment{
			appointment(1, at(testDay, 10, 0), 30*time.Minute),
		},
	}

	tests := map[string]struct {
		start    time.Time
		duration time.Duration
		expected bool
	}{
		"free_interval_inside_window":       {at(testDay, 11, 0), 30 * time.Minute, true},
		"conflicts_with_appointment":        {at(testDay, 10, 15), 30 * time.Minute, false},
		"starts_exactly_at_appointment_end": {at(testDay, 10, 30), 30 * time.Minute, true},
		"ends_exactly_at_appointment_start": {at(testDay, 9, 30), 30 * time.Minute, true},
		"outside_window":                    {at(testDay, 7, 0), 30 * time.Minute, false},
		"spans_past_window_end":             {at(testDay, 16, 45), 30 * time.Minute, false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scheduling.IsAvailable(provider, tc.start, tc.duration))
		})
	}

	t.Run("nil_provider", func(t *testing.T) {
		assert.False(t, scheduling.IsAvailable(nil, at(testDay, 11, 0), 30*time.Minute))
	})
}

func TestNextAvailabilityStart(t *testing.T) {
	t.Run("first_slot_on_later_day", func(t *testing.T) {
		laterDay := testDay.AddDate(0, 0, 5)
		provider := &domain.Provider{
			ID:           1,
			Availability: []domain.AvailabilityWindow{window(laterDay, 9, 12)},
		}

		start, ok := scheduling.NextAvailabilityStart(provider, testDay)
		require.True(t, ok)
		assert.Equal(t, at(laterDay, 9, 0), start)
	})

	t.Run("no_slots_within_search_window", func(t *testing.T) {
		farDay := testDay.AddDate(0, 0, domain.MaxScheduleSearchDays)
		provider := &domain.Provider{
			ID:           1,
			Availability: []domain.AvailabilityWindow{window(farDay, 9, 12)},
		}

		_, ok := scheduling.NextAvailabilityStart(provider, testDay)
		assert.False(t, ok)
	})
}
