package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

func TestFindBestAvailableSlot(t *testing.T) {
	t.Run("earliest_slot_on_preferred_day", func(t *testing.T) {
		provider := &domain.Provider{
			ID:           1,
			Availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
			Appointments: []*domain.Appointment{
				appointment(1, at(testDay, 9, 0), time.Hour),
			},
		}

		got := scheduling.FindBestAvailableSlot(provider, testDay, 30*time.Minute, 7)
		assert.Equal(t, at(testDay, 10, 0), got)
	})

	t.Run("slot_on_last_searched_day", func(t *testing.T) {
		lastDay := testDay.AddDate(0, 0, domain.MaxScheduleSearchDays-1)
		provider := &domain.Provider{
			ID:           1,
			Availability: []domain.AvailabilityWindow{window(lastDay, 9, 12)},
		}

		got := scheduling.FindBestAvailableSlot(provider, testDay, 30*time.Minute, 7)
		assert.Equal(t, at(lastDay, 9, 0), got)
	})

	t.Run("skips_slots_too_short_for_duration", func(t *testing.T) {
		nextDay := testDay.AddDate(0, 0, 1)
		provider := &domain.Provider{
			ID: 1,
			Availability: []domain.AvailabilityWindow{
				window(testDay, 9, 10),  // 1 час - не помещается
				window(nextDay, 9, 12),
			},
		}

		got := scheduling.FindBestAvailableSlot(provider, testDay, 2*time.Hour, 7)
		assert.Equal(t, at(nextDay, 9, 0), got)
	})

	t.Run("deterministic_fallback_when_nothing_found", func(t *testing.T) {
		provider := &domain.Provider{ID: 1}

		// 8 + (7 mod 5) = 10:00
		got := scheduling.FindBestAvailableSlot(provider, testDay, 30*time.Minute, 7)
		assert.Equal(t, at(testDay, 10, 0), got)

		// 8 + (10 mod 5) = 08:00
		got = scheduling.FindBestAvailableSlot(provider, testDay, 30*time.Minute, 10)
		assert.Equal(t, at(testDay, 8, 0), got)
	})
}

func TestFindNearestAvailableSlot(t *testing.T) {
	t.Run("snaps_to_preferred_time_inside_slot", func(t *testing.T) {
		provider := &domain.Provider{
			ID:           1,
			Availability: []domain.AvailabilityWindow{window(testDay, 9, 12)},
		}

		// Окно 09:00-12:00 свободно, предпочтение 10:00 - ровно 10:00,
		// не начало слота
		got := scheduling.FindNearestAvailableSlot(provider, testDay, 10*time.Hour, 30*time.Minute)
		assert.Equal(t, at(testDay, 10, 0), got)
	})

	t.Run("falls_back_to_slot_start_when_tail_does_not_fit", func(t *testing.T) {
		provider := &domain.Provider{
			ID:           1,
			Availability: []domain.AvailabilityWindow{window(testDay, 9, 12)},
		}

		// 11:45 + 30 минут выходит за границу окна - кандидатом становится
		// начало слота
		got := scheduling.FindNearestAvailableSlot(provider, testDay, 11*time.Hour+45*time.Minute, 30*time.Minute)
		assert.Equal(t, at(testDay, 9, 0), got)
	})

	t.Run("picks_nearest_slot_across_days", func(t *testing.T) {
		nextDay := testDay.AddDate(0, 0, 1)
		provider := &domain.Provider{
			ID: 1,
			Availability: []domain.AvailabilityWindow{
				window(testDay, 6, 7),
				window(nextDay, 9, 10),
			},
		}

		// Предпочтение 16:00: слот 06:00 на 10 часов раньше, слот следующего
		// дня 09:00 на 17 часов позже - выбирается 06:00
		got := scheduling.FindNearestAvailableSlot(provider, testDay, 16*time.Hour, 30*time.Minute)
		assert.Equal(t, at(testDay, 6, 0), got)
	})

	t.Run("returns_target_unchanged_when_nothing_fits", func(t *testing.T) {
		provider := &domain.Provider{ID: 1}

		got := scheduling.FindNearestAvailableSlot(provider, testDay, 10*time.Hour, 30*time.Minute)
		assert.Equal(t, at(testDay, 10, 0), got)
	})
}
