package scheduling_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

func TestEligibleProviders(t *testing.T) {
	cardiologist := &domain.Provider{
		ID:           1,
		Specialties:  []string{"Cardiology"},
		Availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
	}
	dermatologist := &domain.Provider{
		ID:           2,
		Specialties:  []string{"Dermatology"},
		Availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
	}
	busyCardiologist := &domain.Provider{
		ID:           3,
		Specialties:  []string{"cardiology"},
		Availability: []domain.AvailabilityWindow{window(testDay, 9, 17)},
		Appointments: []*domain.Appointment{
			appointment(1, at(testDay, 10, 0), time.Hour),
		},
	}

	providers := []*domain.Provider{cardiologist, dermatologist, busyCardiologist, nil}

	t.Run("matches_specialty_case_insensitive_and_availability", func(t *testing.T) {
		eligible := scheduling.EligibleProviders(providers, "cardiology", at(testDay, 10, 0), 30*time.Minute)
		require.Len(t, eligible, 1)
		assert.Equal(t, int64(1), eligible[0].ID)
	})

	t.Run("busy_provider_eligible_outside_conflict", func(t *testing.T) {
		eligible := scheduling.EligibleProviders(providers, "cardiology", at(testDay, 14, 0), 30*time.Minute)
		require.Len(t, eligible, 2)
		assert.Equal(t, int64(1), eligible[0].ID)
		assert.Equal(t, int64(3), eligible[1].ID)
	})

	t.Run("no_specialty_match", func(t *testing.T) {
		eligible := scheduling.EligibleProviders(providers, "neurology", at(testDay, 10, 0), 30*time.Minute)
		assert.Empty(t, eligible)
	})
}

func TestFindAlternativeDates(t *testing.T) {
	t.Run("skips_weekends_and_returns_exact_count", func(t *testing.T) {
		// Пятница: следующие рабочие дни - пн..пт и ещё пн-вт
		friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
		req := &scheduling.Request{PreferredDate: friday}

		dates := scheduling.FindAlternativeDates(req)
		require.Len(t, dates, domain.AlternativeDaySearchWindow)

		expected := []time.Time{
			time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 17, 9, 0, 0, 0, time.UTC),
		}
		assert.Equal(t, expected, dates)
	})

	t.Run("uses_preferred_time_of_day", func(t *testing.T) {
		preferredTime := 14*time.Hour + 30*time.Minute
		req := &scheduling.Request{
			PreferredDate: testDay, // понедельник
			PreferredTime: &preferredTime,
		}

		dates := scheduling.FindAlternativeDates(req)
		require.Len(t, dates, domain.AlternativeDaySearchWindow)

		for _, d := range dates {
			assert.NotEqual(t, time.Saturday, d.Weekday())
			assert.NotEqual(t, time.Sunday, d.Weekday())
			assert.Equal(t, 14, d.Hour())
			assert.Equal(t, 30, d.Minute())
		}

		// Даты строго возрастают, начиная со следующего дня
		assert.Equal(t, testDay.AddDate(0, 0, 1).Add(preferredTime), dates[0])
		for i := 1; i < len(dates); i++ {
			assert.True(t, dates[i].After(dates[i-1]))
		}
	})
}
