package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

func conflictTestProvider(day time.Time) *domain.Provider {
	return &domain.Provider{
		ID: 1,
		Availability: []domain.AvailabilityWindow{
			{Start: day.Add(9 * time.Hour), End: day.Add(17 * time.Hour)},
		},
	}
}

func TestConflictingAppointments(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	provider := conflictTestProvider(day)
	provider.Appointments = []*domain.Appointment{
		{ID: 1, StartTime: day.Add(10 * time.Hour), Duration: 30 * time.Minute},
		{ID: 2, StartTime: day.Add(11 * time.Hour), Duration: time.Hour},
		{ID: 3, StartTime: day.Add(15 * time.Hour), Duration: 30 * time.Minute},
	}

	conflicts := conflictingAppointments(provider, day.Add(10*time.Hour+15*time.Minute), time.Hour)
	require.Len(t, conflicts, 2)
	assert.Equal(t, int64(1), conflicts[0].ID)
	assert.Equal(t, int64(2), conflicts[1].ID)

	// Интервал, граничащий с записью, не конфликтует
	conflicts = conflictingAppointments(provider, day.Add(10*time.Hour+30*time.Minute), 30*time.Minute)
	assert.Empty(t, conflicts)
}

func TestCanRescheduleConflicts(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	now := day.Add(8 * time.Hour)

	tests := map[string]struct {
		conflicts []*domain.Appointment
		expected  bool
	}{
		"all_normal_and_far_enough": {
			conflicts: []*domain.Appointment{
				{Priority: domain.PriorityNormal, StartTime: day.Add(11 * time.Hour)},
				{Priority: domain.PriorityNormal, StartTime: day.Add(14 * time.Hour)},
			},
			expected: true,
		},
		"urgent_conflict_blocks_reschedule": {
			conflicts: []*domain.Appointment{
				{Priority: domain.PriorityUrgent, StartTime: day.Add(14 * time.Hour)},
			},
			expected: false,
		},
		"too_close_to_start": {
			conflicts: []*domain.Appointment{
				{Priority: domain.PriorityNormal, StartTime: day.Add(9 * time.Hour)},
			},
			expected: false,
		},
		"exactly_at_notice_boundary": {
			// Начало ровно через RescheduleNoticePeriod - строгое неравенство,
			// перенос запрещён
			conflicts: []*domain.Appointment{
				{Priority: domain.PriorityNormal, StartTime: now.Add(domain.RescheduleNoticePeriod)},
			},
			expected: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, canRescheduleConflicts(tc.conflicts, now))
		})
	}
}

func TestRescheduleConflicts(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("proposals_in_start_order_and_snapshot_restored", func(t *testing.T) {
		provider := conflictTestProvider(day)
		first := &domain.Appointment{
			ID: 1, ProviderID: 1, PatientID: 101,
			StartTime: day.Add(10 * time.Hour), Duration: 30 * time.Minute,
			Status: domain.StatusScheduled,
		}
		second := &domain.Appointment{
			ID: 2, ProviderID: 1, PatientID: 102,
			StartTime: day.Add(10*time.Hour + 30*time.Minute), Duration: 30 * time.Minute,
			Status: domain.StatusScheduled,
		}
		provider.Appointments = []*domain.Appointment{second, first}

		proposals := rescheduleConflicts(provider, []*domain.Appointment{second, first})
		require.Len(t, proposals, 2)

		// Предложения упорядочены по исходному началу
		assert.Equal(t, int64(1), proposals[0].AppointmentID)
		assert.Equal(t, int64(2), proposals[1].AppointmentID)

		// Поиск нового слота идёт по дням: записи 10:00-10:30 и 10:30-11:00
		// оставляют первым свободным слотом дня 09:00
		assert.Equal(t, day.Add(9*time.Hour), proposals[0].NewStart)

		// Второй конфликт видит уже предложенный перенос первого (09:00-09:30)
		// и свой собственный старый слот - следующий свободный 09:30
		assert.Equal(t, day.Add(9*time.Hour+30*time.Minute), proposals[1].NewStart)

		// Исходные времена восстановлены
		assert.Equal(t, day.Add(10*time.Hour), first.StartTime)
		assert.Equal(t, day.Add(10*time.Hour+30*time.Minute), second.StartTime)

		assert.Equal(t, day.Add(10*time.Hour), proposals[0].OriginalStart)
		assert.Equal(t, 30*time.Minute, proposals[0].Duration)
		assert.Equal(t, int64(101), proposals[0].PatientID)
	})
}
