package schedule_appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/medpoint/MP-SchedulingService/internal/api/handlers/schedule_appointment"
	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
	"github.com/medpoint/MP-SchedulingService/pkg/ptr"
)

func TestToUseCaseRequest(t *testing.T) {
	t.Run("preferred time folded into date", func(t *testing.T) {
		req := &handler.ScheduleAppointmentRequest{
			PatientID:       2,
			Specialty:       "cardiology",
			PreferredDate:   "2025-06-02",
			PreferredTime:   ptr.Ptr("10:00"),
			DurationMinutes: 30,
		}

		ucReq, err := req.ToUseCaseRequest()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), ucReq.PreferredDate)
		require.NotNil(t, ucReq.PreferredTime)
		assert.Equal(t, 10*time.Hour, *ucReq.PreferredTime)
		assert.Equal(t, domain.PriorityNormal, ucReq.Priority)
		assert.Equal(t, domain.TypeConsultation, ucReq.Type)
	})

	t.Run("date only stays at midnight", func(t *testing.T) {
		req := &handler.ScheduleAppointmentRequest{
			PatientID:       2,
			Specialty:       "cardiology",
			PreferredDate:   "2025-06-02",
			DurationMinutes: 30,
		}

		ucReq, err := req.ToUseCaseRequest()
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), ucReq.PreferredDate)
		assert.Nil(t, ucReq.PreferredTime)
	})

	t.Run("invalid date", func(t *testing.T) {
		req := &handler.ScheduleAppointmentRequest{
			PatientID:       2,
			Specialty:       "cardiology",
			PreferredDate:   "02.06.2025",
			DurationMinutes: 30,
		}

		_, err := req.ToUseCaseRequest()
		assert.Error(t, err)
	})

	t.Run("invalid time", func(t *testing.T) {
		req := &handler.ScheduleAppointmentRequest{
			PatientID:       2,
			Specialty:       "cardiology",
			PreferredDate:   "2025-06-02",
			PreferredTime:   ptr.Ptr("10am"),
			DurationMinutes: 30,
		}

		_, err := req.ToUseCaseRequest()
		assert.Error(t, err)
	})
}

// Врач с дневным окном 09:00-17:00 должен проходить отбор по доступности
// для HTTP запроса "дата + время", а не только для полуночного интервала.
func TestToUseCaseRequest_DaytimeWindowBookable(t *testing.T) {
	httpReq := &handler.ScheduleAppointmentRequest{
		PatientID:       2,
		Specialty:       "cardiology",
		PreferredDate:   "2025-06-02",
		PreferredTime:   ptr.Ptr("10:00"),
		DurationMinutes: 30,
	}

	ucReq, err := httpReq.ToUseCaseRequest()
	require.NoError(t, err)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	providers := []*domain.Provider{
		{
			ID:          1,
			Name:        "Dr. Ivanova",
			Specialties: []string{"cardiology"},
			Rating:      4.5,
			Availability: []domain.AvailabilityWindow{
				{Start: day.Add(9 * time.Hour), End: day.Add(17 * time.Hour)},
			},
		},
	}

	engine := scheduling.NewScheduler(nil, nil)
	result, err := engine.ScheduleAppointment(&scheduling.Request{
		PatientID:     ucReq.PatientID,
		Specialty:     ucReq.Specialty,
		PreferredDate: ucReq.PreferredDate,
		Duration:      ucReq.Duration,
		PreferredTime: ucReq.PreferredTime,
		Priority:      ucReq.Priority,
		Type:          ucReq.Type,
	}, providers, day.Add(-12*time.Hour))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, int64(1), result.Provider.ID)
	assert.Equal(t, day.Add(10*time.Hour), result.ScheduledTime)
	assert.Empty(t, result.SuggestedDates)
}
