package appointments_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	appointmentRepo "github.com/medpoint/MP-SchedulingService/internal/infra/storage/appointment"
	"github.com/medpoint/MP-SchedulingService/internal/service/appointments"
	"github.com/medpoint/MP-SchedulingService/internal/service/appointments/models"
)

type fakeRepo struct {
	appt      *domain.Appointment
	getErr    error
	cancelErr error

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appt, nil
}

func (f *fakeRepo) ListByPatient(ctx context.Context, filter domain.PatientAppointmentsFilter) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appt}, nil
}

func (f *fakeRepo) ListByProviderBetween(ctx context.Context, filter domain.ProviderAppointmentsFilter) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appt}, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         7,
		ProviderID: 1,
		PatientID:  42,
		StartTime:  time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		Duration:   30 * time.Minute,
		Priority:   domain.PriorityNormal,
		Type:       domain.TypeConsultation,
		Status:     domain.StatusScheduled,
	}
}

func newService(repo *fakeRepo) *appointments.Service {
	return appointments.NewService(repo, fakeTxManager{}, fakeLogger{})
}

func TestGetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newService(&fakeRepo{appt: scheduledAppointment()})

		resp, err := svc.GetByID(context.Background(), 7, 42)
		require.NoError(t, err)

		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "2025-06-02", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, 30, resp.DurationMinutes)
	})

	t.Run("not_found", func(t *testing.T) {
		svc := newService(&fakeRepo{getErr: appointmentRepo.ErrAppointmentNotFound})

		_, err := svc.GetByID(context.Background(), 7, 42)
		assert.ErrorIs(t, err, appointments.ErrAppointmentNotFound)
	})

	t.Run("foreign_appointment_denied", func(t *testing.T) {
		svc := newService(&fakeRepo{appt: scheduledAppointment()})

		_, err := svc.GetByID(context.Background(), 7, 99)
		assert.ErrorIs(t, err, appointments.ErrAccessDenied)
	})

	t.Run("repository_error", func(t *testing.T) {
		svc := newService(&fakeRepo{getErr: errors.New("connection refused")})

		_, err := svc.GetByID(context.Background(), 7, 42)
		assert.ErrorIs(t, err, appointments.ErrInternal)
	})
}

func TestCancel(t *testing.T) {
	t.Run("by_patient", func(t *testing.T) {
		repo := &fakeRepo{appt: scheduledAppointment()}
		svc := newService(repo)

		err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
			PatientID:          42,
			CancelledBy:        "patient",
			CancellationReason: "не смогу прийти",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(7), repo.cancelledID)
		assert.Equal(t, domain.StatusCancelledByPatient, repo.cancelledStatus)
		assert.Equal(t, "не смогу прийти", repo.cancelledReason)
	})

	t.Run("by_clinic_skips_ownership_check", func(t *testing.T) {
		repo := &fakeRepo{appt: scheduledAppointment()}
		svc := newService(repo)

		// PatientID вызывающего не совпадает с владельцем записи
		err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
			PatientID:   99,
			CancelledBy: "clinic",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByClinic, repo.cancelledStatus)
	})

	t.Run("foreign_appointment_denied", func(t *testing.T) {
		repo := &fakeRepo{appt: scheduledAppointment()}
		svc := newService(repo)

		err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
			PatientID:   99,
			CancelledBy: "patient",
		})
		assert.ErrorIs(t, err, appointments.ErrAccessDenied)
		assert.Zero(t, repo.cancelledID)
	})

	t.Run("completed_cannot_be_cancelled", func(t *testing.T) {
		appt := scheduledAppointment()
		appt.Status = domain.StatusCompleted
		repo := &fakeRepo{appt: appt}
		svc := newService(repo)

		err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
			PatientID:   42,
			CancelledBy: "patient",
		})
		assert.ErrorIs(t, err, appointments.ErrCannotCancel)
	})

	t.Run("invalid_cancelled_by", func(t *testing.T) {
		svc := newService(&fakeRepo{appt: scheduledAppointment()})

		err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
			PatientID:   42,
			CancelledBy: "manager",
		})
		assert.ErrorIs(t, err, appointments.ErrInvalidInput)
	})

	t.Run("not_found", func(t *testing.T) {
		svc := newService(&fakeRepo{getErr: appointmentRepo.ErrAppointmentNotFound})

		err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
			PatientID:   42,
			CancelledBy: "patient",
		})
		assert.ErrorIs(t, err, appointments.ErrAppointmentNotFound)
	})
}

func TestGetPatientAppointments_InvalidStatus(t *testing.T) {
	svc := newService(&fakeRepo{appt: scheduledAppointment()})

	badStatus := "pending"
	_, err := svc.GetPatientAppointments(context.Background(), &models.GetPatientAppointmentsRequest{
		PatientID: 42,
		Status:    &badStatus,
	})
	assert.ErrorIs(t, err, appointments.ErrInvalidInput)
}
