package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	appointmentRepo "github.com/medpoint/MP-SchedulingService/internal/infra/storage/appointment"
	"github.com/medpoint/MP-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - пациент может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, id int64, patientID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for patient=%d", id, patientID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if appt.PatientID != patientID {
		s.logger.Warn("GetByID: access denied for patient=%d to appointment id=%d", patientID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetPatientAppointments получает историю записей пациента
// Опционально фильтрует по периоду и статусу
func (s *Service) GetPatientAppointments(ctx context.Context, req *models.GetPatientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetPatientAppointments: fetching appointments for patient=%d, status=%v", req.PatientID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPatientAppointments: invalid status=%s for patient=%d", *req.Status, req.PatientID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.ListByPatient(ctx, filter)
	if err != nil {
		s.logger.Error("GetPatientAppointments: repository error for patient=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: GetPatientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPatientAppointments: successfully fetched %d appointments for patient=%d", len(appts), req.PatientID)
	return models.FromDomainAppointmentList(appts), nil
}

// GetProviderAppointments получает записи врача за период
func (s *Service) GetProviderAppointments(ctx context.Context, req *models.GetProviderAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProviderAppointments: fetching appointments for provider=%d", req.ProviderID)

	appts, err := s.appointmentRepo.ListByProviderBetween(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetProviderAppointments: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderAppointments: successfully fetched %d appointments for provider=%d", len(appts), req.ProviderID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись на приём
// Пациент может отменить только свою запись и только в статусе scheduled.
// Отмена от имени клиники права на запись не проверяет
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by %s, patient=%d", id, req.CancelledBy, req.PatientID)

	status, err := models.CancellationStatus(req.CancelledBy)
	if err != nil {
		s.logger.Warn("Cancel: invalid cancelledBy=%s for appointment id=%d", req.CancelledBy, id)
		return fmt.Errorf("%w: cancelledBy must be 'patient' or 'clinic'", ErrInvalidInput)
	}

	// Проверка статуса и отмена выполняются в одной транзакции, чтобы
	// конкурентная отмена не прошла дважды
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if status == domain.StatusCancelledByPatient && appt.PatientID != req.PatientID {
			return ErrAccessDenied
		}

		if !appt.CanBeCancelled() {
			return ErrCannotCancel
		}

		if err := s.appointmentRepo.Cancel(txCtx, id, status, req.CancellationReason); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			s.logger.Warn("Cancel: appointment id=%d not found", id)
		case errors.Is(err, ErrAccessDenied):
			s.logger.Warn("Cancel: access denied for patient=%d to appointment id=%d", req.PatientID, id)
		case errors.Is(err, ErrCannotCancel):
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled", id)
		default:
			s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		}
		return err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}
