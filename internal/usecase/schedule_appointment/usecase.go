package schedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

// Причины отказов для метрик
const (
	failureReasonNoProviders     = "no_available_providers"
	failureReasonInvalidDuration = "invalid_duration"
)

// UseCase use case планирования приёма: загружает снапшот врачей, запускает
// чистый движок планирования и транзакционно применяет его решение
type UseCase struct {
	providerRepo    ProviderRepository
	appointmentRepo AppointmentRepository
	recordsClient   PatientRecordsClient
	txManager       TransactionManager
	insurance       scheduling.InsurancePolicy
	metrics         MetricsCollector
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// insurance может быть nil — тогда используется детерминированная
// псевдо-проверка по контрольной сумме. metrics может быть nil, если отключены.
func NewUseCase(
	providerRepo ProviderRepository,
	appointmentRepo AppointmentRepository,
	recordsClient PatientRecordsClient,
	txManager TransactionManager,
	insurance scheduling.InsurancePolicy,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		providerRepo:    providerRepo,
		appointmentRepo: appointmentRepo,
		recordsClient:   recordsClient,
		txManager:       txManager,
		insurance:       insurance,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет планирование приёма.
// Загрузка снапшота, решение движка и его применение (создание записи плюс
// переносы вытесненных записей) выполняются в одной сериализуемой транзакции:
// конкурентное планирование на тех же врачах не может зафиксировать
// пересекающиеся записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ScheduleAppointment: patient=%d, specialty=%s, date=%s, duration=%s, priority=%s, type=%s",
		req.PatientID, req.Specialty, req.PreferredDate.Format(domain.DateFormat), req.Duration, req.Priority, req.Type)

	now := uc.timeProvider.Now()

	// История пациента считается тотальной: при недоступности сервиса медкарт
	// клиент возвращает детерминированную заглушку
	engine := scheduling.NewScheduler(uc.insurance, func(patientID int64) domain.PatientHistory {
		return *uc.recordsClient.GetHistoryWithGracefulDegradation(ctx, patientID)
	})

	// Период загрузки покрывает окно поиска движка и окна поиска переносов
	// (перенос ищется от исходного начала конфликтующей записи)
	from := scheduling.Midnight(req.PreferredDate)
	to := from.AddDate(0, 0, 2*domain.MaxScheduleSearchDays+1)

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Снапшот врачей специальности с расписанием
		providers, err := uc.providerRepo.ListBySpecialty(txCtx, req.Specialty, from, to)
		if err != nil {
			uc.logger.Error("ScheduleAppointment: failed to list providers for specialty=%s: %v", req.Specialty, err)
			return fmt.Errorf("%w: failed to list providers: %v", ErrInternal, err)
		}

		// 2. Решение движка планирования
		result, err := engine.ScheduleAppointment(req.toEngineRequest(), providers, now)
		if err != nil {
			return uc.mapEngineError(req, err)
		}

		// 2.1. Подходящих врачей нет — возвращаем альтернативные даты
		if !result.Success {
			uc.logger.Info("ScheduleAppointment: no eligible providers for patient=%d, suggesting %d alternative dates",
				req.PatientID, len(result.SuggestedDates))
			if uc.metrics != nil {
				uc.metrics.AlternativeDatesSuggested()
			}
			resp = &Response{SuggestedDates: result.SuggestedDates}
			return nil
		}

		// 3. Применяем переносы, предложенные движком
		rescheduled := make([]RescheduledAppointment, 0, len(result.Reschedules))
		for _, proposal := range result.Reschedules {
			if err := uc.appointmentRepo.UpdateStartTime(txCtx, proposal.AppointmentID, proposal.NewStart); err != nil {
				uc.logger.Error("ScheduleAppointment: failed to reschedule appointment id=%d: %v",
					proposal.AppointmentID, err)
				return fmt.Errorf("%w: failed to reschedule appointment: %v", ErrInternal, err)
			}
			rescheduled = append(rescheduled, RescheduledAppointment{
				AppointmentID: proposal.AppointmentID,
				PatientID:     proposal.PatientID,
				OriginalStart: proposal.OriginalStart,
				NewStart:      proposal.NewStart,
			})
		}

		// 4. Создаём запись на приём
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ProviderID: result.Provider.ID,
			PatientID:  req.PatientID,
			StartTime:  result.ScheduledTime,
			Duration:   req.Duration,
			Priority:   req.Priority,
			Type:       req.Type,
			Status:     domain.StatusScheduled,
			Notes:      req.Notes,
		})
		if err != nil {
			uc.logger.Error("ScheduleAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		resp = &Response{
			Success:                   true,
			AppointmentID:             created.ID,
			ProviderID:                result.Provider.ID,
			ProviderName:              result.Provider.Name,
			ScheduledTime:             result.ScheduledTime,
			Warnings:                  result.Warnings,
			RequiresInsuranceApproval: result.RequiresInsuranceApproval,
			EstimatedCost:             result.EstimatedCost,
			RequiresDeposit:           result.RequiresDeposit,
			DepositAmount:             result.DepositAmount,
			Rescheduled:               rescheduled,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if resp.Success {
		uc.logger.Info("ScheduleAppointment: scheduled appointment id=%d, patient=%d, provider=%d, time=%s, rescheduled=%d",
			resp.AppointmentID, req.PatientID, resp.ProviderID, resp.ScheduledTime, len(resp.Rescheduled))
		if uc.metrics != nil {
			uc.metrics.AppointmentScheduled(string(req.Type), string(req.Priority))
			if len(resp.Rescheduled) > 0 {
				uc.metrics.UrgentPreemptions(len(resp.Rescheduled))
			}
		}
	}

	return resp, nil
}

// mapEngineError транслирует ошибки движка в ошибки usecase
func (uc *UseCase) mapEngineError(req *Request, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrNoAvailableProviders):
		uc.logger.Warn("ScheduleAppointment: no available providers for patient=%d, specialty=%s",
			req.PatientID, req.Specialty)
		if uc.metrics != nil {
			uc.metrics.SchedulingFailure(failureReasonNoProviders)
		}
		return ErrNoAvailableProviders

	case errors.Is(err, scheduling.ErrInvalidDuration):
		uc.logger.Warn("ScheduleAppointment: invalid duration %s for type=%s, patient=%d",
			req.Duration, req.Type, req.PatientID)
		if uc.metrics != nil {
			uc.metrics.SchedulingFailure(failureReasonInvalidDuration)
		}
		return ErrInvalidDuration

	case errors.Is(err, scheduling.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)

	default:
		uc.logger.Error("ScheduleAppointment: engine error for patient=%d: %v", req.PatientID, err)
		return fmt.Errorf("%w: engine error: %v", ErrInternal, err)
	}
}
