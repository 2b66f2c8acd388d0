package schedule_appointment

import (
	"errors"
	"net/http"

	"github.com/medpoint/MP-SchedulingService/internal/api/handlers"
	scheduleAppointment "github.com/medpoint/MP-SchedulingService/internal/usecase/schedule_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD или времени, ожидается HH:MM"
	msgNoProvidersAvailable = "нет доступных врачей по выбранной специальности"
	msgInvalidDuration      = "длительность не соответствует типу приёма"
	msgInvalidInput         = "некорректные параметры запроса"
)

type Handler struct {
	useCase ScheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleAppointment.ErrNoAvailableProviders):
			h.logger.Warn("POST /appointments - No providers available: patient_id=%d, specialty=%s",
				req.PatientID, req.Specialty)
			handlers.RespondError(w, http.StatusConflict, msgNoProvidersAvailable)

		case errors.Is(err, scheduleAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: patient_id=%d, duration=%d, type=%s",
				req.PatientID, req.DurationMinutes, req.Type)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, scheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: patient_id=%d, error=%v", req.PatientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to schedule appointment: patient_id=%d, error=%v",
				req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	// Подходящих врачей не нашлось - возвращаем альтернативные даты
	if !result.Success {
		h.logger.Info("POST /appointments - Suggested %d alternative dates: patient_id=%d",
			len(result.SuggestedDates), req.PatientID)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /appointments - Appointment scheduled successfully: appointment_id=%d, patient_id=%d, provider_id=%d",
		result.AppointmentID, req.PatientID, result.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
