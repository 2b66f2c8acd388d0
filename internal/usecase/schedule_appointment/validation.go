package schedule_appointment

import (
	"fmt"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.Specialty == "" {
		return fmt.Errorf("%w: specialty is required", ErrInvalidInput)
	}

	if req.PreferredDate.IsZero() {
		return fmt.Errorf("%w: preferredDate is required", ErrInvalidInput)
	}

	// Длительность не проверяется по типу приёма — это делает движок;
	// здесь только базовая корректность
	if req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	switch req.Priority {
	case domain.PriorityNormal, domain.PriorityUrgent:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}

	switch req.Type {
	case domain.TypeConsultation, domain.TypeFollowUp, domain.TypeProcedure:
	default:
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.Type)
	}

	return nil
}
