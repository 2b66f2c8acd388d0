package cancel_appointment

import "github.com/medpoint/MP-SchedulingService/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancelledBy        string `json:"cancelledBy"` // "patient" | "clinic"
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(patientID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		PatientID:          patientID,
		CancelledBy:        r.CancelledBy,
		CancellationReason: r.CancellationReason,
	}
}
