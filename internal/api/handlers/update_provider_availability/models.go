package update_provider_availability

import (
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/service/availability/models"
)

// WindowInput входное окно доступности
type WindowInput struct {
	Start time.Time `json:"start"` // ISO 8601
	End   time.Time `json:"end"`   // ISO 8601
}

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	Windows []WindowInput `json:"windows"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateAvailabilityRequest) ToServiceRequest(providerID int64) *models.ReplaceWindowsRequest {
	req := &models.ReplaceWindowsRequest{
		ProviderID: providerID,
		Windows:    make([]models.WindowInput, 0, len(r.Windows)),
	}

	for _, w := range r.Windows {
		req.Windows = append(req.Windows, models.WindowInput{
			Start: w.Start,
			End:   w.End,
		})
	}

	return req
}
