package get_provider_slots

import (
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	getProviderSlots "github.com/medpoint/MP-SchedulingService/internal/usecase/get_provider_slots"
)

// SlotResponse свободный слот в HTTP ответе
type SlotResponse struct {
	Start           string `json:"start"` // "10:00"
	End             string `json:"end"`   // "12:30"
	DurationMinutes int    `json:"durationMinutes"`
}

// GetProviderSlotsResponse HTTP response model
type GetProviderSlotsResponse struct {
	ProviderID   int64          `json:"providerId"`
	ProviderName string         `json:"providerName"`
	Date         string         `json:"date"` // "2025-10-15"
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getProviderSlots.Response) *GetProviderSlotsResponse {
	result := &GetProviderSlotsResponse{
		ProviderID:   resp.ProviderID,
		ProviderName: resp.ProviderName,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			Start:           slot.Start.Format(domain.TimeFormat),
			End:             slot.End.Format(domain.TimeFormat),
			DurationMinutes: int(slot.Duration() / time.Minute),
		})
	}

	return result
}
