package models

import (
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// Request модели

// WindowInput входное окно доступности
type WindowInput struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReplaceWindowsRequest запрос на замену расписания врача
type ReplaceWindowsRequest struct {
	ProviderID int64         `json:"providerId"`
	Windows    []WindowInput `json:"windows"`
}

// ToDomainWindows конвертирует входные окна в domain модели
func (r *ReplaceWindowsRequest) ToDomainWindows() []domain.AvailabilityWindow {
	windows := make([]domain.AvailabilityWindow, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, domain.AvailabilityWindow{
			ProviderID: r.ProviderID,
			Start:      w.Start,
			End:        w.End,
		})
	}
	return windows
}

// Response модели

// WindowResponse окно доступности врача
type WindowResponse struct {
	ID    int64     `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WindowListResponse ответ со списком окон доступности
type WindowListResponse struct {
	ProviderID int64            `json:"providerId"`
	Windows    []WindowResponse `json:"windows"`
}

// Методы конвертации

// FromDomainWindows конвертирует domain окна в DTO
func FromDomainWindows(providerID int64, windows []domain.AvailabilityWindow) *WindowListResponse {
	result := &WindowListResponse{
		ProviderID: providerID,
		Windows:    make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		result.Windows = append(result.Windows, WindowResponse{
			ID:    w.ID,
			Start: w.Start,
			End:   w.End,
		})
	}

	return result
}
