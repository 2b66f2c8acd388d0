package get_provider_slots

import (
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// Request модель запроса свободных слотов врача
type Request struct {
	ProviderID int64
	Date       time.Time      // День, на который запрашиваются слоты
	Duration   *time.Duration // Минимальная длительность слота (опционально)
}

// Response модель ответа со свободными слотами
type Response struct {
	ProviderID   int64
	ProviderName string
	Date         time.Time
	Slots        []domain.FreeSlot
}
