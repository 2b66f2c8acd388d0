package get_provider_slots

import (
	"context"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// ProviderRepository интерфейс репозитория врачей
type ProviderRepository interface {
	// GetByID получает врача с окнами доступности и активными записями
	// в периоде [from, to)
	GetByID(ctx context.Context, id int64, from, to time.Time) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
