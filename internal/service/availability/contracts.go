package availability

import (
	"context"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// ProviderRepository интерфейс репозитория врачей
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64, from, to time.Time) (*domain.Provider, error)
	GetAvailability(ctx context.Context, providerID int64) ([]domain.AvailabilityWindow, error)
	ReplaceAvailability(ctx context.Context, providerID int64, windows []domain.AvailabilityWindow) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
