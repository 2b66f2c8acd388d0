package schedule_appointment

import (
	"context"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// ProviderRepository интерфейс репозитория врачей
type ProviderRepository interface {
	// ListBySpecialty получает врачей специальности с окнами доступности и
	// активными записями в периоде [from, to)
	ListBySpecialty(ctx context.Context, specialty string, from, to time.Time) ([]*domain.Provider, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	UpdateStartTime(ctx context.Context, id int64, newStart time.Time) error
}

// PatientRecordsClient интерфейс клиента сервиса медкарт
type PatientRecordsClient interface {
	// GetHistoryWithGracefulDegradation всегда возвращает историю:
	// при недоступности сервиса — детерминированную заглушку
	GetHistoryWithGracefulDegradation(ctx context.Context, patientID int64) *domain.PatientHistory
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector интерфейс доменных метрик планирования.
// Может быть nil, если метрики отключены
type MetricsCollector interface {
	AppointmentScheduled(apptType, priority string)
	UrgentPreemptions(count int)
	AlternativeDatesSuggested()
	SchedulingFailure(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
