package domain

import "time"

// Search bounds for the scheduling engine
const (
	// MaxScheduleSearchDays максимальное окно поиска слота в днях
	MaxScheduleSearchDays = 30

	// AlternativeDaySearchWindow количество альтернативных дат, предлагаемых
	// пациенту при отсутствии подходящих врачей
	AlternativeDaySearchWindow = 7
)

// Business policy constants
const (
	// DefaultProviderRating рейтинг врача по умолчанию
	DefaultProviderRating = 3.5

	// MinConsultationDuration минимальная длительность консультации
	MinConsultationDuration = 30 * time.Minute

	// MaxFollowUpDuration типичная длительность повторного приёма,
	// превышение добавляет предупреждение (не ошибку)
	MaxFollowUpDuration = 15 * time.Minute

	// DepositMissedThreshold количество пропущенных визитов, после которого
	// требуется депозит
	DepositMissedThreshold = 3

	// RescheduleNoticePeriod минимальный запас до начала записи, позволяющий
	// перенести её ради срочного приёма
	RescheduleNoticePeriod = 2 * time.Hour

	// RescheduleSearchOffset смещение от исходного начала записи, с которого
	// ищется новый слот при переносе
	RescheduleSearchOffset = 1 * time.Hour

	// DefaultAlternativeTimeOfDay время начала для альтернативных дат,
	// если предпочтительное время не указано
	DefaultAlternativeTimeOfDay = 9 * time.Hour
)

// Base rates per appointment type (cost estimation)
const (
	ConsultationBaseRate = 150.0
	FollowUpBaseRate     = 80.0
	ProcedureBaseRate    = 400.0
	DefaultBaseRate      = 120.0

	// MinRatingCostFactor нижняя граница множителя рейтинга в оценке стоимости
	MinRatingCostFactor = 0.5
)

// Deposit amounts
const (
	ProcedureDepositBase = 150.0
	DefaultDepositBase   = 50.0
	DepositPerHour       = 25.0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих время врача
// Используется при фильтрации записей для расчёта свободных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByPatient,
	StatusCancelledByClinic,
	StatusNoShow,
}
