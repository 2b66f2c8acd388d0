package scheduling

import (
	"strings"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// Request неизменяемый запрос на планирование приёма
type Request struct {
	PatientID           int64
	Specialty           string
	PreferredDate       time.Time                  // Дата (опционально с временем)
	Duration            time.Duration              // Длительность приёма, > 0
	PreferredTime       *time.Duration             // Предпочтительное время суток (опционально)
	PreferredProviderID *int64                     // Предпочтительный врач (опционально)
	PreviousProviderID  *int64                     // Предыдущий врач пациента (опционально)
	Priority            domain.AppointmentPriority // normal | urgent
	Type                domain.AppointmentType     // consultation | follow_up | procedure
	InsurancePlan       string
}

// Result решение движка планирования
type Result struct {
	Success       bool
	Provider      *domain.Provider
	ScheduledTime time.Time

	Warnings []string

	RequiresInsuranceApproval bool
	EstimatedCost             float64

	RequiresDeposit bool
	DepositAmount   float64

	// SuggestedDates заполняется только на пути "нет подходящих врачей"
	SuggestedDates []time.Time

	// Reschedules предложения переноса записей, вытесненных срочным приёмом.
	// Вызывающая сторона применяет их транзакционно
	Reschedules []RescheduleProposal
}

// AddWarning добавляет непустое предупреждение к результату
func (r *Result) AddWarning(warning string) {
	trimmed := strings.TrimSpace(warning)
	if trimmed != "" {
		r.Warnings = append(r.Warnings, trimmed)
	}
}
