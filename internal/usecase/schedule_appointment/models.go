package schedule_appointment

import (
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

// Request модель запроса на планирование приёма
type Request struct {
	PatientID           int64
	Specialty           string
	PreferredDate       time.Time                  // Дата (опционально с временем)
	Duration            time.Duration              // Длительность приёма
	PreferredTime       *time.Duration             // Предпочтительное время суток (опционально)
	PreferredProviderID *int64                     // Предпочтительный врач (опционально)
	PreviousProviderID  *int64                     // Предыдущий врач пациента (опционально)
	Priority            domain.AppointmentPriority // normal | urgent
	Type                domain.AppointmentType     // consultation | follow_up | procedure
	InsurancePlan       string
	Notes               *string
}

// Response модель ответа на планирование приёма
type Response struct {
	Success bool

	// Поля заполняются при успешном планировании
	AppointmentID int64
	ProviderID    int64
	ProviderName  string
	ScheduledTime time.Time

	Warnings []string

	RequiresInsuranceApproval bool
	EstimatedCost             float64

	RequiresDeposit bool
	DepositAmount   float64

	// Rescheduled применённые переносы записей, вытесненных срочным приёмом
	Rescheduled []RescheduledAppointment

	// SuggestedDates альтернативные даты; заполняется только когда подходящих
	// врачей не нашлось (Success = false)
	SuggestedDates []time.Time
}

// RescheduledAppointment применённый перенос записи
type RescheduledAppointment struct {
	AppointmentID int64
	PatientID     int64
	OriginalStart time.Time
	NewStart      time.Time
}

// toEngineRequest конвертирует запрос usecase в запрос движка планирования
func (r *Request) toEngineRequest() *scheduling.Request {
	return &scheduling.Request{
		PatientID:           r.PatientID,
		Specialty:           r.Specialty,
		PreferredDate:       r.PreferredDate,
		Duration:            r.Duration,
		PreferredTime:       r.PreferredTime,
		PreferredProviderID: r.PreferredProviderID,
		PreviousProviderID:  r.PreviousProviderID,
		Priority:            r.Priority,
		Type:                r.Type,
		InsurancePlan:       r.InsurancePlan,
	}
}
