package schedule_appointment

import (
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	scheduleAppointment "github.com/medpoint/MP-SchedulingService/internal/usecase/schedule_appointment"
	"github.com/medpoint/MP-SchedulingService/pkg/ptr"
)

// ScheduleAppointmentRequest HTTP request model
type ScheduleAppointmentRequest struct {
	PatientID           int64   `json:"patientId"`
	Specialty           string  `json:"specialty"`
	PreferredDate       string  `json:"preferredDate"`           // "2025-10-15"
	PreferredTime       *string `json:"preferredTime,omitempty"` // "10:00"
	DurationMinutes     int     `json:"durationMinutes"`
	PreferredProviderID *int64  `json:"preferredProviderId,omitempty"`
	PreviousProviderID  *int64  `json:"previousProviderId,omitempty"`
	Priority            string  `json:"priority,omitempty"` // normal | urgent
	Type                string  `json:"type,omitempty"`     // consultation | follow_up | procedure
	InsurancePlan       string  `json:"insurancePlan,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}

// RescheduledAppointmentResponse перенесённая запись в HTTP ответе
type RescheduledAppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	PatientID     int64  `json:"patientId"`
	OriginalStart string `json:"originalStart"` // ISO 8601
	NewStart      string `json:"newStart"`      // ISO 8601
}

// ScheduleAppointmentResponse HTTP response model
type ScheduleAppointmentResponse struct {
	Success bool `json:"success"`

	AppointmentID int64  `json:"appointmentId,omitempty"`
	ProviderID    int64  `json:"providerId,omitempty"`
	ProviderName  string `json:"providerName,omitempty"`
	ScheduledTime string `json:"scheduledTime,omitempty"` // ISO 8601

	Warnings []string `json:"warnings,omitempty"`

	RequiresInsuranceApproval bool    `json:"requiresInsuranceApproval"`
	EstimatedCost             float64 `json:"estimatedCost,omitempty"`

	RequiresDeposit bool    `json:"requiresDeposit"`
	DepositAmount   float64 `json:"depositAmount,omitempty"`

	Rescheduled []RescheduledAppointmentResponse `json:"rescheduled,omitempty"`

	SuggestedDates []string `json:"suggestedDates,omitempty"` // "2025-10-16"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleAppointmentRequest) ToUseCaseRequest() (*scheduleAppointment.Request, error) {
	// Парсим дату
	preferredDate, err := time.Parse(domain.DateFormat, r.PreferredDate)
	if err != nil {
		return nil, err
	}

	// Парсим предпочтительное время суток, если указано
	var preferredTime *time.Duration
	if r.PreferredTime != nil {
		parsed, err := time.Parse(domain.TimeFormat, *r.PreferredTime)
		if err != nil {
			return nil, err
		}
		preferredTime = ptr.Ptr(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)

		// Отбор врачей проверяет доступность в сам запрошенный момент, поэтому
		// предпочтительное время входит в дату. Поиск слота обнуляет время сам
		preferredDate = preferredDate.Add(*preferredTime)
	}

	// Приоритет и тип по умолчанию
	priority := domain.AppointmentPriority(r.Priority)
	if r.Priority == "" {
		priority = domain.PriorityNormal
	}
	apptType := domain.AppointmentType(r.Type)
	if r.Type == "" {
		apptType = domain.TypeConsultation
	}

	return &scheduleAppointment.Request{
		PatientID:           r.PatientID,
		Specialty:           r.Specialty,
		PreferredDate:       preferredDate,
		Duration:            time.Duration(r.DurationMinutes) * time.Minute,
		PreferredTime:       preferredTime,
		PreferredProviderID: r.PreferredProviderID,
		PreviousProviderID:  r.PreviousProviderID,
		Priority:            priority,
		Type:                apptType,
		InsurancePlan:       r.InsurancePlan,
		Notes:               r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleAppointment.Response) *ScheduleAppointmentResponse {
	result := &ScheduleAppointmentResponse{
		Success:                   resp.Success,
		Warnings:                  resp.Warnings,
		RequiresInsuranceApproval: resp.RequiresInsuranceApproval,
		EstimatedCost:             resp.EstimatedCost,
		RequiresDeposit:           resp.RequiresDeposit,
		DepositAmount:             resp.DepositAmount,
	}

	if resp.Success {
		result.AppointmentID = resp.AppointmentID
		result.ProviderID = resp.ProviderID
		result.ProviderName = resp.ProviderName
		result.ScheduledTime = resp.ScheduledTime.Format(time.RFC3339)
	}

	for _, r := range resp.Rescheduled {
		result.Rescheduled = append(result.Rescheduled, RescheduledAppointmentResponse{
			AppointmentID: r.AppointmentID,
			PatientID:     r.PatientID,
			OriginalStart: r.OriginalStart.Format(time.RFC3339),
			NewStart:      r.NewStart.Format(time.RFC3339),
		})
	}

	for _, d := range resp.SuggestedDates {
		result.SuggestedDates = append(result.SuggestedDates, d.Format(domain.DateFormat))
	}

	return result
}
