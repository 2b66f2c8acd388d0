package domain

import "time"

// AppointmentPriority represents the urgency of an appointment
type AppointmentPriority string

const (
	PriorityNormal AppointmentPriority = "normal"
	PriorityUrgent AppointmentPriority = "urgent"
)

// AppointmentType represents the kind of visit being scheduled
type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeFollowUp     AppointmentType = "follow_up"
	TypeProcedure    AppointmentType = "procedure"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled          AppointmentStatus = "scheduled"
	StatusCompleted          AppointmentStatus = "completed"
	StatusCancelledByPatient AppointmentStatus = "cancelled_by_patient"
	StatusCancelledByClinic  AppointmentStatus = "cancelled_by_clinic"
	StatusNoShow             AppointmentStatus = "no_show"
)

// Appointment represents a booked visit in the system
type Appointment struct {
	ID         int64
	ProviderID int64
	PatientID  int64
	StartTime  time.Time
	Duration   time.Duration
	Priority   AppointmentPriority
	Type       AppointmentType
	Status     AppointmentStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the derived end of the appointment
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(a.Duration)
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByPatient &&
		a.Status != StatusCancelledByClinic &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// IsUrgent returns true for urgent-priority appointments
func (a *Appointment) IsUrgent() bool {
	return a.Priority == PriorityUrgent
}

// PatientAppointmentsFilter фильтр для получения записей пациента
type PatientAppointmentsFilter struct {
	PatientID       int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи и no-show
}

// ProviderAppointmentsFilter фильтр для получения записей врача
type ProviderAppointmentsFilter struct {
	ProviderID      int64
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeInactive bool
}
