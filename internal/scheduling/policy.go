package scheduling

import (
	"math"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// InsurancePolicy проверяет действительность страховки пациента у врача.
// Вынесена в интерфейс, чтобы реальную интеграцию со страховой можно было
// подставить, не трогая алгоритм планирования.
type InsurancePolicy interface {
	IsValid(patientID, providerID int64, specialty string) bool
}

// ChecksumInsurancePolicy детерминированная псевдо-проверка страховки,
// заменяющая недоступный внешний сервис:
// (patientID + providerID + len(specialty)) mod 5 != 0
type ChecksumInsurancePolicy struct{}

// IsValid реализует InsurancePolicy
func (ChecksumInsurancePolicy) IsValid(patientID, providerID int64, specialty string) bool {
	checksum := patientID + providerID + int64(len(specialty))
	return checksum%5 != 0
}

// HistoryLookup возвращает историю посещений пациента. Считается тотальной:
// всегда возвращает значение
type HistoryLookup func(patientID int64) domain.PatientHistory

// PseudoHistoryLookup детерминированная заглушка истории пациента на случай
// отсутствия интеграции с сервисом медкарт:
// missed = patientID mod 4, lastVisit = сегодня - (patientID mod 60) дней
func PseudoHistoryLookup(patientID int64) domain.PatientHistory {
	missed := int(patientID % 4)
	if missed < 0 {
		missed = -missed
	}
	lastVisit := time.Now().AddDate(0, 0, -int(patientID%60))
	return domain.PatientHistory{
		PatientID:          patientID,
		MissedAppointments: missed,
		LastVisit:          &lastVisit,
	}
}

// EstimateCost оценивает стоимость приёма:
// baseRate(type) * (durationMinutes/30) * max(0.5, rating/5),
// округление до 2 знаков
func EstimateCost(apptType domain.AppointmentType, duration time.Duration, rating float64) float64 {
	base := baseRate(apptType)
	durationMultiplier := duration.Minutes() / 30

	ratingAdjustment := rating / 5
	if ratingAdjustment < domain.MinRatingCostFactor {
		ratingAdjustment = domain.MinRatingCostFactor
	}

	return roundToCents(base * durationMultiplier * ratingAdjustment)
}

// DepositAmount вычисляет сумму депозита:
// base(type) + ceil(durationHours) * DepositPerHour
func DepositAmount(apptType domain.AppointmentType, duration time.Duration) float64 {
	base := domain.DefaultDepositBase
	if apptType == domain.TypeProcedure {
		base = domain.ProcedureDepositBase
	}
	return base + math.Ceil(duration.Hours())*domain.DepositPerHour
}

func baseRate(apptType domain.AppointmentType) float64 {
	switch apptType {
	case domain.TypeConsultation:
		return domain.ConsultationBaseRate
	case domain.TypeFollowUp:
		return domain.FollowUpBaseRate
	case domain.TypeProcedure:
		return domain.ProcedureBaseRate
	default:
		return domain.DefaultBaseRate
	}
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
