package scheduling

import (
	"sort"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// RescheduleProposal предложение переноса записи, конфликтующей со срочным
// приёмом. Движок не изменяет записи напрямую — вызывающая сторона применяет
// предложения транзакционно.
type RescheduleProposal struct {
	AppointmentID int64
	ProviderID    int64
	PatientID     int64
	OriginalStart time.Time
	NewStart      time.Time
	Duration      time.Duration
}

// conflictingAppointments возвращает записи врача, пересекающиеся с интервалом
// [start, start+duration)
func conflictingAppointments(provider *domain.Provider, start time.Time, duration time.Duration) []*domain.Appointment {
	end := start.Add(duration)

	conflicts := make([]*domain.Appointment, 0)
	for _, appt := range provider.Appointments {
		if Overlaps(appt.StartTime, appt.EndTime(), start, end) {
			conflicts = append(conflicts, appt)
		}
	}
	return conflicts
}

// canRescheduleConflicts проверяет, что все конфликтующие записи можно
// перенести: каждая имеет обычный (не срочный) приоритет и начинается позже,
// чем now + RescheduleNoticePeriod
func canRescheduleConflicts(conflicts []*domain.Appointment, now time.Time) bool {
	threshold := now.Add(domain.RescheduleNoticePeriod)
	for _, appt := range conflicts {
		if appt.IsUrgent() || !appt.StartTime.After(threshold) {
			return false
		}
	}
	return true
}

// rescheduleConflicts строит предложения переноса для конфликтующих записей
// в порядке их начала. Новый слот ищется на том же враче, начиная со дня
// исходного начала записи + RescheduleSearchOffset.
//
// На время расчёта записи сдвигаются в рабочем снапшоте, чтобы поиск слота для
// следующего конфликта видел уже предложенные переносы; перед возвратом
// исходные времена восстанавливаются.
func rescheduleConflicts(provider *domain.Provider, conflicts []*domain.Appointment) []RescheduleProposal {
	ordered := make([]*domain.Appointment, len(conflicts))
	copy(ordered, conflicts)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].StartTime.Before(ordered[j].StartTime)
	})

	proposals := make([]RescheduleProposal, 0, len(ordered))

	for _, appt := range ordered {
		newStart := FindBestAvailableSlot(
			provider,
			appt.StartTime.Add(domain.RescheduleSearchOffset),
			appt.Duration,
			appt.PatientID,
		)

		proposals = append(proposals, RescheduleProposal{
			AppointmentID: appt.ID,
			ProviderID:    appt.ProviderID,
			PatientID:     appt.PatientID,
			OriginalStart: appt.StartTime,
			NewStart:      newStart,
			Duration:      appt.Duration,
		})

		appt.StartTime = newStart
	}

	// Возвращаем снапшот в исходное состояние
	for i, appt := range ordered {
		appt.StartTime = proposals[i].OriginalStart
	}

	return proposals
}
