package scheduling

import (
	"sort"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// FreeSlots вычисляет упорядоченный список свободных интервалов врача на день:
// окна доступности, пересекающиеся с [day, day+1), обрезанные по границам дня,
// минус существующие записи.
//
// Алгоритм для каждого окна: записи, пересекающиеся с окном, сортируются по
// началу; курсор идёт от начала окна, промежуток до следующей занятой записи
// становится свободным слотом. Курсор никогда не движется назад, поэтому
// вложенные и пересекающиеся записи не ломают результат.
//
// Результат пересчитывается при каждом вызове, без кеширования.
func FreeSlots(provider *domain.Provider, day time.Time) []domain.FreeSlot {
	dayStart := Midnight(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Окна доступности, попадающие в день, обрезанные по его границам
	windows := make([]domain.FreeSlot, 0, len(provider.Availability))
	for _, w := range provider.Availability {
		if !Overlaps(w.Start, w.End, dayStart, dayEnd) {
			continue
		}
		start := w.Start
		if start.Before(dayStart) {
			start = dayStart
		}
		end := w.End
		if end.After(dayEnd) {
			end = dayEnd
		}
		windows = append(windows, domain.FreeSlot{Start: start, End: end})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})

	slots := make([]domain.FreeSlot, 0, len(windows))

	for _, window := range windows {
		// Записи, пересекающиеся с окном, по возрастанию начала
		busy := make([]*domain.Appointment, 0, len(provider.Appointments))
		for _, appt := range provider.Appointments {
			if Overlaps(appt.StartTime, appt.EndTime(), window.Start, window.End) {
				busy = append(busy, appt)
			}
		}
		sort.Slice(busy, func(i, j int) bool {
			return busy[i].StartTime.Before(busy[j].StartTime)
		})

		cursor := window.Start
		for _, appt := range busy {
			if appt.StartTime.After(cursor) {
				slots = append(slots, domain.FreeSlot{Start: cursor, End: appt.StartTime})
			}
			if appt.EndTime().After(cursor) {
				cursor = appt.EndTime()
			}
		}

		if cursor.Before(window.End) {
			slots = append(slots, domain.FreeSlot{Start: cursor, End: window.End})
		}
	}

	return slots
}

// IsAvailable проверяет, что интервал [start, start+duration] целиком лежит
// внутри одного из окон доступности врача и не пересекается ни с одной из его
// записей. Эквивалентно поиску покрывающего слота в FreeSlots, но дешевле.
func IsAvailable(provider *domain.Provider, start time.Time, duration time.Duration) bool {
	if provider == nil {
		return false
	}

	end := start.Add(duration)

	hasWindow := false
	for _, w := range provider.Availability {
		if !w.Start.After(start) && !w.End.Before(end) {
			hasWindow = true
			break
		}
	}
	if !hasWindow {
		return false
	}

	for _, appt := range provider.Appointments {
		if Overlaps(appt.StartTime, appt.EndTime(), start, end) {
			return false
		}
	}

	return true
}

// NextAvailabilityStart возвращает начало первого свободного слота врача,
// сканируя дни fromDate .. fromDate+MaxScheduleSearchDays-1.
// Второе значение false, если окно поиска исчерпано.
func NextAvailabilityStart(provider *domain.Provider, fromDate time.Time) (time.Time, bool) {
	for offset := 0; offset < domain.MaxScheduleSearchDays; offset++ {
		day := Midnight(fromDate).AddDate(0, 0, offset)
		if slots := FreeSlots(provider, day); len(slots) > 0 {
			return slots[0].Start, true
		}
	}
	return time.Time{}, false
}
