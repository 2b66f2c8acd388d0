package scheduling

import (
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// FindBestAvailableSlot ищет самый ранний свободный слот достаточной длины,
// сканируя дни от preferredDate в пределах MaxScheduleSearchDays.
//
// Если за всё окно поиска ничего не найдено, возвращается детерминированный
// псевдо-слот: midnight(preferredDate) + (8 + patientID mod 5) часов.
// Вызывающая сторона всегда получает время, а не ошибку — подробности
// в DESIGN.md.
func FindBestAvailableSlot(provider *domain.Provider, preferredDate time.Time, duration time.Duration, patientID int64) time.Time {
	for offset := 0; offset < domain.MaxScheduleSearchDays; offset++ {
		day := Midnight(preferredDate).AddDate(0, 0, offset)
		for _, slot := range FreeSlots(provider, day) {
			if slot.Fits(duration) {
				return slot.Start
			}
		}
	}

	fallbackHours := time.Duration(8+patientID%5) * time.Hour
	return Midnight(preferredDate).Add(fallbackHours)
}

// FindNearestAvailableSlot ищет слот, ближайший к предпочтительному времени
// target = midnight(date) + preferredTime.
//
// Для каждого дня окна поиска рассматриваются все свободные слоты достаточной
// длины. Кандидат — начало слота, либо сам target, если день совпадает с
// запрошенной датой и интервал [target, target+duration] помещается в слот
// (привязка к предпочтительному времени). Отслеживается глобальный минимум
// |кандидат - target|; поиск обрывается, как только найдено точное совпадение.
//
// Если за всё окно ничего не подошло, возвращается неизменённый target.
func FindNearestAvailableSlot(provider *domain.Provider, date time.Time, preferredTime time.Duration, duration time.Duration) time.Time {
	base := Midnight(date)
	target := base.Add(preferredTime)

	var bestCandidate time.Time
	bestFound := false
	var bestDistance time.Duration

	for offset := 0; offset < domain.MaxScheduleSearchDays; offset++ {
		day := base.AddDate(0, 0, offset)

		for _, slot := range FreeSlots(provider, day) {
			if !slot.Fits(duration) {
				continue
			}

			candidate := slot.Start
			if day.Equal(base) && !slot.Start.After(target) && !target.Add(duration).After(slot.End) {
				candidate = target
			}

			distance := candidate.Sub(target)
			if distance < 0 {
				distance = -distance
			}
			if !bestFound || distance < bestDistance {
				bestFound = true
				bestDistance = distance
				bestCandidate = candidate
			}
		}

		if bestFound && bestDistance == 0 {
			break
		}
	}

	if !bestFound {
		return target
	}
	return bestCandidate
}
