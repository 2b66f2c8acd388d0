package scheduling

import (
	"sort"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// endOfTime сентинел для врачей без будущих свободных слотов: при ранжировании
// они уходят в конец списка
var endOfTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// EligibleProviders отбирает врачей по специальности (без учёта регистра) и
// доступности: интервал [preferredDate, preferredDate+duration] должен целиком
// помещаться в окно доступности и не пересекаться с существующими записями.
func EligibleProviders(providers []*domain.Provider, specialty string, preferredDate time.Time, duration time.Duration) []*domain.Provider {
	eligible := make([]*domain.Provider, 0, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}
		if p.HasSpecialty(specialty) && IsAvailable(p, preferredDate, duration) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// pickPatientPreferredProvider возвращает предпочтительного врача пациента,
// если он среди подходящих: сначала предпочтительный, затем предыдущий.
// Возвращает nil, если ни один не найден.
func pickPatientPreferredProvider(providers []*domain.Provider, preferredProviderID, previousProviderID *int64) *domain.Provider {
	byID := make(map[int64]*domain.Provider, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
	}

	if preferredProviderID != nil {
		if p, ok := byID[*preferredProviderID]; ok {
			return p
		}
	}
	if previousProviderID != nil {
		if p, ok := byID[*previousProviderID]; ok {
			return p
		}
	}
	return nil
}

// selectProviderByCriteria ранжирует подходящих врачей:
// рейтинг по убыванию, затем количество записей по возрастанию, затем ближайшее
// свободное время по возрастанию (врачи без свободных слотов — последними).
// Возвращает лучшего.
func selectProviderByCriteria(providers []*domain.Provider, preferredDate time.Time) *domain.Provider {
	ranked := make([]*domain.Provider, len(providers))
	copy(ranked, providers)

	// Ближайшая доступность считается один раз на врача
	nextStart := make(map[int64]time.Time, len(ranked))
	for _, p := range ranked {
		start, ok := NextAvailabilityStart(p, preferredDate)
		if !ok {
			start = endOfTime
		}
		nextStart[p.ID] = start
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		if len(ranked[i].Appointments) != len(ranked[j].Appointments) {
			return len(ranked[i].Appointments) < len(ranked[j].Appointments)
		}
		return nextStart[ranked[i].ID].Before(nextStart[ranked[j].ID])
	})

	return ranked[0]
}

// FindAlternativeDates предлагает альтернативные даты, когда подходящих врачей
// нет: календарный обход со следующего дня после предпочтительной даты,
// суббота и воскресенье пропускаются, к каждому дню добавляется запрошенное
// время (или DefaultAlternativeTimeOfDay). Собирается ровно
// AlternativeDaySearchWindow предложений.
//
// Это именно предложение, а не гарантия: реальная доступность врачей при
// обходе не проверяется.
func FindAlternativeDates(req *Request) []time.Time {
	preferredTime := domain.DefaultAlternativeTimeOfDay
	if req.PreferredTime != nil {
		preferredTime = *req.PreferredTime
	}

	suggestions := make([]time.Time, 0, domain.AlternativeDaySearchWindow)
	cursor := Midnight(req.PreferredDate).AddDate(0, 0, 1)

	for len(suggestions) < domain.AlternativeDaySearchWindow {
		wd := cursor.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			suggestions = append(suggestions, cursor.Add(preferredTime))
		}
		cursor = cursor.AddDate(0, 0, 1)
	}

	return suggestions
}

// findSoonerProvider ищет среди подходящих врачей того, чей лучший слот строго
// раньше текущего выбранного времени. Возвращает nil, если такого нет.
func findSoonerProvider(providers []*domain.Provider, req *Request, currentScheduledTime time.Time) *domain.Provider {
	var bestProvider *domain.Provider
	bestSlot := currentScheduledTime

	for _, p := range providers {
		slot := FindBestAvailableSlot(p, req.PreferredDate, req.Duration, req.PatientID)
		if slot.Before(bestSlot) {
			bestSlot = slot
			bestProvider = p
		}
	}

	return bestProvider
}
