package scheduling

import (
	"fmt"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
)

// Warning texts surfaced to patients
const (
	warnFollowUpDuration = "Follow-up appointments typically take 15 minutes."
)

// Scheduler движок планирования приёмов. Чистый: не выполняет I/O, текущее
// время инжектируется параметром, состояние между вызовами не сохраняется.
//
// Движок не изменяет переданные коллекции врачей и записей — переносы
// конфликтующих записей возвращаются как предложения (RescheduleProposal).
// Тем не менее два одновременных вызова над одним и тем же снапшотом
// небезопасны: на время расчёта переносов снапшот временно модифицируется.
// Каждый вызов должен получать собственный снапшот.
type Scheduler struct {
	insurance InsurancePolicy
	history   HistoryLookup
}

// NewScheduler создаёт движок планирования. При nil-аргументах используются
// детерминированные заглушки (ChecksumInsurancePolicy, PseudoHistoryLookup).
func NewScheduler(insurance InsurancePolicy, history HistoryLookup) *Scheduler {
	if insurance == nil {
		insurance = ChecksumInsurancePolicy{}
	}
	if history == nil {
		history = PseudoHistoryLookup
	}
	return &Scheduler{
		insurance: insurance,
		history:   history,
	}
}

// ScheduleAppointment выбирает врача и время приёма для запроса.
//
// Последовательность: отбор врачей → выбор врача → поиск слота → (для срочных)
// разрешение конфликтов → проверка страховки → валидация длительности по типу
// → расчёт депозита → результат.
//
// Валидация длительности консультации намеренно выполняется ПОСЛЕ выбора врача
// и слота, см. DESIGN.md.
func (s *Scheduler) ScheduleAppointment(req *Request, providers []*domain.Provider, now time.Time) (*Result, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if providers == nil {
		return nil, fmt.Errorf("%w: providers are required", ErrInvalidInput)
	}

	result := &Result{}

	// 1. Отбор врачей по специальности и доступности
	eligible := EligibleProviders(providers, req.Specialty, req.PreferredDate, req.Duration)

	if len(eligible) == 0 {
		// 1.1. Подходящих врачей нет — предлагаем альтернативные даты
		alternatives := FindAlternativeDates(req)
		if len(alternatives) > 0 {
			result.SuggestedDates = alternatives
			return result, nil
		}
		// Календарный обход всегда даёт 7 дат, эта ветка — страховочная
		return nil, ErrNoAvailableProviders
	}

	// 2. Выбор врача: предпочтительный → предыдущий → ранжирование
	selected := pickPatientPreferredProvider(eligible, req.PreferredProviderID, req.PreviousProviderID)
	if selected == nil {
		selected = selectProviderByCriteria(eligible, req.PreferredDate)
	}

	// 3. Поиск времени приёма
	var scheduledTime time.Time
	if req.PreferredTime != nil {
		scheduledTime = FindNearestAvailableSlot(selected, req.PreferredDate, *req.PreferredTime, req.Duration)
	} else {
		scheduledTime = FindBestAvailableSlot(selected, req.PreferredDate, req.Duration, req.PatientID)
	}

	// 4. Для срочных приёмов — разрешение конфликтов
	if req.Priority == domain.PriorityUrgent {
		selected, scheduledTime = s.resolveUrgentConflicts(result, req, eligible, selected, scheduledTime, now)
	}

	// 5. Проверка страховки
	if !s.insurance.IsValid(req.PatientID, selected.ID, req.Specialty) {
		result.RequiresInsuranceApproval = true
		result.EstimatedCost = EstimateCost(req.Type, req.Duration, selected.Rating)
	}

	// 6. Валидация длительности по типу приёма
	if req.Type == domain.TypeConsultation && req.Duration < domain.MinConsultationDuration {
		return nil, ErrInvalidDuration
	}
	if req.Type == domain.TypeFollowUp && req.Duration > domain.MaxFollowUpDuration {
		result.AddWarning(warnFollowUpDuration)
	}

	// 7. Депозит по истории пропущенных визитов
	history := s.history(req.PatientID)
	if history.MissedAppointments >= domain.DepositMissedThreshold {
		result.RequiresDeposit = true
		result.DepositAmount = DepositAmount(req.Type, req.Duration)
	}

	result.Success = true
	result.Provider = selected
	result.ScheduledTime = scheduledTime
	return result, nil
}

// resolveUrgentConflicts разрешает конфликты срочного приёма с существующими
// записями выбранного врача:
//   - конфликтов нет — выбор не меняется;
//   - все конфликты переносимы (обычный приоритет, начало позже now+2ч) —
//     строятся предложения переноса;
//   - иначе ищется врач со строго более ранним слотом; если нашёлся, выбор
//     переключается на него;
//   - если более раннего врача нет, конфликтующий выбор сохраняется как есть:
//     срочный приём может занять уже занятое время (осознанное решение,
//     повторная проверка конфликта не выполняется).
func (s *Scheduler) resolveUrgentConflicts(
	result *Result,
	req *Request,
	eligible []*domain.Provider,
	selected *domain.Provider,
	scheduledTime time.Time,
	now time.Time,
) (*domain.Provider, time.Time) {
	conflicts := conflictingAppointments(selected, scheduledTime, req.Duration)
	if len(conflicts) == 0 {
		return selected, scheduledTime
	}

	if canRescheduleConflicts(conflicts, now) {
		result.Reschedules = rescheduleConflicts(selected, conflicts)
		return selected, scheduledTime
	}

	if sooner := findSoonerProvider(eligible, req, scheduledTime); sooner != nil {
		selected = sooner
		scheduledTime = FindBestAvailableSlot(selected, req.PreferredDate, req.Duration, req.PatientID)
	}

	return selected, scheduledTime
}
