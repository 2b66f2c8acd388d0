package scheduling

import "time"

// Overlaps проверяет пересечение двух временных интервалов.
// Используются строгие неравенства: интервалы, граничащие концами,
// НЕ считаются пересекающимися.
//
// Примеры:
// - [11:20, 11:40) и [11:30, 12:00) → ЕСТЬ пересечение (11:30-11:40)
// - [11:00, 11:30) и [11:30, 12:00) → НЕТ пересечения (граничат)
//
// Единственная точка сравнения интервалов во всём движке — все остальные
// компоненты обязаны использовать её, чтобы граничные случаи разрешались одинаково.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Midnight обнуляет время, оставляя только дату
func Midnight(moment time.Time) time.Time {
	return time.Date(moment.Year(), moment.Month(), moment.Day(), 0, 0, 0, 0, moment.Location())
}
