package domain

import "time"

// FreeSlot represents a maximal open sub-interval of a provider's availability
// window not covered by any existing appointment
type FreeSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the slot
func (s *FreeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Fits returns true if an appointment of the given duration fits into the slot
func (s *FreeSlot) Fits(duration time.Duration) bool {
	return s.Duration() >= duration
}

// IsEmpty returns true if the slot has no length
func (s *FreeSlot) IsEmpty() bool {
	return !s.Start.Before(s.End)
}
