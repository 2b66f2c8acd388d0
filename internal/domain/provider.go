package domain

import (
	"strings"
	"time"
)

// AvailabilityWindow represents a contiguous block of time a provider is bookable in.
// A window is owned by exactly one provider.
type AvailabilityWindow struct {
	ID         int64
	ProviderID int64
	Start      time.Time
	End        time.Time
}

// Contains returns true if the interval [start, start+duration] lies fully inside the window
func (w *AvailabilityWindow) Contains(start time.Time, duration time.Duration) bool {
	end := start.Add(duration)
	return !w.Start.After(start) && !w.End.Before(end)
}

// IsValid returns true if the window has a positive length
func (w *AvailabilityWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

// Provider represents a care provider together with the data the scheduling
// engine needs: specialties, accepted insurance plans, availability windows and
// already-booked appointments.
type Provider struct {
	ID                 int64
	Name               string
	Specialties        []string
	AcceptedInsurances []string
	Rating             float64 // 0-5, по умолчанию DefaultProviderRating
	Availability       []AvailabilityWindow
	Appointments       []*Appointment
}

// HasSpecialty returns true if the provider covers the given specialty (case-insensitive)
func (p *Provider) HasSpecialty(specialty string) bool {
	for _, s := range p.Specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}

// AcceptsInsurance returns true if the provider accepts the given insurance plan
func (p *Provider) AcceptsInsurance(plan string) bool {
	for _, ins := range p.AcceptedInsurances {
		if strings.EqualFold(ins, plan) {
			return true
		}
	}
	return false
}

// ActiveAppointments returns the provider's appointments that still occupy their slots
func (p *Provider) ActiveAppointments() []*Appointment {
	result := make([]*Appointment, 0, len(p.Appointments))
	for _, appt := range p.Appointments {
		if appt.IsActive() {
			result = append(result, appt)
		}
	}
	return result
}
