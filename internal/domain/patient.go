package domain

import "time"

// PatientHistory holds the attendance history of a patient.
// Obtained from the external patient-records service, read-only for the engine.
type PatientHistory struct {
	PatientID          int64
	MissedAppointments int
	LastVisit          *time.Time
}

// RequiresDeposit returns true if the patient missed enough appointments
// to require a deposit before booking
func (h *PatientHistory) RequiresDeposit() bool {
	return h.MissedAppointments >= DepositMissedThreshold
}
