package patientrecords

// History модель истории посещений из сервиса медкарт
type History struct {
	PatientID          int64   `json:"patient_id"`
	MissedAppointments int     `json:"missed_appointments"`
	LastVisit          *string `json:"last_visit,omitempty"` // YYYY-MM-DD
}

// ErrorResponse модель ошибки от сервиса медкарт
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
