package patientrecords

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден в сервисе медкарт
	ErrPatientNotFound = errors.New("patient not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("patientrecords client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("patientrecords client: invalid response")
)
