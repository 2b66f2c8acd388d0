package schedule_appointment

import "errors"

var (
	// ErrNoAvailableProviders возвращается, когда нет врачей, подходящих по
	// специальности и доступности, и альтернативные даты предложить не удалось
	ErrNoAvailableProviders = errors.New("schedule_appointment: no providers available")

	// ErrInvalidDuration возвращается, когда длительность не соответствует
	// типу приёма (консультация короче 30 минут)
	ErrInvalidDuration = errors.New("schedule_appointment: invalid duration for appointment type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_appointment: internal error")
)
