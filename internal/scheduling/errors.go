package scheduling

import "errors"

var (
	// ErrNoAvailableProviders возвращается, когда нет врачей, подходящих по
	// специальности и доступности, и альтернативные даты предложить не удалось
	ErrNoAvailableProviders = errors.New("scheduling: no providers available for the request")

	// ErrInvalidDuration возвращается, когда длительность не соответствует
	// типу приёма (консультация короче 30 минут)
	ErrInvalidDuration = errors.New("scheduling: consultations require at least 30 minutes")

	// ErrInvalidInput возвращается при отсутствующих аргументах
	ErrInvalidInput = errors.New("scheduling: invalid input")
)
