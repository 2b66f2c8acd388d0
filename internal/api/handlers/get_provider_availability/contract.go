package get_provider_availability

import (
	"context"

	"github.com/medpoint/MP-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWindows(ctx context.Context, providerID int64) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
