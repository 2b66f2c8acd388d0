package update_provider_availability

import (
	"context"

	"github.com/medpoint/MP-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ReplaceWindows(ctx context.Context, req *models.ReplaceWindowsRequest) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
