package get_provider_slots

import (
	"context"

	getProviderSlots "github.com/medpoint/MP-SchedulingService/internal/usecase/get_provider_slots"
)

type GetProviderSlotsUseCase interface {
	Execute(ctx context.Context, req *getProviderSlots.Request) (*getProviderSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
