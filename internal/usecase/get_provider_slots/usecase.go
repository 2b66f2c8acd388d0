package get_provider_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	providerRepo "github.com/medpoint/MP-SchedulingService/internal/infra/storage/provider"
	"github.com/medpoint/MP-SchedulingService/internal/scheduling"
)

// UseCase use case для получения свободных слотов врача на день
type UseCase struct {
	providerRepo ProviderRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(providerRepo ProviderRepository, logger Logger) *UseCase {
	return &UseCase{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetProviderSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetProviderSlots: provider=%d, date=%s",
		req.ProviderID, req.Date.Format(domain.DateFormat))

	// 2. Получаем врача с расписанием на запрошенный день
	day := scheduling.Midnight(req.Date)
	provider, err := uc.providerRepo.GetByID(ctx, req.ProviderID, day, day.AddDate(0, 0, 1))
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetProviderSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetProviderSlots: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Вычисляем свободные слоты
	slots := scheduling.FreeSlots(provider, day)

	// 4. Фильтруем по минимальной длительности, если задана
	if req.Duration != nil {
		filtered := make([]domain.FreeSlot, 0, len(slots))
		for _, slot := range slots {
			if slot.Fits(*req.Duration) {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}

	uc.logger.Info("GetProviderSlots: provider=%d, date=%s, found %d slots",
		req.ProviderID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Date:         day,
		Slots:        slots,
	}, nil
}
