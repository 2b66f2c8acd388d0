package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/medpoint/MP-SchedulingService/internal/domain"
	providerRepo "github.com/medpoint/MP-SchedulingService/internal/infra/storage/provider"
	"github.com/medpoint/MP-SchedulingService/internal/service/availability/models"
)

// Service сервис для управления расписанием врачей
type Service struct {
	providerRepo ProviderRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	providerRepo ProviderRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		providerRepo: providerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWindows получает окна доступности врача
func (s *Service) GetWindows(ctx context.Context, providerID int64) (*models.WindowListResponse, error) {
	s.logger.Info("GetWindows: fetching availability for provider=%d", providerID)

	windows, err := s.providerRepo.GetAvailability(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("GetWindows: provider id=%d not found", providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetWindows: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetWindows - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWindows: fetched %d windows for provider=%d", len(windows), providerID)
	return models.FromDomainWindows(providerID, windows), nil
}

// ReplaceWindows заменяет расписание врача целиком
// Окна проверяются на корректность (начало строго раньше конца) и отсутствие
// пересечений между собой; окна, соприкасающиеся границами, допустимы
func (s *Service) ReplaceWindows(ctx context.Context, req *models.ReplaceWindowsRequest) (*models.WindowListResponse, error) {
	s.logger.Info("ReplaceWindows: replacing availability for provider=%d with %d windows",
		req.ProviderID, len(req.Windows))

	windows := req.ToDomainWindows()
	if err := validateWindows(windows); err != nil {
		s.logger.Warn("ReplaceWindows: invalid windows for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Проверяем существование врача; расписание на период не нужно
		now := time.Now()
		if _, err := s.providerRepo.GetByID(txCtx, req.ProviderID, now, now); err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				return ErrProviderNotFound
			}
			return fmt.Errorf("%w: ReplaceWindows - repository error: %v", ErrInternal, err)
		}

		if err := s.providerRepo.ReplaceAvailability(txCtx, req.ProviderID, windows); err != nil {
			return fmt.Errorf("%w: ReplaceWindows - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			s.logger.Warn("ReplaceWindows: provider id=%d not found", req.ProviderID)
		} else {
			s.logger.Error("ReplaceWindows: failed for provider=%d: %v", req.ProviderID, err)
		}
		return nil, err
	}

	s.logger.Info("ReplaceWindows: successfully replaced availability for provider=%d", req.ProviderID)
	return s.GetWindows(ctx, req.ProviderID)
}

// validateWindows проверяет корректность окон и отсутствие пересечений
func validateWindows(windows []domain.AvailabilityWindow) error {
	for _, w := range windows {
		if !w.IsValid() {
			return fmt.Errorf("%w: window start must be before end", ErrInvalidWindow)
		}
	}

	sorted := make([]domain.AvailabilityWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Before(sorted[i-1].End) {
			return fmt.Errorf("%w: windows [%s, %s) and [%s, %s)",
				ErrOverlappingWindows,
				sorted[i-1].Start.Format(time.RFC3339), sorted[i-1].End.Format(time.RFC3339),
				sorted[i].Start.Format(time.RFC3339), sorted[i].End.Format(time.RFC3339))
		}
	}

	return nil
}
