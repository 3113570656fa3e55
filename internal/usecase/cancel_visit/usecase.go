package cancel_visit

import (
	"context"
	"fmt"

	"github.com/m04kA/FLM-VisitService/internal/domain"
)

// UseCase use case отмены визита
type UseCase struct {
	store    SlotStore
	notifier Notifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SlotStore, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute отменяет бронь визита.
// Отменить может только владелец брони в статусе requested или approved.
// Проверка предиката, пометка removed и удаление ключа из индекса
// выполняются под одной блокировкой записи; после отмены ключ сразу
// свободен для нового резервирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelVisit: flat=%d, visitor=%d, start_time=%d",
		req.FlatID, req.VisitorID, req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelVisit: validation failed: %v", err)
		return err
	}

	key := domain.SlotKey{FlatID: req.FlatID, StartTime: req.StartTime}

	err := uc.store.CheckAndDelete(key, func(s *domain.Slot) bool {
		return s.VisitorID == req.VisitorID && s.CanBeCancelled()
	})
	if err != nil {
		// Любая причина отказа схлопывается в "бронь не найдена"
		uc.logger.Warn("CancelVisit: reservation not found: flat=%d, visitor=%d, start_time=%d",
			req.FlatID, req.VisitorID, req.StartTime)
		return ErrReservationNotFound
	}

	uc.notifier.NotifyVisitCanceled(ctx, req.FlatID, req.VisitorID, req.StartTime)

	uc.logger.Info("CancelVisit: successfully canceled: flat=%d, visitor=%d, start_time=%d",
		req.FlatID, req.VisitorID, req.StartTime)

	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FlatID <= 0 {
		return fmt.Errorf("%w: flatID must be positive", ErrInvalidInput)
	}
	if req.VisitorID <= 0 {
		return fmt.Errorf("%w: visitorID must be positive", ErrInvalidInput)
	}
	if req.StartTime <= 0 {
		return fmt.Errorf("%w: startTime must be positive", ErrInvalidInput)
	}
	return nil
}
