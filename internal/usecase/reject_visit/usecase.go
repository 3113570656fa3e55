package reject_visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FLM-VisitService/internal/domain"
	slotStore "github.com/m04kA/FLM-VisitService/internal/infra/storage/slot"
)

// UseCase use case отклонения визита
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

// Execute отклоняет бронь визита.
// Отклонить можно только бронь в статусе requested; проверка и смена
// статуса атомарны под блокировкой записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RejectVisit: flat=%d, start_time=%d", req.FlatID, req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RejectVisit: validation failed: %v", err)
		return nil, err
	}

	key := domain.SlotKey{FlatID: req.FlatID, StartTime: req.StartTime}

	updated, err := uc.store.UpdateLive(key, func(s *domain.Slot) error {
		if s.Status != domain.StatusRequested {
			return ErrAlreadyDecided
		}
		s.Status = domain.StatusRejected
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, slotStore.ErrSlotNotFound):
			uc.logger.Warn("RejectVisit: reservation not found: flat=%d, start_time=%d",
				req.FlatID, req.StartTime)
			return nil, ErrReservationNotFound

		case errors.Is(err, ErrAlreadyDecided):
			uc.logger.Warn("RejectVisit: reservation already decided: flat=%d, start_time=%d",
				req.FlatID, req.StartTime)
			return nil, err

		default:
			uc.logger.Error("RejectVisit: store error: flat=%d, start_time=%d: %v",
				req.FlatID, req.StartTime, err)
			return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
		}
	}

	uc.notifier.NotifyVisitRejected(ctx, updated.FlatID, updated.VisitorID, updated.StartTime)

	uc.logger.Info("RejectVisit: successfully rejected: flat=%d, visitor=%d, start_time=%d",
		updated.FlatID, updated.VisitorID, updated.StartTime)

	return &Response{
		FlatID:    updated.FlatID,
		VisitorID: updated.VisitorID,
		StartTime: updated.StartTime,
		Status:    string(updated.Status),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FlatID <= 0 {
		return fmt.Errorf("%w: flatID must be positive", ErrInvalidInput)
	}
	if req.StartTime <= 0 {
		return fmt.Errorf("%w: startTime must be positive", ErrInvalidInput)
	}
	return nil
}
