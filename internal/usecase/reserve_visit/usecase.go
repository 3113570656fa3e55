package reserve_visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FLM-VisitService/internal/domain"
	slotStore "github.com/m04kA/FLM-VisitService/internal/infra/storage/slot"
)

// UseCase use case резервирования слота визита
type UseCase struct {
	store        SlotStore
	notifier     Notifier
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SlotStore, notifier Notifier, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		notifier:     notifier,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет резервирование слота.
// Все бизнес-проверки выполняются до вставки в хранилище; вставка
// атомарна, поэтому из конкурентных запросов на один и тот же слот
// выигрывает ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveVisit: flat=%d, visitor=%d, start_time=%d",
		req.FlatID, req.VisitorID, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveVisit: validation failed: %v", err)
		return nil, err
	}

	// 2. Бизнес-правила времени начала (окно, срок уведомления, неделя)
	now := uc.timeProvider.Now()
	if err := validateStartTime(req.StartTime, now, uc.location); err != nil {
		uc.logger.Warn("ReserveVisit: start time validation failed: flat=%d, start_time=%d: %v",
			req.FlatID, req.StartTime, err)
		return nil, err
	}

	// 3. Атомарная вставка слота в статусе requested
	newSlot := domain.Slot{
		FlatID:    req.FlatID,
		VisitorID: req.VisitorID,
		StartTime: req.StartTime,
		Status:    domain.StatusRequested,
	}

	if err := uc.store.Create(newSlot); err != nil {
		if errors.Is(err, slotStore.ErrSlotAlreadyExists) {
			uc.logger.Warn("ReserveVisit: slot already reserved: flat=%d, start_time=%d",
				req.FlatID, req.StartTime)
			return nil, fmt.Errorf("%w: time slot is already reserved", ErrSlotAlreadyReserved)
		}
		uc.logger.Error("ReserveVisit: failed to create slot: flat=%d, start_time=%d: %v",
			req.FlatID, req.StartTime, err)
		return nil, fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
	}

	// 4. Уведомление об успешном переходе
	uc.notifier.NotifyVisitRequested(ctx, req.FlatID, req.VisitorID, req.StartTime)

	uc.logger.Info("ReserveVisit: successfully reserved: flat=%d, visitor=%d, start_time=%d",
		req.FlatID, req.VisitorID, req.StartTime)

	return &Response{
		FlatID:    newSlot.FlatID,
		VisitorID: newSlot.VisitorID,
		StartTime: newSlot.StartTime,
		Status:    string(newSlot.Status),
	}, nil
}
