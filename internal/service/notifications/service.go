package notifications

import (
	"context"

	"github.com/m04kA/FLM-VisitService/internal/domain"
	"github.com/m04kA/FLM-VisitService/internal/infra/storage/visitevent"
)

// Service рассылает уведомления об успешных переходах состояния слота.
//
// Вызывается после завершения операции над хранилищем, вне каких-либо
// блокировок. Исход доставки планировщик не наблюдает: ошибки клиента и
// журнала логируются и не пробрасываются.
type Service struct {
	client  NotifyClient
	events  EventRepository // nil, если журнал отключен
	metrics MetricsRecorder // nil, если метрики отключены
	logger  Logger
}

// NewService создает новый экземпляр сервиса уведомлений.
// events и metrics могут быть nil - соответствующие шаги пропускаются.
func NewService(client NotifyClient, events EventRepository, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		client:  client,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// NotifyVisitRequested уведомляет о новом запросе на визит
func (s *Service) NotifyVisitRequested(ctx context.Context, flatID, visitorID, startTime int64) {
	s.dispatch(ctx, domain.EventVisitRequested, flatID, visitorID, startTime, s.client.NotifyVisitRequested)
}

// NotifyVisitApproved уведомляет о подтверждении визита
func (s *Service) NotifyVisitApproved(ctx context.Context, flatID, visitorID, startTime int64) {
	s.dispatch(ctx, domain.EventVisitApproved, flatID, visitorID, startTime, s.client.NotifyVisitApproved)
}

// NotifyVisitRejected уведомляет об отклонении визита
func (s *Service) NotifyVisitRejected(ctx context.Context, flatID, visitorID, startTime int64) {
	s.dispatch(ctx, domain.EventVisitRejected, flatID, visitorID, startTime, s.client.NotifyVisitRejected)
}

// NotifyVisitCanceled уведомляет об отмене визита
func (s *Service) NotifyVisitCanceled(ctx context.Context, flatID, visitorID, startTime int64) {
	s.dispatch(ctx, domain.EventVisitCanceled, flatID, visitorID, startTime, s.client.NotifyVisitCanceled)
}

func (s *Service) dispatch(
	ctx context.Context,
	eventType string,
	flatID, visitorID, startTime int64,
	notify func(ctx context.Context, flatID, visitorID, startTime int64) error,
) {
	s.logger.Info("Notifications: %s flat=%d, visitor=%d, start_time=%d",
		eventType, flatID, visitorID, startTime)

	if s.metrics != nil {
		s.metrics.IncVisitEvent(eventType)
	}

	if s.events != nil {
		event := &visitevent.Event{
			FlatID:    flatID,
			VisitorID: visitorID,
			StartTime: startTime,
			EventType: eventType,
		}
		if _, err := s.events.Create(ctx, event); err != nil {
			s.logger.Error("Notifications: failed to journal %s for flat=%d, start_time=%d: %v",
				eventType, flatID, startTime, err)
		}
	}

	if err := notify(ctx, flatID, visitorID, startTime); err != nil {
		s.logger.Error("Notifications: failed to deliver %s for flat=%d, visitor=%d: %v",
			eventType, flatID, visitorID, err)
	}
}
