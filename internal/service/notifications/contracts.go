package notifications

import (
	"context"

	"github.com/m04kA/FLM-VisitService/internal/infra/storage/visitevent"
)

// NotifyClient интерфейс клиента внешнего сервиса уведомлений
type NotifyClient interface {
	NotifyVisitRequested(ctx context.Context, flatID, visitorID, startTime int64) error
	NotifyVisitApproved(ctx context.Context, flatID, visitorID, startTime int64) error
	NotifyVisitRejected(ctx context.Context, flatID, visitorID, startTime int64) error
	NotifyVisitCanceled(ctx context.Context, flatID, visitorID, startTime int64) error
}

// EventRepository интерфейс журнала событий визитов
type EventRepository interface {
	Create(ctx context.Context, event *visitevent.Event) (*visitevent.Event, error)
}

// MetricsRecorder интерфейс счетчика переходов состояния слота
type MetricsRecorder interface {
	IncVisitEvent(eventType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
