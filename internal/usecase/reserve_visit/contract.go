package reserve_visit

import (
	"context"
	"time"

	"github.com/m04kA/FLM-VisitService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	Create(slot domain.Slot) error
}

// Notifier интерфейс сервиса уведомлений.
// Исход доставки use case не наблюдает.
type Notifier interface {
	NotifyVisitRequested(ctx context.Context, flatID, visitorID, startTime int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
