package reject_visit

import (
	"context"

	"github.com/m04kA/FLM-VisitService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	UpdateLive(key domain.SlotKey, mutate func(*domain.Slot) error) (*domain.Slot, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	NotifyVisitRejected(ctx context.Context, flatID, visitorID, startTime int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
