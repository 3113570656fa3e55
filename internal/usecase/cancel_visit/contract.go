package cancel_visit

import (
	"context"

	"github.com/m04kA/FLM-VisitService/internal/domain"
)

// SlotStore интерфейс хранилища слотов
type SlotStore interface {
	CheckAndDelete(key domain.SlotKey, check func(*domain.Slot) bool) error
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	NotifyVisitCanceled(ctx context.Context, flatID, visitorID, startTime int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
