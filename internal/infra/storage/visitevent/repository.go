package visitevent

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/FLM-VisitService/pkg/psqlbuilder"
)

// Event запись журнала переходов состояния слота визита.
// Журнал append-only и используется для отчетности; состояние слотов
// из него не восстанавливается.
type Event struct {
	ID        int64
	FlatID    int64
	VisitorID int64
	StartTime int64 // epoch seconds начала слота
	EventType string
	CreatedAt time.Time
}

// Repository репозиторий журнала событий визитов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет событие в журнал
func (r *Repository) Create(ctx context.Context, event *Event) (*Event, error) {
	query, args, err := psqlbuilder.Insert("visit_events").
		Columns(
			"flat_id",
			"visitor_id",
			"start_time",
			"event_type",
		).
		Values(
			event.FlatID,
			event.VisitorID,
			event.StartTime,
			event.EventType,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return event, nil
}
