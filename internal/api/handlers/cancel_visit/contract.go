package cancel_visit

import (
	"context"

	cancelVisit "github.com/m04kA/FLM-VisitService/internal/usecase/cancel_visit"
)

type CancelVisitUseCase interface {
	Execute(ctx context.Context, req *cancelVisit.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
