package reject_visit

import (
	"context"

	rejectVisit "github.com/m04kA/FLM-VisitService/internal/usecase/reject_visit"
)

type RejectVisitUseCase interface {
	Execute(ctx context.Context, req *rejectVisit.Request) (*rejectVisit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
