package approve_visit

import (
	"context"

	approveVisit "github.com/m04kA/FLM-VisitService/internal/usecase/approve_visit"
)

type ApproveVisitUseCase interface {
	Execute(ctx context.Context, req *approveVisit.Request) (*approveVisit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
