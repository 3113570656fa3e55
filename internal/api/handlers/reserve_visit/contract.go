package reserve_visit

import (
	"context"

	reserveVisit "github.com/m04kA/FLM-VisitService/internal/usecase/reserve_visit"
)

type ReserveVisitUseCase interface {
	Execute(ctx context.Context, req *reserveVisit.Request) (*reserveVisit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
