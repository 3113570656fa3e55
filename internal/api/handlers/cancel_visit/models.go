package cancel_visit

import (
	cancelVisit "github.com/m04kA/FLM-VisitService/internal/usecase/cancel_visit"
)

// CancelVisitRequest HTTP request model
type CancelVisitRequest struct {
	VisitorID int64 `json:"visitorId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelVisitRequest) ToUseCaseRequest(flatID, startTime int64) *cancelVisit.Request {
	return &cancelVisit.Request{
		FlatID:    flatID,
		VisitorID: r.VisitorID,
		StartTime: startTime,
	}
}
