package reserve_visit

import (
	reserveVisit "github.com/m04kA/FLM-VisitService/internal/usecase/reserve_visit"
)

// ReserveVisitRequest HTTP request model
type ReserveVisitRequest struct {
	VisitorID int64 `json:"visitorId"`
	StartTime int64 `json:"startTime"` // epoch seconds
}

// VisitResponse HTTP response model
type VisitResponse struct {
	FlatID    int64  `json:"flatId"`
	VisitorID int64  `json:"visitorId"`
	StartTime int64  `json:"startTime"`
	Status    string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveVisitRequest) ToUseCaseRequest(flatID int64) *reserveVisit.Request {
	return &reserveVisit.Request{
		FlatID:    flatID,
		VisitorID: r.VisitorID,
		StartTime: r.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveVisit.Response) *VisitResponse {
	return &VisitResponse{
		FlatID:    resp.FlatID,
		VisitorID: resp.VisitorID,
		StartTime: resp.StartTime,
		Status:    resp.Status,
	}
}
