package approve_visit

import (
	approveVisit "github.com/m04kA/FLM-VisitService/internal/usecase/approve_visit"
)

// VisitResponse HTTP response model
type VisitResponse struct {
	FlatID    int64  `json:"flatId"`
	VisitorID int64  `json:"visitorId"`
	StartTime int64  `json:"startTime"`
	Status    string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveVisit.Response) *VisitResponse {
	return &VisitResponse{
		FlatID:    resp.FlatID,
		VisitorID: resp.VisitorID,
		StartTime: resp.StartTime,
		Status:    resp.Status,
	}
}
