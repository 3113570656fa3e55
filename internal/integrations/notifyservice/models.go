package notifyservice

// VisitNotification модель уведомления о переходе состояния слота визита
type VisitNotification struct {
	EventType string `json:"eventType"`
	FlatID    int64  `json:"flatId"`
	VisitorID int64  `json:"visitorId"`
	StartTime int64  `json:"startTime"` // epoch seconds
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
