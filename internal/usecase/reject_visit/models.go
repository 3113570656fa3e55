package reject_visit

// Request модель запроса на отклонение визита
type Request struct {
	FlatID    int64 // ID квартиры
	StartTime int64 // Начало слота, epoch seconds
}

// Response модель ответа с отклоненной бронью
type Response struct {
	FlatID    int64  `json:"flatId"`
	VisitorID int64  `json:"visitorId"`
	StartTime int64  `json:"startTime"`
	Status    string `json:"status"`
}
