package reserve_visit

// Request модель запроса на резервирование слота визита
type Request struct {
	FlatID    int64 // ID квартиры
	VisitorID int64 // ID посетителя, создающего бронь
	StartTime int64 // Начало слота, epoch seconds, кратно длительности слота
}

// Response модель ответа с созданной бронью
type Response struct {
	FlatID    int64  `json:"flatId"`
	VisitorID int64  `json:"visitorId"`
	StartTime int64  `json:"startTime"`
	Status    string `json:"status"`
}
