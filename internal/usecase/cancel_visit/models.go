package cancel_visit

// Request модель запроса на отмену визита
type Request struct {
	FlatID    int64 // ID квартиры
	VisitorID int64 // ID посетителя, владельца брони
	StartTime int64 // Начало слота, epoch seconds
}
