package reserve_visit

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_visit: invalid input data")

	// ErrTimeNotAligned возвращается, когда время начала не кратно длительности слота
	ErrTimeNotAligned = errors.New("reserve_visit: start time is not aligned to slot duration")

	// ErrOutsideVisitingHours возвращается, когда время начала вне окна визитов
	ErrOutsideVisitingHours = errors.New("reserve_visit: start time is outside visiting hours")

	// ErrTooSoonToVisit возвращается при нарушении минимального срока уведомления
	ErrTooSoonToVisit = errors.New("reserve_visit: start time is too soon")

	// ErrNotInNextWeek возвращается, когда дата визита не попадает в следующую неделю
	ErrNotInNextWeek = errors.New("reserve_visit: start time is not in the next week")

	// ErrSlotAlreadyReserved возвращается, когда слот уже занят живой записью
	ErrSlotAlreadyReserved = errors.New("reserve_visit: time slot is already reserved")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_visit: internal error")
)
