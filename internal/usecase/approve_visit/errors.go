package approve_visit

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_visit: invalid input data")

	// ErrReservationNotFound возвращается, когда бронь отсутствует или уже удалена
	ErrReservationNotFound = errors.New("approve_visit: reservation not found")

	// ErrAlreadyDecided возвращается, когда бронь уже подтверждена, отклонена или отменена
	ErrAlreadyDecided = errors.New("approve_visit: reservation has already been approved, rejected or canceled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_visit: internal error")
)
