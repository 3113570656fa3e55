package reject_visit

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reject_visit: invalid input data")

	// ErrReservationNotFound возвращается, когда бронь отсутствует или уже удалена
	ErrReservationNotFound = errors.New("reject_visit: reservation not found")

	// ErrAlreadyDecided возвращается, когда бронь уже подтверждена, отклонена или отменена
	ErrAlreadyDecided = errors.New("reject_visit: reservation has already been approved, rejected or canceled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_visit: internal error")
)
