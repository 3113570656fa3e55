package cancel_visit

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_visit: invalid input data")

	// ErrReservationNotFound возвращается, когда бронь нельзя отменить.
	// Намеренно не различает "слот не существует", "чужая бронь" и
	// "бронь уже отклонена": наружу уходит один и тот же ответ.
	ErrReservationNotFound = errors.New("cancel_visit: reservation not found")
)
