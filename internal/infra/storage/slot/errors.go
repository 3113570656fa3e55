package slot

import "errors"

var (
	// ErrSlotAlreadyExists возвращается, когда ключ слота уже занят живой записью
	ErrSlotAlreadyExists = errors.New("slot.store: slot already exists")

	// ErrSlotNotFound возвращается, когда слот отсутствует или уже удален
	ErrSlotNotFound = errors.New("slot.store: slot not found")
)
