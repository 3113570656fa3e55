package slot

import (
	"sync"

	"github.com/m04kA/FLM-VisitService/internal/domain"
)

// Store in-memory хранилище слотов визитов.
//
// Конкурентный контракт:
//   - Create атомарен относительно конкурентных Create по тому же ключу:
//     из N одновременных вызовов ровно один выигрывает.
//   - Мутации записи сериализуются блокировкой самой записи, а не всего
//     хранилища; операции по разным ключам друг друга не блокируют.
//   - После захвата блокировки статус перепроверяется: запись могла быть
//     удалена между lookup и захватом.
type Store struct {
	slots sync.Map // domain.SlotKey -> *entry
}

// entry запись хранилища: слот вместе с его собственной блокировкой
type entry struct {
	mu   sync.Mutex
	slot domain.Slot
}

// NewStore создает пустое хранилище слотов
func NewStore() *Store {
	return &Store{}
}

// Create вставляет слот, если под его ключом нет записи.
// Возвращает ErrSlotAlreadyExists, если ключ занят.
func (s *Store) Create(sl domain.Slot) error {
	if _, loaded := s.slots.LoadOrStore(sl.Key(), &entry{slot: sl}); loaded {
		return ErrSlotAlreadyExists
	}
	return nil
}

// UpdateLive применяет mutate к живому слоту под блокировкой записи и
// возвращает копию измененного слота. Если запись отсутствует или уже
// удалена, возвращает ErrSlotNotFound, не вызывая mutate. Ошибка mutate
// пробрасывается как есть, запись при этом не меняется.
//
// mutate не должен менять FlatID и StartTime: они входят в ключ записи.
// Внутри mutate нельзя выполнять блокирующий I/O.
func (s *Store) UpdateLive(key domain.SlotKey, mutate func(*domain.Slot) error) (*domain.Slot, error) {
	v, ok := s.slots.Load(key)
	if !ok {
		return nil, ErrSlotNotFound
	}
	e := v.(*entry)

	e.mu.Lock()
	defer e.mu.Unlock()

	// Перепроверка после захвата блокировки
	if e.slot.Status == domain.StatusRemoved {
		return nil, ErrSlotNotFound
	}

	if err := mutate(&e.slot); err != nil {
		return nil, err
	}

	updated := e.slot
	return &updated, nil
}

// CheckAndDelete удаляет живой слот, удовлетворяющий предикату: помечает
// запись removed и убирает ключ из индекса под одной блокировкой записи.
// Возвращает ErrSlotNotFound, если запись отсутствует, уже удалена или
// предикат вернул false. Освобожденный ключ сразу доступен для Create.
func (s *Store) CheckAndDelete(key domain.SlotKey, check func(*domain.Slot) bool) error {
	v, ok := s.slots.Load(key)
	if !ok {
		return ErrSlotNotFound
	}
	e := v.(*entry)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.slot.Status == domain.StatusRemoved {
		return ErrSlotNotFound
	}
	if !check(&e.slot) {
		return ErrSlotNotFound
	}

	e.slot.Status = domain.StatusRemoved
	s.slots.Delete(key)
	return nil
}
