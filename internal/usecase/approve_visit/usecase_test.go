package approve_visit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FLM-VisitService/internal/domain"
	slotStore "github.com/m04kA/FLM-VisitService/internal/infra/storage/slot"
)

type recordedCall struct {
	FlatID    int64
	VisitorID int64
	StartTime int64
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (n *fakeNotifier) NotifyVisitApproved(_ context.Context, flatID, visitorID, startTime int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, recordedCall{FlatID: flatID, VisitorID: visitorID, StartTime: startTime})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seedSlot(t *testing.T, store *slotStore.Store, visitorID int64, status domain.SlotStatus) domain.SlotKey {
	t.Helper()

	sl := domain.Slot{FlatID: 1, VisitorID: visitorID, StartTime: 36000, Status: status}
	require.NoError(t, store.Create(sl))
	return sl.Key()
}

func TestApprove(t *testing.T) {
	store := slotStore.NewStore()
	notifier := &fakeNotifier{}
	uc := NewUseCase(store, notifier, nopLogger{})

	key := seedSlot(t, store, 42, domain.StatusRequested)

	resp, err := uc.Execute(context.Background(), &Request{FlatID: key.FlatID, StartTime: key.StartTime})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, int64(42), resp.VisitorID)

	// Уведомление уходит с visitorID владельца брони
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, recordedCall{FlatID: 1, VisitorID: 42, StartTime: 36000}, notifier.calls[0])
}

func TestCantApproveNonexistent(t *testing.T) {
	store := slotStore.NewStore()
	notifier := &fakeNotifier{}
	uc := NewUseCase(store, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FlatID: 1, StartTime: 36000})
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, notifier.calls)
}

func TestCantApproveTwice(t *testing.T) {
	store := slotStore.NewStore()
	uc := NewUseCase(store, &fakeNotifier{}, nopLogger{})

	key := seedSlot(t, store, 42, domain.StatusRequested)
	req := &Request{FlatID: key.FlatID, StartTime: key.StartTime}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestCantApproveRejected(t *testing.T) {
	store := slotStore.NewStore()
	uc := NewUseCase(store, &fakeNotifier{}, nopLogger{})

	key := seedSlot(t, store, 42, domain.StatusRejected)

	_, err := uc.Execute(context.Background(), &Request{FlatID: key.FlatID, StartTime: key.StartTime})
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestApproveInvalidInput(t *testing.T) {
	uc := NewUseCase(slotStore.NewStore(), &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FlatID: 0, StartTime: 36000})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{FlatID: 1, StartTime: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConcurrentApproveSingleWinner(t *testing.T) {
	store := slotStore.NewStore()
	notifier := &fakeNotifier{}
	uc := NewUseCase(store, notifier, nopLogger{})

	key := seedSlot(t, store, 42, domain.StatusRequested)
	req := &Request{FlatID: key.FlatID, StartTime: key.StartTime}

	const goroutines = 32

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := uc.Execute(context.Background(), req); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Len(t, notifier.calls, 1)
}
