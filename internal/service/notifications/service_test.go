package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FLM-VisitService/internal/domain"
	"github.com/m04kA/FLM-VisitService/internal/infra/storage/visitevent"
)

type fakeClient struct {
	calls []string
	err   error
}

func (c *fakeClient) NotifyVisitRequested(context.Context, int64, int64, int64) error {
	c.calls = append(c.calls, domain.EventVisitRequested)
	return c.err
}

func (c *fakeClient) NotifyVisitApproved(context.Context, int64, int64, int64) error {
	c.calls = append(c.calls, domain.EventVisitApproved)
	return c.err
}

func (c *fakeClient) NotifyVisitRejected(context.Context, int64, int64, int64) error {
	c.calls = append(c.calls, domain.EventVisitRejected)
	return c.err
}

func (c *fakeClient) NotifyVisitCanceled(context.Context, int64, int64, int64) error {
	c.calls = append(c.calls, domain.EventVisitCanceled)
	return c.err
}

type fakeEventRepo struct {
	events []visitevent.Event
	err    error
}

func (r *fakeEventRepo) Create(_ context.Context, event *visitevent.Event) (*visitevent.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.events = append(r.events, *event)
	return event, nil
}

type fakeMetrics struct {
	counts map[string]int
}

func (m *fakeMetrics) IncVisitEvent(eventType string) {
	if m.counts == nil {
		m.counts = map[string]int{}
	}
	m.counts[eventType]++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDispatchAllSinks(t *testing.T) {
	client := &fakeClient{}
	repo := &fakeEventRepo{}
	m := &fakeMetrics{}

	svc := NewService(client, repo, m, nopLogger{})

	ctx := context.Background()
	svc.NotifyVisitRequested(ctx, 1, 2, 36000)
	svc.NotifyVisitApproved(ctx, 1, 2, 36000)
	svc.NotifyVisitRejected(ctx, 1, 2, 36000)
	svc.NotifyVisitCanceled(ctx, 1, 2, 36000)

	assert.Equal(t, []string{
		domain.EventVisitRequested,
		domain.EventVisitApproved,
		domain.EventVisitRejected,
		domain.EventVisitCanceled,
	}, client.calls)

	require.Len(t, repo.events, 4)
	assert.Equal(t, int64(1), repo.events[0].FlatID)
	assert.Equal(t, int64(2), repo.events[0].VisitorID)
	assert.Equal(t, int64(36000), repo.events[0].StartTime)
	assert.Equal(t, domain.EventVisitRequested, repo.events[0].EventType)

	assert.Equal(t, 1, m.counts[domain.EventVisitApproved])
}

func TestDispatchWithoutOptionalSinks(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, nil, nil, nopLogger{})

	svc.NotifyVisitRequested(context.Background(), 1, 2, 36000)

	assert.Equal(t, []string{domain.EventVisitRequested}, client.calls)
}

func TestDeliveryErrorsAreSwallowed(t *testing.T) {
	client := &fakeClient{err: errors.New("notify service is down")}
	repo := &fakeEventRepo{err: errors.New("db is down")}

	svc := NewService(client, repo, nil, nopLogger{})

	// Ошибки доставки и журнала не паникуют и не пробрасываются
	svc.NotifyVisitCanceled(context.Background(), 1, 2, 36000)

	assert.Equal(t, []string{domain.EventVisitCanceled}, client.calls)
	assert.Empty(t, repo.events)
}
