package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/FLM-VisitService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с NotifyService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyVisitRequested отправляет уведомление о новом запросе на визит
func (c *Client) NotifyVisitRequested(ctx context.Context, flatID, visitorID, startTime int64) error {
	return c.send(ctx, domain.EventVisitRequested, flatID, visitorID, startTime)
}

// NotifyVisitApproved отправляет уведомление о подтверждении визита
func (c *Client) NotifyVisitApproved(ctx context.Context, flatID, visitorID, startTime int64) error {
	return c.send(ctx, domain.EventVisitApproved, flatID, visitorID, startTime)
}

// NotifyVisitRejected отправляет уведомление об отклонении визита
func (c *Client) NotifyVisitRejected(ctx context.Context, flatID, visitorID, startTime int64) error {
	return c.send(ctx, domain.EventVisitRejected, flatID, visitorID, startTime)
}

// NotifyVisitCanceled отправляет уведомление об отмене визита
func (c *Client) NotifyVisitCanceled(ctx context.Context, flatID, visitorID, startTime int64) error {
	return c.send(ctx, domain.EventVisitCanceled, flatID, visitorID, startTime)
}

// send выполняет POST /internal/notifications/visits
func (c *Client) send(ctx context.Context, eventType string, flatID, visitorID, startTime int64) error {
	url := fmt.Sprintf("%s/internal/notifications/visits", c.baseURL)

	payload := VisitNotification{
		EventType: eventType,
		FlatID:    flatID,
		VisitorID: visitorID,
		StartTime: startTime,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
