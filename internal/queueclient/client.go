package queueclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу QueueClient.
var _ ports.QueueClient = (*Client)(nil)

const (
	defaultRequestTimeout = 30 * time.Second
	// maxErrorBody — сколько байт тела не-2xx ответа попадает в ошибку.
	maxErrorBody = 512
)

// Config — адрес очереди: <BaseURL>/<APIVersion>/projects/<ProjectID>/queues/<Queue>.
type Config struct {
	BaseURL        string
	APIVersion     string
	ProjectID      string
	Queue          string
	RequestTimeout time.Duration
}

// Client — HTTP-клиент очереди с резервированием (IronMQ v3-совместимый API).
type Client struct {
	httpClient     *http.Client
	reserveURL     string
	messagesURL    string
	requestTimeout time.Duration
}

// New — конструктор. Транспорт обёрнут otelhttp: при включённом трейсинге
// каждый запрос к очереди получает клиентский спан.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url must be absolute: %q", cfg.BaseURL)
	}

	queueURL := base.JoinPath(cfg.APIVersion, "projects", url.PathEscape(cfg.ProjectID), "queues", url.PathEscape(cfg.Queue))

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		reserveURL:     queueURL.JoinPath("reservations").String(),
		messagesURL:    queueURL.JoinPath("messages").String(),
		requestTimeout: timeout,
	}, nil
}

// ReservationURL — адрес эндпоинта резервирования.
func (c *Client) ReservationURL() string { return c.reserveURL }

// Reserve — POST .../reservations с телом {"n": N, "delete": D}.
// Пустой срез без ошибки означает, что очередь пуста.
func (c *Client) Reserve(ctx context.Context, req domain.ReservationRequest) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.do(ctx, http.MethodPost, c.reserveURL, req)
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}

	// messages как указатель: отсутствие поля отличаем от пустого массива.
	var body struct {
		Messages *[]domain.Message `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("reserve: %w: %v", ErrMalformedResponse, err)
	}
	// хвост после объекта дочитываем, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)

	if body.Messages == nil {
		return nil, fmt.Errorf("reserve: %w: messages field is missing", ErrMalformedResponse)
	}
	return *body.Messages, nil
}

// Delete — DELETE .../messages/<id> с телом {"reservation_id": "..."}: подтверждение обработки.
func (c *Client) Delete(ctx context.Context, msg *domain.Message) error {
	if msg == nil || msg.ID == "" {
		return fmt.Errorf("delete: message id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	payload := struct {
		ReservationID string `json:"reservation_id,omitempty"`
	}{ReservationID: msg.ReservationID}

	resp, err := c.do(ctx, http.MethodDelete, c.messagesURL+"/"+url.PathEscape(msg.ID.String()), payload)
	if err != nil {
		return fmt.Errorf("delete message %s: %w", msg.ID, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("delete message %s: %w", msg.ID, err)
	}
	// тело не нужно, но дочитываем, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Close — освобождает простаивающие соединения.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) do(ctx context.Context, method, target string, payload any) (*http.Response, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// checkStatus — не-2xx превращается в *StatusError с началом тела ответа.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(b))}
}
