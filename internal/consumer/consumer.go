//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks

package consumer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
	"github.com/Gunvolt24/reservation-worker/pkg/ctxmeta"
	"github.com/Gunvolt24/reservation-worker/pkg/telemetry"
)

// ErrWork — обработка сообщения завершилась ошибкой; цикл останавливается.
var ErrWork = errors.New("work failed")

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// messageProcessor — обработка одного зарезервированного сообщения.
type messageProcessor interface {
	Process(ctx context.Context, msg *domain.Message) error
}

// ProcessorFunc — адаптер обычной функции к messageProcessor.
type ProcessorFunc func(ctx context.Context, msg *domain.Message) error

func (f ProcessorFunc) Process(ctx context.Context, msg *domain.Message) error {
	return f(ctx, msg)
}

// Consumer — цикл резервирования сообщений из очереди.
type Consumer struct {
	client    ports.QueueClient
	processor messageProcessor
	log       ports.Logger

	queue          string
	request        domain.ReservationRequest
	startDelay     time.Duration
	processTimeout time.Duration

	closeOnce sync.Once
}

// NewConsumer — конструктор.
func NewConsumer(cfg *Config, client ports.QueueClient, processor messageProcessor, log ports.Logger) *Consumer {
	return &Consumer{
		client:         client,
		processor:      processor,
		log:            log,
		queue:          cfg.Queue,
		request:        cfg.reservationRequest(),
		startDelay:     cfg.StartDelay,
		processTimeout: cfg.ProcessTimeout,
	}
}

// Run — основной цикл:
// 1) резервируем до n сообщений;
// 2) пустой ответ → выходим с nil;
// 3) обрабатываем сообщения по порядку, по одному;
// 4) при delete=false подтверждаем каждое обработанное сообщение.
// Любая ошибка очереди или обработки фатальна: повторов нет.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Infof(ctx, "consumer started URL: %s n=%d delete=%t",
		c.client.ReservationURL(), c.request.N, c.request.Delete)

	if c.startDelay > 0 {
		c.log.Infof(ctx, "waiting %s before first poll", c.startDelay)
		if !sleepCtx(ctx, c.startDelay) {
			return ctx.Err()
		}
	}

	for polls := 1; ; polls++ {
		pollCtx := ctxmeta.WithPollID(ctx, uuid.NewString())

		empty, err := c.pollOnce(pollCtx)
		if err != nil {
			c.log.Errorf(pollCtx, "poll failed: %v", err)
			return err
		}
		if empty {
			c.log.Infof(ctx, "queue empty, exiting (polls=%d)", polls)
			return nil
		}
	}
}

// pollOnce — одна итерация: резервирование и обработка пачки.
// Возвращает true, если очередь пуста.
func (c *Consumer) pollOnce(ctx context.Context) (bool, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "queue.poll",
		trace.WithAttributes(
			attribute.String("queue", c.queue),
			attribute.Int("n", c.request.N),
		),
	)
	defer span.End()

	msgs, err := c.reserve(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reserve failed")
		return false, err
	}
	span.SetAttributes(attribute.Int("messages", len(msgs)))
	if len(msgs) == 0 {
		return true, nil
	}

	for i := range msgs {
		if err := c.handleMessage(ctx, &msgs[i]); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "message failed")
			return false, err
		}
	}
	return false, nil
}

// Close — освобождает соединения клиента очереди.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.client.Close()
	})
	return retErr
}
