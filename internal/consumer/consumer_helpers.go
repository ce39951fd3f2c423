package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/pkg/ctxmeta"
	"github.com/Gunvolt24/reservation-worker/pkg/metrics"
	"github.com/Gunvolt24/reservation-worker/pkg/validate"
)

// reserve выполняет запрос резервирования и фиксирует метрики.
func (c *Consumer) reserve(ctx context.Context) ([]domain.Message, error) {
	start := time.Now()
	msgs, err := c.client.Reserve(ctx, c.request)
	metrics.QueueReservationDuration.WithLabelValues(c.queue).Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		metrics.QueueReservations.WithLabelValues(c.queue, metrics.ResultError).Inc()
		return nil, fmt.Errorf("reserve: %w", err)
	case len(msgs) == 0:
		metrics.QueueReservations.WithLabelValues(c.queue, metrics.ResultEmpty).Inc()
	default:
		metrics.QueueReservations.WithLabelValues(c.queue, metrics.ResultOK).Inc()
		metrics.MessagesReceived.WithLabelValues(c.queue).Add(float64(len(msgs)))
	}
	return msgs, nil
}

// handleMessage обрабатывает одно сообщение и, если нужно, подтверждает его.
func (c *Consumer) handleMessage(ctx context.Context, msg *domain.Message) error {
	ctx = ctxmeta.WithMessageID(ctx, msg.ID.String())

	procCtx, cancel := c.processContext(ctx)
	err := c.processor.Process(procCtx, msg)
	cancel()

	switch {
	case err == nil:
		metrics.MessagesProcessed.WithLabelValues(c.queue).Inc()
	case errors.Is(err, validate.ErrInvalidMessage):
		// Невалидное сообщение не подтверждаем: резервация истечёт сама
		metrics.MessagesFailed.WithLabelValues(c.queue).Inc()
		c.log.Warnf(ctx, "invalid message id=%q: %v (skipped)", msg.ID, err)
		return nil
	default:
		metrics.MessagesFailed.WithLabelValues(c.queue).Inc()
		return fmt.Errorf("%w: message id=%q: %w", ErrWork, msg.ID, err)
	}

	if c.request.Delete {
		return nil
	}
	return c.ack(ctx, msg)
}

// ack удаляет обработанное сообщение из очереди (режим delete=false).
func (c *Consumer) ack(ctx context.Context, msg *domain.Message) error {
	if err := c.client.Delete(ctx, msg); err != nil {
		return fmt.Errorf("ack message id=%q: %w", msg.ID, err)
	}
	metrics.MessagesAcked.WithLabelValues(c.queue).Inc()
	return nil
}

// processContext — контекст обработки; без таймаута, если он не задан.
func (c *Consumer) processContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.processTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.processTimeout)
}

// sleepCtx ждёт d или останавливается по контексту.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
