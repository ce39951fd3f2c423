package work

import (
	"context"
	"time"

	"github.com/Gunvolt24/reservation-worker/internal/ports"
)

// Sleep — работа по умолчанию: логирует тело сообщения и ждёт delay.
// Ожидание прерывается отменой контекста.
func Sleep(delay time.Duration, log ports.Logger) ports.WorkFunc {
	return func(ctx context.Context, body string) error {
		log.Infof(ctx, "working on %s", body)
		if delay <= 0 {
			return nil
		}

		t := time.NewTimer(delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
}
