//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeMessage — зарезервированное сообщение с уникальными id.
func MakeMessage(body string) domain.Message {
	return domain.Message{
		ID:            domain.MessageID("msg-" + UniqSuffix()),
		Body:          body,
		ReservationID: "res-" + UniqSuffix(),
		ReservedCount: 1,
	}
}

// MakeProcessed — запись журнала с уникальным message_id.
func MakeProcessed(opts ...func(*domain.ProcessedMessage)) domain.ProcessedMessage {
	rec := domain.ProcessedMessage{
		MessageID:   "msg-" + UniqSuffix(),
		Queue:       "job1",
		Body:        "body-" + UniqSuffix(),
		ProcessedAt: time.Now().UTC().Truncate(time.Millisecond),
		DurationMs:  42,
	}

	for _, fn := range opts {
		fn(&rec)
	}
	return rec
}

func WithProcessedAt(ts time.Time) func(*domain.ProcessedMessage) {
	return func(r *domain.ProcessedMessage) { r.ProcessedAt = ts }
}

func WithQueue(queue string) func(*domain.ProcessedMessage) {
	return func(r *domain.ProcessedMessage) { r.Queue = queue }
}
