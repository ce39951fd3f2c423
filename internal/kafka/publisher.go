//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
	"github.com/Gunvolt24/reservation-worker/pkg/metrics"
)

// Заголовки пересылаемого сообщения.
const (
	HeaderReservationID = "reservation_id"
	HeaderQueue         = "queue"
)

// Проверка, что Publisher удовлетворяет порту приложения.
var _ ports.MessagePublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — пересылка обработанных сообщений в топик Kafka.
type Publisher struct {
	writer    writer
	topic     string
	queue     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewPublisher — конструктор. queue попадает в заголовок каждого сообщения.
func NewPublisher(cfg *PublisherConfig, queue string, log ports.Logger) *Publisher {
	return &Publisher{
		writer: cfg.writer(),
		topic:  cfg.Topic,
		queue:  queue,
		log:    log,
	}
}

// Publish — ключ = id сообщения, значение = тело; trace-контекст уходит в заголовках.
func (p *Publisher) Publish(ctx context.Context, msg *domain.Message) error {
	km := kafka.Message{
		Key:   []byte(msg.ID),
		Value: []byte(msg.Body),
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: HeaderQueue, Value: []byte(p.queue)},
		},
	}
	if msg.ReservationID != "" {
		km.Headers = append(km.Headers, kafka.Header{Key: HeaderReservationID, Value: []byte(msg.ReservationID)})
	}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{msg: &km})

	if err := p.writer.WriteMessages(ctx, km); err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, metrics.ResultError).Inc()
		return err
	}

	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, metrics.ResultOK).Inc()
	return nil
}

// Close - закрывает writer (дописывает буфер). Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		if retErr = p.writer.Close(); retErr != nil {
			p.log.Warnf(context.Background(), "kafka writer close topic=%s: %v", p.topic, retErr)
		}
	})
	return retErr
}
