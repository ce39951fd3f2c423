package ports

import (
	"context"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

// QueueClient — клиент очереди с резервированием сообщений.
type QueueClient interface {
	// Reserve — запросить до req.N сообщений; пустой срез означает пустую очередь.
	Reserve(ctx context.Context, req domain.ReservationRequest) ([]domain.Message, error)

	// Delete — подтвердить обработку зарезервированного сообщения.
	Delete(ctx context.Context, msg *domain.Message) error

	// ReservationURL — адрес эндпоинта резервирования (для логов).
	ReservationURL() string

	Close() error
}
