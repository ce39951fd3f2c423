package ports

import (
	"context"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

// MessagePublisher — пересылка обработанного сообщения во внешний брокер.
type MessagePublisher interface {
	Publish(ctx context.Context, msg *domain.Message) error
	Close() error
}
