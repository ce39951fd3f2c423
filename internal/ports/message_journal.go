package ports

import (
	"context"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

// MessageJournal — хранилище записей об обработанных сообщениях.
type MessageJournal interface {
	Save(ctx context.Context, rec *domain.ProcessedMessage) error
	GetByMessageID(ctx context.Context, messageID string) (*domain.ProcessedMessage, error)
	Recent(ctx context.Context, limit, offset int) ([]*domain.ProcessedMessage, error)
	LastIDs(ctx context.Context, n int) ([]string, error)
}
