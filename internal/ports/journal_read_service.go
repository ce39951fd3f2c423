package ports

import (
	"context"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

// JournalReadService — чтение журнала для служебного HTTP API.
type JournalReadService interface {
	GetProcessed(ctx context.Context, messageID string) (*domain.ProcessedMessage, error)
	RecentProcessed(ctx context.Context, limit, offset int) ([]*domain.ProcessedMessage, error)
}
