package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
)

// Проверка, что JournalRepository удовлетворяет интерфейсу MessageJournal.
var _ ports.MessageJournal = (*JournalRepository)(nil)

// JournalRepository — журнал обработанных сообщений на Postgres (pgxpool).
type JournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository - конструктор JournalRepository.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository { return &JournalRepository{pool: pool} }

// Save — идемпотентная вставка: повторная запись того же message_id игнорируется.
func (r *JournalRepository) Save(ctx context.Context, rec *domain.ProcessedMessage) error {
	if rec == nil || rec.MessageID == "" {
		return errors.New("record is empty or message_id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO processed_messages (message_id, queue, body, processed_at, duration_ms)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (message_id) DO NOTHING
	`, rec.MessageID, rec.Queue, rec.Body, rec.ProcessedAt, rec.DurationMs); err != nil {
		return fmt.Errorf("insert processed message: %w", err)
	}
	return nil
}

// GetByMessageID — запись по id. (nil, nil), если не найдена.
func (r *JournalRepository) GetByMessageID(ctx context.Context, messageID string) (*domain.ProcessedMessage, error) {
	var rec domain.ProcessedMessage
	err := r.pool.QueryRow(ctx, `
		SELECT message_id, queue, body, processed_at, duration_ms
		FROM processed_messages WHERE message_id = $1
	`, messageID).Scan(&rec.MessageID, &rec.Queue, &rec.Body, &rec.ProcessedAt, &rec.DurationMs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select processed message: %w", err)
	}
	return &rec, nil
}

// Recent — постраничный список, новые первыми.
func (r *JournalRepository) Recent(ctx context.Context, limit, offset int) ([]*domain.ProcessedMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT message_id, queue, body, processed_at, duration_ms
		FROM processed_messages
		ORDER BY processed_at DESC, message_id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select recent: %w", err)
	}
	defer rows.Close()

	list := make([]*domain.ProcessedMessage, 0, limit)
	for rows.Next() {
		rec := &domain.ProcessedMessage{}
		if err := rows.Scan(&rec.MessageID, &rec.Queue, &rec.Body, &rec.ProcessedAt, &rec.DurationMs); err != nil {
			return nil, fmt.Errorf("scan processed message: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent rows: %w", err)
	}
	return list, nil
}

// LastIDs — id последних N записей (для прогрева кэша), новые первыми.
func (r *JournalRepository) LastIDs(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT message_id
		FROM processed_messages
		ORDER BY processed_at DESC, message_id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("last ids rows: %w", err)
	}
	return ids, nil
}
