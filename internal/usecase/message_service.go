package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
	"github.com/Gunvolt24/reservation-worker/pkg/metrics"
)

// ErrJournalDisabled — журнал не подключён (Postgres выключен).
var ErrJournalDisabled = errors.New("message journal is disabled")

var _ ports.JournalReadService = (*MessageService)(nil)

// MessageService — прикладная логика обработки зарезервированного сообщения (без знаний о транспорте).
type MessageService struct {
	queue     string
	work      ports.WorkFunc
	validator ports.MessageValidator
	cache     ports.SeenCache
	log       ports.Logger

	// опциональные зависимости
	journal   ports.MessageJournal
	publisher ports.MessagePublisher
	now       func() time.Time
}

// Option — опциональная настройка MessageService.
type Option func(*MessageService)

// WithJournal — сохранять обработанные сообщения в журнал.
func WithJournal(j ports.MessageJournal) Option {
	return func(s *MessageService) { s.journal = j }
}

// WithPublisher — пересылать обработанные сообщения в брокер.
func WithPublisher(p ports.MessagePublisher) Option {
	return func(s *MessageService) { s.publisher = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *MessageService) { s.now = now }
}

// NewMessageService — DI-конструктор.
func NewMessageService(
	queue string,
	work ports.WorkFunc,
	validator ports.MessageValidator,
	cache ports.SeenCache,
	log ports.Logger,
	opts ...Option,
) *MessageService {
	s := &MessageService{
		queue:     queue,
		work:      work,
		validator: validator,
		cache:     cache,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process — обработать одно сообщение.
// Шаги:
//  1. валидация (вернёт validate.ErrInvalidMessage при проблемах);
//  2. повторная доставка уже обработанного id — пропускаем работу;
//  3. вызов рабочей функции с телом сообщения;
//  4. пересылка в брокер и запись в журнал (ошибки только логируются);
//  5. id попадает в кэш обработанных.
//
// Сообщения без id не дедуплицируются и не журналируются.
func (s *MessageService) Process(ctx context.Context, msg *domain.Message) error {
	if err := s.validator.Validate(ctx, msg); err != nil {
		s.log.Warnf(ctx, "validation failed id=%q err=%v", idOf(msg), err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if msg.ID != "" && s.cache.Seen(ctx, msg.ID.String()) {
		metrics.MessagesDuplicate.WithLabelValues(s.queue).Inc()
		s.log.Infof(ctx, "message id=%s already processed, skipping work", msg.ID)
		return nil
	}

	start := s.now()
	if err := s.work(ctx, msg.Body); err != nil {
		s.log.Errorf(ctx, "work failed id=%q err=%v", msg.ID, err)
		return fmt.Errorf("work: %w", err)
	}
	took := s.now().Sub(start)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, msg); err != nil {
			s.log.Warnf(ctx, "publish failed id=%q err=%v", msg.ID, err)
		}
	}

	if msg.ID == "" {
		s.log.Infof(ctx, "message processed took=%s", took)
		return nil
	}

	if s.journal != nil {
		rec := &domain.ProcessedMessage{
			MessageID:   msg.ID.String(),
			Queue:       s.queue,
			Body:        msg.Body,
			ProcessedAt: start.UTC(),
			DurationMs:  took.Milliseconds(),
		}
		if err := s.journal.Save(ctx, rec); err != nil {
			s.log.Warnf(ctx, "journal.Save failed id=%s err=%v", msg.ID, err)
		}
	}

	s.cache.Mark(ctx, msg.ID.String())
	s.log.Infof(ctx, "message processed id=%s took=%s", msg.ID, took)
	return nil
}

// WarmUpCache — прогрев кэша id последних N сообщений из журнала.
// Без журнала или при n <= 0 прогрев не выполняется (но это не ошибка).
func (s *MessageService) WarmUpCache(ctx context.Context, n int) error {
	if s.journal == nil {
		return nil
	}
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	ids, err := s.journal.LastIDs(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "journal.LastIDs failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, ids); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d ids in %s", len(ids), time.Since(start))
	return nil
}

// GetProcessed — запись журнала по id сообщения. (nil, nil), если записи нет.
func (s *MessageService) GetProcessed(ctx context.Context, messageID string) (*domain.ProcessedMessage, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	return s.journal.GetByMessageID(ctx, messageID)
}

// RecentProcessed — последние записи журнала (пагинация уже валидирована на верхнем уровне).
func (s *MessageService) RecentProcessed(ctx context.Context, limit, offset int) ([]*domain.ProcessedMessage, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	return s.journal.Recent(ctx, limit, offset)
}

func idOf(msg *domain.Message) string {
	if msg == nil {
		return ""
	}
	return msg.ID.String()
}
