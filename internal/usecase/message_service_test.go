package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports/mocks"
	"github.com/Gunvolt24/reservation-worker/internal/usecase"
	"github.com/Gunvolt24/reservation-worker/pkg/validate"
)

const (
	queueName = "job1"
	messageID = "msg-1"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// recordWork — рабочая функция, запоминающая тела сообщений.
type recordWork struct {
	bodies []string
	err    error
}

func (w *recordWork) fn(_ context.Context, body string) error {
	w.bodies = append(w.bodies, body)
	return w.err
}

// stepClock возвращает t0, t0+step, t0+2*step, ...
func stepClock(t0 time.Time, step time.Duration) func() time.Time {
	n := 0
	return func() time.Time {
		t := t0.Add(time.Duration(n) * step)
		n++
		return t
	}
}

func TestProcess_Success_MarksSeen(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	cache := mocks.NewMockSeenCache(ctrl)
	w := &recordWork{}

	msg := &domain.Message{ID: messageID, Body: "a"}

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), msg).Return(nil),
		cache.EXPECT().Seen(gomock.Any(), messageID).Return(false),
		cache.EXPECT().Mark(gomock.Any(), messageID),
	)

	svc := usecase.NewMessageService(queueName, w.fn, validator, cache, noopLogger{})

	if err := svc.Process(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.bodies) != 1 || w.bodies[0] != "a" {
		t.Fatalf("work must be called once with body a, got %v", w.bodies)
	}
}

func TestProcess_NoID_BypassesCacheAndJournal(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)
	w := &recordWork{}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().Seen(gomock.Any(), gomock.Any()).Times(0)
	cache.EXPECT().Mark(gomock.Any(), gomock.Any()).Times(0)
	journal.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewMessageService(queueName, w.fn, validator, cache, noopLogger{}, usecase.WithJournal(journal))

	if err := svc.Process(context.Background(), &domain.Message{Body: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.bodies) != 1 {
		t.Fatalf("work must be called once, got %d", len(w.bodies))
	}
}

func TestProcess_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	cache := mocks.NewMockSeenCache(ctrl)
	w := &recordWork{}

	validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.Message{})).
		Return(validate.ErrInvalidMessage)
	cache.EXPECT().Seen(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewMessageService(queueName, w.fn, validator, cache, noopLogger{})

	err := svc.Process(context.Background(), &domain.Message{Body: "a"})
	if !errors.Is(err, validate.ErrInvalidMessage) {
		t.Fatalf("want wrapped ErrInvalidMessage, got %v", err)
	}
	if len(w.bodies) != 0 {
		t.Fatalf("work must not be called for invalid message")
	}
}

func TestProcess_Duplicate_SkipsWork(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)
	publisher := mocks.NewMockMessagePublisher(ctrl)
	w := &recordWork{}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().Seen(gomock.Any(), messageID).Return(true)
	cache.EXPECT().Mark(gomock.Any(), gomock.Any()).Times(0)
	journal.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewMessageService(queueName, w.fn, validator, cache, noopLogger{},
		usecase.WithJournal(journal), usecase.WithPublisher(publisher))

	if err := svc.Process(context.Background(), &domain.Message{ID: messageID, Body: "a"}); err != nil {
		t.Fatalf("duplicate must not fail, got %v", err)
	}
	if len(w.bodies) != 0 {
		t.Fatalf("work must not run for duplicate, got %v", w.bodies)
	}
}

func TestProcess_WorkError_NotMarked(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)
	boom := errors.New("boom")
	w := &recordWork{err: boom}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().Seen(gomock.Any(), messageID).Return(false)
	cache.EXPECT().Mark(gomock.Any(), gomock.Any()).Times(0)
	journal.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewMessageService(queueName, w.fn, validator, cache, noopLogger{}, usecase.WithJournal(journal))

	err := svc.Process(context.Background(), &domain.Message{ID: messageID, Body: "a"})
	if !errors.Is(err, boom) {
		t.Fatalf("want work error, got %v", err)
	}
}

func TestProcess_JournalAndPublish(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)
	publisher := mocks.NewMockMessagePublisher(ctrl)
	w := &recordWork{}

	t0 := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := &domain.Message{ID: messageID, Body: "a", ReservationID: "r1"}
	want := &domain.ProcessedMessage{
		MessageID:   messageID,
		Queue:       queueName,
		Body:        "a",
		ProcessedAt: t0,
		DurationMs:  1500,
	}

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), msg).Return(nil),
		cache.EXPECT().Seen(gomock.Any(), messageID).Return(false),
		publisher.EXPECT().Publish(gomock.Any(), msg).Return(nil),
		journal.EXPECT().Save(gomock.Any(), want).Return(nil),
		cache.EXPECT().Mark(gomock.Any(), messageID),
	)

	svc := usecase.NewMessageService(queueName, w.fn, validator, cache, noopLogger{},
		usecase.WithJournal(journal),
		usecase.WithPublisher(publisher),
		usecase.WithClock(stepClock(t0, 1500*time.Millisecond)),
	)

	if err := svc.Process(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Ошибки журнала и брокера не делают обработку неуспешной: работа уже выполнена
func TestProcess_SideEffectErrors_WarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)
	publisher := mocks.NewMockMessagePublisher(ctrl)
	w := &recordWork{}

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().Seen(gomock.Any(), messageID).Return(false)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	journal.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	cache.EXPECT().Mark(gomock.Any(), messageID)

	svc := usecase.NewMessageService(queueName, w.fn, validator, cache, noopLogger{},
		usecase.WithJournal(journal), usecase.WithPublisher(publisher))

	if err := svc.Process(context.Background(), &domain.Message{ID: messageID, Body: "a"}); err != nil {
		t.Fatalf("side effect errors must not fail processing, got %v", err)
	}
}

func TestWarmUpCache_LoadsIDs(t *testing.T) {
	ctrl := gomock.NewController(t)

	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)

	ids := []string{"a", "b"}
	gomock.InOrder(
		journal.EXPECT().LastIDs(gomock.Any(), 2).Return(ids, nil),
		cache.EXPECT().WarmUp(gomock.Any(), ids).Return(nil),
	)

	svc := usecase.NewMessageService(queueName, (&recordWork{}).fn, mocks.NewMockMessageValidator(ctrl), cache,
		noopLogger{}, usecase.WithJournal(journal))

	if err := svc.WarmUpCache(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWarmUpCache_Skip(t *testing.T) {
	ctrl := gomock.NewController(t)

	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)
	validator := mocks.NewMockMessageValidator(ctrl)

	// без журнала
	svc := usecase.NewMessageService(queueName, (&recordWork{}).fn, validator, cache, noopLogger{})
	if err := svc.WarmUpCache(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// n <= 0
	svc = usecase.NewMessageService(queueName, (&recordWork{}).fn, validator, cache, noopLogger{}, usecase.WithJournal(journal))
	if err := svc.WarmUpCache(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWarmUpCache_JournalErr(t *testing.T) {
	ctrl := gomock.NewController(t)

	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)

	journal.EXPECT().LastIDs(gomock.Any(), 3).Return(nil, errors.New("DB down"))
	cache.EXPECT().WarmUp(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewMessageService(queueName, (&recordWork{}).fn, mocks.NewMockMessageValidator(ctrl), cache,
		noopLogger{}, usecase.WithJournal(journal))
	if err := svc.WarmUpCache(context.Background(), 3); err == nil {
		t.Fatalf("want journal error, got nil")
	}
}

func TestWarmUpCache_WarnOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	cache := mocks.NewMockSeenCache(ctrl)
	journal := mocks.NewMockMessageJournal(ctrl)

	gomock.InOrder(
		journal.EXPECT().LastIDs(gomock.Any(), 2).Return([]string{"a"}, nil),
		cache.EXPECT().WarmUp(gomock.Any(), []string{"a"}).Return(context.Canceled),
	)

	svc := usecase.NewMessageService(queueName, (&recordWork{}).fn, mocks.NewMockMessageValidator(ctrl), cache,
		noopLogger{}, usecase.WithJournal(journal))
	if err := svc.WarmUpCache(context.Background(), 2); err != nil {
		t.Fatalf("warmup warning must not fail, got %v", err)
	}
}

func TestJournalReads_Proxy(t *testing.T) {
	ctrl := gomock.NewController(t)

	journal := mocks.NewMockMessageJournal(ctrl)
	rec := &domain.ProcessedMessage{MessageID: "a"}
	list := []*domain.ProcessedMessage{{MessageID: "a"}, {MessageID: "b"}}

	journal.EXPECT().GetByMessageID(gomock.Any(), "a").Return(rec, nil)
	journal.EXPECT().Recent(gomock.Any(), 10, 20).Return(list, nil)

	svc := usecase.NewMessageService(queueName, (&recordWork{}).fn, mocks.NewMockMessageValidator(ctrl),
		mocks.NewMockSeenCache(ctrl), noopLogger{}, usecase.WithJournal(journal))

	got, err := svc.GetProcessed(context.Background(), "a")
	if err != nil || got != rec {
		t.Fatalf("unexpected result: %+v, err=%v", got, err)
	}
	recent, err := svc.RecentProcessed(context.Background(), 10, 20)
	if err != nil || len(recent) != 2 || recent[1].MessageID != "b" {
		t.Fatalf("unexpected result: %+v, err=%v", recent, err)
	}
}

func TestJournalReads_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := usecase.NewMessageService(queueName, (&recordWork{}).fn, mocks.NewMockMessageValidator(ctrl),
		mocks.NewMockSeenCache(ctrl), noopLogger{})

	if _, err := svc.GetProcessed(context.Background(), "a"); !errors.Is(err, usecase.ErrJournalDisabled) {
		t.Fatalf("want ErrJournalDisabled, got %v", err)
	}
	if _, err := svc.RecentProcessed(context.Background(), 1, 0); !errors.Is(err, usecase.ErrJournalDisabled) {
		t.Fatalf("want ErrJournalDisabled, got %v", err)
	}
}
