package work_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Gunvolt24/reservation-worker/internal/work"
)

type recLogger struct{ infos []string }

func (l *recLogger) Infof(_ context.Context, format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *recLogger) Warnf(context.Context, string, ...any)  {}
func (l *recLogger) Errorf(context.Context, string, ...any) {}

func TestSleep_LogsAndWaits(t *testing.T) {
	log := &recLogger{}
	fn := work.Sleep(20*time.Millisecond, log)

	start := time.Now()
	if err := fn(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("work returned too early: %s", time.Since(start))
	}
	if len(log.infos) != 1 || log.infos[0] != "working on hello" {
		t.Fatalf("unexpected log lines: %v", log.infos)
	}
}

func TestSleep_ZeroDelay(t *testing.T) {
	if err := work.Sleep(0, &recLogger{})(context.Background(), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := work.Sleep(time.Minute, &recLogger{})(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
