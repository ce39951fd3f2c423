package consumer

import (
	"testing"
	"time"
)

func TestReservationRequest_Defaults(t *testing.T) {
	cfg := &Config{DeleteOnReserve: true}

	req := cfg.reservationRequest()
	if req.N != 1 || !req.Delete {
		t.Fatalf("want n=1 delete=true, got %+v", req)
	}
	if req.Timeout != 0 || req.Wait != 0 {
		t.Fatalf("optional fields must be zero, got %+v", req)
	}
}

func TestReservationRequest_Seconds(t *testing.T) {
	cfg := &Config{
		BatchSize:          10,
		ReservationTimeout: 90 * time.Second,
		Wait:               200 * time.Millisecond,
	}

	req := cfg.reservationRequest()
	if req.N != 10 || req.Delete {
		t.Fatalf("unexpected n/delete: %+v", req)
	}
	if req.Timeout != 90 {
		t.Fatalf("timeout: want 90, got %d", req.Timeout)
	}
	if req.Wait != 1 {
		t.Fatalf("sub-second wait must round up to 1, got %d", req.Wait)
	}
}

func TestSeconds_RoundsUp(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Nanosecond, 1},
		{500 * time.Millisecond, 1},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{2 * time.Second, 2},
		{90*time.Second + time.Millisecond, 91},
	}
	for _, tt := range tests {
		if got := seconds(tt.in); got != tt.want {
			t.Fatalf("seconds(%s): want %d, got %d", tt.in, tt.want, got)
		}
	}
}
