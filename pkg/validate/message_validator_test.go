package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
)

func TestMessageValidator(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name               string
		requireReservation bool
		msg                *domain.Message
		wantErr            bool
	}{
		{"nil message", false, nil, true},
		{"body only, delete mode", false, &domain.Message{Body: "a"}, false},
		{"empty body is fine", false, &domain.Message{}, false},
		{"negative reserved_count", false, &domain.Message{Body: "a", ReservedCount: -1}, true},
		{"ack mode, full", true, &domain.Message{ID: "1", ReservationID: "r1", Body: "a"}, false},
		{"ack mode, no id", true, &domain.Message{ReservationID: "r1", Body: "a"}, true},
		{"ack mode, no reservation", true, &domain.Message{ID: "1", Body: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMessageValidator(tt.requireReservation).Validate(ctx, tt.msg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMessage) {
					t.Fatalf("want ErrInvalidMessage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
