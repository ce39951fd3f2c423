package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
)

// Проверка, что MessageValidator удовлетворяет интерфейсу MessageValidator.
var _ ports.MessageValidator = (*MessageValidator)(nil)

// ErrInvalidMessage — базовая (sentinel error) ошибка валидации сообщения.
var ErrInvalidMessage = errors.New("message validation failed")

// MessageValidator — проверка зарезервированного сообщения перед обработкой.
type MessageValidator struct {
	// requireReservation — сообщение придётся подтверждать (delete=false),
	// поэтому id и reservation_id обязательны.
	requireReservation bool
}

// NewMessageValidator — конструктор MessageValidator.
// Возвращает ErrInvalidMessage (с обёрнутой причиной) при любой проблеме.
func NewMessageValidator(requireReservation bool) *MessageValidator {
	return &MessageValidator{requireReservation: requireReservation}
}

// Validate — проверяет поля сообщения.
func (v *MessageValidator) Validate(_ context.Context, msg *domain.Message) error {
	if msg == nil {
		return fmt.Errorf("%w: сообщение не может быть nil", ErrInvalidMessage)
	}
	if msg.ReservedCount < 0 {
		return fmt.Errorf("%w: reserved_count должен быть неотрицательным", ErrInvalidMessage)
	}
	if !v.requireReservation {
		return nil
	}
	if msg.ID == "" {
		return fmt.Errorf("%w: id обязателен для подтверждения", ErrInvalidMessage)
	}
	if msg.ReservationID == "" {
		return fmt.Errorf("%w: reservation_id обязателен для подтверждения", ErrInvalidMessage)
	}
	return nil
}
