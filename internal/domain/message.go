package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ReservationRequest — тело запроса резервирования: n сообщений, удалять ли их сразу при выдаче.
// Timeout и Wait (в секундах) отправляются только если заданы.
type ReservationRequest struct {
	N       int  `json:"n"`
	Delete  bool `json:"delete"`
	Timeout int  `json:"timeout,omitempty"`
	Wait    int  `json:"wait,omitempty"`
}

// MessageID — id сообщения в очереди. Очереди отдают его и строкой, и числом;
// внутри всегда строка.
type MessageID string

func (id MessageID) String() string { return string(id) }

// UnmarshalJSON принимает "abc", 123 и null.
func (id *MessageID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = MessageID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("message id must be a string or a number, got %s", data)
	}
	*id = MessageID(n.String())
	return nil
}

// Message — зарезервированное сообщение. После получения не изменяется.
type Message struct {
	ID            MessageID `json:"id,omitempty"`
	Body          string    `json:"body"`
	ReservationID string    `json:"reservation_id,omitempty"`
	ReservedCount int       `json:"reserved_count,omitempty"`
}

// ReservationResponse — ответ очереди. Пустой Messages означает, что очередь пуста.
type ReservationResponse struct {
	Messages []Message `json:"messages"`
}

// ProcessedMessage — запись журнала об обработанном сообщении.
type ProcessedMessage struct {
	MessageID   string    `json:"message_id"`
	Queue       string    `json:"queue"`
	Body        string    `json:"body"`
	ProcessedAt time.Time `json:"processed_at"`
	DurationMs  int64     `json:"duration_ms"`
}
