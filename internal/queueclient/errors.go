package queueclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus — очередь ответила не-2xx статусом.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedResponse — тело ответа не разбирается или в нём нет messages.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError — не-2xx ответ очереди; errors.Is(err, ErrUnexpectedStatus) == true.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrUnexpectedStatus }
