package ports

import "context"

// WorkFunc — пользовательская работа над телом сообщения.
// Вызывается синхронно, ровно один раз на сообщение.
type WorkFunc func(ctx context.Context, body string) error
