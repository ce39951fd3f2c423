package ports

import "context"

// MessageConsumer — цикл получения и обработки сообщений.
// Run возвращает nil, когда источник сообщений исчерпан.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
