package ports

import "context"

// SeenCache — множество id уже обработанных сообщений.
// Требования к реализации: потокобезопасность; проверка по ключу не хуже O(1).
type SeenCache interface {
	// Seen — true, если сообщение с таким id уже обрабатывалось (и запись не истекла).
	Seen(ctx context.Context, messageID string) bool

	// Mark — запомнить id обработанного сообщения.
	Mark(ctx context.Context, messageID string)

	// WarmUp — массовая загрузка id (например, из журнала при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, messageIDs []string) error
}
