package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/reservation-worker/pkg/ctxmeta"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	return wrap(logger, isProd), func() error { return logger.Sync() }, nil
}

// NewFromZap — обёртка над готовым *zap.Logger (например, zaptest/observer в тестах).
func NewFromZap(logger *zap.Logger) *ZapLogger {
	return wrap(logger, false)
}

func wrap(logger *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{
		base:   logger,
		sugar:  logger.Sugar(),
		isProd: isProd,
	}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

// withMeta добавляет к записи метаданные из контекста (poll_id, request_id, message_id, trace_id).
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}

	var kv []any
	if v, ok := ctxmeta.PollIDFromContext(ctx); ok {
		kv = append(kv, "poll_id", v)
	}
	if v, ok := ctxmeta.MessageIDFromContext(ctx); ok {
		kv = append(kv, "message_id", v)
	}
	if v, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		kv = append(kv, "request_id", v)
	}
	if v, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		kv = append(kv, "trace_id", v)
	}
	if len(kv) == 0 {
		return z.sugar
	}
	return z.sugar.With(kv...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
