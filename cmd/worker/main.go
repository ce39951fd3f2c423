package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/reservation-worker/config"
	"github.com/Gunvolt24/reservation-worker/internal/app"
)

// Воркер очереди: резервирует сообщения, обрабатывает их по одному и завершается на пустой очереди.
func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// nil → рабочая функция по умолчанию (лог + задержка WORK_DELAY)
	a, cleanup, err := app.Bootstrap(ctx, &cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		return 1
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Errorf(ctx, "worker failed: %v", err)
		return 1
	}
	return 0
}
