package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Gunvolt24/reservation-worker/config"
	cachemem "github.com/Gunvolt24/reservation-worker/internal/cache/memory"
	"github.com/Gunvolt24/reservation-worker/internal/consumer"
	"github.com/Gunvolt24/reservation-worker/internal/kafka"
	"github.com/Gunvolt24/reservation-worker/internal/ports"
	"github.com/Gunvolt24/reservation-worker/internal/queueclient"
	"github.com/Gunvolt24/reservation-worker/internal/repo/postgres"
	rest "github.com/Gunvolt24/reservation-worker/internal/transport/http"
	"github.com/Gunvolt24/reservation-worker/internal/usecase"
	"github.com/Gunvolt24/reservation-worker/internal/work"
	"github.com/Gunvolt24/reservation-worker/pkg/logger"
	"github.com/Gunvolt24/reservation-worker/pkg/metrics"
	"github.com/Gunvolt24/reservation-worker/pkg/telemetry"
	"github.com/Gunvolt24/reservation-worker/pkg/validate"
)

// App — собранное приложение: цикл резервирования и служебный HTTP-сервер.
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // служебный сервер; nil — выключен
	Consumer        ports.MessageConsumer // цикл резервирования
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// fn — рабочая функция; nil → work.Sleep с задержкой из конфигурации.
func Bootstrap(ctx context.Context, cfg *config.Config, fn ports.WorkFunc) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Ресурсы освобождаются в обратном порядке, в том числе при ошибке сборки.
	var closers []func()
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint,
			cfg.Tracing.SampleRatio, attribute.String("queue.name", cfg.Queue.Name))
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			closers = append(closers, func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	var opts []usecase.Option

	// Журнал обработанных сообщений (Postgres).
	var journal ports.MessageJournal
	if cfg.Postgres.Enabled {
		if cfg.Postgres.AutoMigrate {
			if mErr := postgres.Migrate(cfg.Postgres.DSN); mErr != nil {
				release()
				return nil, func() {}, fmt.Errorf("migrate: %w", mErr)
			}
		}
		pool, pErr := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if pErr != nil {
			release()
			return nil, func() {}, pErr
		}
		closers = append(closers, pool.Close)

		journal = postgres.NewJournalRepository(pool)
		opts = append(opts, usecase.WithJournal(journal))
		logg.Infof(ctx, "message journal enabled")
	}

	// Пересылка обработанных сообщений (Kafka).
	if cfg.Kafka.Enabled {
		publisher := kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, cfg.Queue.Name, logg)
		closers = append(closers, func() {
			if cErr := publisher.Close(); cErr != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", cErr)
			}
		})
		opts = append(opts, usecase.WithPublisher(publisher))
		logg.Infof(ctx, "forwarding to kafka topic=%s brokers=%v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	if fn == nil {
		fn = work.Sleep(cfg.Work.Delay, logg)
	}

	// Сборка зависимостей доменного слоя.
	seenCache := cachemem.NewSeenCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	// id и reservation_id обязательны только когда сообщение нужно подтверждать.
	messageValidator := validate.NewMessageValidator(!cfg.Queue.DeleteOnReserve)
	messageService := usecase.NewMessageService(cfg.Queue.Name, fn, messageValidator, seenCache, logg, opts...)

	// Прогрев кэша из журнала
	if err := messageService.WarmUpCache(ctx, cfg.Cache.WarmUpN); err != nil {
		logg.Warnf(ctx, "warm-up cache failed: %v", err)
	}

	// Клиент очереди и цикл резервирования.
	client, err := queueclient.New(queueclient.Config{
		BaseURL:        cfg.Queue.BaseURL,
		APIVersion:     cfg.Queue.APIVersion,
		ProjectID:      cfg.Queue.ProjectID,
		Queue:          cfg.Queue.Name,
		RequestTimeout: cfg.Queue.RequestTimeout,
	})
	if err != nil {
		release()
		return nil, func() {}, fmt.Errorf("queue client: %w", err)
	}

	consumerCfg := consumer.Config{
		Queue:              cfg.Queue.Name,
		BatchSize:          cfg.Queue.BatchSize,
		DeleteOnReserve:    cfg.Queue.DeleteOnReserve,
		ReservationTimeout: cfg.Queue.ReservationTimeout,
		Wait:               cfg.Queue.Wait,
		StartDelay:         cfg.Work.StartDelay,
		ProcessTimeout:     cfg.Work.ProcessTimeout,
	}
	reservationConsumer := consumer.NewConsumer(&consumerCfg, client, messageService, logg)

	app := &App{
		Logger:          logg,
		Consumer:        reservationConsumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Служебный HTTP-сервер (только при непустом адресе).
	if cfg.HTTP.Addr != "" {
		applyGinMode(ctx, cfg.HTTP.GinMode, logg)

		// Имя сервиса для otelgin (только при включённом трейсинге).
		otelServiceName := ""
		if cfg.Tracing.Enabled {
			otelServiceName = cfg.Tracing.ServiceName
		}

		// Без журнала маршруты /messages не регистрируются.
		var reads ports.JournalReadService
		if journal != nil {
			reads = messageService
		}

		router := rest.NewRouter(rest.NewHandler(reads, logg, cfg.HTTP.HandlerTimeout), otelServiceName)
		app.HTTPServer = &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           router,
			ReadTimeout:       cfg.HTTP.ReadTimeout,
			WriteTimeout:      cfg.HTTP.WriteTimeout,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			IdleTimeout:       cfg.HTTP.IdleTimeout,
		}
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if err := reservationConsumer.Close(); err != nil {
			logg.Warnf(ctx, "consumer close error: %v", err)
		}
		release()
	}

	return app, cleanup, nil
}

// Run — запускает служебный HTTP-сервер и цикл резервирования.
// Возвращает ошибку цикла; пустая очередь → nil. Падение HTTP-сервера останавливает цикл.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	httpErrCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	if a.HTTPServer != nil {
		go func() {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
			if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				httpErrCh <- err
				cancel()
			}
		}()
	}

	// Цикл резервирования работает в текущей горутине до пустой очереди или ошибки.
	runErr := a.Consumer.Run(ctx)

	select {
	case err := <-httpErrCh:
		a.Logger.Warnf(ctx, "http server failed: %v", err)
		runErr = fmt.Errorf("http server: %w", err)
	default:
		switch {
		case runErr == nil:
		case errors.Is(runErr, context.Canceled):
			a.Logger.Infof(ctx, "consumer stopped: %v", runErr)
		default:
			a.Logger.Errorf(ctx, "consumer failed: %v", runErr)
		}
	}

	a.shutdownHTTP(ctx)

	// Остановка консьюмера
	if err := a.Consumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "worker stopped")
	return runErr
}

// shutdownHTTP — корректная остановка служебного сервера.
func (a *App) shutdownHTTP(ctx context.Context) {
	if a.HTTPServer == nil {
		return
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
}
