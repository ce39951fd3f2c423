//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/reservation-worker/internal/repo/postgres"
)

// Общий логгер для testcontainers
var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// stage — хук, печатающий этап жизни контейнера.
func stage(name string) tc.ContainerHook {
	return func(_ context.Context, c tc.Container) error {
		id := c.GetContainerID()
		if len(id) > 12 {
			id = id[:12]
		}
		tcLogger.Printf("%s id=%s", name, id)
		return nil
	}
}

func lifecycleLogs() tc.ContainerLifecycleHooks {
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				tcLogger.Printf("creating image=%s", req.Image)
				return nil
			},
		},
		PostStarts:     []tc.ContainerHook{stage("started")},
		PostReadies:    []tc.ContainerHook{stage("ready")},
		PostTerminates: []tc.ContainerHook{stage("terminated")},
	}
}

// ----------------------------------------------------------------------------
// Postgres
// ----------------------------------------------------------------------------

// PGContainer — Postgres с применёнными миграциями журнала и готовым пулом.
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC — поднимает postgres:16-alpine, применяет migrations/ (goose) и открывает пул
// тем же кодом, что и воркер (pgrepo.Migrate, pgrepo.NewPool).
func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		tc.WithLifecycleHooks(lifecycleLogs()),
		postgres.WithDatabase("worker"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		// лог "ready" печатается дважды: initdb и основной запуск
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	fail := func(err error) (*PGContainer, func(context.Context) error, error) {
		_ = pg.Terminate(context.Background())
		return nil, nil, err
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(fmt.Errorf("conn string: %w", err))
	}
	if err := pgrepo.Migrate(dsn); err != nil {
		return fail(err)
	}

	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		return fail(fmt.Errorf("new pool: %w", err))
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}

	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// ----------------------------------------------------------------------------
// Kafka (redpanda)
// ----------------------------------------------------------------------------

type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		"docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		tc.WithLifecycleHooks(lifecycleLogs()),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx) // "host:port" для клиента
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}, stop, nil
}
