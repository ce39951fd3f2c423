//go:build integration

package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/reservation-worker/internal/domain"
	ikafka "github.com/Gunvolt24/reservation-worker/internal/kafka"
	"github.com/Gunvolt24/reservation-worker/internal/testutil"
	"github.com/Gunvolt24/reservation-worker/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// Опубликованное сообщение читается из топика с ключом и заголовками
func TestKafka_Publish_ReadBack_TC(t *testing.T) {
	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "jobs-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	// короткий контекст на сам тест
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic := testutil.UniqueTopic(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{
		Brokers:      kf.Brokers,
		Topic:        topic,
		WriteTimeout: 10 * time.Second,
	}, "job1", logg)
	t.Cleanup(func() { _ = pub.Close() })

	msg := testutil.MakeMessage("hello")
	require.NoError(t, pub.Publish(ctx, &msg))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     kf.Brokers,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MaxWait:     500 * time.Millisecond,
	})
	defer r.Close()

	got, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	require.Equal(t, msg.ID.String(), string(got.Key))
	require.Equal(t, "hello", string(got.Value))

	headers := map[string]string{}
	for _, h := range got.Headers {
		headers[h.Key] = string(h.Value)
	}
	require.Equal(t, msg.ReservationID, headers[ikafka.HeaderReservationID])
	require.Equal(t, "job1", headers[ikafka.HeaderQueue])
}

// Несколько сообщений с одним ключом сохраняют порядок
func TestKafka_Publish_OrderPerKey_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "jobs-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic := testutil.UniqueTopic(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	pub := ikafka.NewPublisher(&ikafka.PublisherConfig{Brokers: kf.Brokers, Topic: topic}, "job1", logg)
	t.Cleanup(func() { _ = pub.Close() })

	for _, body := range []string{"1", "2", "3"} {
		require.NoError(t, pub.Publish(ctx, &domain.Message{ID: "same", Body: body}))
	}

	r := kafka.NewReader(kafka.ReaderConfig{Brokers: kf.Brokers, Topic: topic, StartOffset: kafka.FirstOffset})
	defer r.Close()

	for _, want := range []string{"1", "2", "3"} {
		got, err := r.ReadMessage(ctx)
		require.NoError(t, err)
		require.Equal(t, want, string(got.Value))
	}
}
