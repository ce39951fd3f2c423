package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты запроса резервирования (label "result").
const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

var (
	QueueReservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_reservations_total",
			Help: "Number of reservation requests sent to the queue",
		},
		[]string{"queue", "result"}, // ok|empty|error
	)
	QueueReservationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "queue_reservation_duration_seconds",
			Help:    "Latency of reservation requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"queue"},
	)
	MessagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_received_total",
			Help: "Number of messages reserved from the queue",
		},
		[]string{"queue"},
	)
	MessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"queue"},
	)
	MessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"queue"},
	)
	MessagesDuplicate = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_duplicate_total",
			Help: "Number of redelivered messages skipped by the dedupe cache",
		},
		[]string{"queue"},
	)
	MessagesAcked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_messages_acked_total",
			Help: "Number of messages deleted from the queue after processing",
		},
		[]string{"queue"},
	)
)

var KafkaMessagesPublished = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kafka_messages_published_total",
		Help: "Number of processed messages forwarded to Kafka",
	},
	[]string{"topic", "result"}, // ok|error
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует метрики в DefaultRegisterer; повторный вызов — no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			QueueReservations, QueueReservationDuration,
			MessagesReceived, MessagesProcessed, MessagesFailed, MessagesDuplicate, MessagesAcked,
			KafkaMessagesPublished,
			CacheOps, CacheSize,
		)
	})
}
