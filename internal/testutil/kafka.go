//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopic — уникальный топик на основе базового префикса.
// Пример: base="jobs-itc" → "jobs-itc-20250826T010203123456789".
func UniqueTopic(base string) string {
	s := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	return base + "-" + s
}

// EnsureTopic — создаёт топик с одной партицией (существующий — не ошибка)
// и ждёт, пока он появится в метаданных брокера.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	client := &kafka.Client{
		Addr:    kafka.TCP(strings.TrimPrefix(broker, "PLAINTEXT://")),
		Timeout: 5 * time.Second,
	}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	if tErr := resp.Errors[topic]; tErr != nil && !errors.Is(tErr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, tErr)
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		meta, err := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if err == nil {
			for _, tp := range meta.Topics {
				if tp.Name == topic && tp.Error == nil && len(tp.Partitions) > 0 {
					return nil
				}
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, ctx.Err())
		case <-ticker.C:
		}
	}
}
