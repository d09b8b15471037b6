// Package publisher provides sinks for the sensitive-access compliance channel.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"markethub/pkg/platform/audit"
)

// KafkaPublisher emits sensitive-access records to a Kafka topic with
// fail-open semantics: Log enqueues the record and returns; delivery errors
// are logged and counted, never propagated to the business operation.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher connects to the brokers and ensures the audit topic
// exists. The topic is created with a single partition when missing; real
// partitioning is an ops decision made outside this process.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin := kadm.NewClient(client)
	if _, err := admin.CreateTopic(ctx, 1, -1, nil, topic); err != nil {
		// Topic may already exist; anything else surfaces at first produce.
		logger.Debug("audit topic creation skipped", "topic", topic, "error", err)
	}

	return &KafkaPublisher{client: client, topic: topic, logger: logger}, nil
}

// Log enqueues one record for asynchronous delivery. The record is attempted
// exactly once from the caller's perspective; broker-side retries are handled
// by the client.
func (p *KafkaPublisher) Log(ctx context.Context, record audit.SensitiveAccessRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal sensitive access record: %w", err)
	}

	p.client.Produce(ctx, &kgo.Record{
		Topic: p.topic,
		Key:   []byte(record.ResourceOwnerID.String()),
		Value: payload,
	}, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("sensitive access record delivery failed",
				"resource_type", record.ResourceType,
				"resource_id", record.ResourceID,
				"error", err,
			)
		}
	})
	return nil
}

// Close flushes outstanding records and releases the client.
func (p *KafkaPublisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return fmt.Errorf("flush audit records: %w", err)
	}
	p.client.Close()
	return nil
}
