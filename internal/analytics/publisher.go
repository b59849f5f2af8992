package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher writes analysis events to the analytics topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher wraps a kafka writer. A nil writer yields a no-op publisher
// so callers do not need to branch on whether analytics is configured.
func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

// Publish marshals and writes the events. Events missing a timestamp are
// stamped at publish time.
func (p *Publisher) Publish(ctx context.Context, events ...Event) error {
	if p == nil || p.writer == nil || len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		if ev.CreatedAt.IsZero() {
			ev.CreatedAt = time.Now().UTC()
		}
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", ev.Type, err)
		}
		key := fmt.Sprintf("%s-%s-%d", ev.Type, ev.MatchSlug, ev.CreatedAt.UnixNano())
		msgs = append(msgs, kafka.Message{Key: []byte(key), Value: payload})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
