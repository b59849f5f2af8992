package workers

import (
	"context"
	"encoding/json"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	"matchsight/internal/analytics"
	"matchsight/internal/kafka"
	"matchsight/internal/logging"
)

type Handler func(context.Context, *analytics.Event) error

// Run consumes the analytics topic with workerCount readers in the same
// consumer group and hands each decoded event to handler. It returns when
// the context is cancelled.
func Run(ctx context.Context, brokers []string, topic, group string, workerCount int, handler Handler) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			reader := kafka.NewReader(brokers, topic, group)
			defer reader.Close()
			consume(ctx, reader, handler)
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
}

func consume(ctx context.Context, reader *kafkago.Reader, handler Handler) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Errorf("worker read error: %v", err)
			continue
		}

		var event analytics.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logging.Errorf("worker unmarshal error: %v", err)
			continue
		}

		if handler != nil {
			if err := handler(ctx, &event); err != nil {
				logging.Errorf("worker handler error: %v", err)
			}
		}
	}
}
