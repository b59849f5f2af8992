package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"matchsight/internal/analytics"
	"matchsight/internal/cache"
	"matchsight/internal/kafka"
	"matchsight/internal/logging"
	"matchsight/internal/workers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	_ = godotenv.Load()
	logging.InitFromEnv()

	brokers := kafka.Brokers()
	topic := kafka.TopicFromEnv("ANALYTICS_KAFKA_TOPIC", kafka.DefaultAnalyticsTopic)
	group := envString("ANALYTICS_WORKER_GROUP", "analytics-worker")
	workerCount := envInt("ANALYTICS_WORKERS", 1)

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		logging.Fatalf("[analytics-worker] wait for broker: %v", err)
	}
	cancel()

	ensureCtx, cancelEnsure := context.WithTimeout(ctx, 30*time.Second)
	if err := kafka.EnsureTopic(ensureCtx, brokers, topic); err != nil {
		logging.Errorf("[analytics-worker] ensure topic warning: %v", err)
	}
	cancelEnsure()

	counters, err := cache.NewRedisCounterStore(
		envString("REDIS_ADDR", "localhost:6379"),
		os.Getenv("REDIS_PASSWORD"),
		envInt("REDIS_DB", 0),
		time.Duration(envInt("COUNTER_TTL_DAYS", 30))*24*time.Hour,
		"",
	)
	if err != nil {
		logging.Fatalf("[analytics-worker] counter store: %v", err)
	}
	defer counters.Close()

	logging.Infof("[analytics-worker] consuming %s with group %s (%d workers)", topic, group, workerCount)
	workers.Run(ctx, brokers, topic, group, workerCount, func(ctx context.Context, ev *analytics.Event) error {
		for _, name := range counterNames(ev) {
			if _, err := counters.Incr(ctx, name); err != nil {
				return err
			}
		}
		logging.Debugf("[analytics-worker] counted %s sport=%s slug=%s", ev.Type, ev.Sport, ev.MatchSlug)
		return nil
	})
}

func counterNames(ev *analytics.Event) []string {
	day := ev.CreatedAt.UTC().Format("2006-01-02")
	return []string{
		fmt.Sprintf("%s:%s", ev.Type, day),
		fmt.Sprintf("%s:%s:%s", ev.Type, ev.Sport, day),
	}
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
