package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"matchsight/internal/analysis"
	"matchsight/internal/analytics"
	"matchsight/internal/cache"
	"matchsight/internal/kafka"
	"matchsight/internal/llm"
	"matchsight/internal/logging"
	"matchsight/internal/server"
	sqlstore "matchsight/internal/storage/sqlite"
)

func main() {
	_ = godotenv.Load()
	logging.InitFromEnv()

	gateway := llm.NewLazy(llm.Config{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		Model:       os.Getenv("LLM_MODEL"),
		Timeout:     time.Duration(envInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		Temperature: float32(envFloat("LLM_TEMPERATURE", 0.3)),
		MaxTokens:   envInt("LLM_MAX_TOKENS", 800),
	})
	if os.Getenv("OPENAI_API_KEY") == "" {
		logging.Infof("[analysis-api] no OPENAI_API_KEY configured; analyze calls will fail per request")
	}

	var resultCache analysis.ResultCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ttl := time.Duration(envInt("RESULT_CACHE_TTL_MINUTES", 360)) * time.Minute
		rc, err := cache.NewRedisResultCache(addr, os.Getenv("REDIS_PASSWORD"), envInt("REDIS_DB", 0), ttl, "")
		if err != nil {
			logging.Fatalf("[analysis-api] redis cache: %v", err)
		}
		defer rc.Close()
		resultCache = rc
		logging.Infof("[analysis-api] result cache enabled (ttl=%s)", ttl)
	}

	var events analysis.EventSink
	if os.Getenv("KAFKA_BROKERS") != "" {
		brokers := kafka.Brokers()
		topic := kafka.TopicFromEnv("ANALYTICS_KAFKA_TOPIC", kafka.DefaultAnalyticsTopic)
		ensureCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := kafka.EnsureTopic(ensureCtx, brokers, topic); err != nil {
			logging.Errorf("[analysis-api] ensure topic warning: %v", err)
		}
		cancel()
		publisher := analytics.NewPublisher(kafka.NewWriter(brokers, topic))
		defer publisher.Close()
		events = publisher
		logging.Infof("[analysis-api] analytics events enabled on %s", topic)
	}

	service, err := analysis.NewService(analysis.Config{
		Gateway: gateway,
		Cache:   resultCache,
		Events:  events,
	})
	if err != nil {
		logging.Fatalf("[analysis-api] build service: %v", err)
	}

	store, err := sqlstore.Open(os.Getenv("SQLITE_PATH"))
	if err != nil {
		logging.Fatalf("[analysis-api] open sqlite: %v", err)
	}
	defer store.Close()
	if err := store.CreateTables(context.Background()); err != nil {
		logging.Fatalf("[analysis-api] ensure schema: %v", err)
	}

	srv, err := server.NewServer(server.Config{
		Service:  service,
		Links:    store,
		ShareTTL: time.Duration(envInt("SHARE_TTL_DAYS", 30)) * 24 * time.Hour,
	})
	if err != nil {
		logging.Fatalf("[analysis-api] build server: %v", err)
	}

	addr := fmt.Sprintf(":%d", envInt("PORT", 8080))
	logging.Infof("[analysis-api] listening on %s", addr)
	if err := srv.Run(addr); err != nil {
		logging.Fatalf("[analysis-api] serve: %v", err)
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

func envFloat(key string, def float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return def
}
