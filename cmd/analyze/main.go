package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"matchsight/internal/analysis"
	"matchsight/internal/llm"
	"matchsight/internal/logging"
	"matchsight/internal/matches"
)

func main() {
	_ = godotenv.Load()
	logging.InitFromEnv()

	sport := flag.String("sport", "soccer", "sport identifier (unknown values fall back to soccer)")
	home := flag.String("home", "", "home participant")
	away := flag.String("away", "", "away participant")
	league := flag.String("league", "", "competition name")
	date := flag.String("date", "", "match date (free form)")
	homeOdds := flag.Float64("home-odds", 0, "decimal odds for home")
	drawOdds := flag.Float64("draw-odds", 0, "decimal odds for draw")
	awayOdds := flag.Float64("away-odds", 0, "decimal odds for away")
	flag.Parse()

	gateway := llm.NewLazy(llm.Config{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		Model:       os.Getenv("LLM_MODEL"),
		Timeout:     time.Duration(envInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		Temperature: 0.3,
		MaxTokens:   envInt("LLM_MAX_TOKENS", 800),
	})

	service, err := analysis.NewService(analysis.Config{Gateway: gateway})
	if err != nil {
		logging.Fatalf("[analyze] build service: %v", err)
	}

	req := &matches.Request{
		Sport:     *sport,
		Home:      *home,
		Away:      *away,
		League:    *league,
		MatchDate: *date,
		HomeOdds:  *homeOdds,
		DrawOdds:  *drawOdds,
		AwayOdds:  *awayOdds,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := service.Analyze(ctx, req)
	if err != nil {
		logging.Fatalf("[analyze] %s: %v", matches.Slug(req), err)
	}

	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logging.Fatalf("[analyze] encode result: %v", err)
	}
	fmt.Println(string(payload))
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
