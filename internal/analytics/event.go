package analytics

import "time"

// Event kinds emitted by the analysis pipeline.
const (
	EventAccepted      = "analysis_accepted"
	EventRejected      = "analysis_rejected"
	EventProviderError = "provider_error"
	EventCacheHit      = "cache_hit"
)

// Event is the fire-and-forget record published after each analysis
// decision. It carries no result payload, only outcome metadata.
type Event struct {
	Type      string    `json:"type"`
	Sport     string    `json:"sport"`
	MatchSlug string    `json:"match_slug"`
	Rule      string    `json:"rule,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}
