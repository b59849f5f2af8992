package matches

import (
	"fmt"
	"strings"
)

// Request carries the match facts for one analysis call. It is built fresh
// per call and never persisted by the pipeline.
type Request struct {
	Sport string `json:"sport"`
	Home  string `json:"home"`
	Away  string `json:"away"`

	// Optional context. Odds are decimal; zero means not supplied.
	League    string  `json:"league,omitempty"`
	MatchDate string  `json:"matchDate,omitempty"`
	HomeOdds  float64 `json:"homeOdds,omitempty"`
	DrawOdds  float64 `json:"drawOdds,omitempty"`
	AwayOdds  float64 `json:"awayOdds,omitempty"`
}

// Validate checks the request is well-formed. The sport identifier is not
// checked here: unknown sports resolve to the default profile downstream.
func (r *Request) Validate() error {
	if r == nil {
		return fmt.Errorf("matches: request is nil")
	}
	home := strings.TrimSpace(r.Home)
	away := strings.TrimSpace(r.Away)
	if home == "" {
		return fmt.Errorf("matches: home participant is required")
	}
	if away == "" {
		return fmt.Errorf("matches: away participant is required")
	}
	if strings.EqualFold(home, away) {
		return fmt.Errorf("matches: home and away participants must differ")
	}
	for _, odds := range []float64{r.HomeOdds, r.DrawOdds, r.AwayOdds} {
		if odds != 0 && odds < 1 {
			return fmt.Errorf("matches: decimal odds must be >= 1, got %.2f", odds)
		}
	}
	return nil
}

// HasOdds reports whether any market odds were supplied.
func (r *Request) HasOdds() bool {
	return r.HomeOdds > 0 || r.DrawOdds > 0 || r.AwayOdds > 0
}
