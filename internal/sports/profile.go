package sports

// Canonical outcome labels used in prompts, model responses, and validation.
const (
	OutcomeHome = "home"
	OutcomeDraw = "draw"
	OutcomeAway = "away"
)

// SumTolerance is the allowed deviation of the outcome probability sum from 100,
// in percentage points. It is sport-independent and is written verbatim into
// every prompt so the model is told the exact rule it is checked against.
const SumTolerance = 2.0

// Bounds is an inclusive [Min, Max] percentage range for one outcome class.
type Bounds struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the bounds.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Terminology carries the sport-specific nouns substituted into prompt templates.
type Terminology struct {
	Match       string
	Participant string
	ScoringUnit string
	HasDraw     bool
}

// UpsetBounds constrains the underdog's probability relative to the favorite.
type UpsetBounds struct {
	// MaxForHeavyFavorite caps the underdog when the favorite is at or above
	// the heavy-favorite threshold.
	MaxForHeavyFavorite float64
	// MinForCloseMatch floors the underdog when the favorite/underdog spread
	// is inside the close-match band.
	MinForCloseMatch float64
}

// ValueThresholds buckets the favorite/underdog probability differential into
// value-flag tiers. A differential below Low maps to NONE.
type ValueThresholds struct {
	Low    float64
	Medium float64
	High   float64
}

// SportProfile is the static configuration for one sport. Profiles are
// assembled once at startup and treated as read-only afterwards.
type SportProfile struct {
	Key         string
	DisplayName string
	Terms       Terminology

	WinBounds  Bounds
	DrawBounds Bounds // meaningful only when Terms.HasDraw

	// KeyFactors are listed verbatim in the prompt so the model is told
	// exactly which signals to weigh for this sport.
	KeyFactors []string

	// HeavyFavoriteThreshold is the win probability above which a participant
	// counts as a heavy favorite. CloseMatchSpread is the favorite/underdog
	// spread at or below which the pairing counts as a close match.
	HeavyFavoriteThreshold float64
	CloseMatchSpread       float64

	Upset UpsetBounds
	Value ValueThresholds
}

// Outcomes returns the ordered outcome labels for this sport.
func (p *SportProfile) Outcomes() []string {
	if p.Terms.HasDraw {
		return []string{OutcomeHome, OutcomeDraw, OutcomeAway}
	}
	return []string{OutcomeHome, OutcomeAway}
}

// BoundsFor returns the probability bounds for the given outcome label.
func (p *SportProfile) BoundsFor(outcome string) Bounds {
	if outcome == OutcomeDraw {
		return p.DrawBounds
	}
	return p.WinBounds
}
