package prompt

import (
	"fmt"
	"strings"

	"matchsight/internal/matches"
	"matchsight/internal/sports"
)

// identityPreamble anchors every prompt to the same behavioral contract. It
// never varies by sport.
const identityPreamble = "You are a professional sports analyst producing probabilistic pre-match assessments. " +
	"You weigh only the factors you are given, you never invent statistics, and you state uncertainty honestly. " +
	"Your assessments are informational and do not constitute betting advice. " +
	"Respond only with JSON."

// Document is the assembled instruction pair sent to the model. Built fresh
// per request; stateless.
type Document struct {
	System string
	User   string
}

// Compose builds the instruction document from a sport profile and a request.
// Purely deterministic string assembly of its two inputs.
func Compose(profile *sports.SportProfile, req *matches.Request) Document {
	var sections []string
	sections = append(sections, sportContext(profile, req))
	sections = append(sections, validationRules(profile))
	sections = append(sections, outputFormat(profile))
	return Document{
		System: identityPreamble,
		User:   strings.Join(sections, "\n\n"),
	}
}

func sportContext(profile *sports.SportProfile, req *matches.Request) string {
	t := profile.Terms
	lines := []string{
		fmt.Sprintf("Analyze this %s %s between two %ss: %q (home) vs %q (away).",
			profile.DisplayName, t.Match, t.Participant, req.Home, req.Away),
	}
	if req.League != "" {
		lines = append(lines, fmt.Sprintf("Competition: %s.", req.League))
	}
	if req.MatchDate != "" {
		lines = append(lines, fmt.Sprintf("Scheduled date: %s.", req.MatchDate))
	}
	if req.HasOdds() {
		lines = append(lines, oddsLine(req, t.HasDraw))
	}
	if t.HasDraw {
		lines = append(lines, fmt.Sprintf("A draw is a possible outcome in this %s.", t.Match))
	} else {
		lines = append(lines, fmt.Sprintf("A draw is not a possible outcome; one %s must win.", t.Participant))
	}
	lines = append(lines, fmt.Sprintf("Weigh exactly these factors when estimating who scores more %ss:", t.ScoringUnit))
	for i, factor := range profile.KeyFactors {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, factor))
	}
	return strings.Join(lines, "\n")
}

func oddsLine(req *matches.Request, hasDraw bool) string {
	parts := make([]string, 0, 3)
	if req.HomeOdds > 0 {
		parts = append(parts, fmt.Sprintf("home %.2f", req.HomeOdds))
	}
	if hasDraw && req.DrawOdds > 0 {
		parts = append(parts, fmt.Sprintf("draw %.2f", req.DrawOdds))
	}
	if req.AwayOdds > 0 {
		parts = append(parts, fmt.Sprintf("away %.2f", req.AwayOdds))
	}
	return "Current decimal market odds: " + strings.Join(parts, ", ") + "."
}

// validationRules writes the exact numeric thresholds the response is later
// checked against. Telling the model the rule it will be validated with
// lowers the rejection rate without weakening the check.
func validationRules(profile *sports.SportProfile) string {
	lines := []string{
		"Your probabilities MUST satisfy all of these rules:",
		fmt.Sprintf("- All outcome probabilities are percentages and must sum to 100 (tolerance: %.0f points either way).", sports.SumTolerance),
		fmt.Sprintf("- Each win probability must be between %.0f and %.0f.", profile.WinBounds.Min, profile.WinBounds.Max),
	}
	if profile.Terms.HasDraw {
		lines = append(lines, fmt.Sprintf("- The draw probability must be between %.0f and %.0f.", profile.DrawBounds.Min, profile.DrawBounds.Max))
	}
	lines = append(lines,
		fmt.Sprintf("- If the favorite is at or above %.0f, the underdog must not exceed %.0f.", profile.HeavyFavoriteThreshold, profile.Upset.MaxForHeavyFavorite),
		fmt.Sprintf("- If the favorite/underdog spread is %.0f or less, the underdog must be at least %.0f.", profile.CloseMatchSpread, profile.Upset.MinForCloseMatch),
		fmt.Sprintf("- valueFlag tiers by favorite/underdog spread: below %.0f NONE, %.0f-%.0f LOW, %.0f-%.0f MEDIUM, %.0f and above HIGH.",
			profile.Value.Low, profile.Value.Low, profile.Value.Medium, profile.Value.Medium, profile.Value.High, profile.Value.High),
	)
	return strings.Join(lines, "\n")
}

func outputFormat(profile *sports.SportProfile) string {
	var example string
	if profile.Terms.HasDraw {
		example = "{\n  \"home\": 50,\n  \"draw\": 28,\n  \"away\": 22,\n  \"riskLevel\": \"MEDIUM\",\n  \"valueFlag\": \"LOW\",\n  \"bestValueSide\": \"home\",\n  \"narrative\": \"two sentence reasoning\",\n  \"dataQuality\": \"limited to provided facts\"\n}"
	} else {
		example = "{\n  \"home\": 58,\n  \"away\": 42,\n  \"riskLevel\": \"MEDIUM\",\n  \"valueFlag\": \"LOW\",\n  \"bestValueSide\": \"home\",\n  \"narrative\": \"two sentence reasoning\",\n  \"dataQuality\": \"limited to provided facts\"\n}"
	}
	return "Return EXACTLY this JSON format with no prose and no markdown fencing:\n" + example
}
