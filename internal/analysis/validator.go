package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"matchsight/internal/sports"
)

// Validate parses a raw model response and re-derives every domain invariant
// against the sport's configured rules. The model's arithmetic is never
// trusted. On success the returned result carries recomputed derived fields;
// on failure the violated rule and observed values are returned instead.
func Validate(raw string, profile *sports.SportProfile) (*Result, *Failure) {
	fields, fail := extractObject(raw)
	if fail != nil {
		return nil, fail
	}

	probs, fail := extractProbabilities(fields, profile)
	if fail != nil {
		return nil, fail
	}

	res := &Result{OutcomeProbabilities: probs}
	if fail := extractAdvisory(fields, res); fail != nil {
		return nil, fail
	}

	if fail := checkSum(probs); fail != nil {
		return nil, fail
	}
	if fail := checkBounds(probs, profile); fail != nil {
		return nil, fail
	}
	favorite, underdog := favoriteUnderdog(probs)
	if fail := checkUpset(favorite, underdog, probs, profile); fail != nil {
		return nil, fail
	}

	recompute(res, favorite, underdog, probs, profile)
	return res, nil
}

// extractObject tolerates prose and markdown fencing around the JSON payload.
func extractObject(raw string) (map[string]json.RawMessage, *Failure) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, malformed("empty response")
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, malformed("no JSON object found in response")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &fields); err != nil {
		return nil, malformed(fmt.Sprintf("invalid JSON: %v", err))
	}
	return fields, nil
}

// extractProbabilities accepts either the nested outcomeProbabilities object
// or flat top-level outcome fields, which some models emit despite the
// instructed format.
func extractProbabilities(fields map[string]json.RawMessage, profile *sports.SportProfile) (map[string]float64, *Failure) {
	outcomes := profile.Outcomes()

	if nested, ok := fields["outcomeProbabilities"]; ok {
		var m map[string]float64
		if err := json.Unmarshal(nested, &m); err != nil {
			return nil, schemaViolation("outcomeProbabilities", "must be an object of numbers")
		}
		known := make(map[string]bool, len(outcomes))
		for _, label := range outcomes {
			known[label] = true
		}
		for label := range m {
			if !known[label] {
				return nil, schemaViolation("outcomeProbabilities."+label, "unknown outcome for this sport")
			}
		}
		for _, label := range outcomes {
			if _, ok := m[label]; !ok {
				return nil, schemaViolation("outcomeProbabilities."+label, "missing outcome probability")
			}
		}
		return m, nil
	}

	m := make(map[string]float64, len(outcomes))
	for _, label := range outcomes {
		rawVal, ok := fields[label]
		if !ok {
			return nil, schemaViolation(label, "missing outcome probability")
		}
		var v float64
		if err := json.Unmarshal(rawVal, &v); err != nil {
			return nil, schemaViolation(label, "must be a number")
		}
		m[label] = v
	}
	return m, nil
}

func extractAdvisory(fields map[string]json.RawMessage, res *Result) *Failure {
	risk, fail := stringField(fields, "riskLevel")
	if fail != nil {
		return fail
	}
	level, ok := validRiskLevel(strings.ToUpper(risk))
	if !ok {
		return schemaViolation("riskLevel", fmt.Sprintf("must be LOW, MEDIUM or HIGH, got %q", risk))
	}
	res.RiskLevel = level

	flagRaw, fail := stringField(fields, "valueFlag")
	if fail != nil {
		return fail
	}
	flag, ok := validValueFlag(strings.ToUpper(flagRaw))
	if !ok {
		return schemaViolation("valueFlag", fmt.Sprintf("must be NONE, LOW, MEDIUM or HIGH, got %q", flagRaw))
	}
	res.ValueFlag = flag

	side, fail := stringField(fields, "bestValueSide")
	if fail != nil {
		return fail
	}
	res.BestValueSide = side

	narrative, fail := stringField(fields, "narrative")
	if fail != nil {
		return fail
	}
	res.Narrative = narrative

	quality, fail := stringField(fields, "dataQuality")
	if fail != nil {
		return fail
	}
	res.DataQuality = quality
	return nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, *Failure) {
	rawVal, ok := fields[name]
	if !ok {
		return "", schemaViolation(name, "missing field")
	}
	var s string
	if err := json.Unmarshal(rawVal, &s); err != nil {
		return "", schemaViolation(name, "must be a string")
	}
	return s, nil
}

func checkSum(probs map[string]float64) *Failure {
	var sum float64
	for _, v := range probs {
		sum += v
	}
	if math.Abs(sum-100) > sports.SumTolerance {
		return &Failure{
			Rule:   RuleProbabilitySum,
			Detail: fmt.Sprintf("probabilities sum to %.1f, allowed 100 +/- %.0f", sum, sports.SumTolerance),
		}
	}
	return nil
}

func checkBounds(probs map[string]float64, profile *sports.SportProfile) *Failure {
	for _, label := range profile.Outcomes() {
		v := probs[label]
		b := profile.BoundsFor(label)
		if !b.Contains(v) {
			return &Failure{
				Rule:   RuleProbabilityBound,
				Field:  label,
				Detail: fmt.Sprintf("probability %.1f outside bounds [%.0f, %.0f]", v, b.Min, b.Max),
			}
		}
	}
	return nil
}

// favoriteUnderdog looks only at the two participants; a draw can never be
// the favorite.
func favoriteUnderdog(probs map[string]float64) (string, string) {
	if probs[sports.OutcomeHome] >= probs[sports.OutcomeAway] {
		return sports.OutcomeHome, sports.OutcomeAway
	}
	return sports.OutcomeAway, sports.OutcomeHome
}

func checkUpset(favorite, underdog string, probs map[string]float64, profile *sports.SportProfile) *Failure {
	fav := probs[favorite]
	und := probs[underdog]
	if fav >= profile.HeavyFavoriteThreshold && und > profile.Upset.MaxForHeavyFavorite {
		return &Failure{
			Rule:  RuleUpsetBound,
			Field: underdog,
			Detail: fmt.Sprintf("heavy favorite at %.1f but underdog at %.1f exceeds max upset %.0f",
				fav, und, profile.Upset.MaxForHeavyFavorite),
		}
	}
	if fav-und <= profile.CloseMatchSpread && und < profile.Upset.MinForCloseMatch {
		return &Failure{
			Rule:  RuleUpsetBound,
			Field: underdog,
			Detail: fmt.Sprintf("close match (spread %.1f) but underdog at %.1f below min upset %.0f",
				fav-und, und, profile.Upset.MinForCloseMatch),
		}
	}
	return nil
}

// recompute overwrites the derived fields with arithmetic from the accepted
// probabilities. The model's classifications are advisory only: a mismatch
// is corrected in place, never rejected.
func recompute(res *Result, favorite, underdog string, probs map[string]float64, profile *sports.SportProfile) {
	fav := probs[favorite]
	spread := fav - probs[underdog]

	switch {
	case spread >= profile.Value.High:
		res.ValueFlag = ValueHigh
	case spread >= profile.Value.Medium:
		res.ValueFlag = ValueMedium
	case spread >= profile.Value.Low:
		res.ValueFlag = ValueLow
	default:
		res.ValueFlag = ValueNone
	}

	switch {
	case fav >= profile.HeavyFavoriteThreshold:
		res.RiskLevel = RiskLow
	case spread <= profile.CloseMatchSpread:
		res.RiskLevel = RiskHigh
	default:
		res.RiskLevel = RiskMedium
	}

	if res.ValueFlag == ValueNone {
		res.BestValueSide = "none"
	} else {
		res.BestValueSide = favorite
	}
}
