package analysis

import (
	"encoding/json"
	"testing"

	"matchsight/internal/sports"
)

func soccerProfile(t *testing.T) *sports.SportProfile {
	t.Helper()
	return sports.DefaultRegistry().Resolve("soccer")
}

// twoWayProfile has loose win bounds and a tight upset ceiling so the upset
// checks can be exercised independently of the bound checks.
func twoWayProfile() *sports.SportProfile {
	return &sports.SportProfile{
		Key:                    "test_two_way",
		DisplayName:            "Test",
		Terms:                  sports.Terminology{Match: "match", Participant: "side", ScoringUnit: "point"},
		WinBounds:              sports.Bounds{Min: 5, Max: 95},
		HeavyFavoriteThreshold: 80,
		CloseMatchSpread:       10,
		Upset:                  sports.UpsetBounds{MaxForHeavyFavorite: 10, MinForCloseMatch: 30},
		Value:                  sports.ValueThresholds{Low: 8, Medium: 18, High: 30},
	}
}

func TestValidateAcceptsConsistentResponse(t *testing.T) {
	raw := `{"home":55,"draw":25,"away":20,"riskLevel":"MEDIUM","valueFlag":"LOW","bestValueSide":"home","narrative":"solid home form","dataQuality":"odds provided"}`
	res, fail := Validate(raw, soccerProfile(t))
	if fail != nil {
		t.Fatalf("unexpected rejection: %v", fail)
	}
	if got := res.OutcomeProbabilities["home"]; got != 55 {
		t.Errorf("home probability = %v, want 55", got)
	}
	// spread 35 maps to HIGH on soccer's value table; the model said LOW.
	if res.ValueFlag != ValueHigh {
		t.Errorf("valueFlag = %s, want recomputed HIGH", res.ValueFlag)
	}
	if res.BestValueSide != "home" {
		t.Errorf("bestValueSide = %s, want home", res.BestValueSide)
	}
	if res.RiskLevel != RiskMedium {
		t.Errorf("riskLevel = %s, want MEDIUM", res.RiskLevel)
	}
}

func TestValidateToleratesFencingAndProse(t *testing.T) {
	raw := "Here is the assessment you asked for:\n```json\n" +
		`{"home":50,"draw":28,"away":22,"riskLevel":"MEDIUM","valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}` +
		"\n```\nLet me know if you need anything else."
	res, fail := Validate(raw, soccerProfile(t))
	if fail != nil {
		t.Fatalf("unexpected rejection: %v", fail)
	}
	if res.OutcomeProbabilities["draw"] != 28 {
		t.Errorf("draw probability = %v, want 28", res.OutcomeProbabilities["draw"])
	}
}

func TestValidateAcceptsNestedProbabilities(t *testing.T) {
	raw := `{"outcomeProbabilities":{"home":50,"draw":28,"away":22},"riskLevel":"HIGH","valueFlag":"NONE","bestValueSide":"none","narrative":"n","dataQuality":"d"}`
	if _, fail := Validate(raw, soccerProfile(t)); fail != nil {
		t.Fatalf("unexpected rejection: %v", fail)
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{not valid json]"} {
		_, fail := Validate(raw, soccerProfile(t))
		if fail == nil || fail.Rule != RuleMalformedResponse {
			t.Errorf("raw %q: got %v, want MalformedResponse", raw, fail)
		}
	}
}

func TestValidateRejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{
			name:  "missing riskLevel",
			raw:   `{"home":50,"draw":28,"away":22,"valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}`,
			field: "riskLevel",
		},
		{
			name:  "missing draw outcome",
			raw:   `{"home":60,"away":40,"riskLevel":"LOW","valueFlag":"NONE","bestValueSide":"none","narrative":"n","dataQuality":"d"}`,
			field: "draw",
		},
		{
			name:  "mistyped probability",
			raw:   `{"home":"fifty","draw":28,"away":22,"riskLevel":"LOW","valueFlag":"NONE","bestValueSide":"none","narrative":"n","dataQuality":"d"}`,
			field: "home",
		},
		{
			name:  "invalid riskLevel value",
			raw:   `{"home":50,"draw":28,"away":22,"riskLevel":"EXTREME","valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}`,
			field: "riskLevel",
		},
		{
			name:  "unknown nested outcome",
			raw:   `{"outcomeProbabilities":{"home":50,"draw":28,"away":22,"overtime":0},"riskLevel":"LOW","valueFlag":"NONE","bestValueSide":"none","narrative":"n","dataQuality":"d"}`,
			field: "outcomeProbabilities.overtime",
		},
	}
	profile := soccerProfile(t)
	for _, tc := range cases {
		_, fail := Validate(tc.raw, profile)
		if fail == nil || fail.Rule != RuleSchemaViolation {
			t.Errorf("%s: got %v, want SchemaViolation", tc.name, fail)
			continue
		}
		if fail.Field != tc.field {
			t.Errorf("%s: field = %s, want %s", tc.name, fail.Field, tc.field)
		}
	}
}

func TestValidateRejectsProbabilitySum(t *testing.T) {
	raw := `{"home":50,"draw":22,"away":20,"riskLevel":"MEDIUM","valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}`
	_, fail := Validate(raw, soccerProfile(t))
	if fail == nil || fail.Rule != RuleProbabilitySum {
		t.Fatalf("got %v, want ProbabilitySumViolation", fail)
	}
}

func TestValidateAcceptsSumInsideTolerance(t *testing.T) {
	// 101 is within the +/-2 tolerance.
	raw := `{"home":51,"draw":28,"away":22,"riskLevel":"MEDIUM","valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}`
	if _, fail := Validate(raw, soccerProfile(t)); fail != nil {
		t.Fatalf("unexpected rejection: %v", fail)
	}
}

func TestValidateRejectsOutOfBoundsOutcome(t *testing.T) {
	// home 8 is below soccer's win floor of 10.
	raw := `{"home":8,"draw":45,"away":47,"riskLevel":"HIGH","valueFlag":"NONE","bestValueSide":"none","narrative":"n","dataQuality":"d"}`
	_, fail := Validate(raw, soccerProfile(t))
	if fail == nil || fail.Rule != RuleProbabilityBound {
		t.Fatalf("got %v, want ProbabilityBoundViolation", fail)
	}
	if fail.Field != "home" {
		t.Errorf("field = %s, want home", fail.Field)
	}
}

func TestValidateRejectsHeavyFavoriteUpset(t *testing.T) {
	// Favorite at 88 with the ceiling at 10: underdog 12 is too live.
	raw := `{"home":88,"away":12,"riskLevel":"LOW","valueFlag":"HIGH","bestValueSide":"home","narrative":"n","dataQuality":"d"}`
	_, fail := Validate(raw, twoWayProfile())
	if fail == nil || fail.Rule != RuleUpsetBound {
		t.Fatalf("got %v, want UpsetBoundViolation", fail)
	}
}

func TestValidateRejectsCloseMatchUnderdogFloor(t *testing.T) {
	profile := twoWayProfile()
	profile.Terms.HasDraw = true
	profile.DrawBounds = sports.Bounds{Min: 0, Max: 60}
	// Spread 6 is inside the close band but the underdog sits below the
	// 30-point floor.
	raw := `{"home":33,"draw":40,"away":27,"riskLevel":"HIGH","valueFlag":"NONE","bestValueSide":"none","narrative":"n","dataQuality":"d"}`
	_, fail := Validate(raw, profile)
	if fail == nil || fail.Rule != RuleUpsetBound {
		t.Fatalf("got %v, want UpsetBoundViolation", fail)
	}
}

func TestValidateOverridesValueFlagInsteadOfRejecting(t *testing.T) {
	// Spread 12 maps to LOW on soccer's table; the model claims HIGH.
	raw := `{"home":44,"draw":24,"away":32,"riskLevel":"MEDIUM","valueFlag":"HIGH","bestValueSide":"away","narrative":"n","dataQuality":"d"}`
	res, fail := Validate(raw, soccerProfile(t))
	if fail != nil {
		t.Fatalf("unexpected rejection: %v", fail)
	}
	if res.ValueFlag != ValueLow {
		t.Errorf("valueFlag = %s, want corrected LOW", res.ValueFlag)
	}
	if res.BestValueSide != "home" {
		t.Errorf("bestValueSide = %s, want normalized to favorite home", res.BestValueSide)
	}
}

func TestValidateRecomputesRiskLevel(t *testing.T) {
	// Favorite at 72 is a heavy favorite on soccer's table: risk is LOW no
	// matter what the model claimed.
	raw := `{"home":72,"draw":12,"away":16,"riskLevel":"HIGH","valueFlag":"LOW","bestValueSide":"home","narrative":"n","dataQuality":"d"}`
	res, fail := Validate(raw, soccerProfile(t))
	if fail != nil {
		t.Fatalf("unexpected rejection: %v", fail)
	}
	if res.RiskLevel != RiskLow {
		t.Errorf("riskLevel = %s, want LOW", res.RiskLevel)
	}
	if res.ValueFlag != ValueHigh {
		t.Errorf("valueFlag = %s, want HIGH for spread 56", res.ValueFlag)
	}
}

// Re-validating an accepted result must be a no-op: it re-passes every check
// and all recomputed fields stay identical.
func TestValidateIdempotentOnAcceptedResult(t *testing.T) {
	profile := soccerProfile(t)
	raw := `{"home":55,"draw":25,"away":20,"riskLevel":"MEDIUM","valueFlag":"LOW","bestValueSide":"home","narrative":"solid","dataQuality":"good"}`
	first, fail := Validate(raw, profile)
	if fail != nil {
		t.Fatalf("unexpected rejection: %v", fail)
	}

	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal accepted result: %v", err)
	}
	second, fail := Validate(string(encoded), profile)
	if fail != nil {
		t.Fatalf("re-validation rejected an accepted result: %v", fail)
	}
	if second.ValueFlag != first.ValueFlag || second.RiskLevel != first.RiskLevel || second.BestValueSide != first.BestValueSide {
		t.Errorf("re-validation changed derived fields: %+v vs %+v", second, first)
	}
	for label, v := range first.OutcomeProbabilities {
		if second.OutcomeProbabilities[label] != v {
			t.Errorf("probability %s changed: %v vs %v", label, second.OutcomeProbabilities[label], v)
		}
	}
}
