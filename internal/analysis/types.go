package analysis

// RiskLevel grades how volatile the fixture is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ValueFlag grades the favorite/underdog probability differential against the
// sport's threshold table.
type ValueFlag string

const (
	ValueNone   ValueFlag = "NONE"
	ValueLow    ValueFlag = "LOW"
	ValueMedium ValueFlag = "MEDIUM"
	ValueHigh   ValueFlag = "HIGH"
)

// Result is the validated assessment returned to callers. Every derived
// field (riskLevel, valueFlag, bestValueSide) holds the validator's own
// recomputed value; the model's versions are advisory only.
type Result struct {
	OutcomeProbabilities map[string]float64 `json:"outcomeProbabilities"`
	RiskLevel            RiskLevel          `json:"riskLevel"`
	ValueFlag            ValueFlag          `json:"valueFlag"`
	BestValueSide        string             `json:"bestValueSide"`
	Narrative            string             `json:"narrative"`
	DataQuality          string             `json:"dataQuality"`
}

func validRiskLevel(v string) (RiskLevel, bool) {
	switch RiskLevel(v) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(v), true
	}
	return "", false
}

func validValueFlag(v string) (ValueFlag, bool) {
	switch ValueFlag(v) {
	case ValueNone, ValueLow, ValueMedium, ValueHigh:
		return ValueFlag(v), true
	}
	return "", false
}
