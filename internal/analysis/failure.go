package analysis

import "fmt"

// Rule names for validation failures. Callers branch on these to tell "the
// model answered but inconsistently" apart from transport errors.
const (
	RuleMalformedResponse = "MalformedResponse"
	RuleSchemaViolation   = "SchemaViolation"
	RuleProbabilitySum    = "ProbabilitySumViolation"
	RuleProbabilityBound  = "ProbabilityBoundViolation"
	RuleUpsetBound        = "UpsetBoundViolation"
)

// Failure is a tagged domain rejection: the violated rule plus the observed
// values. It is a normal return value, never a panic.
type Failure struct {
	Rule   string `json:"rule"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail"`
}

func (f *Failure) Error() string {
	if f.Field != "" {
		return fmt.Sprintf("analysis: %s (%s): %s", f.Rule, f.Field, f.Detail)
	}
	return fmt.Sprintf("analysis: %s: %s", f.Rule, f.Detail)
}

func malformed(detail string) *Failure {
	return &Failure{Rule: RuleMalformedResponse, Detail: detail}
}

func schemaViolation(field, detail string) *Failure {
	return &Failure{Rule: RuleSchemaViolation, Field: field, Detail: detail}
}
