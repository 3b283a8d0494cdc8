//nolint:revive // types is a standard Go package name pattern
package types

// Rule identifiers for semantic Brief validation failures.
// Callers and logs key off these, so they are stable API.
const (
	RuleEvidenceUnknown        = "evidence_unknown"
	RuleLinkBudget             = "link_budget"
	RuleLinkNotInLedger        = "link_not_in_ledger"
	RuleScoreBounds            = "score_bounds"
	RuleBlockerCap             = "blocker_cap"
	RuleBlockerMitigationFirst = "blocker_mitigation_first"
	RuleSkillNotProven         = "skill_not_proven"
	RuleRiskSkillGap           = "risk_skill_gap"
	RuleJDFieldsMismatch       = "jd_fields_mismatch"
)

// Violation represents a single validation failure.
type Violation struct {
	Rule    string `json:"rule"`
	Field   string `json:"field"`
	Details string `json:"details"`
}

// Violations represents a collection of validation failures.
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Empty reports whether no violations were recorded.
func (v *Violations) Empty() bool {
	return v == nil || len(v.Violations) == 0
}

// Rules returns the violated rule identifiers in order.
func (v *Violations) Rules() []string {
	if v == nil {
		return nil
	}
	rules := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		rules = append(rules, violation.Rule)
	}
	return rules
}
