// Package validation provides the semantic checks a generated Brief must
// pass before it is rendered or stored: evidence grounding, link budget,
// score policy, and skill-status consistency. Structural checks live in
// the schemas package; this layer covers everything JSON Schema cannot
// express.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joshwakefield/jd-brief/internal/ledger"
	"github.com/joshwakefield/jd-brief/internal/types"
)

// urlPattern finds URLs anywhere in Brief text for the link budget check.
var urlPattern = regexp.MustCompile(`https?://[^\s"'<>)\]]+`)

// ValidateBrief runs all semantic rules against a structurally valid Brief.
// hardBlocker is the deterministic signal derived from the JD upstream, and
// expected holds the role/company the Brief must echo back.
// Returns the full violation list; no partial repair is attempted.
func ValidateBrief(brief *types.Brief, led *ledger.Ledger, policy types.Policy, hardBlocker bool, expected types.JDFields) *types.Violations {
	var violations []types.Violation

	violations = append(violations, checkEvidenceRefs(brief, led)...)
	violations = append(violations, checkLinks(brief, led)...)
	violations = append(violations, checkScorePolicy(brief, policy, hardBlocker)...)
	violations = append(violations, checkSkillStatus(brief, led)...)
	violations = append(violations, checkRiskPolicy(brief)...)
	violations = append(violations, checkJDEcho(brief, expected)...)

	return &types.Violations{Violations: violations}
}

// checkJDEcho verifies the Brief echoes the request's role and company.
// Empty expected fields are not checked; the generator substitutes its
// own placeholder for those.
func checkJDEcho(brief *types.Brief, expected types.JDFields) []types.Violation {
	var violations []types.Violation

	if expected.Role != "" && brief.JDFields.Role != expected.Role {
		violations = append(violations, types.Violation{
			Rule:    types.RuleJDFieldsMismatch,
			Field:   "jd_fields.role",
			Details: fmt.Sprintf("expected role %q, got %q", expected.Role, brief.JDFields.Role),
		})
	}
	if expected.Company != "" && brief.JDFields.Company != expected.Company {
		violations = append(violations, types.Violation{
			Rule:    types.RuleJDFieldsMismatch,
			Field:   "jd_fields.company",
			Details: fmt.Sprintf("expected company %q, got %q", expected.Company, brief.JDFields.Company),
		})
	}

	return violations
}

// checkEvidenceRefs verifies every cited evidence ID resolves to a ledger entry.
func checkEvidenceRefs(brief *types.Brief, led *ledger.Ledger) []types.Violation {
	var violations []types.Violation

	for i, bullet := range brief.SummaryBullets {
		for _, id := range bullet.EvidenceIDs {
			if _, ok := led.Evidence(id); !ok {
				violations = append(violations, types.Violation{
					Rule:    types.RuleEvidenceUnknown,
					Field:   fmt.Sprintf("summary_bullets[%d].evidence_ids", i),
					Details: fmt.Sprintf("evidence id %q not found in proof ledger", id),
				})
			}
		}
	}

	for i, outcome := range brief.OutcomesAlignment {
		if _, ok := led.Evidence(outcome.EvidenceID); !ok {
			violations = append(violations, types.Violation{
				Rule:    types.RuleEvidenceUnknown,
				Field:   fmt.Sprintf("outcomes_alignment[%d].evidence_id", i),
				Details: fmt.Sprintf("evidence id %q not found in proof ledger", outcome.EvidenceID),
			})
		}
	}

	return violations
}

// checkLinks enforces the link budget: at most types.LinkBudget URLs across
// the whole Brief, each byte-identical to a link on an evidence item the
// Brief actually cites. Ledger URLs from uncited items do not qualify.
func checkLinks(brief *types.Brief, led *ledger.Ledger) []types.Violation {
	var violations []types.Violation

	allowed := citedURLs(brief, led)

	// The URL regex can swallow sentence punctuation that directly follows
	// a link. Peel trailing punctuation one character at a time until the
	// URL matches a cited link, then dedup again on the resolved form.
	seen := make(map[string]bool)
	var urls []string
	for _, u := range collectURLs(brief) {
		for len(u) > 0 && !allowed[u] && strings.ContainsAny(u[len(u)-1:], ".,;:") {
			u = u[:len(u)-1]
		}
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	if len(urls) > types.LinkBudget {
		violations = append(violations, types.Violation{
			Rule:    types.RuleLinkBudget,
			Field:   "(brief)",
			Details: fmt.Sprintf("brief contains %d URLs, budget is %d", len(urls), types.LinkBudget),
		})
	}

	for _, u := range urls {
		if !allowed[u] {
			violations = append(violations, types.Violation{
				Rule:    types.RuleLinkNotInLedger,
				Field:   "(brief)",
				Details: fmt.Sprintf("URL %q does not appear on any cited proof ledger entry", u),
			})
		}
	}

	return violations
}

// citedURLs builds the allowed-URL set from the links of the evidence
// items the Brief cites in its bullets and outcomes.
func citedURLs(brief *types.Brief, led *ledger.Ledger) map[string]bool {
	ids := make(map[string]bool)
	for _, bullet := range brief.SummaryBullets {
		for _, id := range bullet.EvidenceIDs {
			ids[id] = true
		}
	}
	for _, outcome := range brief.OutcomesAlignment {
		ids[outcome.EvidenceID] = true
	}

	allowed := make(map[string]bool)
	for id := range ids {
		item, ok := led.Evidence(id)
		if !ok {
			continue
		}
		for _, link := range item.Links {
			allowed[link.URL] = true
		}
	}
	return allowed
}

// collectURLs extracts every URL from the Brief's free-text fields,
// deduplicated in first-seen order.
func collectURLs(brief *types.Brief) []string {
	var texts []string
	texts = append(texts, brief.Rationale, brief.CTA)
	for _, b := range brief.SummaryBullets {
		texts = append(texts, b.Text)
	}
	for _, s := range brief.SkillsMatrix {
		texts = append(texts, s.RampNote)
	}
	for _, o := range brief.OutcomesAlignment {
		texts = append(texts, o.JDOutcome, o.Metric)
	}
	texts = append(texts, brief.Ramp2W...)
	texts = append(texts, brief.Plan306090.Day30, brief.Plan306090.Day60, brief.Plan306090.Day90)
	for _, r := range brief.Risks {
		texts = append(texts, r.Risk, r.Mitigation)
	}

	seen := make(map[string]bool)
	var urls []string
	for _, text := range texts {
		for _, u := range urlPattern.FindAllString(text, -1) {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}
	return urls
}

// checkScorePolicy enforces the fit-score bounds and the hard-blocker cap.
// With a hard blocker present, the score must stay at or below the cap and
// the first bullet must read as a mitigation plan.
func checkScorePolicy(brief *types.Brief, policy types.Policy, hardBlocker bool) []types.Violation {
	var violations []types.Violation

	if brief.FitScore < policy.ScoreMin() || brief.FitScore > policy.ScoreMax() {
		violations = append(violations, types.Violation{
			Rule:    types.RuleScoreBounds,
			Field:   "fit_score",
			Details: fmt.Sprintf("fit_score %d outside bounds [%d,%d]", brief.FitScore, policy.ScoreMin(), policy.ScoreMax()),
		})
	}

	if !hardBlocker {
		return violations
	}

	if brief.FitScore > types.BlockerCap {
		violations = append(violations, types.Violation{
			Rule:    types.RuleBlockerCap,
			Field:   "fit_score",
			Details: fmt.Sprintf("JD carries a hard blocker: fit_score %d exceeds cap %d", brief.FitScore, types.BlockerCap),
		})
	}

	if len(brief.SummaryBullets) > 0 && !isMitigationBullet(brief.SummaryBullets[0].Text) {
		violations = append(violations, types.Violation{
			Rule:    types.RuleBlockerMitigationFirst,
			Field:   "summary_bullets[0]",
			Details: "JD carries a hard blocker: first bullet must be a mitigation plan",
		})
	}

	return violations
}

// mitigationMarkers are the words that distinguish a mitigation plan from
// a plain capability statement.
var mitigationMarkers = []string{
	"mitigat", "plan", "ramp", "address", "resolve", "close the gap",
	"workaround", "bridge", "obtain", "pursue", "timeline",
}

// isMitigationBullet is the heuristic for "reads as a mitigation plan":
// non-empty and carrying at least one mitigation marker.
func isMitigationBullet(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, marker := range mitigationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// checkSkillStatus rejects Proven claims for skills outside the Proven roster.
func checkSkillStatus(brief *types.Brief, led *ledger.Ledger) []types.Violation {
	var violations []types.Violation

	for i, entry := range brief.SkillsMatrix {
		if entry.Status == types.StatusProven && !led.IsProven(entry.Skill) {
			violations = append(violations, types.Violation{
				Rule:    types.RuleSkillNotProven,
				Field:   fmt.Sprintf("skills_matrix[%d].status", i),
				Details: fmt.Sprintf("skill %q claimed as Proven but is not in the Proven roster", entry.Skill),
			})
		}
	}

	return violations
}

// skillGapMarkers identify a risk entry as a technical skill gap.
var skillGapMarkers = []string{
	"skill", "gap", "experience with", "depth in", "hands-on", "learning curve", "no production",
}

// checkRiskPolicy enforces the risk rule: at least one risk must be a
// technical skill gap.
func checkRiskPolicy(brief *types.Brief) []types.Violation {
	for _, risk := range brief.Risks {
		lower := strings.ToLower(risk.Risk)
		for _, marker := range skillGapMarkers {
			if strings.Contains(lower, marker) {
				return nil
			}
		}
	}

	return []types.Violation{{
		Rule:    types.RuleRiskSkillGap,
		Field:   "risks",
		Details: "at least one risk must name a technical skill gap",
	}}
}
