package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshwakefield/jd-brief/internal/ledger"
	"github.com/joshwakefield/jd-brief/internal/types"
)

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.Load()
	require.NoError(t, err)
	return l
}

func testPolicy(t *testing.T) types.Policy {
	t.Helper()
	return testLedger(t).Policy()
}

// testBrief returns a Brief that passes every semantic rule against the
// embedded context pack.
func testBrief() *types.Brief {
	bullets := make([]types.SummaryBullet, 6)
	for i := range bullets {
		bullets[i] = types.SummaryBullet{
			Text:        "Cut MTTR by half with triage playbooks and crisp RCAs.",
			EvidenceIDs: []string{"result-mttr-50"},
		}
	}

	skills := make([]types.SkillMatrixEntry, 8)
	for i := range skills {
		skills[i] = types.SkillMatrixEntry{Skill: "Wireshark", Status: types.StatusProven}
	}
	skills[7] = types.SkillMatrixEntry{
		Skill:    "Terraform",
		Status:   types.StatusWorking,
		RampNote: "Pair on modules during week one.",
	}

	return &types.Brief{
		FitScore:       78,
		Rationale:      "Strong support and network debugging background.",
		SummaryBullets: bullets,
		SkillsMatrix:   skills,
		OutcomesAlignment: []types.OutcomeAlignment{
			{JDOutcome: "reduce MTTR", EvidenceID: "result-mttr-50", Metric: "-50%"},
			{JDOutcome: "clean RCAs", EvidenceID: "style-calm-comms"},
		},
		Ramp2W: []string{"shadow on-call", "read runbooks", "set up dashboards"},
		Plan306090: types.Plan306090{
			Day30: "Learn the stack.",
			Day60: "Own incidents end to end.",
			Day90: "Lead the RCA cadence.",
		},
		Risks: []types.Risk{
			{Risk: "Skill gap in Terraform", Mitigation: "Pair on modules in week one."},
			{Risk: "New incident tooling", Mitigation: "Shadow senior engineers."},
		},
		CTA:      "Let's talk about your on-call pain.",
		JDFields: types.JDFields{Role: "SRE", Company: "Acme"},
	}
}

func TestValidateBrief_ValidPasses(t *testing.T) {
	v := ValidateBrief(testBrief(), testLedger(t), testPolicy(t), false, types.JDFields{Role: "SRE", Company: "Acme"})
	assert.True(t, v.Empty(), "unexpected violations: %v", v.Violations)
}

func TestValidateBrief_UnknownEvidenceID(t *testing.T) {
	brief := testBrief()
	brief.SummaryBullets[2].EvidenceIDs = []string{"evidence-404"}

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	require.False(t, v.Empty())
	assert.Contains(t, v.Rules(), types.RuleEvidenceUnknown)
	assert.Contains(t, v.Violations[0].Field, "summary_bullets[2]")
}

func TestValidateBrief_UnknownEvidenceInOutcomes(t *testing.T) {
	brief := testBrief()
	brief.OutcomesAlignment[1].EvidenceID = "evidence-404"

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.Contains(t, v.Rules(), types.RuleEvidenceUnknown)
}

func TestValidateBrief_LinkBudgetExceeded(t *testing.T) {
	brief := testBrief()
	// Four distinct URLs across the brief, all ledger-known URLs would
	// still bust the budget of three.
	brief.SummaryBullets[0].Text = "See https://linkedin.com/... and https://github.com/..."
	brief.Rationale = "Also https://a.example.com/1 plus https://b.example.com/2"

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.Contains(t, v.Rules(), types.RuleLinkBudget)
}

func TestValidateBrief_CitedLedgerLinksPass(t *testing.T) {
	brief := testBrief()
	brief.SummaryBullets[0].Text = "Proof: https://linkedin.com/..."
	brief.SummaryBullets[1].Text = "Code: https://github.com/..."
	brief.SummaryBullets[1].EvidenceIDs = []string{"proj-ocr-pipeline"}
	// Duplicate URLs count once against the budget.
	brief.CTA = "More at https://github.com/..."

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.True(t, v.Empty(), "unexpected violations: %v", v.Violations)
}

func TestValidateBrief_UncitedLedgerURLRejected(t *testing.T) {
	// The github URL is real ledger material, but it belongs to
	// proj-ocr-pipeline and this brief never cites that item.
	brief := testBrief()
	brief.SummaryBullets[0].Text = "Code: https://github.com/..."

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.Contains(t, v.Rules(), types.RuleLinkNotInLedger)
}

func TestValidateBrief_SynthesizedURLRejected(t *testing.T) {
	brief := testBrief()
	brief.SummaryBullets[0].Text = "Proof at https://totally-invented.example.com/proof"

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.Contains(t, v.Rules(), types.RuleLinkNotInLedger)
}

func TestValidateBrief_TrailingPunctuationIgnored(t *testing.T) {
	brief := testBrief()
	brief.SummaryBullets[0].Text = "Details at https://linkedin.com/..., with write-up."

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.True(t, v.Empty(), "unexpected violations: %v", v.Violations)
}

func TestValidateBrief_ScoreBounds(t *testing.T) {
	for _, score := range []int{54, 97} {
		brief := testBrief()
		brief.FitScore = score

		v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
		assert.Contains(t, v.Rules(), types.RuleScoreBounds, "score %d", score)
	}
}

func TestValidateBrief_HardBlockerCap(t *testing.T) {
	brief := testBrief()
	brief.FitScore = 85
	brief.SummaryBullets[0].Text = "Mitigation plan: pursue interim clearance sponsorship with a clear timeline."

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), true, types.JDFields{})
	assert.Contains(t, v.Rules(), types.RuleBlockerCap)
	assert.NotContains(t, v.Rules(), types.RuleBlockerMitigationFirst)
}

func TestValidateBrief_HardBlockerMitigationFirst(t *testing.T) {
	brief := testBrief()
	brief.FitScore = 68
	brief.SummaryBullets[0].Text = "Deep Wireshark expertise across enterprise networks."

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), true, types.JDFields{})
	assert.Contains(t, v.Rules(), types.RuleBlockerMitigationFirst)
}

func TestValidateBrief_HardBlockerSatisfied(t *testing.T) {
	brief := testBrief()
	brief.FitScore = 66
	brief.SummaryBullets[0].Text = "Mitigation plan: ramp on clearance paperwork immediately, shifted hours to cover the timezone."

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), true, types.JDFields{Role: "SRE", Company: "Acme"})
	assert.True(t, v.Empty(), "unexpected violations: %v", v.Violations)
}

func TestValidateBrief_NoBlockerSkipsCap(t *testing.T) {
	brief := testBrief()
	brief.FitScore = 90

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.NotContains(t, v.Rules(), types.RuleBlockerCap)
}

func TestValidateBrief_SkillNotProven(t *testing.T) {
	brief := testBrief()
	brief.SkillsMatrix[3] = types.SkillMatrixEntry{Skill: "Kubernetes", Status: types.StatusProven}

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	require.Contains(t, v.Rules(), types.RuleSkillNotProven)

	for _, violation := range v.Violations {
		if violation.Rule == types.RuleSkillNotProven {
			assert.Contains(t, violation.Field, "skills_matrix[3]")
		}
	}
}

func TestValidateBrief_WorkingStatusNeedsNoRoster(t *testing.T) {
	brief := testBrief()
	brief.SkillsMatrix[3] = types.SkillMatrixEntry{
		Skill: "COBOL", Status: types.StatusRamp, RampNote: "Two-week primer planned.",
	}

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.NotContains(t, v.Rules(), types.RuleSkillNotProven)
}

func TestValidateBrief_RiskSkillGapRequired(t *testing.T) {
	brief := testBrief()
	brief.Risks = []types.Risk{
		{Risk: "Relocation logistics", Mitigation: "Plan the move early."},
		{Risk: "Team is distributed", Mitigation: "Overlap hours with the core team."},
	}

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	assert.Contains(t, v.Rules(), types.RuleRiskSkillGap)
}

func TestValidateBrief_JDEchoMismatch(t *testing.T) {
	brief := testBrief()
	brief.JDFields.Company = "SomeoneElse"

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{Role: "SRE", Company: "Acme"})
	assert.Contains(t, v.Rules(), types.RuleJDFieldsMismatch)
}

func TestValidateBrief_CollectsAllViolations(t *testing.T) {
	brief := testBrief()
	brief.FitScore = 97
	brief.SummaryBullets[0].EvidenceIDs = []string{"evidence-404"}
	brief.SkillsMatrix[0] = types.SkillMatrixEntry{Skill: "COBOL", Status: types.StatusProven}

	v := ValidateBrief(brief, testLedger(t), testPolicy(t), false, types.JDFields{})
	rules := v.Rules()
	assert.Contains(t, rules, types.RuleScoreBounds)
	assert.Contains(t, rules, types.RuleEvidenceUnknown)
	assert.Contains(t, rules, types.RuleSkillNotProven)
}
