// Package types provides type definitions for structured data used throughout the brief generation system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillStatus is the claimed readiness level for a skill in the matrix.
type SkillStatus string

// Skill status values the generator is allowed to emit.
const (
	StatusProven  SkillStatus = "Proven"
	StatusWorking SkillStatus = "Working"
	StatusRamp    SkillStatus = "Ramp-in-2-weeks"
)

// Brief is the structured, schema-validated one-pager the generator must produce.
// It is constructed once per request, validated, and never mutated afterwards.
type Brief struct {
	FitScore          int                `json:"fit_score"`
	Rationale         string             `json:"rationale"`
	SummaryBullets    []SummaryBullet    `json:"summary_bullets"`
	SkillsMatrix      []SkillMatrixEntry `json:"skills_matrix"`
	OutcomesAlignment []OutcomeAlignment `json:"outcomes_alignment"`
	Ramp2W            []string           `json:"ramp_2w"`
	Plan306090        Plan306090         `json:"plan_30_60_90"`
	Risks             []Risk             `json:"risks"`
	CTA               string             `json:"cta"`
	JDFields          JDFields           `json:"jd_fields"`
}

// SummaryBullet is a single executive-summary bullet grounded in evidence.
type SummaryBullet struct {
	Text        string   `json:"text"`
	EvidenceIDs []string `json:"evidence_ids"`
}

// SkillMatrixEntry maps a JD skill to a claimed readiness status.
// Non-Proven entries should carry a ramp note.
type SkillMatrixEntry struct {
	Skill    string      `json:"skill"`
	Status   SkillStatus `json:"status"`
	RampNote string      `json:"ramp_note,omitempty"`
}

// OutcomeAlignment ties a JD outcome to a proof-ledger entry.
type OutcomeAlignment struct {
	JDOutcome  string `json:"jd_outcome"`
	EvidenceID string `json:"evidence_id"`
	Metric     string `json:"metric,omitempty"`
}

// Plan306090 is the 30/60/90-day plan, one field per milestone.
type Plan306090 struct {
	Day30 string `json:"30"`
	Day60 string `json:"60"`
	Day90 string `json:"90"`
}

// Risk is a real, solvable risk paired with a concrete mitigation.
type Risk struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

// JDFields echoes the role and company from the request.
type JDFields struct {
	Role    string `json:"role"`
	Company string `json:"company"`
}
