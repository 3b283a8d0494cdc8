//nolint:revive // types is a standard Go package name pattern
package types

// ContextPack is the full candidate context handed to the generator:
// identity, skill roster, proof ledger, and phrasing policy.
// Loaded once at process start and treated as read-only afterwards.
type ContextPack struct {
	Identity      Identity       `json:"identity"`
	Profiles      Profiles       `json:"profiles"`
	Skills        SkillRoster    `json:"skills"`
	Domains       []string       `json:"domains"`
	Education     []string       `json:"education"`
	Goals90D      []string       `json:"goals_90d"`
	ProofLedger   []EvidenceItem `json:"proof_ledger"`
	Examples      []StyleExample `json:"examples"`
	PhrasingRules Policy         `json:"phrasing_rules"`
}

// Identity is the candidate's public identity block.
type Identity struct {
	Name     string            `json:"name"`
	Headline string            `json:"headline"`
	Links    map[string]string `json:"links"`
}

// Profiles holds personality and work-style context for tone calibration.
type Profiles struct {
	MBTI       string             `json:"mbti"`
	Big5       map[string]float64 `json:"big5"`
	WorkStyles []string           `json:"work_styles"`
}

// SkillRoster buckets skills by how defensibly they can be claimed.
// Proven skills are the preferred grounding for flattering claims.
type SkillRoster struct {
	Proven   []string `json:"proven"`
	Working  []string `json:"working"`
	Adjacent []string `json:"adjacent"`
}

// EvidenceItem is a single verifiable claim in the proof ledger.
// ID is the only stable reference other entities may use.
type EvidenceItem struct {
	ID        string            `json:"id"`
	Statement string            `json:"statement"`
	Metrics   map[string]string `json:"metrics,omitempty"`
	Tags      []string          `json:"tags"`
	Links     []EvidenceLink    `json:"links"`
}

// EvidenceLink is a labeled URL attached to an evidence item.
// URLs in a Brief must be copied verbatim from these.
type EvidenceLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// StyleExample is a few-shot hint pairing a JD flavor with a bullet style.
type StyleExample struct {
	JDHint      string `json:"jd_hint"`
	BulletStyle string `json:"bullet_style"`
	Tone        string `json:"tone"`
}

// Policy holds the scoring and risk rules the generator must respect.
type Policy struct {
	OptimismPrior int    `json:"optimism_prior"`
	ScoreBounds   [2]int `json:"score_bounds"`
	RiskRule      string `json:"risk_rule"`
}

// ScoreMin returns the lower fit-score bound.
func (p Policy) ScoreMin() int { return p.ScoreBounds[0] }

// ScoreMax returns the upper fit-score bound.
func (p Policy) ScoreMax() int { return p.ScoreBounds[1] }

// BlockerCap is the maximum fit score when the JD carries a hard blocker.
const BlockerCap = 70

// LinkBudget is the maximum number of URLs allowed across a whole Brief.
const LinkBudget = 3
