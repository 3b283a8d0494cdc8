package generator

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joshwakefield/jd-brief/internal/prompts"
	"github.com/joshwakefield/jd-brief/internal/schemas"
	"github.com/joshwakefield/jd-brief/internal/types"
)

// notSpecified is substituted for missing role/company so the model never
// sees an empty field.
const notSpecified = "Not specified"

// userContent is the JSON payload sent as the model prompt: the scrubbed
// JD plus the full context pack snapshot.
type userContent struct {
	JDText      string             `json:"jd_text"`
	Role        string             `json:"role"`
	Company     string             `json:"company"`
	ContextPack *types.ContextPack `json:"context_pack"`
}

// BuildSystemInstruction renders the generation contract for a policy:
// grounding rules, score bounds, blocker cap, link budget, and the Brief
// JSON Schema the output must match.
func BuildSystemInstruction(name string, policy types.Policy) string {
	template := prompts.MustGet("brief.json", "system_instruction")
	return prompts.Format(template, map[string]string{
		"Name":          name,
		"OptimismPrior": strconv.Itoa(policy.OptimismPrior),
		"ScoreMin":      strconv.Itoa(policy.ScoreMin()),
		"ScoreMax":      strconv.Itoa(policy.ScoreMax()),
		"BlockerCap":    strconv.Itoa(types.BlockerCap),
		"LinkBudget":    strconv.Itoa(types.LinkBudget),
		"Schema":        schemas.BriefSchemaJSON(),
	})
}

// BuildUserContent marshals the generation request into the prompt payload.
func BuildUserContent(req *types.GenerationRequest) (string, error) {
	content := userContent{
		JDText:      req.JDTextScrubbed,
		Role:        req.Role,
		Company:     req.Company,
		ContextPack: req.ContextPack,
	}
	if content.Role == "" {
		content.Role = notSpecified
	}
	if content.Company == "" {
		content.Company = notSpecified
	}

	data, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}
	return string(data), nil
}
