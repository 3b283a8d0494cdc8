package generator

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/joshwakefield/jd-brief/internal/ledger"
	"github.com/joshwakefield/jd-brief/internal/llm"
	"github.com/joshwakefield/jd-brief/internal/schemas"
	"github.com/joshwakefield/jd-brief/internal/scrub"
	"github.com/joshwakefield/jd-brief/internal/types"
	"github.com/joshwakefield/jd-brief/internal/validation"
)

// Generator produces validated Briefs from raw JD text. The external
// model is treated as untrusted: nothing it returns moves downstream
// without passing both the structural and the semantic validators.
type Generator struct {
	client llm.Client
	ledger *ledger.Ledger
	system string
}

// New creates a Generator over an LLM client and the loaded ledger.
// The system instruction is rendered once; the policy inside it does not
// change over process lifetime.
func New(client llm.Client, led *ledger.Ledger) *Generator {
	return &Generator{
		client: client,
		ledger: led,
		system: BuildSystemInstruction(led.Pack().Identity.Name, led.Policy()),
	}
}

// Generate runs the full generate-then-verify sequence for one JD.
// Steps: admission check, scrub, blocker detection, model call, parse,
// structural validation, semantic validation. A parse failure is retried
// once; contract violations are surfaced with their rule list.
func (g *Generator) Generate(ctx context.Context, jdTextRaw, role, company string) (*types.Brief, error) {
	if len(jdTextRaw) < types.JDMinChars || len(jdTextRaw) > types.JDMaxChars {
		return nil, &InputSizeError{
			Length: len(jdTextRaw),
			Min:    types.JDMinChars,
			Max:    types.JDMaxChars,
		}
	}

	scrubbed := scrub.PII(jdTextRaw)

	req := &types.GenerationRequest{
		JDTextScrubbed: scrubbed,
		Role:           role,
		Company:        company,
		ContextPack:    g.ledger.Pack(),
		HardBlocker:    DetectHardBlocker(scrubbed),
	}

	prompt, err := BuildUserContent(req)
	if err != nil {
		return nil, &GenerationError{Message: "failed to build request", Cause: err}
	}

	brief, err := g.generateOnce(ctx, prompt)
	if err != nil {
		// One internal retry on malformed output only. Contract
		// violations are not retried here: the caller decides with the
		// rule list in hand.
		var malformed *MalformedOutputError
		if errors.As(err, &malformed) {
			log.Printf("[generator] malformed output, retrying once: %v", malformed)
			brief, err = g.generateOnce(ctx, prompt)
		}
		if err != nil {
			return nil, err
		}
	}

	violations := validation.ValidateBrief(brief, g.ledger, g.ledger.Policy(), req.HardBlocker, types.JDFields{
		Role:    req.Role,
		Company: req.Company,
	})
	if !violations.Empty() {
		log.Printf("[generator] brief rejected, rules violated: %v", violations.Rules())
		return nil, &SchemaViolationError{Violations: violations}
	}

	return brief, nil
}

// generateOnce performs a single model call and structural validation pass.
func (g *Generator) generateOnce(ctx context.Context, prompt string) (*types.Brief, error) {
	raw, err := g.client.GenerateJSON(ctx, g.system, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &GenerationError{Message: "model call failed", Cause: err}
	}

	if err := schemas.ValidateBriefJSON(raw); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			violations := &types.Violations{}
			for _, fe := range ve.Errors {
				violations.Violations = append(violations.Violations, types.Violation{
					Rule:    "schema",
					Field:   fe.Field,
					Details: fe.Message,
				})
			}
			return nil, &SchemaViolationError{Violations: violations}
		}
		// Not valid JSON at all
		return nil, &MalformedOutputError{Cause: err}
	}

	var brief types.Brief
	if err := json.Unmarshal([]byte(raw), &brief); err != nil {
		return nil, &MalformedOutputError{Cause: err}
	}

	return &brief, nil
}
