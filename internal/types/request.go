//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// JD admission bounds in characters, applied before any external call.
const (
	JDMinChars = 200
	JDMaxChars = 20000
)

// BriefRequest represents the POST /api/brief request body.
type BriefRequest struct {
	JDText   string `json:"jdText" validate:"required"`
	Role     string `json:"role,omitempty"`
	Company  string `json:"company,omitempty"`
	BotToken string `json:"botToken" validate:"required"`
}

// Validate validates the BriefRequest using the validator.
// JD length bounds are enforced separately by the generator so the
// size check stays in one place for both HTTP and CLI callers.
func (r *BriefRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerationRequest is the ephemeral, fully-assembled input for one
// generation call: scrubbed JD, optional role/company, the context pack
// snapshot, and the derived hard-blocker signal. Built fresh per call
// and never persisted.
type GenerationRequest struct {
	JDTextScrubbed string
	Role           string
	Company        string
	ContextPack    *ContextPack
	HardBlocker    bool
}
