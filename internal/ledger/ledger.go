// Package ledger loads the candidate context pack and exposes it as an
// immutable, process-wide snapshot with evidence and skill lookups.
// The pack is embedded at compile time and parsed exactly once.
package ledger

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/joshwakefield/jd-brief/internal/types"
)

//go:embed context_pack.json
var contextPackJSON []byte

var (
	loadOnce sync.Once
	loaded   *Ledger
	loadErr  error
)

// Ledger wraps the context pack with lookup indexes built at load time.
// All fields are read-only after Load returns; concurrent use is safe
// without locking.
type Ledger struct {
	pack       *types.ContextPack
	evidence   map[string]*types.EvidenceItem
	ledgerURLs map[string]bool
	proven     map[string]bool
}

// Load returns the process-wide ledger, parsing the embedded context
// pack on first call. Subsequent calls return the same snapshot.
func Load() (*Ledger, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(contextPackJSON)
	})
	return loaded, loadErr
}

// parse builds a Ledger from raw context-pack JSON.
func parse(data []byte) (*Ledger, error) {
	var pack types.ContextPack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse context pack: %w", err)
	}

	l := &Ledger{
		pack:       &pack,
		evidence:   make(map[string]*types.EvidenceItem, len(pack.ProofLedger)),
		ledgerURLs: make(map[string]bool),
		proven:     make(map[string]bool, len(pack.Skills.Proven)),
	}

	for i := range pack.ProofLedger {
		item := &pack.ProofLedger[i]
		if item.ID == "" {
			return nil, fmt.Errorf("context pack: proof_ledger[%d] has empty id", i)
		}
		if _, exists := l.evidence[item.ID]; exists {
			return nil, fmt.Errorf("context pack: duplicate evidence id %q", item.ID)
		}
		l.evidence[item.ID] = item
		for _, link := range item.Links {
			l.ledgerURLs[link.URL] = true
		}
	}

	for _, skill := range pack.Skills.Proven {
		l.proven[normalizeSkill(skill)] = true
	}

	return l, nil
}

// Pack returns the underlying context pack snapshot.
func (l *Ledger) Pack() *types.ContextPack {
	return l.pack
}

// Policy returns the phrasing policy from the pack.
func (l *Ledger) Policy() types.Policy {
	return l.pack.PhrasingRules
}

// Evidence resolves an evidence ID to its ledger entry.
func (l *Ledger) Evidence(id string) (*types.EvidenceItem, bool) {
	item, ok := l.evidence[id]
	return item, ok
}

// HasURL reports whether url appears verbatim in any evidence item's links.
func (l *Ledger) HasURL(url string) bool {
	return l.ledgerURLs[url]
}

// IsProven reports whether a skill is in the Proven roster.
// Matching is case-insensitive on the trimmed name.
func (l *Ledger) IsProven(skill string) bool {
	return l.proven[normalizeSkill(skill)]
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
