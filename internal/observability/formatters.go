// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshwakefield/jd-brief/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBrief outputs a human-readable summary of a validated brief.
func (p *Printer) PrintBrief(brief *types.Brief) {
	if brief == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:   %s\n", brief.JDFields.Company))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", brief.JDFields.Role))
	sb.WriteString(fmt.Sprintf("Fit score: %d\n", brief.FitScore))
	sb.WriteString("\n")

	if len(brief.SummaryBullets) > 0 {
		sb.WriteString("Summary:\n")
		count := min(len(brief.SummaryBullets), maxItemsToShow)
		for i := 0; i < count; i++ {
			text := brief.SummaryBullets[i].Text
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
		if len(brief.SummaryBullets) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(brief.SummaryBullets)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(brief.SkillsMatrix) > 0 {
		proven, working, ramp := 0, 0, 0
		for _, entry := range brief.SkillsMatrix {
			switch entry.Status {
			case types.StatusProven:
				proven++
			case types.StatusWorking:
				working++
			case types.StatusRamp:
				ramp++
			}
		}
		sb.WriteString(fmt.Sprintf("Skills:    %d proven, %d working, %d ramp\n", proven, working, ramp))
	}

	if len(brief.Risks) > 0 {
		sb.WriteString(fmt.Sprintf("Risks:     %d named, each with mitigation\n", len(brief.Risks)))
	}

	p.printBox("GENERATED BRIEF", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillsMatrix outputs the full skill-by-skill readiness table.
func (p *Printer) PrintSkillsMatrix(brief *types.Brief) {
	if brief == nil || len(brief.SkillsMatrix) == 0 {
		return
	}

	var sb strings.Builder
	for i, entry := range brief.SkillsMatrix {
		skill := entry.Skill
		if len(skill) > 30 {
			skill = skill[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-32s %s", skill, entry.Status))
		if i < len(brief.SkillsMatrix)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILLS MATRIX", sb.String())
}

// PrintViolations outputs any contract violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations.Empty() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Rule, v.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTRACT VIOLATIONS", sb.String())
}
