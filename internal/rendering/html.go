package rendering

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/joshwakefield/jd-brief/internal/types"
)

// briefTemplate is the one-page layout. Every Brief field appears somewhere
// in the rendered document; html/template handles escaping.
const briefTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Brief for {{.JDFields.Role}} at {{.JDFields.Company}}</title>
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; font-size: 10pt; color: #1a1a1a; margin: 0; }
  h1 { font-size: 16pt; margin: 0 0 2px; }
  h2 { font-size: 11pt; border-bottom: 1px solid #ccc; margin: 14px 0 6px; padding-bottom: 2px; }
  .score { font-size: 13pt; font-weight: bold; }
  .rationale { color: #444; margin: 2px 0 0; }
  ul { margin: 4px 0; padding-left: 18px; }
  li { margin-bottom: 3px; }
  table { border-collapse: collapse; width: 100%; }
  td, th { text-align: left; padding: 2px 8px 2px 0; vertical-align: top; }
  .status { font-weight: bold; }
  .cta { margin-top: 14px; font-style: italic; }
  .evidence { color: #888; font-size: 8pt; }
</style>
</head>
<body>
<h1>Brief for {{.JDFields.Role}} at {{.JDFields.Company}}</h1>
<p><span class="score">Fit Score: {{.FitScore}}</span></p>
<p class="rationale">{{.Rationale}}</p>

<h2>Executive Summary</h2>
<ul>
{{range .SummaryBullets}}  <li>{{.Text}}{{if .EvidenceIDs}} <span class="evidence">[{{join .EvidenceIDs ", "}}]</span>{{end}}</li>
{{end}}</ul>

<h2>Skills Matrix</h2>
<table>
<tr><th>Skill</th><th>Status</th><th>Ramp Note</th></tr>
{{range .SkillsMatrix}}<tr><td>{{.Skill}}</td><td class="status">{{.Status}}</td><td>{{.RampNote}}</td></tr>
{{end}}</table>

<h2>Outcomes Alignment</h2>
<ul>
{{range .OutcomesAlignment}}  <li>{{.JDOutcome}}{{if .Metric}} — {{.Metric}}{{end}} <span class="evidence">[{{.EvidenceID}}]</span></li>
{{end}}</ul>

<h2>Two-Week Ramp</h2>
<ul>
{{range .Ramp2W}}  <li>{{.}}</li>
{{end}}</ul>

<h2>30 / 60 / 90 Plan</h2>
<table>
<tr><th>30</th><td>{{.Plan306090.Day30}}</td></tr>
<tr><th>60</th><td>{{.Plan306090.Day60}}</td></tr>
<tr><th>90</th><td>{{.Plan306090.Day90}}</td></tr>
</table>

<h2>Risks &amp; Mitigations</h2>
<ul>
{{range .Risks}}  <li><strong>{{.Risk}}</strong> — {{.Mitigation}}</li>
{{end}}</ul>

<p class="cta">{{.CTA}}</p>
</body>
</html>
`

var briefTmpl = template.Must(template.New("brief").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(briefTemplate))

// ComposeHTML renders a validated Brief into the one-page HTML document.
func ComposeHTML(brief *types.Brief) (string, error) {
	var buf bytes.Buffer
	if err := briefTmpl.Execute(&buf, brief); err != nil {
		return "", &Error{Message: "failed to execute brief template", Cause: err}
	}
	return buf.String(), nil
}
