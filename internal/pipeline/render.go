package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/civicwatch/dossier/internal/llm"
	"github.com/civicwatch/dossier/internal/model"
)

// Renderer writes a finished report to JSON, Markdown, and the terminal
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the canonical serialized report. The output
// deserializes back into an identical model.Report.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable rendering of the report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", report.Title)
	fmt.Fprintf(&sb, "- **Report ID**: %s\n", report.ID)
	fmt.Fprintf(&sb, "- **Jurisdiction**: %s (%s)\n", report.Jurisdiction.Location, report.Jurisdiction.Level)
	if report.Date != "" {
		fmt.Fprintf(&sb, "- **Date**: %s\n", report.Date)
	}
	if report.Author != "" {
		fmt.Fprintf(&sb, "- **Author**: %s\n", report.Author)
	}
	fmt.Fprintf(&sb, "- **Source**: %s (%s)\n\n", report.Evidence.Provenance.SourceURL, report.Evidence.Provenance.SourceType)

	risk := report.RiskAssessment
	fmt.Fprintf(&sb, "## Risk Assessment — %s (%d/100)\n\n", risk.Priority, risk.OverallScore)
	fmt.Fprintf(&sb, "| Sub-score | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Legal risk | %d |\n", risk.LegalRisk)
	fmt.Fprintf(&sb, "| Human rights impact | %d |\n", risk.HumanRightsImpact)
	fmt.Fprintf(&sb, "| Constitutional severity | %d |\n", risk.ConstitutionalSeverity)
	fmt.Fprintf(&sb, "| Corruption risk | %d |\n", risk.CorruptionRisk)
	fmt.Fprintf(&sb, "| Vulnerable-population harm | %d |\n\n", risk.VulnerableHarm)
	fmt.Fprintf(&sb, "%s\n\n", risk.Explanation)

	if len(report.CorruptionFindings) > 0 {
		sb.WriteString("## Corruption Findings\n\n")
		for _, f := range report.CorruptionFindings {
			fmt.Fprintf(&sb, "- **%s** (%s, seen %dx): %q\n", f.Type, f.Severity, f.OccurrenceCount, f.Evidence)
		}
		sb.WriteString("\n")
	}
	if len(report.ConstitutionViolations) > 0 {
		sb.WriteString("## Constitutional Violations\n\n")
		for _, v := range report.ConstitutionViolations {
			fmt.Fprintf(&sb, "- **%s** — %s (%s): %q\n", v.Section, v.Right, v.Severity, v.Evidence)
		}
		sb.WriteString("\n")
	}
	if len(report.HumanRightsBreaches) > 0 {
		sb.WriteString("## Human Rights Breaches\n\n")
		for _, b := range report.HumanRightsBreaches {
			fmt.Fprintf(&sb, "- **%s**, ground %s (%s); complaint deadline: %s\n", b.Legislation, b.Ground, b.Severity, b.ComplaintDeadline)
		}
		sb.WriteString("\n")
	}
	if len(report.UNCRPDBreaches) > 0 {
		sb.WriteString("## UNCRPD Breaches\n\n")
		for _, b := range report.UNCRPDBreaches {
			fmt.Fprintf(&sb, "- **%s** — %s (%s)\n", b.Article, b.Right, b.Severity)
		}
		sb.WriteString("\n")
	}
	if len(report.ImpactedGroups) > 0 {
		sb.WriteString("## Impacted Groups\n\n")
		for _, g := range report.ImpactedGroups {
			fmt.Fprintf(&sb, "- **%s** — %s\n", g.Group, g.HarmType)
		}
		sb.WriteString("\n")
	}
	if len(report.PatternsDetected) > 0 {
		sb.WriteString("## Patterns\n\n")
		for _, p := range report.PatternsDetected {
			fmt.Fprintf(&sb, "- %s (frequency %d)\n", p.Description, p.Frequency)
		}
		sb.WriteString("\n")
	}
	if len(report.Recommended) > 0 {
		sb.WriteString("## Recommended Actions\n\n")
		for i, a := range report.Recommended {
			fmt.Fprintf(&sb, "%d. **%s** [%s] — %s\n", i+1, a.ActionType, a.Priority, a.Description)
			for _, step := range a.NextSteps {
				fmt.Fprintf(&sb, "   - %s\n", step)
			}
		}
		sb.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&sb, "---\nGenerated by dossier v%s in %dms. Findings are lexical classifications of the source text, not legal conclusions.\n",
			report.Processing.Version, report.Processing.DurationMS)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen digest to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", report.Title)
	fmt.Printf("Priority: %s   Overall risk: %d/100\n", report.RiskAssessment.Priority, report.RiskAssessment.OverallScore)
	fmt.Printf("Findings: %d corruption, %d constitutional, %d human-rights, %d UNCRPD, %d impacted groups\n",
		len(report.CorruptionFindings), len(report.ConstitutionViolations),
		len(report.HumanRightsBreaches), len(report.UNCRPDBreaches), len(report.ImpactedGroups))
	fmt.Printf("Claims: %d   Patterns: %d   Recommended actions: %d\n",
		len(report.Evidence.Claims), len(report.PatternsDetected), len(report.Recommended))
}

// RenderReport writes the requested outputs for one report
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("Wrote Markdown: %s\n", mdPath)
		}
	}

	// The model-written brief goes to its own file, never into the report body
	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		briefPath := strings.TrimSuffix(mdPath, ".md") + ".brief.md"
		content := llm.RenderSeparateMarkdown(report.LLM)
		if err := os.WriteFile(briefPath, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write brief: %v\n", err)
		} else if verbose {
			fmt.Printf("Wrote brief: %s\n", briefPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
