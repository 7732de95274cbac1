package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// Briefer drives brief generation for a finished report
type Briefer struct {
	provider Provider
	config   Config
}

// NewBriefer creates a briefer, or returns an error for an unknown provider.
// An empty provider name yields a disabled briefer.
func NewBriefer(config Config) (*Briefer, error) {
	switch strings.ToLower(config.Provider) {
	case "":
		return &Briefer{config: config}, nil
	case "openai":
		p, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		return &Briefer{provider: p, config: config}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// IsEnabled reports whether a provider is configured
func (b *Briefer) IsEnabled() bool {
	return b != nil && b.provider != nil
}

// Generate produces the narrative brief for a report. The returned value is
// attached to the report verbatim; it never feeds back into the analysis.
func (b *Briefer) Generate(ctx context.Context, report model.Report) (*model.LLMBrief, error) {
	if !b.IsEnabled() {
		return nil, nil
	}

	snippets := evidenceSnippets(report)
	resp, err := b.provider.Brief(ctx, BriefRequest{
		Report:           report,
		EvidenceSnippets: snippets,
		MaxTokens:        b.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &model.LLMBrief{
		Enabled:  true,
		Provider: b.provider.Name(),
		Model:    resp.Model,
		BriefMD:  resp.BriefMD,
		Warnings: checkLeaks(resp.BriefMD, report),
	}, nil
}

// BuildPrompt composes the generation prompt with the evidence allowlist
func BuildPrompt(report model.Report, snippets []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Write a short markdown brief of this investigative report.\n\n")
	fmt.Fprintf(&sb, "Title: %s\nJurisdiction: %s (%s)\nPriority: %s\nOverall risk score: %d/100\n",
		report.Title, report.Jurisdiction.Location, report.Jurisdiction.Level,
		report.RiskAssessment.Priority, report.RiskAssessment.OverallScore)
	fmt.Fprintf(&sb, "Findings: %d corruption, %d constitutional, %d human-rights, %d UNCRPD, %d impacted groups\n\n",
		len(report.CorruptionFindings), len(report.ConstitutionViolations),
		len(report.HumanRightsBreaches), len(report.UNCRPDBreaches), len(report.ImpactedGroups))

	sb.WriteString("You may only quote from these evidence snippets:\n")
	for i, s := range snippets {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, s)
	}
	sb.WriteString("\nDo not reference any URL, person, or organization not present above or in the header.\n")

	return sb.String()
}

// evidenceSnippets collects every finding's evidence text as the allowlist
func evidenceSnippets(report model.Report) []string {
	var snippets []string
	for _, f := range report.CorruptionFindings {
		snippets = append(snippets, f.Evidence)
	}
	for _, v := range report.ConstitutionViolations {
		snippets = append(snippets, v.Evidence)
	}
	for _, b := range report.HumanRightsBreaches {
		snippets = append(snippets, b.Evidence)
	}
	for _, b := range report.UNCRPDBreaches {
		snippets = append(snippets, b.Evidence)
	}
	for _, g := range report.ImpactedGroups {
		snippets = append(snippets, g.Evidence)
	}
	return snippets
}

// checkLeaks flags URLs in the brief that the report never cited
func checkLeaks(brief string, report model.Report) []string {
	var warnings []string

	allowed := make(map[string]bool)
	allowed[report.Evidence.Provenance.SourceURL] = true
	for _, rec := range report.Evidence.Corroboration {
		for _, src := range rec.Sources {
			allowed[src.URL] = true
		}
	}

	for _, word := range strings.Fields(brief) {
		word = strings.Trim(word, "()[]<>.,;")
		if strings.HasPrefix(word, "http://") || strings.HasPrefix(word, "https://") {
			if !allowed[word] {
				warnings = append(warnings, fmt.Sprintf("brief cites URL outside the report: %s", word))
			}
		}
	}

	return warnings
}

// RenderSeparateMarkdown renders the brief as its own document, clearly
// fenced off from the deterministic report
func RenderSeparateMarkdown(brief *model.LLMBrief) string {
	var sb strings.Builder
	sb.WriteString("# Narrative Brief (model-generated)\n\n")
	fmt.Fprintf(&sb, "Generated by %s/%s. This text is commentary only and has no effect on findings, scores, or recommended actions.\n\n",
		brief.Provider, brief.Model)
	sb.WriteString(brief.BriefMD)
	if len(brief.Warnings) > 0 {
		sb.WriteString("\n\n## Warnings\n")
		for _, w := range brief.Warnings {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
	}
	return sb.String()
}
