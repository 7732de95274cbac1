package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/civicwatch/dossier/internal/model"
	"github.com/civicwatch/dossier/internal/pipeline"
)

var (
	outJSON      string
	outMD        string
	sourceType   string
	sourceURL    string
	timeout      time.Duration
	corroborate  string
	noCache      bool
	noFooter     bool
	briefEnabled bool
	briefModel   string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single document and generate an intelligence report",
	Long: `Analyze reads one document file (plain text, markdown, or HTML) and:
- Extracts entities, relationships, and typed claims
- Corroborates claims through the configured corroboration port
- Classifies corruption indicators, Charter violations, human-rights
  breaches, UNCRPD breaches, and vulnerable-population impact
- Computes a transparent weighted risk score with a priority tier
- Generates a prioritized list of recommended follow-up actions

Example:
  dossier analyze article.txt
  dossier analyze leak.html --source-type leak --json report.json --md report.md
  dossier analyze article.txt --corroborate registry --timeout 2m`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	analyzeCmd.Flags().StringVar(&sourceType, "source-type", "news", "document source type (news, foi, report, social, official, leak)")
	analyzeCmd.Flags().StringVar(&sourceURL, "source-url", "", "origin URL of the document, if known")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&corroborate, "corroborate", "lexical", "corroboration mode (lexical, registry)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the corroboration cache")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	analyzeCmd.Flags().BoolVar(&briefEnabled, "brief", false, "generate an LLM narrative brief (requires OPENAI_API_KEY)")
	analyzeCmd.Flags().StringVar(&briefModel, "brief-model", "gpt-4o-mini", "model for the narrative brief")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.Corroboration.Mode = corroborate
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if briefEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = briefModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	doc := model.Document{
		Text:       string(data),
		SourceType: model.SourceType(sourceType),
		SourceURL:  sourceURL,
		FetchedAt:  time.Now().UTC(),
	}
	if doc.SourceURL == "" {
		doc.SourceURL = "file://" + path
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Corroboration: %s\n\n", corroborate)
	}

	report, err := p.Analyze(ctx, doc)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracted %d claims, %d actors\n",
			len(report.Evidence.Claims), len(report.ActorsInvolved))
		fmt.Fprintf(os.Stderr, "Overall risk: %d/100 (%s)\n\n",
			report.RiskAssessment.OverallScore, report.RiskAssessment.Priority)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
