package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/civicwatch/dossier/internal/model"
	"github.com/civicwatch/dossier/internal/pipeline"
	"github.com/civicwatch/dossier/internal/worker"
)

var (
	batchOutDir      string
	batchConcurrency int
	batchSourceType  string
	batchTimeout     time.Duration
	batchCorroborate string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file-or-dir>",
	Short: "Analyze many documents concurrently",
	Long: `Batch analyzes every document in a directory, or every path listed in a
file (one per line, # comments allowed). Documents are processed
independently: a failure in one never aborts the rest, and no ordering is
guaranteed.

Example:
  dossier batch ./articles --out ./reports
  dossier batch documents.txt --concurrency 8 --source-type foi`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutDir, "out", "reports", "directory for per-document JSON reports")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of concurrent analyses")
	batchCmd.Flags().StringVar(&batchSourceType, "source-type", "report", "source type applied to every document")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "overall batch timeout")
	batchCmd.Flags().StringVar(&batchCorroborate, "corroborate", "lexical", "corroboration mode (lexical, registry)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	target := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Corroboration.Mode = batchCorroborate
	cfg.Output.Verbose = verbose
	cfg.Concurrency.BatchWorkers = batchConcurrency

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, model.SourceType(batchSourceType), batchConcurrency)

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	var results []*worker.AnalyzeResult
	if info.IsDir() {
		results, err = processor.ProcessDir(ctx, target)
	} else {
		results, err = processor.ProcessList(ctx, target)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	succeeded, failed := 0, 0
	used := make(map[string]int)
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", result.Path, result.Error)
			continue
		}
		succeeded++

		outPath := filepath.Join(batchOutDir, reportName(used, result.Path))
		if err := renderer.RenderJSON(result.Report, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: write %s: %v\n", outPath, err)
			continue
		}
		if verbose {
			fmt.Printf("%s -> %s (%s, %d/100)\n", result.Path, outPath,
				result.Report.RiskAssessment.Priority, result.Report.RiskAssessment.OverallScore)
		}
	}

	fmt.Printf("Analyzed %d documents: %d succeeded, %d failed\n", len(results), succeeded, failed)
	return nil
}

// reportName returns the output file name for a document, derived from its
// basename. Documents from different directories can share a basename, so
// repeats get a numeric suffix instead of overwriting an earlier report.
func reportName(used map[string]int, path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	used[name]++
	if n := used[name]; n > 1 {
		name = fmt.Sprintf("%s-%d", name, n)
	}
	return name + ".report.json"
}
