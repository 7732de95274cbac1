package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/civicwatch/dossier/internal/model"
)

// Analyzer is the pipeline seam the batch processor drives
type Analyzer interface {
	Analyze(ctx context.Context, doc model.Document) (*model.Report, error)
}

// AnalyzeJob analyzes one document file
type AnalyzeJob struct {
	Path       string
	SourceType model.SourceType
	Analyzer   Analyzer
}

// Execute loads the file and runs the pipeline on it. A per-document
// failure becomes an errored result; it never aborts the batch.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	doc, err := loadDocument(j.Path, j.SourceType)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}

	report, err := j.Analyzer.Analyze(ctx, doc)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}
	return &AnalyzeResult{Path: j.Path, Report: report}
}

// AnalyzeResult is the outcome of one document analysis
type AnalyzeResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many document files concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	sourceType  model.SourceType
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, sourceType model.SourceType, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		sourceType:  sourceType,
		concurrency: concurrency,
	}
}

// ProcessFiles analyzes the given document files concurrently. Results come
// back in completion order, not submission order. Cancelling ctx stops the
// batch between documents; in-flight analyses are not interrupted.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		pool.Submit(&AnalyzeJob{
			Path:       path,
			SourceType: b.sourceType,
			Analyzer:   b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}
	return analyzeResults
}

// ProcessList reads document paths from a list file (one per line, #
// comments allowed) and analyzes them
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	return b.ProcessFiles(ctx, paths), nil
}

// ProcessDir analyzes every .txt, .md, and .html file directly in dir
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*AnalyzeResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".txt", ".md", ".html":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return b.ProcessFiles(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a list file, deduplicated
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}

// loadDocument builds the pipeline input from a file on disk. The file's
// modification time stands in for a fetch timestamp.
func loadDocument(path string, sourceType model.SourceType) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read document: %w", err)
	}

	fetchedAt := time.Now().UTC()
	if info, err := os.Stat(path); err == nil {
		fetchedAt = info.ModTime().UTC()
	}

	if sourceType == "" {
		sourceType = model.SourceReport
	}

	return model.Document{
		Text:       string(data),
		SourceType: sourceType,
		SourceURL:  "file://" + path,
		FetchedAt:  fetchedAt,
	}, nil
}
