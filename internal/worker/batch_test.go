package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/civicwatch/dossier/internal/model"
)

// fakeAnalyzer stands in for the pipeline and fails on marked documents
type fakeAnalyzer struct{}

func (a *fakeAnalyzer) Analyze(_ context.Context, doc model.Document) (*model.Report, error) {
	if strings.Contains(doc.Text, "FAIL") {
		return nil, errors.New("analysis failed")
	}
	return &model.Report{ID: doc.SourceURL, Title: strings.TrimSpace(doc.Text)}, nil
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_ProcessFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeDoc(t, dir, "a.txt", "The first document body."),
		writeDoc(t, dir, "b.txt", "The second document body."),
		writeDoc(t, dir, "c.txt", "FAIL marker makes this one break."),
	}

	processor := NewBatchProcessor(&fakeAnalyzer{}, model.SourceReport, 2)
	results := processor.ProcessFiles(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			continue
		}
		if result.Report == nil {
			t.Errorf("Expected a report for %s", result.Path)
		}
	}
	if failed != 1 {
		t.Errorf("Expected exactly 1 failure, got %d", failed)
	}
}

func TestBatchProcessor_ProcessFiles_CancelledContextStopsBatch(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeDoc(t, dir, "a.txt", "The first document body."),
		writeDoc(t, dir, "b.txt", "The second document body."),
		writeDoc(t, dir, "c.txt", "The third document body."),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(&fakeAnalyzer{}, model.SourceReport, 2)
	results := processor.ProcessFiles(ctx, paths)

	if len(results) != 0 {
		t.Errorf("Expected no documents analyzed after cancellation, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFiles_Empty(t *testing.T) {
	processor := NewBatchProcessor(&fakeAnalyzer{}, model.SourceReport, 2)

	results := processor.ProcessFiles(context.Background(), nil)
	if results == nil || len(results) != 0 {
		t.Errorf("Expected empty non-nil result slice, got %v", results)
	}
}

func TestBatchProcessor_ProcessDir_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.txt", "Plain text document.")
	writeDoc(t, dir, "b.md", "Markdown document.")
	writeDoc(t, dir, "c.html", "<p>HTML document.</p>")
	writeDoc(t, dir, "d.json", `{"ignored": true}`)

	processor := NewBatchProcessor(&fakeAnalyzer{}, model.SourceReport, 2)
	results, err := processor.ProcessDir(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results for the 3 document files, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessList(t *testing.T) {
	dir := t.TempDir()
	docPath := writeDoc(t, dir, "doc.txt", "The listed document body.")
	listPath := writeDoc(t, dir, "docs.list",
		"# batch for review\n\n"+docPath+"\n"+docPath+"\n")

	processor := NewBatchProcessor(&fakeAnalyzer{}, model.SourceReport, 1)
	results, err := processor.ProcessList(context.Background(), listPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("Expected the duplicate path collapsed to 1 result, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	dir := t.TempDir()
	listPath := writeDoc(t, dir, "docs.list",
		"# comment line\n\n/tmp/a.txt\n/tmp/b.txt\n/tmp/a.txt\n")

	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 deduplicated paths, got %v", paths)
	}
	if paths[0] != "/tmp/a.txt" || paths[1] != "/tmp/b.txt" {
		t.Errorf("Expected order preserved, got %v", paths)
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	if _, err := ReadPathsFromFile(filepath.Join(t.TempDir(), "absent.list")); err == nil {
		t.Error("Expected an error for a missing list file")
	}
}

func TestLoadDocument_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "doc.txt", "Document content for loading.")

	doc, err := loadDocument(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.SourceType != model.SourceReport {
		t.Errorf("Expected the report source type default, got %s", doc.SourceType)
	}
	if !strings.HasPrefix(doc.SourceURL, "file://") {
		t.Errorf("Expected a file URL, got %q", doc.SourceURL)
	}
	if doc.Text != "Document content for loading." {
		t.Errorf("Unexpected document text %q", doc.Text)
	}
	if doc.FetchedAt.IsZero() {
		t.Error("Expected a fetch timestamp")
	}
}

func TestLoadDocument_MissingFile(t *testing.T) {
	if _, err := loadDocument(filepath.Join(t.TempDir(), "absent.txt"), model.SourceNews); err == nil {
		t.Error("Expected an error for a missing document")
	}
}
