package extract

import (
	"regexp"
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// MetadataExtractor derives document metadata from the raw text plus any
// caller-supplied hints. It never fails: every field has a fallback.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new metadata extractor
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

var (
	isoDateRe  = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	longDateRe = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}\b`)
	authorRe   = regexp.MustCompile(`(?i)\bby\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2})\b`)
)

// provinceKeywords maps lowercase keywords to a provincial jurisdiction.
// Order matters: the first match wins, so lookups stay deterministic.
var provinceKeywords = []struct {
	keyword  string
	province string
}{
	{"ontario", "Ontario"},
	{"queen's park", "Ontario"},
	{"quebec", "Quebec"},
	{"british columbia", "British Columbia"},
	{"alberta", "Alberta"},
	{"manitoba", "Manitoba"},
	{"saskatchewan", "Saskatchewan"},
	{"nova scotia", "Nova Scotia"},
	{"new brunswick", "New Brunswick"},
	{"newfoundland", "Newfoundland and Labrador"},
}

// federalKeywords mark a document as federal-level
var federalKeywords = []string{
	"federal", "parliament", "house of commons", "senate of canada",
	"canada revenue agency", "service canada", "employment insurance",
	"rcmp", "immigration, refugees and citizenship",
}

// municipalKeywords mark a document as municipal-level
var municipalKeywords = []string{
	"city council", "municipal", "the mayor", "bylaw",
}

// Extract derives title/date/author/jurisdiction from the document,
// preferring caller-supplied metadata when present
func (e *MetadataExtractor) Extract(doc model.Document, text string) model.DocumentMeta {
	meta := model.DocumentMeta{
		Title:        doc.RawMetadata["title"],
		Date:         doc.RawMetadata["date"],
		Author:       doc.RawMetadata["author"],
		Jurisdiction: model.Jurisdiction{Location: "Canada", Level: "unknown"},
		Language:     "en",
	}

	if meta.Title == "" {
		meta.Title = firstNonTrivialLine(text)
	}
	if meta.Date == "" {
		if m := isoDateRe.FindString(text); m != "" {
			meta.Date = m
		} else if m := longDateRe.FindString(text); m != "" {
			meta.Date = m
		}
	}
	if meta.Author == "" {
		if m := authorRe.FindStringSubmatch(text); m != nil {
			meta.Author = m[1]
		}
	}

	meta.Jurisdiction = resolveJurisdiction(text)

	return meta
}

// firstNonTrivialLine returns the first line long enough to serve as a title
func firstNonTrivialLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if len(line) >= 10 {
			if len(line) > 160 {
				line = strings.TrimSpace(line[:160])
			}
			return line
		}
	}
	return "Untitled document"
}

// resolveJurisdiction looks the text up against fixed keyword tables.
// Provincial keywords win over federal ones; the default is
// {Canada, unknown} when nothing matches.
func resolveJurisdiction(text string) model.Jurisdiction {
	lower := strings.ToLower(text)

	for _, entry := range provinceKeywords {
		if strings.Contains(lower, entry.keyword) {
			return model.Jurisdiction{Location: entry.province, Level: "provincial"}
		}
	}
	for _, keyword := range federalKeywords {
		if strings.Contains(lower, keyword) {
			return model.Jurisdiction{Location: "Canada", Level: "federal"}
		}
	}
	for _, keyword := range municipalKeywords {
		if strings.Contains(lower, keyword) {
			return model.Jurisdiction{Location: "Canada", Level: "municipal"}
		}
	}

	return model.Jurisdiction{Location: "Canada", Level: "unknown"}
}
