package model

import (
	"fmt"
	"strings"
	"time"
)

// Document is the immutable input to one analysis run
type Document struct {
	Text        string            `json:"raw_text"`               // Full document text (plain or HTML)
	SourceType  SourceType        `json:"source_type"`            // Where the document came from
	SourceURL   string            `json:"source_url,omitempty"`   // Origin URL if known
	FetchedAt   time.Time         `json:"fetch_date"`             // When the document was obtained
	RawMetadata map[string]string `json:"raw_metadata,omitempty"` // Caller-supplied hints (title, author, ...)
}

// SourceType categorizes the provenance of a document
type SourceType string

const (
	SourceNews     SourceType = "news"     // News article
	SourceFOI      SourceType = "foi"      // Freedom-of-information release
	SourceReport   SourceType = "report"   // Published report (auditor, ombudsman, NGO)
	SourceSocial   SourceType = "social"   // Social media post
	SourceOfficial SourceType = "official" // Government/agency publication
	SourceLeak     SourceType = "leak"     // Leaked communication
)

// Valid reports whether the source type is one of the known values
func (s SourceType) Valid() bool {
	switch s {
	case SourceNews, SourceFOI, SourceReport, SourceSocial, SourceOfficial, SourceLeak:
		return true
	}
	return false
}

// DocumentMeta is what the metadata extractor derives from a document.
// It is always fully populated, falling back to defaults.
type DocumentMeta struct {
	Title        string       `json:"title"`
	Date         string       `json:"date,omitempty"`   // Best-effort publication date (as found in text)
	Author       string       `json:"author,omitempty"` // From a "by NAME" pattern
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	Language     string       `json:"language"` // Currently always "en"
}

// Jurisdiction is the resolved legal jurisdiction of a document
type Jurisdiction struct {
	Location string `json:"location"` // e.g. "Ontario", "Canada"
	Level    string `json:"level"`    // "provincial", "federal", "municipal", "unknown"
}

// InputError reports an invalid input document. It is the only error the
// pipeline returns after construction; every later stage degrades instead.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// ValidateDocument checks the input contract before any extraction runs
func ValidateDocument(doc Document) error {
	if strings.TrimSpace(doc.Text) == "" {
		return &InputError{Reason: "raw_text is empty or whitespace-only"}
	}
	if doc.SourceType != "" && !doc.SourceType.Valid() {
		return &InputError{Reason: fmt.Sprintf("unknown source_type %q", doc.SourceType)}
	}
	return nil
}
