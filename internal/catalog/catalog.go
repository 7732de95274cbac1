// Package catalog holds the five declarative rule tables that classify a
// document's text into legal and rights findings. Every rule AND-composes
// two keyword groups: a topic group (a named right, protected ground, or
// vulnerable group) and a harm/denial group. A rule fires only when both
// groups occur somewhere in the text. Matching is purely lexical and will
// both under- and over-fire on paraphrased text; that tradeoff is inherent
// to a rule-based classifier and documented in DESIGN.md.
package catalog

import (
	"strings"
	"unicode/utf8"
)

// Matcher is the two-group AND matcher shared by all five catalogs
type Matcher struct {
	Topic []string `yaml:"topic"` // Named right / ground / group keywords
	Harm  []string `yaml:"harm"`  // Harm, denial, or misconduct keywords
}

// Match reports whether both keyword groups occur in the lowercased text.
// It returns the first topic keyword found (in table order) so the caller
// can anchor the evidence snippet, keeping results deterministic.
func (m Matcher) Match(lower string) (topicHit string, ok bool) {
	for _, kw := range m.Topic {
		if strings.Contains(lower, kw) {
			topicHit = kw
			break
		}
	}
	if topicHit == "" {
		return "", false
	}
	for _, kw := range m.Harm {
		if strings.Contains(lower, kw) {
			return topicHit, true
		}
	}
	return "", false
}

// Occurrences counts non-overlapping hits of any topic keyword
func (m Matcher) Occurrences(lower string) int {
	total := 0
	for _, kw := range m.Topic {
		total += strings.Count(lower, kw)
	}
	return total
}

// snippet returns a bounded context window around the first occurrence of
// the matched keyword, taken from the original (not lowercased) text so
// findings stay verifiable against the source document.
func snippet(text, lower, keyword string) string {
	const radius = 100

	idx := strings.Index(lower, keyword)
	if idx < 0 {
		return keyword
	}

	start := idx - radius
	if start < 0 {
		start = 0
	}
	end := idx + len(keyword) + radius
	if end > len(text) {
		end = len(text)
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	return strings.TrimSpace(text[start:end])
}
