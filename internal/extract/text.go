package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// NormalizeText returns the analyzable plain text of a document body.
// HTML input is reduced to its visible text; plain text passes through.
func NormalizeText(raw string) string {
	if !looksLikeHTML(raw) {
		return raw
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	return visibleText(doc)
}

// looksLikeHTML sniffs for markup without requiring a declared content type
func looksLikeHTML(s string) bool {
	head := strings.ToLower(s)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") ||
		strings.Contains(head, "<!doctype html") ||
		strings.Contains(head, "<body") ||
		strings.Contains(head, "<p>")
}

// visibleText extracts text nodes, skipping scripts/styles
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// SplitSentences splits text into sentences (simple heuristic)
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Look ahead to avoid splitting on abbreviations
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				sentence := strings.TrimSpace(current.String())
				if len(sentence) >= 30 && len(sentence) <= 500 {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if current.Len() > 0 {
		sentence := strings.TrimSpace(current.String())
		if len(sentence) >= 30 && len(sentence) <= 500 {
			sentences = append(sentences, sentence)
		}
	}

	return sentences
}

// contextRadius is the fixed half-width of every evidence snippet
const contextRadius = 100

// ContextWindow returns ±contextRadius characters of text around the first
// occurrence of match, so each extracted item stays verifiable against the
// source document.
func ContextWindow(text, match string) string {
	idx := strings.Index(text, match)
	if idx < 0 {
		return match
	}

	start := idx - contextRadius
	if start < 0 {
		start = 0
	}
	end := idx + len(match) + contextRadius
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
