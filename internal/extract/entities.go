package extract

import (
	"regexp"
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// Fixed result caps. These bound report size and scoring regardless of
// document length; they are deliberate, not tunable per call.
const (
	maxPeople  = 10
	maxAmounts = 10
	maxDates   = 5
)

// EntityExtractor finds candidate people, organizations, money amounts,
// and dates using fixed pattern tables
type EntityExtractor struct{}

// NewEntityExtractor creates a new entity extractor
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{}
}

var (
	wordRe = regexp.MustCompile(`[A-Za-z][A-Za-z.'-]*`)
	nameRe = regexp.MustCompile(`^[A-Z][a-z]+$`)

	// Known public agencies referenced by acronym
	acronymRe = regexp.MustCompile(`\b(WSIB|WSIAT|RCMP|CRA|ODSP|OPP|CAS|LTB|CMHC|ESDC|IRCC|OHRC|CHRC|PHAC|CSIS|OPG|TTC)\b`)

	ministryRe = regexp.MustCompile(`\b(?:Ministry|Department)\s+of\s+(?:the\s+)?[A-Z][A-Za-z]+(?:\s+(?:and|of|the)\s+[A-Z][A-Za-z]+|\s+[A-Z][A-Za-z]+)*`)
	corpRe     = regexp.MustCompile(`\b(?:[A-Z][A-Za-z&'-]+\s+){1,3}(?:Inc\.?|Ltd\.?|Corp\.?|LLP|Limited|Corporation|Commission|Tribunal|Board|Authority|Agency|Association|Foundation|Hospital|Centre)\b`)

	moneyRe = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d+)?(?:\s*(million|billion|thousand))?`)

	fullDateRe = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	yearRe     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// personStoplist excludes capitalized bigrams that are known non-person
// phrases. Checked against the lowercased candidate.
var personStoplist = map[string]bool{
	"supreme court": true, "superior court": true, "human rights": true,
	"mental health": true, "united states": true, "united nations": true,
	"new york": true, "nova scotia": true, "new brunswick": true,
	"british columbia": true, "prince edward": true, "thunder bay": true,
	"north bay": true, "queen's park": true, "attorney general": true,
	"auditor general": true, "crown corporation": true, "long term": true,
}

// personStopwords excludes bigrams where either word is institutional or
// calendar vocabulary rather than a name
var personStopwords = map[string]bool{
	"The": true, "This": true, "That": true, "These": true, "Those": true,
	"Ministry": true, "Department": true, "Board": true, "Commission": true,
	"Tribunal": true, "Authority": true, "Agency": true, "Act": true,
	"Code": true, "Charter": true, "Section": true, "Article": true,
	"Canada": true, "Canadian": true, "Ontario": true, "Quebec": true,
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// personTitles are role words that precede a name but are not part of it
var personTitles = map[string]bool{
	"Minister": true, "Premier": true, "Mayor": true, "Councillor": true,
	"Director": true, "President": true, "CEO": true, "Chair": true,
	"Commissioner": true, "Ombudsman": true, "Dr": true, "Dr.": true,
	"MPP": true, "MP": true,
}

// Extract finds all entity categories in the text. Each category is
// deduplicated by exact match and capped.
func (e *EntityExtractor) Extract(text string) model.Entities {
	return model.Entities{
		People:        e.extractPeople(text),
		Organizations: e.extractOrganizations(text),
		Amounts:       e.extractAmounts(text),
		Dates:         e.extractDates(text),
	}
}

// extractPeople slides a two-word window over the tokenized text so
// adjacent candidates overlap: in "Premier John Smith" the title is skipped
// and "John Smith" still matches.
func (e *EntityExtractor) extractPeople(text string) []model.Person {
	spans := wordRe.FindAllStringIndex(text, -1)
	seen := make(map[string]bool)
	people := []model.Person{}

	for i := 0; i+1 < len(spans); i++ {
		if len(people) >= maxPeople {
			break
		}
		first := text[spans[i][0]:spans[i][1]]
		second := text[spans[i+1][0]:spans[i+1][1]]

		if !nameRe.MatchString(first) || !nameRe.MatchString(second) {
			continue
		}
		// Only whitespace may separate the two words
		if strings.TrimSpace(text[spans[i][1]:spans[i+1][0]]) != "" {
			continue
		}
		if personStopwords[first] || personStopwords[second] ||
			personTitles[first] || personTitles[second] {
			continue
		}

		full := first + " " + second
		if personStoplist[strings.ToLower(full)] || seen[full] {
			continue
		}
		seen[full] = true

		role := ""
		if i > 0 {
			if prev := text[spans[i-1][0]:spans[i-1][1]]; personTitles[prev] {
				role = strings.TrimSuffix(prev, ".")
			}
		}

		people = append(people, model.Person{
			FullName: full,
			Role:     role,
			Context:  ContextWindow(text, full),
		})
	}

	return people
}

func (e *EntityExtractor) extractOrganizations(text string) []model.Organization {
	seen := make(map[string]bool)
	var orgs []model.Organization

	add := func(name, category string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		orgs = append(orgs, model.Organization{
			Name:     name,
			Category: category,
			Context:  ContextWindow(text, name),
		})
	}

	for _, m := range acronymRe.FindAllString(text, -1) {
		add(m, "government")
	}
	for _, m := range ministryRe.FindAllString(text, -1) {
		add(m, "government")
	}
	for _, m := range corpRe.FindAllString(text, -1) {
		add(m, corpCategory(m))
	}

	if orgs == nil {
		orgs = []model.Organization{}
	}
	return orgs
}

func corpCategory(name string) string {
	switch {
	case strings.Contains(name, "Tribunal"), strings.Contains(name, "Board"),
		strings.Contains(name, "Commission"):
		return "tribunal"
	case strings.Contains(name, "Inc"), strings.Contains(name, "Ltd"),
		strings.Contains(name, "Corp"), strings.Contains(name, "LLP"),
		strings.Contains(name, "Limited"):
		return "corporate"
	default:
		return "unknown"
	}
}

func (e *EntityExtractor) extractAmounts(text string) []model.MoneyAmount {
	seen := make(map[string]bool)
	var amounts []model.MoneyAmount

	for _, m := range moneyRe.FindAllStringSubmatch(text, -1) {
		if len(amounts) >= maxAmounts {
			break
		}
		full := strings.TrimSpace(m[0])
		if seen[full] {
			continue
		}
		seen[full] = true

		scale := m[1]
		amount := full
		if scale != "" {
			amount = strings.TrimSpace(strings.TrimSuffix(full, scale))
		}

		amounts = append(amounts, model.MoneyAmount{
			Amount:  amount,
			Scale:   scale,
			Context: ContextWindow(text, full),
		})
	}

	if amounts == nil {
		amounts = []model.MoneyAmount{}
	}
	return amounts
}

func (e *EntityExtractor) extractDates(text string) []model.DateMention {
	seen := make(map[string]bool)
	var dates []model.DateMention

	add := func(value string) {
		if len(dates) >= maxDates || seen[value] {
			return
		}
		seen[value] = true
		dates = append(dates, model.DateMention{
			Value:   value,
			Context: ContextWindow(text, value),
		})
	}

	for _, m := range fullDateRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range yearRe.FindAllString(text, -1) {
		add(m)
	}

	if dates == nil {
		dates = []model.DateMention{}
	}
	return dates
}
