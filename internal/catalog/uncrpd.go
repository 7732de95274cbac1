package catalog

import (
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// UNCRPDRule classifies one disability-convention breach pattern
type UNCRPDRule struct {
	Article  string         `yaml:"article"`
	Right    string         `yaml:"right"`
	Severity model.Severity `yaml:"severity"`
	Matcher  Matcher        `yaml:"matcher"`
}

// denialHarms is the harm group shared by the UNCRPD rules
var denialHarms = []string{
	"denied", "refused", "withheld", "cut off", "delayed", "terminated",
	"clawed back", "reduced",
}

// UNCRPDRules is the disability-convention breach catalog
var UNCRPDRules = []UNCRPDRule{
	{
		Article:  "Article 25",
		Right:    "enjoyment of the highest attainable standard of health",
		Severity: model.SeverityCritical,
		Matcher: Matcher{
			Topic: []string{"mental health claim", "disability benefits", "medical treatment", "health services", "treatment for", "medication"},
			Harm:  denialHarms,
		},
	},
	{
		Article:  "Article 27",
		Right:    "work and employment on an equal basis with others",
		Severity: model.SeverityHigh,
		Matcher: Matcher{
			Topic: []string{"injured worker", "workplace accommodation", "return to work", "modified duties"},
			Harm:  append([]string{"fired", "failed to accommodate"}, denialHarms...),
		},
	},
	{
		Article:  "Article 28",
		Right:    "adequate standard of living and social protection",
		Severity: model.SeverityCritical,
		Matcher: Matcher{
			Topic: []string{"odsp", "income support", "social assistance", "disability pension", "disability benefits"},
			Harm:  denialHarms,
		},
	},
	{
		Article:  "Article 19",
		Right:    "living independently and being included in the community",
		Severity: model.SeverityHigh,
		Matcher: Matcher{
			Topic: []string{"independent living", "home care", "attendant care", "community support", "supportive housing"},
			Harm:  append([]string{"institutionalized", "withdrawn"}, denialHarms...),
		},
	},
	{
		Article:  "Article 13",
		Right:    "effective access to justice",
		Severity: model.SeverityMedium,
		Matcher: Matcher{
			Topic: []string{"appeal", "tribunal hearing", "legal representation", "legal aid"},
			Harm:  append([]string{"dismissed without", "barred"}, denialHarms...),
		},
	},
}

// DetectUNCRPD evaluates the disability-convention catalog against the
// full text
func DetectUNCRPD(text string) []model.UNCRPDBreach {
	lower := strings.ToLower(text)
	breaches := []model.UNCRPDBreach{}

	for _, rule := range UNCRPDRules {
		topicHit, ok := rule.Matcher.Match(lower)
		if !ok {
			continue
		}

		breaches = append(breaches, model.UNCRPDBreach{
			Kind:     model.KindUNCRPD,
			Article:  rule.Article,
			Right:    rule.Right,
			Severity: rule.Severity,
			Evidence: snippet(text, lower, topicHit),
		})
	}

	return breaches
}
