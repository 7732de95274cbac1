package catalog

import (
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// CorruptionRule classifies one corruption indicator. The harm group doubles
// as a public-sector context group: a corrupt-act keyword alone never fires
// without an official, fund, or procurement keyword alongside it.
type CorruptionRule struct {
	Type     string         `yaml:"type"`
	Severity model.Severity `yaml:"severity"`
	Matcher  Matcher        `yaml:"matcher"`
}

// publicContext is the shared harm group for corruption rules
var publicContext = []string{
	"official", "minister", "ministry", "government", "public fund",
	"public money", "taxpayer", "agency", "contract", "procurement",
	"staff", "executive", "director",
}

// CorruptionRules is the corruption indicator catalog
var CorruptionRules = []CorruptionRule{
	{
		Type:     "bribery",
		Severity: model.SeverityCritical,
		Matcher:  Matcher{Topic: []string{"bribe", "bribery", "kickback", "payoff"}, Harm: publicContext},
	},
	{
		Type:     "misappropriation",
		Severity: model.SeverityHigh,
		Matcher:  Matcher{Topic: []string{"embezzl", "misappropriat", "diverted funds", "missing funds", "unaccounted"}, Harm: publicContext},
	},
	{
		Type:     "procurement_irregularity",
		Severity: model.SeverityHigh,
		Matcher:  Matcher{Topic: []string{"no-bid contract", "sole-source", "untendered", "bid-rigging", "rigged bid"}, Harm: publicContext},
	},
	{
		Type:     "conflict_of_interest",
		Severity: model.SeverityMedium,
		Matcher:  Matcher{Topic: []string{"conflict of interest", "undisclosed interest", "personal stake", "insider"}, Harm: publicContext},
	},
	{
		Type:     "nepotism",
		Severity: model.SeverityMedium,
		Matcher:  Matcher{Topic: []string{"nepotism", "patronage appointment", "family member"}, Harm: publicContext},
	},
	{
		Type:     "obstruction",
		Severity: model.SeverityHigh,
		Matcher:  Matcher{Topic: []string{"cover-up", "covered up", "destroyed records", "shredded", "withheld documents", "deleted emails"}, Harm: publicContext},
	},
}

// DetectCorruption evaluates the corruption catalog against the full text
func DetectCorruption(text string, entities model.Entities) []model.CorruptionFinding {
	lower := strings.ToLower(text)
	findings := []model.CorruptionFinding{}

	for _, rule := range CorruptionRules {
		topicHit, ok := rule.Matcher.Match(lower)
		if !ok {
			continue
		}

		evidence := snippet(text, lower, topicHit)
		findings = append(findings, model.CorruptionFinding{
			Kind:             model.KindCorruption,
			Type:             rule.Type,
			Severity:         rule.Severity,
			Evidence:         evidence,
			EntitiesInvolved: entitiesNear(evidence, entities),
			OccurrenceCount:  rule.Matcher.Occurrences(lower),
		})
	}

	return findings
}

// entitiesNear lists extracted organizations and people named inside the
// evidence snippet
func entitiesNear(evidence string, entities model.Entities) []string {
	involved := []string{}
	for _, org := range entities.Organizations {
		if strings.Contains(evidence, org.Name) {
			involved = append(involved, org.Name)
		}
	}
	for _, person := range entities.People {
		if strings.Contains(evidence, person.FullName) {
			involved = append(involved, person.FullName)
		}
	}
	return involved
}
