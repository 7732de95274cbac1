package catalog

import (
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// HumanRightsRule classifies one human-rights-law breach pattern.
// Each rule names a protected ground; the breach fires only when a ground
// keyword and a discrimination/denial keyword co-occur.
type HumanRightsRule struct {
	Legislation       string         `yaml:"legislation"`
	Ground            string         `yaml:"ground"`
	ComplaintDeadline string         `yaml:"complaint_deadline"`
	Severity          model.Severity `yaml:"severity"`
	Matcher           Matcher        `yaml:"matcher"`
}

// discriminationHarms is the harm group shared by all human-rights rules
var discriminationHarms = []string{
	"discriminat", "denied", "refused", "harass", "failed to accommodate",
	"terminated", "evicted", "excluded", "cut off",
}

const ohrcDeadline = "1 year from the last incident (Human Rights Code, s. 34)"

// HumanRightsRules is the human-rights-law breach catalog
var HumanRightsRules = []HumanRightsRule{
	{
		Legislation:       "Ontario Human Rights Code",
		Ground:            "disability",
		ComplaintDeadline: ohrcDeadline,
		Severity:          model.SeverityHigh,
		Matcher: Matcher{
			Topic: []string{"disability", "disabled", "mental health", "chronic pain", "impairment", "injured worker"},
			Harm:  discriminationHarms,
		},
	},
	{
		Legislation:       "Ontario Human Rights Code",
		Ground:            "race",
		ComplaintDeadline: ohrcDeadline,
		Severity:          model.SeverityHigh,
		Matcher: Matcher{
			Topic: []string{"race", "racial", "racism", "ethnic", "indigenous", "immigrant"},
			Harm:  discriminationHarms,
		},
	},
	{
		Legislation:       "Ontario Human Rights Code",
		Ground:            "sex",
		ComplaintDeadline: ohrcDeadline,
		Severity:          model.SeverityHigh,
		Matcher: Matcher{
			Topic: []string{"sexual harassment", "gender", "pregnan", "woman", "women"},
			Harm:  discriminationHarms,
		},
	},
	{
		Legislation:       "Ontario Human Rights Code",
		Ground:            "age",
		ComplaintDeadline: ohrcDeadline,
		Severity:          model.SeverityMedium,
		Matcher: Matcher{
			Topic: []string{"older worker", "elderly", "senior", "because of age", "too old"},
			Harm:  discriminationHarms,
		},
	},
	{
		Legislation:       "Ontario Human Rights Code",
		Ground:            "family status",
		ComplaintDeadline: ohrcDeadline,
		Severity:          model.SeverityMedium,
		Matcher: Matcher{
			Topic: []string{"family status", "caregiver", "childcare", "single parent", "single mother"},
			Harm:  discriminationHarms,
		},
	},
	{
		Legislation:       "Ontario Human Rights Code",
		Ground:            "creed",
		ComplaintDeadline: ohrcDeadline,
		Severity:          model.SeverityMedium,
		Matcher: Matcher{
			Topic: []string{"religion", "religious", "creed", "faith"},
			Harm:  discriminationHarms,
		},
	},
}

// DetectHumanRights evaluates the human-rights catalog against the full text
func DetectHumanRights(text string) []model.HumanRightsBreach {
	lower := strings.ToLower(text)
	breaches := []model.HumanRightsBreach{}

	for _, rule := range HumanRightsRules {
		topicHit, ok := rule.Matcher.Match(lower)
		if !ok {
			continue
		}

		breaches = append(breaches, model.HumanRightsBreach{
			Kind:              model.KindHumanRights,
			Legislation:       rule.Legislation,
			Ground:            rule.Ground,
			Severity:          rule.Severity,
			ComplaintDeadline: rule.ComplaintDeadline,
			Evidence:          snippet(text, lower, topicHit),
		})
	}

	return breaches
}
