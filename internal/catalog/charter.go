package catalog

import (
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// ConstitutionRule classifies one Charter violation pattern
type ConstitutionRule struct {
	Section       string         `yaml:"section"`
	Right         string         `yaml:"right"`
	ViolationType string         `yaml:"violation_type"`
	LegalBasis    string         `yaml:"legal_basis"`
	Severity      model.Severity `yaml:"severity"`
	Matcher       Matcher        `yaml:"matcher"`
}

// deprivationHarms is the harm group shared by the s.7 and s.15 rules
var deprivationHarms = []string{
	"denied", "deprived", "withheld", "refused", "delayed", "cut off",
}

// ConstitutionRules is the constitutional-rights violation catalog
var ConstitutionRules = []ConstitutionRule{
	{
		Section:       "Charter Section 7",
		Right:         "life, liberty and security of the person",
		ViolationType: "deprivation of security of the person",
		LegalBasis:    "Canadian Charter of Rights and Freedoms, s. 7",
		Severity:      model.SeverityCritical,
		Matcher: Matcher{
			Topic: []string{"security of the person", "medical care", "health care", "mental health", "life-saving", "safety of"},
			Harm:  deprivationHarms,
		},
	},
	{
		Section:       "Charter Section 15",
		Right:         "equality before and under the law",
		ViolationType: "discriminatory treatment on an enumerated or analogous ground",
		LegalBasis:    "Canadian Charter of Rights and Freedoms, s. 15(1)",
		Severity:      model.SeverityCritical,
		Matcher: Matcher{
			Topic: []string{"disability", "disabled", "race", "racial", "sex", "gender", "age", "religion", "ethnic", "national origin"},
			Harm:  append([]string{"discriminat", "excluded", "unequal", "treated differently"}, deprivationHarms...),
		},
	},
	{
		Section:       "Charter Section 8",
		Right:         "security against unreasonable search or seizure",
		ViolationType: "unreasonable search, seizure, or surveillance",
		LegalBasis:    "Canadian Charter of Rights and Freedoms, s. 8",
		Severity:      model.SeverityHigh,
		Matcher: Matcher{
			Topic: []string{"search", "seizure", "surveillance", "private records", "personal information"},
			Harm:  []string{"unreasonable", "without a warrant", "without consent", "unlawful", "improper"},
		},
	},
	{
		Section:       "Charter Section 2(b)",
		Right:         "freedom of expression",
		ViolationType: "suppression of expression or retaliation for speech",
		LegalBasis:    "Canadian Charter of Rights and Freedoms, s. 2(b)",
		Severity:      model.SeverityHigh,
		Matcher: Matcher{
			Topic: []string{"journalist", "whistleblower", "freedom of expression", "press", "spoke out", "speaking out"},
			Harm:  []string{"silenced", "retaliat", "gag", "fired for", "punished", "threatened"},
		},
	},
	{
		Section:       "Charter Section 12",
		Right:         "freedom from cruel and unusual treatment",
		ViolationType: "cruel or degrading treatment in state custody or care",
		LegalBasis:    "Canadian Charter of Rights and Freedoms, s. 12",
		Severity:      model.SeverityCritical,
		Matcher: Matcher{
			Topic: []string{"solitary confinement", "restraint", "seclusion", "detention", "segregation"},
			Harm:  []string{"prolonged", "cruel", "inhumane", "degrading", "excessive"},
		},
	},
}

// DetectConstitution evaluates the Charter catalog against the full text
func DetectConstitution(text string) []model.ConstitutionViolation {
	lower := strings.ToLower(text)
	violations := []model.ConstitutionViolation{}

	for _, rule := range ConstitutionRules {
		topicHit, ok := rule.Matcher.Match(lower)
		if !ok {
			continue
		}

		violations = append(violations, model.ConstitutionViolation{
			Kind:          model.KindConstitution,
			Section:       rule.Section,
			Right:         rule.Right,
			ViolationType: rule.ViolationType,
			Severity:      rule.Severity,
			LegalBasis:    rule.LegalBasis,
			Evidence:      snippet(text, lower, topicHit),
		})
	}

	return violations
}
