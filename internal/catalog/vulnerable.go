package catalog

import (
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// VulnerableRule marks impact on one vulnerable population. The harm type
// is a fixed property of the rule, not derived from the text.
type VulnerableRule struct {
	Group    string  `yaml:"group"`
	HarmType string  `yaml:"harm_type"`
	Matcher  Matcher `yaml:"matcher"`
}

// populationHarms is the harm group shared by the vulnerable-population rules
var populationHarms = []string{
	"denied", "cut off", "evicted", "neglect", "abuse", "exploit",
	"harmed", "left without", "lost access", "went without", "suffered",
}

// VulnerableRules is the vulnerable-population impact catalog
var VulnerableRules = []VulnerableRule{
	{
		Group:    "injured workers",
		HarmType: "benefit denial",
		Matcher:  Matcher{Topic: []string{"injured worker", "workplace injury", "compensation claim"}, Harm: populationHarms},
	},
	{
		Group:    "people with disabilities",
		HarmType: "service or benefit denial",
		Matcher:  Matcher{Topic: []string{"disability", "disabled", "wheelchair", "impairment"}, Harm: populationHarms},
	},
	{
		Group:    "people with mental illness",
		HarmType: "treatment denial or institutional neglect",
		Matcher:  Matcher{Topic: []string{"mental health", "mental illness", "psychiatric"}, Harm: populationHarms},
	},
	{
		Group:    "children and youth",
		HarmType: "neglect or loss of protection",
		Matcher:  Matcher{Topic: []string{"children", "child welfare", "foster care", "youth"}, Harm: populationHarms},
	},
	{
		Group:    "seniors",
		HarmType: "neglect or loss of care",
		Matcher:  Matcher{Topic: []string{"seniors", "elderly", "long-term care", "nursing home"}, Harm: populationHarms},
	},
	{
		Group:    "Indigenous people",
		HarmType: "systemic discrimination or loss of services",
		Matcher:  Matcher{Topic: []string{"indigenous", "first nations", "inuit", "métis", "metis"}, Harm: populationHarms},
	},
	{
		Group:    "refugees and migrants",
		HarmType: "loss of status or services",
		Matcher:  Matcher{Topic: []string{"refugee", "migrant", "asylum", "undocumented"}, Harm: populationHarms},
	},
	{
		Group:    "low-income tenants",
		HarmType: "housing loss",
		Matcher:  Matcher{Topic: []string{"tenant", "renter", "social housing", "rent-geared"}, Harm: populationHarms},
	},
}

// DetectVulnerable evaluates the vulnerable-population catalog against the
// full text. Each finding's intersectionality lists the other groups the
// same document impacts.
func DetectVulnerable(text string) []model.ImpactedGroup {
	lower := strings.ToLower(text)

	type hit struct {
		rule     VulnerableRule
		topicHit string
	}
	var hits []hit
	for _, rule := range VulnerableRules {
		if topicHit, ok := rule.Matcher.Match(lower); ok {
			hits = append(hits, hit{rule: rule, topicHit: topicHit})
		}
	}

	groups := []model.ImpactedGroup{}
	for _, h := range hits {
		var intersection []string
		for _, other := range hits {
			if other.rule.Group != h.rule.Group {
				intersection = append(intersection, other.rule.Group)
			}
		}

		groups = append(groups, model.ImpactedGroup{
			Kind:              model.KindImpactedGroup,
			Group:             h.rule.Group,
			HarmType:          h.rule.HarmType,
			Intersectionality: intersection,
			Evidence:          snippet(text, lower, h.topicHit),
		})
	}

	return groups
}
