package action

import (
	"fmt"

	"github.com/civicwatch/dossier/internal/model"
)

// Recommendation thresholds over the risk assessment. Each rule below is
// evaluated independently, so several actions can stack on one report.
const (
	constitutionalChallengeAt = 60
	humanRightsComplaintAt    = 50
	internationalReportingAt  = 2 // UNCRPD breach count
	foiRequestAt              = 60
	notifyOversightAt         = 50
	notifyImmediateAt         = 70
	mediaExposureAt           = 70
	legalActionAt             = 80
)

// Recommender maps risk tiers and finding types to a prioritized action list
type Recommender struct{}

// NewRecommender creates a new action recommender
func NewRecommender() *Recommender {
	return &Recommender{}
}

// Inputs collects everything the recommender reads
type Inputs struct {
	Risk                   model.RiskAssessment
	CorruptionFindings     []model.CorruptionFinding
	ConstitutionViolations []model.ConstitutionViolation
	HumanRightsBreaches    []model.HumanRightsBreach
	UNCRPDBreaches         []model.UNCRPDBreach
	PrimaryOrganization    string // First extracted organization, or ""
}

// Recommend evaluates the fixed rule list and returns the fired actions
// in rule order
func (r *Recommender) Recommend(in Inputs) []model.RecommendedAction {
	actions := []model.RecommendedAction{}

	target := in.PrimaryOrganization
	if target == "" {
		target = "the responsible institution"
	}

	for _, f := range in.CorruptionFindings {
		actions = append(actions, model.RecommendedAction{
			ActionType:  "corruption_investigation",
			Description: fmt.Sprintf("Open a corruption investigation into the %s indicator (%s severity)", f.Type, f.Severity),
			Target:      target,
			Priority:    model.ActionImmediate,
			RelevantParties: []string{
				"Auditor General", "Ontario Provincial Police Anti-Rackets Branch",
				"Office of the Integrity Commissioner",
			},
			NextSteps: []string{
				"Preserve the source document and evidence snippets",
				"Request procurement and expense records for the period in question",
				"Refer the matter to the relevant oversight body",
			},
		})
	}

	if in.Risk.ConstitutionalSeverity >= constitutionalChallengeAt {
		actions = append(actions, model.RecommendedAction{
			ActionType:      "constitutional_challenge",
			Description:     "Assess a Charter challenge based on the identified constitutional violations",
			Target:          target,
			Priority:        model.ActionImmediate,
			RelevantParties: []string{"Constitutional law counsel", "Court Challenges Program"},
			NextSteps: append([]string{
				"Retain counsel with Charter litigation experience",
			}, legalBases(in.ConstitutionViolations, nil)...),
		})
	}

	if in.Risk.HumanRightsImpact >= humanRightsComplaintAt {
		parties := []string{"Human Rights Tribunal of Ontario", "Ontario Human Rights Commission"}
		steps := []string{"Document each incident with dates and witnesses"}
		for _, b := range in.HumanRightsBreaches {
			steps = append(steps, fmt.Sprintf("File under %s (ground: %s) within %s", b.Legislation, b.Ground, b.ComplaintDeadline))
		}
		actions = append(actions, model.RecommendedAction{
			ActionType:      "human_rights_complaint",
			Description:     "File a human rights complaint on the identified protected grounds",
			Target:          target,
			Priority:        model.ActionImmediate,
			RelevantParties: parties,
			NextSteps:       steps,
		})
	}

	if len(in.UNCRPDBreaches) >= internationalReportingAt {
		actions = append(actions, model.RecommendedAction{
			ActionType:      "international_reporting",
			Description:     fmt.Sprintf("Report %d UNCRPD breaches to international disability-rights monitors", len(in.UNCRPDBreaches)),
			Target:          "UN Committee on the Rights of Persons with Disabilities",
			Priority:        model.ActionHigh,
			RelevantParties: []string{"UN CRPD Committee", "Canadian Human Rights Commission (national monitoring mechanism)"},
			NextSteps: []string{
				"Compile the breach evidence into a shadow-report submission",
				"Coordinate with national disability organizations",
			},
		})
	}

	if in.Risk.OverallScore >= foiRequestAt {
		actions = append(actions, model.RecommendedAction{
			ActionType:      "foi_request",
			Description:     fmt.Sprintf("File a freedom-of-information request with %s for internal records on the matters described", target),
			Target:          target,
			Priority:        model.ActionHigh,
			RelevantParties: []string{"Information and Privacy Commissioner of Ontario"},
			NextSteps: []string{
				"Request decision records, internal correspondence, and policy directives",
				"Track statutory response deadlines and appeal any refusal",
			},
		})
	}

	if in.Risk.OverallScore >= notifyOversightAt {
		priority := model.ActionHigh
		if in.Risk.OverallScore >= notifyImmediateAt {
			priority = model.ActionImmediate
		}
		actions = append(actions, model.RecommendedAction{
			ActionType:      "notify_oversight",
			Description:     "Notify the responsible oversight bodies of the findings in this report",
			Target:          target,
			Priority:        priority,
			RelevantParties: []string{"Ombudsman Ontario", "Auditor General", "responsible minister's office"},
			NextSteps: []string{
				"Send the report with evidence snippets attached",
				"Request a written response within 30 days",
			},
		})
	}

	if in.Risk.OverallScore >= mediaExposureAt || len(in.CorruptionFindings) > 0 {
		actions = append(actions, model.RecommendedAction{
			ActionType:      "media_exposure",
			Description:     "Brief investigative journalists covering the institutions involved",
			Target:          target,
			Priority:        model.ActionHigh,
			RelevantParties: []string{"investigative journalists", "press councils"},
			NextSteps: []string{
				"Prepare a summary with verifiable evidence snippets",
				"Protect the identity of any affected individuals before release",
			},
		})
	}

	if in.Risk.OverallScore >= legalActionAt {
		actions = append(actions, model.RecommendedAction{
			ActionType:      "legal_action",
			Description:     "Commence legal proceedings citing every legal basis collected in this report",
			Target:          target,
			Priority:        model.ActionImmediate,
			RelevantParties: []string{"litigation counsel", "legal aid clinics"},
			NextSteps:       legalBases(in.ConstitutionViolations, in.HumanRightsBreaches),
		})
	}

	return actions
}

// legalBases collects every constitutional and human-rights legal basis
// cited by the findings, in finding order
func legalBases(violations []model.ConstitutionViolation, breaches []model.HumanRightsBreach) []string {
	seen := make(map[string]bool)
	bases := []string{}
	add := func(basis string) {
		if basis == "" || seen[basis] {
			return
		}
		seen[basis] = true
		bases = append(bases, "Cite "+basis)
	}

	for _, v := range violations {
		add(v.LegalBasis)
	}
	for _, b := range breaches {
		add(fmt.Sprintf("%s (ground: %s)", b.Legislation, b.Ground))
	}

	if len(bases) == 0 {
		bases = append(bases, "Identify the governing statute before filing")
	}
	return bases
}
