package action

import (
	"strings"
	"testing"

	"github.com/civicwatch/dossier/internal/model"
)

func actionTypes(actions []model.RecommendedAction) []string {
	types := make([]string, len(actions))
	for i, a := range actions {
		types[i] = a.ActionType
	}
	return types
}

func findAction(actions []model.RecommendedAction, actionType string) *model.RecommendedAction {
	for i := range actions {
		if actions[i].ActionType == actionType {
			return &actions[i]
		}
	}
	return nil
}

func TestRecommender_Recommend_NothingFires(t *testing.T) {
	recommender := NewRecommender()

	actions := recommender.Recommend(Inputs{
		Risk: model.RiskAssessment{OverallScore: 20, Priority: model.PriorityLow},
	})

	if len(actions) != 0 {
		t.Errorf("Expected no actions for a low-risk report, got %v", actionTypes(actions))
	}
	if actions == nil {
		t.Error("Expected an empty slice, not nil")
	}
}

func TestRecommender_Recommend_HighRiskStacksActions(t *testing.T) {
	recommender := NewRecommender()

	actions := recommender.Recommend(Inputs{
		Risk: model.RiskAssessment{
			OverallScore:           85,
			ConstitutionalSeverity: 70,
			HumanRightsImpact:      60,
			Priority:               model.PriorityCritical,
		},
		ConstitutionViolations: []model.ConstitutionViolation{
			{Section: "Charter Section 15", LegalBasis: "Canadian Charter of Rights and Freedoms, s. 15(1)"},
		},
		HumanRightsBreaches: []model.HumanRightsBreach{
			{Legislation: "Ontario Human Rights Code", Ground: "disability", ComplaintDeadline: "1 year from the last incident (Human Rights Code, s. 34)"},
		},
		UNCRPDBreaches:      make([]model.UNCRPDBreach, 2),
		PrimaryOrganization: "WSIB",
	})

	expected := []string{
		"constitutional_challenge",
		"human_rights_complaint",
		"international_reporting",
		"foi_request",
		"notify_oversight",
		"media_exposure",
		"legal_action",
	}
	got := actionTypes(actions)
	if len(got) != len(expected) {
		t.Fatalf("Expected %d actions, got %d: %v", len(expected), len(got), got)
	}
	for i, actionType := range expected {
		if got[i] != actionType {
			t.Errorf("Expected action %d to be %s, got %s", i, actionType, got[i])
		}
	}

	// Overall 85 puts oversight notification at immediate priority
	notify := findAction(actions, "notify_oversight")
	if notify.Priority != model.ActionImmediate {
		t.Errorf("Expected notify_oversight to be immediate at overall 85, got %s", notify.Priority)
	}

	legal := findAction(actions, "legal_action")
	if legal.Priority != model.ActionImmediate {
		t.Errorf("Expected legal_action to be immediate, got %s", legal.Priority)
	}
	foundCharter, foundCode := false, false
	for _, step := range legal.NextSteps {
		if strings.Contains(step, "Canadian Charter") {
			foundCharter = true
		}
		if strings.Contains(step, "Ontario Human Rights Code") {
			foundCode = true
		}
	}
	if !foundCharter || !foundCode {
		t.Errorf("Expected legal_action to cite both legal bases, got %v", legal.NextSteps)
	}

	for _, a := range actions {
		if a.ActionType == "international_reporting" {
			continue // Targets the UN committee, not the institution
		}
		if a.Target != "WSIB" {
			t.Errorf("Expected %s to target WSIB, got %q", a.ActionType, a.Target)
		}
	}
}

func TestRecommender_Recommend_CorruptionFindingAlone(t *testing.T) {
	recommender := NewRecommender()

	// A single corruption finding fires the investigation and media rules
	// even when the overall score stays low
	actions := recommender.Recommend(Inputs{
		Risk: model.RiskAssessment{OverallScore: 25, CorruptionRisk: 30},
		CorruptionFindings: []model.CorruptionFinding{
			{Type: "procurement_irregularity", Severity: model.SeverityHigh},
		},
	})

	got := actionTypes(actions)
	expected := []string{"corruption_investigation", "media_exposure"}
	if len(got) != len(expected) || got[0] != expected[0] || got[1] != expected[1] {
		t.Fatalf("Expected %v, got %v", expected, got)
	}

	investigation := actions[0]
	if investigation.Priority != model.ActionImmediate {
		t.Errorf("Expected corruption_investigation to be immediate, got %s", investigation.Priority)
	}
	if !strings.Contains(investigation.Description, "procurement_irregularity") {
		t.Errorf("Expected description to name the indicator type, got %q", investigation.Description)
	}
	if investigation.Target != "the responsible institution" {
		t.Errorf("Expected fallback target, got %q", investigation.Target)
	}
}

func TestRecommender_Recommend_OneInvestigationPerFinding(t *testing.T) {
	recommender := NewRecommender()

	actions := recommender.Recommend(Inputs{
		CorruptionFindings: []model.CorruptionFinding{
			{Type: "bribery", Severity: model.SeverityCritical},
			{Type: "nepotism", Severity: model.SeverityMedium},
		},
	})

	investigations := 0
	for _, a := range actions {
		if a.ActionType == "corruption_investigation" {
			investigations++
		}
	}
	if investigations != 2 {
		t.Errorf("Expected one investigation per finding, got %d", investigations)
	}
}

func TestRecommender_Recommend_ThresholdBoundaries(t *testing.T) {
	recommender := NewRecommender()

	tests := []struct {
		name    string
		risk    model.RiskAssessment
		uncrpd  int
		fired   []string
		unfired []string
	}{
		{
			name:    "just below every threshold",
			risk:    model.RiskAssessment{OverallScore: 49, ConstitutionalSeverity: 59, HumanRightsImpact: 49},
			uncrpd:  1,
			unfired: []string{"constitutional_challenge", "human_rights_complaint", "international_reporting", "foi_request", "notify_oversight", "media_exposure", "legal_action"},
		},
		{
			name:  "constitutional challenge at 60",
			risk:  model.RiskAssessment{ConstitutionalSeverity: 60},
			fired: []string{"constitutional_challenge"},
		},
		{
			name:  "human rights complaint at 50",
			risk:  model.RiskAssessment{HumanRightsImpact: 50},
			fired: []string{"human_rights_complaint"},
		},
		{
			name:   "international reporting at two breaches",
			uncrpd: 2,
			fired:  []string{"international_reporting"},
		},
		{
			name:    "oversight at 50, media only at 70",
			risk:    model.RiskAssessment{OverallScore: 50},
			fired:   []string{"notify_oversight"},
			unfired: []string{"media_exposure", "foi_request", "legal_action"},
		},
		{
			name:    "foi and media at their thresholds",
			risk:    model.RiskAssessment{OverallScore: 70},
			fired:   []string{"foi_request", "notify_oversight", "media_exposure"},
			unfired: []string{"legal_action"},
		},
		{
			name:  "legal action at 80",
			risk:  model.RiskAssessment{OverallScore: 80},
			fired: []string{"legal_action"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := recommender.Recommend(Inputs{
				Risk:           tt.risk,
				UNCRPDBreaches: make([]model.UNCRPDBreach, tt.uncrpd),
			})
			for _, actionType := range tt.fired {
				if findAction(actions, actionType) == nil {
					t.Errorf("Expected %s to fire, got %v", actionType, actionTypes(actions))
				}
			}
			for _, actionType := range tt.unfired {
				if findAction(actions, actionType) != nil {
					t.Errorf("Expected %s not to fire, got %v", actionType, actionTypes(actions))
				}
			}
		})
	}
}

func TestLegalBases_DeduplicatesAndFallsBack(t *testing.T) {
	violations := []model.ConstitutionViolation{
		{LegalBasis: "Canadian Charter of Rights and Freedoms, s. 7"},
		{LegalBasis: "Canadian Charter of Rights and Freedoms, s. 7"},
	}
	bases := legalBases(violations, nil)
	if len(bases) != 1 {
		t.Errorf("Expected duplicate bases collapsed to one, got %v", bases)
	}
	if !strings.HasPrefix(bases[0], "Cite ") {
		t.Errorf("Expected a Cite prefix, got %q", bases[0])
	}

	empty := legalBases(nil, nil)
	if len(empty) != 1 || !strings.Contains(empty[0], "governing statute") {
		t.Errorf("Expected the fallback step for no bases, got %v", empty)
	}
}
