package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/civicwatch/dossier/internal/model"
)

const fixtureText = `WSIB claim denials under scrutiny

The WSIB denied the mental health claim due to discrimination based on disability. According to tribunal records, the agency refused similar claims from injured workers across Ontario. John Smith said the repeated denials left his family struggling for months.`

func fixtureDocument() model.Document {
	return model.Document{
		Text:       fixtureText,
		SourceType: model.SourceNews,
		SourceURL:  "https://example.org/wsib-denials",
		FetchedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

// failingCorroborator exercises the degradation path
type failingCorroborator struct{}

func (f *failingCorroborator) Corroborate(_ context.Context, _ []model.Claim, _ model.DocumentMeta) ([]model.CorroborationRecord, error) {
	return nil, errors.New("corroboration backend down")
}

func TestPipeline_Analyze_RejectsBlankText(t *testing.T) {
	pipeline := NewPipeline(testConfig())

	_, err := pipeline.Analyze(context.Background(), model.Document{Text: "   \n\t  "})
	if err == nil {
		t.Fatal("Expected an error for blank text")
	}

	var inputErr *model.InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("Expected an InputError, got %T: %v", err, err)
	}
}

func TestPipeline_Analyze_RejectsUnknownSourceType(t *testing.T) {
	pipeline := NewPipeline(testConfig())

	_, err := pipeline.Analyze(context.Background(), model.Document{
		Text:       "Some perfectly valid document body text.",
		SourceType: "carrier-pigeon",
	})

	var inputErr *model.InputError
	if !errors.As(err, &inputErr) {
		t.Errorf("Expected an InputError for an unknown source type, got %v", err)
	}
}

func TestPipeline_Analyze_FullRun(t *testing.T) {
	pipeline := NewPipeline(testConfig())

	report, err := pipeline.Analyze(context.Background(), fixtureDocument())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.ID == "" {
		t.Error("Expected a report ID")
	}
	if report.Title != "WSIB claim denials under scrutiny" {
		t.Errorf("Expected the heading as title, got %q", report.Title)
	}
	if report.Jurisdiction.Location != "Ontario" {
		t.Errorf("Expected Ontario jurisdiction, got %+v", report.Jurisdiction)
	}

	if len(report.Evidence.Claims) == 0 {
		t.Error("Expected extracted claims")
	}
	if len(report.Evidence.Corroboration) != len(report.Evidence.Claims) {
		t.Errorf("Expected one corroboration record per claim, got %d for %d claims",
			len(report.Evidence.Corroboration), len(report.Evidence.Claims))
	}
	if len(report.HumanRightsBreaches) == 0 {
		t.Error("Expected a human rights breach for the disability denial")
	}
	if len(report.ConstitutionViolations) == 0 {
		t.Error("Expected constitutional violations")
	}
	if len(report.ImpactedGroups) == 0 {
		t.Error("Expected impacted groups")
	}

	risk := report.RiskAssessment
	if risk.OverallScore <= 0 || risk.OverallScore > 100 {
		t.Errorf("Expected a positive bounded overall score, got %d", risk.OverallScore)
	}
	if risk.Priority == "" {
		t.Error("Expected a priority tier")
	}
	if risk.Explanation == "" {
		t.Error("Expected a scoring explanation")
	}

	foundWSIB := false
	for _, actor := range report.ActorsInvolved {
		if actor == "WSIB" {
			foundWSIB = true
		}
	}
	if !foundWSIB {
		t.Errorf("Expected WSIB among actors, got %v", report.ActorsInvolved)
	}

	if report.Processing.Version != model.Version {
		t.Errorf("Expected version %s stamped, got %q", model.Version, report.Processing.Version)
	}
	if report.Evidence.Provenance.SourceURL != "https://example.org/wsib-denials" {
		t.Errorf("Expected provenance to carry the source URL, got %q", report.Evidence.Provenance.SourceURL)
	}
	if report.LLM != nil {
		t.Error("Expected no LLM brief without a configured provider")
	}
}

func TestPipeline_Analyze_DeterministicAcrossRuns(t *testing.T) {
	pipeline := NewPipeline(testConfig())
	doc := fixtureDocument()

	first, err := pipeline.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := pipeline.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}

	if first.ID != second.ID {
		t.Errorf("Expected stable report IDs, got %s and %s", first.ID, second.ID)
	}
	if !reflect.DeepEqual(first.RiskAssessment, second.RiskAssessment) {
		t.Errorf("Expected identical risk assessments:\n%+v\n%+v", first.RiskAssessment, second.RiskAssessment)
	}
	if !reflect.DeepEqual(first.Recommended, second.Recommended) {
		t.Error("Expected identical recommended actions")
	}
	if !reflect.DeepEqual(first.Evidence.Claims, second.Evidence.Claims) {
		t.Error("Expected identical claims")
	}
	if !reflect.DeepEqual(first.PatternsDetected, second.PatternsDetected) {
		t.Error("Expected identical patterns")
	}
}

func TestPipeline_Analyze_CorroborationFailureDegrades(t *testing.T) {
	pipeline := NewPipelineWithCorroborator(testConfig(), &failingCorroborator{})

	report, err := pipeline.Analyze(context.Background(), fixtureDocument())
	if err != nil {
		t.Fatalf("Expected the analysis to survive a corroboration failure, got %v", err)
	}

	if len(report.Evidence.Corroboration) != len(report.Evidence.Claims) {
		t.Fatalf("Expected one degraded record per claim, got %d for %d claims",
			len(report.Evidence.Corroboration), len(report.Evidence.Claims))
	}
	for i, record := range report.Evidence.Corroboration {
		if record.Level != model.CorroborationWeak {
			t.Errorf("Record %d: expected weak, got %s", i, record.Level)
		}
		if !record.NeedsFollowUp {
			t.Errorf("Record %d: expected the follow-up flag", i)
		}
	}
}

func TestPipeline_Analyze_ReportJSONContract(t *testing.T) {
	pipeline := NewPipeline(testConfig())

	report, err := pipeline.Analyze(context.Background(), fixtureDocument())
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{
		`"overall_risk_score"`,
		`"corroboration_level"`,
		`"needs_further_investigation"`,
		`"corruption_findings"`,
		`"constitution_violations"`,
		`"human_rights_breaches"`,
		`"uncrpd_breaches"`,
		`"impacted_groups"`,
		`"evidence"`,
		`"actors_involved"`,
		`"patterns_detected"`,
		`"risk_assessment"`,
		`"recommended_actions"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("Expected field %s in the report JSON", field)
		}
	}

	var roundTrip model.Report
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatal(err)
	}
	if roundTrip.RiskAssessment != report.RiskAssessment {
		t.Error("Expected the risk assessment to round-trip through JSON")
	}
	if roundTrip.ID != report.ID {
		t.Error("Expected the report ID to round-trip through JSON")
	}
}

func TestPipeline_Analyze_HTMLInput(t *testing.T) {
	pipeline := NewPipeline(testConfig())

	doc := model.Document{
		Text: `<html><body><p>The WSIB denied the mental health claim due to discrimination based on disability.</p></body></html>`,
	}

	report, err := pipeline.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.HumanRightsBreaches) == 0 {
		t.Error("Expected the breach detected through the HTML wrapper")
	}
}
