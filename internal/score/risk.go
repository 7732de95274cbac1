package score

import (
	"fmt"
	"math"

	"github.com/civicwatch/dossier/internal/model"
)

// Sub-score weights for the overall risk score. These, together with the
// priority thresholds below, are the scoring contract consumed by
// schedulers and renderers.
const (
	weightLegal          = 0.20
	weightHumanRights    = 0.25
	weightConstitutional = 0.25
	weightCorruption     = 0.20
	weightVulnerable     = 0.10
)

// Priority thresholds over the overall score and two severity sub-scores
const (
	criticalOverall        = 70
	criticalConstitutional = 80
	criticalCorruption     = 70
	highOverall            = 50
	mediumOverall          = 30
)

// RiskScorer converts classification outputs into five sub-scores and a
// weighted overall score with a priority tier
type RiskScorer struct{}

// NewRiskScorer creates a new risk scorer
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Inputs collects everything the scorer reads
type Inputs struct {
	Claims                 []model.Claim
	Corroboration          []model.CorroborationRecord
	CorruptionFindings     []model.CorruptionFinding
	ConstitutionViolations []model.ConstitutionViolation
	HumanRightsBreaches    []model.HumanRightsBreach
	UNCRPDBreaches         []model.UNCRPDBreach
	ImpactedGroups         []model.ImpactedGroup
}

// Calculate produces the full risk assessment. Every sub-score is
// independently capped at 100 and the formulas are reproduced verbatim in
// the explanation so the result stays auditable.
func (s *RiskScorer) Calculate(in Inputs) model.RiskAssessment {
	legal := s.legalRisk(in.Claims, in.Corroboration)
	humanRights := capAt100(25 * len(in.HumanRightsBreaches))
	constitutional := s.constitutionalSeverity(in.ConstitutionViolations)
	corruption := capAt100(30 * len(in.CorruptionFindings))
	vulnerable := s.vulnerableHarm(in.ImpactedGroups, in.UNCRPDBreaches)

	overall := int(math.Round(
		weightLegal*float64(legal) +
			weightHumanRights*float64(humanRights) +
			weightConstitutional*float64(constitutional) +
			weightCorruption*float64(corruption) +
			weightVulnerable*float64(vulnerable)))

	priority := Priority(overall, constitutional, corruption)

	return model.RiskAssessment{
		LegalRisk:              legal,
		HumanRightsImpact:      humanRights,
		ConstitutionalSeverity: constitutional,
		CorruptionRisk:         corruption,
		VulnerableHarm:         vulnerable,
		OverallScore:           overall,
		Priority:               priority,
		Explanation: fmt.Sprintf(
			"overall %d/100 = 0.20*legal(%d) + 0.25*human_rights(%d) + 0.25*constitutional(%d) + 0.20*corruption(%d) + 0.10*vulnerable(%d); priority %s",
			overall, legal, humanRights, constitutional, corruption, vulnerable, priority),
	}
}

// legalRisk = min(60, 20*criticalClaims) + min(40, 10*strongCorroborations).
// Critical claims are fraud, abuse, violation, and denial claims.
func (s *RiskScorer) legalRisk(claims []model.Claim, corroboration []model.CorroborationRecord) int {
	criticalClaims := 0
	for _, c := range claims {
		switch c.ClaimType {
		case model.ClaimFraud, model.ClaimAbuse, model.ClaimViolation, model.ClaimDenial:
			criticalClaims++
		}
	}

	strong := 0
	for _, rec := range corroboration {
		if rec.Level == model.CorroborationStrong {
			strong++
		}
	}

	return capAt(60, 20*criticalClaims) + capAt(40, 10*strong)
}

// constitutionalSeverity = min(100, 30*critical + 15*total)
func (s *RiskScorer) constitutionalSeverity(violations []model.ConstitutionViolation) int {
	critical := 0
	for _, v := range violations {
		if v.Severity == model.SeverityCritical {
			critical++
		}
	}
	return capAt100(30*critical + 15*len(violations))
}

// vulnerableHarm = min(100, 25*impactedGroups), then critical UNCRPD
// breaches fill the remaining headroom at 20 points each
func (s *RiskScorer) vulnerableHarm(groups []model.ImpactedGroup, breaches []model.UNCRPDBreach) int {
	harm := capAt100(25 * len(groups))

	criticalUNCRPD := 0
	for _, b := range breaches {
		if b.Severity == model.SeverityCritical {
			criticalUNCRPD++
		}
	}
	headroom := 100 - harm
	harm += capAt(headroom, 20*criticalUNCRPD)

	return harm
}

// Priority derives the tier from the overall score and the two severity
// sub-scores. It is pure and monotonic in all three inputs.
func Priority(overall, constitutional, corruption int) model.Priority {
	switch {
	case overall >= criticalOverall ||
		constitutional >= criticalConstitutional ||
		corruption >= criticalCorruption:
		return model.PriorityCritical
	case overall >= highOverall:
		return model.PriorityHigh
	case overall >= mediumOverall:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

func capAt(limit, value int) int {
	if value > limit {
		return limit
	}
	return value
}

func capAt100(value int) int {
	return capAt(100, value)
}
