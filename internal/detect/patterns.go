package detect

import (
	"fmt"

	"github.com/civicwatch/dossier/internal/model"
)

// repeatThreshold is the fixed minimum frequency for repetition patterns
const repeatThreshold = 2

// PatternDetector looks for repetition and multi-source corroboration
// across the extracted claims
type PatternDetector struct{}

// NewPatternDetector creates a new pattern detector
func NewPatternDetector() *PatternDetector {
	return &PatternDetector{}
}

// Detect computes claim-type and actor histograms plus a corroboration
// breadth signal. Output order is deterministic: claim types in taxonomy
// order, actors in first-seen order.
func (d *PatternDetector) Detect(claims []model.Claim, corroboration []model.CorroborationRecord) []model.Pattern {
	patterns := []model.Pattern{}

	typeCounts := make(map[model.ClaimType]int)
	for _, c := range claims {
		typeCounts[c.ClaimType]++
	}
	for _, claimType := range model.ClaimTypes {
		if count := typeCounts[claimType]; count >= repeatThreshold {
			patterns = append(patterns, model.Pattern{
				Kind:                  model.PatternRepeatedClaimType,
				Description:           fmt.Sprintf("%d separate %s claims in one document", count, claimType),
				Frequency:             count,
				RequiresInvestigation: true,
			})
		}
	}

	actorCounts := make(map[string]int)
	var actorOrder []string
	for _, c := range claims {
		if actorCounts[c.AllegedActor] == 0 {
			actorOrder = append(actorOrder, c.AllegedActor)
		}
		actorCounts[c.AllegedActor]++
	}
	for _, actor := range actorOrder {
		if count := actorCounts[actor]; count >= repeatThreshold {
			patterns = append(patterns, model.Pattern{
				Kind:                  model.PatternRepeatedActor,
				Description:           fmt.Sprintf("%s is the alleged actor in %d claims", actor, count),
				Frequency:             count,
				RequiresInvestigation: true,
			})
		}
	}

	multiSource := 0
	for _, rec := range corroboration {
		if len(rec.Sources) >= 2 {
			multiSource++
		}
	}
	if multiSource > 0 {
		patterns = append(patterns, model.Pattern{
			Kind:                  model.PatternMultiSource,
			Description:           fmt.Sprintf("%d claims corroborated by two or more independent sources", multiSource),
			Frequency:             multiSource,
			RequiresInvestigation: false,
		})
	}

	return patterns
}
