package extract

import (
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// maxClaimsPerType bounds the claims extracted for each taxonomy
const maxClaimsPerType = 3

// ClaimExtractor finds allegation sentences matching one of six claim
// taxonomies and rates each claim's evidentiary strength from lexical cues
type ClaimExtractor struct{}

// NewClaimExtractor creates a new claim extractor
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{}
}

// claimKeywords is the per-taxonomy keyword table, matched against the
// lowercased sentence
var claimKeywords = map[model.ClaimType][]string{
	model.ClaimDenial: {
		"denied", "refused", "rejected the claim", "cut off", "terminated the benefit",
		"withheld",
	},
	model.ClaimFraud: {
		"fraud", "falsified", "misrepresent", "fabricated", "doctored",
	},
	model.ClaimAbuse: {
		"abuse", "mistreat", "neglect", "assault",
	},
	model.ClaimViolation: {
		"violat", "breach", "contraven", "infringe",
	},
	model.ClaimDiscrimination: {
		"discriminat", "unequal treatment", "treated differently", "singled out",
	},
	model.ClaimCorruption: {
		"bribe", "kickback", "corrupt", "embezzl", "misappropriat",
	},
}

// citationMarkers upgrade a claim to High strength
var citationMarkers = []string{
	"according to", "report", "data show", "records show", "documents show",
	"study found", "audit found",
}

// allegationMarkers upgrade a claim to Medium strength
var allegationMarkers = []string{
	"alleg", "claim", "suggest", "accuse", "reportedly",
}

// Extract scans the text for each claim taxonomy, capping matches per type.
// Actor/victim attribution uses the already extracted entities.
func (e *ClaimExtractor) Extract(text string, entities model.Entities) []model.Claim {
	sentences := SplitSentences(text)
	claims := []model.Claim{}

	for _, claimType := range model.ClaimTypes {
		count := 0
		for _, sentence := range sentences {
			if count >= maxClaimsPerType {
				break
			}
			lower := strings.ToLower(sentence)
			if !matchesAny(lower, claimKeywords[claimType]) {
				continue
			}

			claims = append(claims, model.Claim{
				Text:          sentence,
				ClaimType:     claimType,
				AllegedActor:  actorIn(sentence, entities),
				AllegedVictim: victimIn(sentence, entities),
				EventDate:     yearRe.FindString(sentence),
				Evidence:      ContextWindow(text, sentence),
				Strength:      strengthOf(lower),
			})
			count++
		}
	}

	return claims
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// strengthOf rates a claim from lexical cues alone. A claim is never High
// without a citation-style marker in the sentence.
func strengthOf(lower string) model.EvidenceStrength {
	if matchesAny(lower, citationMarkers) {
		return model.StrengthHigh
	}
	if matchesAny(lower, allegationMarkers) {
		return model.StrengthMedium
	}
	return model.StrengthLow
}

// actorIn returns the first extracted organization named in the sentence
func actorIn(sentence string, entities model.Entities) string {
	for _, org := range entities.Organizations {
		if strings.Contains(sentence, org.Name) {
			return org.Name
		}
	}
	return "unidentified organization"
}

// victimIn returns the first extracted person named in the sentence,
// falling back to a generic phrase
func victimIn(sentence string, entities model.Entities) string {
	for _, person := range entities.People {
		if strings.Contains(sentence, person.FullName) {
			return person.FullName
		}
	}
	return "affected individuals"
}
