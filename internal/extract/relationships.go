package extract

import (
	"strings"

	"github.com/civicwatch/dossier/internal/model"
)

// RelationshipMapper links co-occurring people and organizations into weak
// associative edges. Co-occurrence is purely lexical; these are leads for
// an investigator, not verified relationships.
type RelationshipMapper struct{}

// NewRelationshipMapper creates a new relationship mapper
func NewRelationshipMapper() *RelationshipMapper {
	return &RelationshipMapper{}
}

// Map builds association edges from entities that share a sentence.
// A person-organization pair seen in two or more sentences is graded high,
// a single shared sentence medium; organization pairs are always low.
func (m *RelationshipMapper) Map(text string, entities model.Entities) []model.Relationship {
	sentences := SplitSentences(text)

	type pairEvidence struct {
		count    int
		sentence string
	}
	pairs := make(map[[2]string]*pairEvidence)
	var order [][2]string

	record := func(from, to, sentence string) {
		key := [2]string{from, to}
		if ev, ok := pairs[key]; ok {
			ev.count++
			return
		}
		pairs[key] = &pairEvidence{count: 1, sentence: sentence}
		order = append(order, key)
	}

	for _, sentence := range sentences {
		var people, orgs []string
		for _, p := range entities.People {
			if strings.Contains(sentence, p.FullName) {
				people = append(people, p.FullName)
			}
		}
		for _, o := range entities.Organizations {
			if strings.Contains(sentence, o.Name) {
				orgs = append(orgs, o.Name)
			}
		}

		for _, person := range people {
			for _, org := range orgs {
				record(person, org, sentence)
			}
		}
		for i := 0; i < len(orgs); i++ {
			for j := i + 1; j < len(orgs); j++ {
				record(orgs[i], orgs[j], sentence)
			}
		}
	}

	relationships := []model.Relationship{}
	for _, key := range order {
		ev := pairs[key]
		confidence := model.ConfidenceMedium
		if ev.count >= 2 {
			confidence = model.ConfidenceHigh
		}
		// Org-to-org edges stay low: shared sentences between institutions
		// are routine in coverage of the same matter.
		if isOrg(key[0], entities) {
			confidence = model.ConfidenceLow
		}

		relationships = append(relationships, model.Relationship{
			Kind:       "association",
			FromEntity: key[0],
			ToEntity:   key[1],
			Confidence: confidence,
			Evidence:   ev.sentence,
		})
	}

	return relationships
}

func isOrg(name string, entities model.Entities) bool {
	for _, o := range entities.Organizations {
		if o.Name == name {
			return true
		}
	}
	return false
}
