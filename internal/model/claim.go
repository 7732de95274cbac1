package model

// Claim represents an extracted allegation sentence
type Claim struct {
	Text          string           `json:"text"`                 // The claim sentence itself
	ClaimType     ClaimType        `json:"claim_type"`           // Which claim taxonomy matched
	AllegedActor  string           `json:"alleged_actor"`        // First organization named in the sentence
	AllegedVictim string           `json:"alleged_victim"`       // First nearby person, or a generic phrase
	EventDate     string           `json:"event_date,omitempty"` // Year/date mentioned inside the sentence
	Evidence      string           `json:"evidence_snippet"`
	Strength      EvidenceStrength `json:"evidence_strength"`
}

// ClaimType categorizes the nature of the allegation
type ClaimType string

const (
	ClaimDenial         ClaimType = "denial"         // Benefits/services/claims denied or cut off
	ClaimFraud          ClaimType = "fraud"          // Falsification, misrepresentation
	ClaimAbuse          ClaimType = "abuse"          // Mistreatment, neglect
	ClaimViolation      ClaimType = "violation"      // Breach of law, policy, or rights
	ClaimDiscrimination ClaimType = "discrimination" // Unequal treatment on a protected ground
	ClaimCorruption     ClaimType = "corruption"     // Bribery, kickbacks, misuse of office
)

// ClaimTypes lists every claim taxonomy in evaluation order
var ClaimTypes = []ClaimType{
	ClaimDenial, ClaimFraud, ClaimAbuse,
	ClaimViolation, ClaimDiscrimination, ClaimCorruption,
}

// EvidenceStrength rates a claim purely from lexical cues in the
// surrounding text. No claim is High without a citation-style marker.
type EvidenceStrength string

const (
	StrengthLow    EvidenceStrength = "Low"
	StrengthMedium EvidenceStrength = "Medium"
	StrengthHigh   EvidenceStrength = "High"
)

// CorroborationLevel grades how well a claim is backed by external sources
type CorroborationLevel string

const (
	CorroborationWeak     CorroborationLevel = "weak"
	CorroborationModerate CorroborationLevel = "moderate"
	CorroborationStrong   CorroborationLevel = "strong"
)

// CorroborationSource is one external source consulted for a claim
type CorroborationSource struct {
	Name       string     `json:"name"`
	URL        string     `json:"url,omitempty"`
	Confidence Confidence `json:"confidence"`
	Snippet    string     `json:"snippet,omitempty"`
}

// CorroborationRecord is the opaque result of corroborating one claim.
// Field names are load-bearing: downstream scoring reads corroboration_level
// and source counts.
type CorroborationRecord struct {
	ClaimRef      string                `json:"claim_ref"` // Claim text the record belongs to
	Sources       []CorroborationSource `json:"sources"`
	Level         CorroborationLevel    `json:"corroboration_level"`
	NeedsFollowUp bool                  `json:"needs_further_investigation"`
}
