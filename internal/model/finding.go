package model

// FindingKind discriminates the finding variants so scorers and the action
// recommender can switch exhaustively instead of inspecting types
type FindingKind string

const (
	KindCorruption    FindingKind = "corruption"
	KindConstitution  FindingKind = "constitution_violation"
	KindHumanRights   FindingKind = "human_rights_breach"
	KindUNCRPD        FindingKind = "uncrpd_breach"
	KindImpactedGroup FindingKind = "impacted_group"
)

// Severity is a fixed property of the matched catalog rule, never computed
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// CorruptionFinding is emitted by the corruption indicator catalog
type CorruptionFinding struct {
	Kind             FindingKind `json:"kind"`
	Type             string      `json:"type"` // "bribery", "procurement_irregularity", ...
	Severity         Severity    `json:"severity"`
	Evidence         string      `json:"evidence_snippet"`
	EntitiesInvolved []string    `json:"entities_involved"`
	OccurrenceCount  int         `json:"occurrence_count"`
}

// ConstitutionViolation is emitted by the Charter catalog
type ConstitutionViolation struct {
	Kind          FindingKind `json:"kind"`
	Section       string      `json:"section"` // e.g. "Charter Section 15"
	Right         string      `json:"right"`
	ViolationType string      `json:"violation_type"`
	Severity      Severity    `json:"severity"`
	LegalBasis    string      `json:"legal_basis"`
	Evidence      string      `json:"evidence_snippet"`
}

// HumanRightsBreach is emitted by the human-rights-law catalog
type HumanRightsBreach struct {
	Kind              FindingKind `json:"kind"`
	Legislation       string      `json:"legislation"`
	Ground            string      `json:"ground"` // Protected ground, e.g. "disability"
	Severity          Severity    `json:"severity"`
	ComplaintDeadline string      `json:"complaint_deadline"`
	Evidence          string      `json:"evidence_snippet"`
}

// UNCRPDBreach is emitted by the disability-convention catalog
type UNCRPDBreach struct {
	Kind     FindingKind `json:"kind"`
	Article  string      `json:"article"` // e.g. "Article 25"
	Right    string      `json:"right"`
	Severity Severity    `json:"severity"`
	Evidence string      `json:"evidence_snippet"`
}

// ImpactedGroup is emitted by the vulnerable-population catalog
type ImpactedGroup struct {
	Kind              FindingKind `json:"kind"`
	Group             string      `json:"group"`
	HarmType          string      `json:"harm_type"`
	Intersectionality []string    `json:"intersectionality,omitempty"` // Other groups named in the same document
	Evidence          string      `json:"evidence_snippet"`
}

// PatternKind classifies a detected cross-claim pattern
type PatternKind string

const (
	PatternRepeatedClaimType PatternKind = "repeatedClaimType"
	PatternRepeatedActor     PatternKind = "repeatedActor"
	PatternMultiSource       PatternKind = "multiSourceCorroboration"
)

// Pattern is a repetition or corroboration signal across extracted claims
type Pattern struct {
	Kind                  PatternKind `json:"kind"`
	Description           string      `json:"description"`
	Frequency             int         `json:"frequency"`
	RequiresInvestigation bool        `json:"requires_investigation"`
}
