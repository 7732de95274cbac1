package model

import "time"

// Version is stamped into every report's processing metadata
const Version = "0.3.1"

// Priority is the overall report tier derived from the risk assessment
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// RiskAssessment holds the five sub-scores and the weighted overall score.
// Field names are the contract read by schedulers and renderers.
type RiskAssessment struct {
	LegalRisk              int      `json:"legal_risk"`              // 0-100
	HumanRightsImpact      int      `json:"human_rights_impact"`     // 0-100
	ConstitutionalSeverity int      `json:"constitutional_severity"` // 0-100
	CorruptionRisk         int      `json:"corruption_risk"`         // 0-100
	VulnerableHarm         int      `json:"vulnerable_harm"`         // 0-100
	OverallScore           int      `json:"overall_risk_score"`      // 0-100, weighted
	Priority               Priority `json:"priority"`
	Explanation            string   `json:"explanation"`
}

// ActionPriority orders recommended actions for a caller
type ActionPriority string

const (
	ActionImmediate ActionPriority = "immediate"
	ActionHigh      ActionPriority = "high"
	ActionMedium    ActionPriority = "medium"
)

// RecommendedAction is one follow-up step generated from threshold rules
type RecommendedAction struct {
	ActionType      string         `json:"action_type"` // "foi_request", "legal_action", ...
	Description     string         `json:"description"`
	Target          string         `json:"target"`
	Priority        ActionPriority `json:"priority"`
	RelevantParties []string       `json:"relevant_parties"`
	NextSteps       []string       `json:"next_steps"`
}

// Provenance records where the analyzed document came from
type Provenance struct {
	SourceType  SourceType        `json:"source_type"`
	SourceURL   string            `json:"source_url,omitempty"`
	FetchedAt   time.Time         `json:"fetched_at"`
	RawMetadata map[string]string `json:"raw_metadata,omitempty"`
}

// EvidenceBundle carries everything a reader needs to verify findings
// against the source text
type EvidenceBundle struct {
	Entities      Entities              `json:"entities"`
	Relationships []Relationship        `json:"relationships"`
	Claims        []Claim               `json:"claims"`
	Corroboration []CorroborationRecord `json:"corroboration"`
	Provenance    Provenance            `json:"provenance"`
}

// ProcessingMeta is the only part of a report that varies between
// otherwise identical runs
type ProcessingMeta struct {
	DurationMS  int64     `json:"duration_ms"`
	ProcessedAt time.Time `json:"processed_at"`
	Version     string    `json:"version"`
}

// Report is the aggregate analysis result. It is assembled once per
// document, never mutated afterwards, and round-trips through JSON
// without information loss.
type Report struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Date         string       `json:"date,omitempty"`
	Author       string       `json:"author,omitempty"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	Language     string       `json:"language"`

	CorruptionFindings     []CorruptionFinding     `json:"corruption_findings"`
	ConstitutionViolations []ConstitutionViolation `json:"constitution_violations"`
	HumanRightsBreaches    []HumanRightsBreach     `json:"human_rights_breaches"`
	UNCRPDBreaches         []UNCRPDBreach          `json:"uncrpd_breaches"`
	ImpactedGroups         []ImpactedGroup         `json:"impacted_groups"`

	Evidence         EvidenceBundle      `json:"evidence"`
	ActorsInvolved   []string            `json:"actors_involved"`
	PatternsDetected []Pattern           `json:"patterns_detected"`
	RiskAssessment   RiskAssessment      `json:"risk_assessment"`
	Recommended      []RecommendedAction `json:"recommended_actions"`

	Processing ProcessingMeta `json:"processing"`

	LLM *LLMBrief `json:"llm,omitempty"` // Optional narrative brief, never read by scoring
}

// LLMBrief is an optional model-written narrative attached after scoring.
// It never feeds back into findings, scores, or actions.
type LLMBrief struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	BriefMD  string   `json:"brief_md,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
