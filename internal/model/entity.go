package model

// Person is a candidate individual mentioned in the document
type Person struct {
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"` // Title or role if one precedes/follows the name
	Context  string `json:"context_snippet"`
}

// Organization is a named agency, company, or institution
type Organization struct {
	Name     string `json:"name"`
	Category string `json:"category"` // "government", "corporate", "tribunal", "unknown"
	Context  string `json:"context_snippet"`
}

// MoneyAmount is a currency mention, with optional magnitude word
type MoneyAmount struct {
	Amount  string `json:"amount"`          // Literal matched amount, e.g. "$4.2"
	Scale   string `json:"scale,omitempty"` // "million", "billion", "thousand" if present
	Context string `json:"context_snippet"`
}

// DateMention is a year or full date found in the text
type DateMention struct {
	Value   string `json:"value"`
	Context string `json:"context_snippet"`
}

// Entities bundles every extracted entity category. Identity within one
// report is by exact matched text; each category is deduplicated and capped.
type Entities struct {
	People        []Person       `json:"people"`
	Organizations []Organization `json:"organizations"`
	Amounts       []MoneyAmount  `json:"amounts"`
	Dates         []DateMention  `json:"dates"`
}

// Confidence grades an associative relationship
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Relationship is a weak associative edge between two co-occurring entities
type Relationship struct {
	Kind       string     `json:"kind"` // Always "association"
	FromEntity string     `json:"from_entity"`
	ToEntity   string     `json:"to_entity"`
	Confidence Confidence `json:"confidence"`
	Evidence   string     `json:"evidence_snippet"`
}
