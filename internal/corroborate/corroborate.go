// Package corroborate implements the corroboration port: the single
// external-facing seam of the analysis pipeline. The pipeline treats its
// result as opaque records; only the record shape is load-bearing, because
// downstream scoring reads corroboration_level and source counts.
package corroborate

import (
	"context"

	"github.com/civicwatch/dossier/internal/model"
)

// Corroborator cross-references claims against external sources, returning
// exactly one record per claim in claim order. Implementations must degrade
// rather than fail: a lookup error becomes a weak record flagged for
// further investigation, never a returned error for that claim.
type Corroborator interface {
	Corroborate(ctx context.Context, claims []model.Claim, meta model.DocumentMeta) ([]model.CorroborationRecord, error)
}

// degradedRecord is the fallback for any claim whose corroboration failed
// or timed out
func degradedRecord(claim model.Claim, reason string) model.CorroborationRecord {
	return model.CorroborationRecord{
		ClaimRef: claim.Text,
		Sources: []model.CorroborationSource{{
			Name:       "unverified",
			Confidence: model.ConfidenceLow,
			Snippet:    reason,
		}},
		Level:         model.CorroborationWeak,
		NeedsFollowUp: true,
	}
}
