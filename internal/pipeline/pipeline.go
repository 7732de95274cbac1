package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/civicwatch/dossier/internal/action"
	"github.com/civicwatch/dossier/internal/cache"
	"github.com/civicwatch/dossier/internal/catalog"
	"github.com/civicwatch/dossier/internal/corroborate"
	"github.com/civicwatch/dossier/internal/detect"
	"github.com/civicwatch/dossier/internal/extract"
	"github.com/civicwatch/dossier/internal/llm"
	"github.com/civicwatch/dossier/internal/model"
	"github.com/civicwatch/dossier/internal/score"
)

// Pipeline orchestrates one document analysis: extraction, corroboration,
// classification, scoring, and action generation. It holds no state across
// calls; every invocation builds a fresh report.
type Pipeline struct {
	metadata      *extract.MetadataExtractor
	entities      *extract.EntityExtractor
	relationships *extract.RelationshipMapper
	claims        *extract.ClaimExtractor
	corroborator  corroborate.Corroborator
	patterns      *detect.PatternDetector
	scorer        *score.RiskScorer
	recommender   *action.Recommender
	renderer      *Renderer
	briefer       *llm.Briefer // nil or disabled unless configured
	config        *model.Config
}

// NewPipeline wires the pipeline from configuration. The corroborator is
// chosen by mode: "registry" probes live sources, anything else uses the
// deterministic offline stub.
func NewPipeline(cfg *model.Config) *Pipeline {
	var corroborator corroborate.Corroborator = corroborate.NewLexical()
	if cfg.Corroboration.Mode == "registry" {
		var store cache.Cache
		if cfg.Cache.Enabled {
			store = cache.NewLayered(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		}
		corroborator = corroborate.NewRegistry(cfg.Corroboration, store)
	}

	var briefer *llm.Briefer
	if cfg.LLM.Provider != "" {
		b, err := llm.NewBriefer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			briefer = b
		}
	}

	return &Pipeline{
		metadata:      extract.NewMetadataExtractor(),
		entities:      extract.NewEntityExtractor(),
		relationships: extract.NewRelationshipMapper(),
		claims:        extract.NewClaimExtractor(),
		corroborator:  corroborator,
		patterns:      detect.NewPatternDetector(),
		scorer:        score.NewRiskScorer(),
		recommender:   action.NewRecommender(),
		renderer:      NewRenderer(cfg.Output.IncludeFooter),
		briefer:       briefer,
		config:        cfg,
	}
}

// NewPipelineWithCorroborator wires the pipeline around a caller-supplied
// corroborator. Used by tests and by callers that bring their own port.
func NewPipelineWithCorroborator(cfg *model.Config, c corroborate.Corroborator) *Pipeline {
	p := NewPipeline(cfg)
	p.corroborator = c
	return p
}

// Analyze runs the full pipeline on one document. The only error it returns
// is an *model.InputError from validation; every later stage degrades to
// empty or weak results instead of failing.
func (p *Pipeline) Analyze(ctx context.Context, doc model.Document) (*model.Report, error) {
	if err := model.ValidateDocument(doc); err != nil {
		return nil, err
	}

	started := time.Now()
	text := extract.NormalizeText(doc.Text)

	meta := p.metadata.Extract(doc, text)
	entities := p.entities.Extract(text)
	relationships := p.relationships.Map(text, entities)
	claims := p.claims.Extract(text, entities)

	corroboration := p.corroborate(ctx, claims, meta)

	corruption := catalog.DetectCorruption(text, entities)
	constitution := catalog.DetectConstitution(text)
	humanRights := catalog.DetectHumanRights(text)
	uncrpd := catalog.DetectUNCRPD(text)
	vulnerable := catalog.DetectVulnerable(text)

	patterns := p.patterns.Detect(claims, corroboration)

	risk := p.scorer.Calculate(score.Inputs{
		Claims:                 claims,
		Corroboration:          corroboration,
		CorruptionFindings:     corruption,
		ConstitutionViolations: constitution,
		HumanRightsBreaches:    humanRights,
		UNCRPDBreaches:         uncrpd,
		ImpactedGroups:         vulnerable,
	})

	primaryOrg := ""
	if len(entities.Organizations) > 0 {
		primaryOrg = entities.Organizations[0].Name
	}
	actions := p.recommender.Recommend(action.Inputs{
		Risk:                   risk,
		CorruptionFindings:     corruption,
		ConstitutionViolations: constitution,
		HumanRightsBreaches:    humanRights,
		UNCRPDBreaches:         uncrpd,
		PrimaryOrganization:    primaryOrg,
	})

	report := &model.Report{
		ID:           documentID(doc),
		Title:        meta.Title,
		Date:         meta.Date,
		Author:       meta.Author,
		Jurisdiction: meta.Jurisdiction,
		Language:     meta.Language,

		CorruptionFindings:     corruption,
		ConstitutionViolations: constitution,
		HumanRightsBreaches:    humanRights,
		UNCRPDBreaches:         uncrpd,
		ImpactedGroups:         vulnerable,

		Evidence: model.EvidenceBundle{
			Entities:      entities,
			Relationships: relationships,
			Claims:        claims,
			Corroboration: corroboration,
			Provenance: model.Provenance{
				SourceType:  doc.SourceType,
				SourceURL:   doc.SourceURL,
				FetchedAt:   doc.FetchedAt,
				RawMetadata: doc.RawMetadata,
			},
		},
		ActorsInvolved:   actorsInvolved(entities),
		PatternsDetected: patterns,
		RiskAssessment:   risk,
		Recommended:      actions,

		Processing: model.ProcessingMeta{
			DurationMS:  time.Since(started).Milliseconds(),
			ProcessedAt: time.Now().UTC(),
			Version:     model.Version,
		},
	}

	// The brief is generated after scoring and never feeds back into it
	if p.briefer.IsEnabled() {
		brief, err := p.briefer.Generate(ctx, *report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM brief generation failed: %v\n", err)
		} else if brief != nil {
			report.LLM = brief
		}
	}

	return report, nil
}

// corroborate calls the port with a bounded timeout. A failure or timeout
// degrades every claim to a weak record instead of aborting the analysis.
func (p *Pipeline) corroborate(ctx context.Context, claims []model.Claim, meta model.DocumentMeta) []model.CorroborationRecord {
	timeout := p.config.Corroboration.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	corroborationCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	records, err := p.corroborator.Corroborate(corroborationCtx, claims, meta)
	if err != nil || len(records) != len(claims) {
		records = make([]model.CorroborationRecord, 0, len(claims))
		for _, claim := range claims {
			records = append(records, model.CorroborationRecord{
				ClaimRef: claim.Text,
				Sources: []model.CorroborationSource{{
					Name:       "unverified",
					Confidence: model.ConfidenceLow,
					Snippet:    "corroboration unavailable",
				}},
				Level:         model.CorroborationWeak,
				NeedsFollowUp: true,
			})
		}
	}
	return records
}

// documentID derives a stable id from the document itself, so re-analyzing
// an unchanged document yields an identical report
func documentID(doc model.Document) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(doc.SourceURL+"\n"+doc.Text)).String()
}

// actorsInvolved lists every distinct organization then person name
func actorsInvolved(entities model.Entities) []string {
	actors := []string{}
	for _, org := range entities.Organizations {
		actors = append(actors, org.Name)
	}
	for _, person := range entities.People {
		actors = append(actors, person.FullName)
	}
	return actors
}
