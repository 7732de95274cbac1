package corroborate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/civicwatch/dossier/internal/cache"
	"github.com/civicwatch/dossier/internal/model"
	"github.com/civicwatch/dossier/internal/util"
)

const registryMaxRetries = 3

// registrySleepFunc is the sleep function used between retries (injectable for tests)
var registrySleepFunc = time.Sleep

// Registry is the live corroborator. It probes configured authoritative
// registries for material matching each claim's alleged actor and type.
// Lookups are concurrent, rate-limited per domain, robots.txt-compliant,
// retried with backoff, and cached. Every failure mode degrades to a weak
// record flagged for further investigation.
type Registry struct {
	cfg        model.CorroborationConfig
	httpClient *http.Client
	robots     *util.RobotsChecker
	limits     *limiter
	store      cache.Cache // nil disables caching
}

// NewRegistry creates the live corroborator
func NewRegistry(cfg model.CorroborationConfig, store cache.Cache) *Registry {
	if cfg.Workers <= 0 {
		cfg.Workers = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Registry{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots: util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		limits: newLimiter(1, 2),
		store:  store,
	}
}

// Corroborate resolves one record per claim, in claim order. The error
// return is always nil: per-claim failures degrade instead of aborting.
func (r *Registry) Corroborate(ctx context.Context, claims []model.Claim, meta model.DocumentMeta) ([]model.CorroborationRecord, error) {
	records := make([]model.CorroborationRecord, len(claims))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, r.cfg.Workers)

	for i, claim := range claims {
		wg.Add(1)
		go func(idx int, c model.Claim) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				records[idx] = degradedRecord(c, "corroboration cancelled")
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			records[idx] = r.corroborateClaim(ctx, c)
		}(i, claim)
	}

	wg.Wait()
	return records, nil
}

func (r *Registry) corroborateClaim(ctx context.Context, claim model.Claim) model.CorroborationRecord {
	key := r.cacheKey(claim)
	if r.store != nil {
		if data, ok := r.store.Get(key); ok {
			var cached model.CorroborationRecord
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached
			}
		}
	}

	var sources []model.CorroborationSource
	for _, registry := range r.cfg.Registries {
		if source, ok := r.probe(ctx, registry, claim); ok {
			sources = append(sources, source)
		}
	}

	record := buildRecord(claim, sources)

	if r.store != nil {
		if data, err := json.Marshal(record); err == nil {
			_ = r.store.Set(key, data, 0)
		}
	}
	return record
}

// probe queries one registry for the claim. Any failure returns ok=false;
// the caller treats an unresponsive registry as an absent source.
func (r *Registry) probe(ctx context.Context, registry model.Registry, claim model.Claim) (model.CorroborationSource, bool) {
	queryURL := fmt.Sprintf("%s/search?q=%s", strings.TrimRight(registry.BaseURL, "/"),
		url.QueryEscape(claim.AllegedActor+" "+string(claim.ClaimType)))

	if err := r.limits.wait(ctx, queryURL); err != nil {
		return model.CorroborationSource{}, false
	}
	if allowed, crawlDelay, _ := r.robots.CanFetch(ctx, queryURL); !allowed {
		return model.CorroborationSource{}, false
	} else if crawlDelay > 0 {
		select {
		case <-ctx.Done():
			return model.CorroborationSource{}, false
		case <-time.After(crawlDelay):
		}
	}

	for attempt := 0; attempt < registryMaxRetries; attempt++ {
		status, err := r.head(ctx, queryURL)
		if err == nil && status >= 200 && status < 400 {
			return model.CorroborationSource{
				Name:       registry.Name,
				URL:        queryURL,
				Confidence: model.Confidence(registry.Confidence),
				Snippet:    fmt.Sprintf("registry responded %d for %q", status, claim.AllegedActor),
			}, true
		}
		if !retryable(status, err) {
			break
		}
		if attempt < registryMaxRetries-1 {
			registrySleepFunc(time.Duration(1<<uint(attempt)) * time.Second)
		}
	}
	return model.CorroborationSource{}, false
}

func (r *Registry) head(ctx context.Context, queryURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, queryURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", r.cfg.UserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode, nil
}

func retryable(status int, err error) bool {
	if status >= 500 && status < 600 {
		return true
	}
	if status == 429 {
		return true
	}
	if err != nil {
		s := strings.ToLower(err.Error())
		return strings.Contains(s, "timeout") ||
			strings.Contains(s, "connection refused") ||
			strings.Contains(s, "connection reset")
	}
	return false
}

// buildRecord grades the corroboration level from the responsive sources.
// Strong needs at least two sources with one high-confidence registry among
// them; anything responsive is at least moderate; nothing responsive
// degrades to weak.
func buildRecord(claim model.Claim, sources []model.CorroborationSource) model.CorroborationRecord {
	if len(sources) == 0 {
		return degradedRecord(claim, "no registry responded")
	}

	level := model.CorroborationModerate
	if len(sources) >= 2 {
		for _, s := range sources {
			if s.Confidence == model.ConfidenceHigh {
				level = model.CorroborationStrong
				break
			}
		}
	}

	return model.CorroborationRecord{
		ClaimRef:      claim.Text,
		Sources:       sources,
		Level:         level,
		NeedsFollowUp: level != model.CorroborationStrong,
	}
}

func (r *Registry) cacheKey(claim model.Claim) string {
	var bases []string
	for _, registry := range r.cfg.Registries {
		bases = append(bases, registry.BaseURL)
	}
	return cache.Key(claim.Text + "|" + strings.Join(bases, ","))
}
