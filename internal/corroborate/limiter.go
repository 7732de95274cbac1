package corroborate

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// limiter applies per-registry-domain rate limiting so corroboration
// lookups stay polite toward the registries they probe
type limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

func newLimiter(requestsPerSecond float64, burst int) *limiter {
	if burst <= 0 {
		burst = 2
	}
	return &limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// wait blocks until the registry's domain has clearance
func (l *limiter) wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return l.forDomain(parsed.Host).Wait(ctx)
}

func (l *limiter) forDomain(domain string) *rate.Limiter {
	l.mu.RLock()
	lim, exists := l.limiters[domain]
	l.mu.RUnlock()
	if exists {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, exists := l.limiters[domain]; exists {
		return lim
	}
	lim = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[domain] = lim
	return lim
}
