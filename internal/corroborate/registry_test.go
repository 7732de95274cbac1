package corroborate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/civicwatch/dossier/internal/cache"
	"github.com/civicwatch/dossier/internal/model"
)

func testClaim() model.Claim {
	return model.Claim{
		Text:         "The WSIB denied the compensation claim without any review.",
		ClaimType:    model.ClaimDenial,
		AllegedActor: "WSIB",
	}
}

func registryConfig(registries ...model.Registry) model.CorroborationConfig {
	return model.CorroborationConfig{
		Mode:       "registry",
		Timeout:    5 * time.Second,
		Workers:    4,
		UserAgent:  "dossier-test",
		Registries: registries,
	}
}

// noSleep removes the retry backoff for the duration of a test
func noSleep(t *testing.T) {
	t.Helper()
	original := registrySleepFunc
	registrySleepFunc = func(time.Duration) {}
	t.Cleanup(func() { registrySleepFunc = original })
}

func TestRegistry_TwoRespondingRegistriesGradeStrong(t *testing.T) {
	noSleep(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	corroborator := NewRegistry(registryConfig(
		model.Registry{Name: "primary", BaseURL: server.URL, Confidence: "high"},
		model.Registry{Name: "secondary", BaseURL: server.URL, Confidence: "medium"},
	), nil)

	records, err := corroborator.Corroborate(context.Background(), []model.Claim{testClaim()}, model.DocumentMeta{})
	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	record := records[0]
	if len(record.Sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d: %v", len(record.Sources), record.Sources)
	}
	if record.Level != model.CorroborationStrong {
		t.Errorf("Expected strong corroboration, got %s", record.Level)
	}
	if record.NeedsFollowUp {
		t.Error("Expected no follow-up flag on a strong record")
	}
}

func TestRegistry_UnresponsiveRegistryDegrades(t *testing.T) {
	noSleep(t)

	// Pointing at a closed server exercises the connection-failure path
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	corroborator := NewRegistry(registryConfig(
		model.Registry{Name: "gone", BaseURL: baseURL, Confidence: "high"},
	), nil)

	records, err := corroborator.Corroborate(context.Background(), []model.Claim{testClaim()}, model.DocumentMeta{})
	if err != nil {
		t.Fatalf("Expected nil error even on lookup failure, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.Level != model.CorroborationWeak {
		t.Errorf("Expected weak corroboration, got %s", record.Level)
	}
	if !record.NeedsFollowUp {
		t.Error("Expected the follow-up flag on a degraded record")
	}
	if len(record.Sources) != 1 || record.Sources[0].Name != "unverified" {
		t.Errorf("Expected the unverified placeholder source, got %v", record.Sources)
	}
}

func TestRegistry_CacheShortCircuitsProbes(t *testing.T) {
	noSleep(t)

	var heads int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if r.Method == http.MethodHead {
			atomic.AddInt32(&heads, 1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := cache.NewMemory(time.Minute, time.Minute)
	corroborator := NewRegistry(registryConfig(
		model.Registry{Name: "primary", BaseURL: server.URL, Confidence: "high"},
	), store)

	claims := []model.Claim{testClaim()}
	if _, err := corroborator.Corroborate(context.Background(), claims, model.DocumentMeta{}); err != nil {
		t.Fatal(err)
	}
	after := atomic.LoadInt32(&heads)
	if after == 0 {
		t.Fatal("Expected at least one probe on a cold cache")
	}

	if _, err := corroborator.Corroborate(context.Background(), claims, model.DocumentMeta{}); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&heads) != after {
		t.Errorf("Expected the second run served from cache, probes went %d -> %d", after, atomic.LoadInt32(&heads))
	}
}

func TestRegistry_RecordsStayInClaimOrder(t *testing.T) {
	noSleep(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	corroborator := NewRegistry(registryConfig(
		model.Registry{Name: "primary", BaseURL: server.URL, Confidence: "medium"},
	), nil)

	claims := []model.Claim{
		{Text: "claim one", ClaimType: model.ClaimDenial, AllegedActor: "a"},
		{Text: "claim two", ClaimType: model.ClaimFraud, AllegedActor: "b"},
		{Text: "claim three", ClaimType: model.ClaimAbuse, AllegedActor: "c"},
	}

	records, err := corroborator.Corroborate(context.Background(), claims, model.DocumentMeta{})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	for i, record := range records {
		if record.ClaimRef != claims[i].Text {
			t.Errorf("Record %d: expected %q, got %q", i, claims[i].Text, record.ClaimRef)
		}
	}
}

func TestBuildRecord_Grading(t *testing.T) {
	claim := testClaim()
	high := model.CorroborationSource{Name: "a", Confidence: model.ConfidenceHigh}
	medium := model.CorroborationSource{Name: "b", Confidence: model.ConfidenceMedium}

	tests := []struct {
		name          string
		sources       []model.CorroborationSource
		level         model.CorroborationLevel
		needsFollowUp bool
	}{
		{"no sources", nil, model.CorroborationWeak, true},
		{"one source", []model.CorroborationSource{medium}, model.CorroborationModerate, true},
		{"two sources, one high", []model.CorroborationSource{high, medium}, model.CorroborationStrong, false},
		{"two medium sources", []model.CorroborationSource{medium, medium}, model.CorroborationModerate, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := buildRecord(claim, tt.sources)
			if record.Level != tt.level {
				t.Errorf("Expected level %s, got %s", tt.level, record.Level)
			}
			if record.NeedsFollowUp != tt.needsFollowUp {
				t.Errorf("Expected needsFollowUp=%v, got %v", tt.needsFollowUp, record.NeedsFollowUp)
			}
			if record.ClaimRef != claim.Text {
				t.Errorf("Expected claim ref %q, got %q", claim.Text, record.ClaimRef)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		err      error
		expected bool
	}{
		{"server error", 500, nil, true},
		{"bad gateway", 502, nil, true},
		{"rate limited", 429, nil, true},
		{"success", 200, nil, false},
		{"not found", 404, nil, false},
		{"timeout error", 0, errors.New("context deadline exceeded (Client.Timeout exceeded)"), true},
		{"connection refused", 0, errors.New("dial tcp: connection refused"), true},
		{"other error", 0, errors.New("unsupported protocol scheme"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryable(tt.status, tt.err); got != tt.expected {
				t.Errorf("retryable(%d, %v) = %v, expected %v", tt.status, tt.err, got, tt.expected)
			}
		})
	}
}
