package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/recipe-finder/internal/config"
)

// fakeClock is a manually advanced clock for deterministic refill tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(cfg *Config) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.Now
	return l, clock
}

func TestLimiter_Allow(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/api/recipes"
	method := "GET"

	// Should allow requests up to limit
	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	// 11th request should be denied
	allowed, info := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", info.Remaining)
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
	if !info.ResetTime.After(limiter.now()) {
		t.Error("Expected reset time in the future")
	}
}

func TestLimiter_Refill(t *testing.T) {
	// 60 per minute refills one token per second
	limiter, clock := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  60,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 60; i++ {
		limiter.Allow("c", "/api/recipes", "GET")
	}
	if allowed, _ := limiter.Allow("c", "/api/recipes", "GET"); allowed {
		t.Fatal("Expected bucket to be exhausted")
	}

	clock.Advance(time.Second)

	if allowed, _ := limiter.Allow("c", "/api/recipes", "GET"); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if allowed, _ := limiter.Allow("c", "/api/recipes", "GET"); allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/api/recipes", "GET"); !allowed {
			t.Fatalf("Expected whitelisted request %d to be allowed", i+1)
		}
	}
	if limiter.Len() != 0 {
		t.Errorf("Expected no buckets for whitelisted client, got %d", limiter.Len())
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"10.0.0.1": true},
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("10.0.0.1", "/health", "GET"); allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		if allowed, _ := limiter.Allow("client", "/api/survey", "POST"); !allowed {
			t.Fatal("Expected all requests to be allowed when disabled")
		}
	}
}

func TestLimiter_EndpointSpecificLimits(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	// POST /api/survey has burst 5
	for i := 0; i < 5; i++ {
		if allowed, _ := limiter.Allow("client", "/api/survey", "POST"); !allowed {
			t.Errorf("Expected survey request %d to be allowed", i+1)
		}
	}
	allowed, info := limiter.Allow("client", "/api/survey", "POST")
	if allowed {
		t.Error("Expected survey request over burst to be denied")
	}
	if info.Limit != 30 {
		t.Errorf("Expected limit 30, got %d", info.Limit)
	}

	// Reads on the same client are unaffected
	if allowed, _ := limiter.Allow("client", "/api/recipes", "GET"); !allowed {
		t.Error("Expected read to be allowed")
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("client", "/health", "GET")
		if !allowed {
			t.Fatalf("Expected health check %d to be allowed", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("Expected no limit reported, got %d", info.Limit)
		}
	}
}

func TestLimiter_SeparateClients(t *testing.T) {
	limiter, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("a", "/api/facets", "GET"); !allowed {
		t.Error("Expected client a to be allowed")
	}
	if allowed, _ := limiter.Allow("b", "/api/facets", "GET"); !allowed {
		t.Error("Expected client b to be allowed")
	}
	if allowed, _ := limiter.Allow("a", "/api/facets", "GET"); allowed {
		t.Error("Expected client a to be denied")
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Hour,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("client", "/api/recipes", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected exactly 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_CleanupBuckets(t *testing.T) {
	limiter, clock := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		limiter.Allow(fmt.Sprintf("client-%d", i), "/api/recipes", "GET")
	}
	if limiter.Len() != 3 {
		t.Fatalf("Expected 3 buckets, got %d", limiter.Len())
	}

	clock.Advance(30 * time.Minute)
	limiter.Allow("client-0", "/api/recipes", "GET")
	clock.Advance(45 * time.Minute)
	limiter.cleanupBuckets()

	if limiter.Len() != 1 {
		t.Errorf("Expected only the recently used bucket to remain, got %d", limiter.Len())
	}
}

func TestLimiter_StopIdempotent(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	limiter.Stop()
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/recipes", Method: "POST", Limit: 20},
		{Path: "/api/recipes/filter", Method: "POST", Limit: 120},
		{Path: "/api/recipes/", Method: "GET", Limit: 500},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{"health unlimited", "/health", "GET", 0, false},
		{"metrics unlimited", "/metrics", "GET", 0, false},
		{"exact create", "/api/recipes", "POST", 20, false},
		{"exact filter", "/api/recipes/filter", "POST", 120, false},
		{"prefix match", "/api/recipes/42", "GET", 500, false},
		{"method mismatch", "/api/recipes", "DELETE", 0, true},
		{"no match", "/api/unknown", "GET", 0, true},
		{"health post not special", "/health", "POST", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Expected a match, got nil")
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Expected limit %d, got %d", tt.wantLimit, got.Limit)
			}
		})
	}
}

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(config.RateLimitConfig{
		Enabled:         true,
		DefaultLimit:    50,
		DefaultWindow:   30 * time.Second,
		CleanupInterval: time.Minute,
		Whitelist:       []string{"127.0.0.1", " 10.0.0.2 , 10.0.0.3", ""},
		Blacklist:       []string{"192.168.1.1"},
	})

	if !cfg.Enabled || cfg.DefaultLimit != 50 || cfg.DefaultWindow != 30*time.Second {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	for _, ip := range []string{"127.0.0.1", "10.0.0.2", "10.0.0.3"} {
		if !cfg.Whitelist[ip] {
			t.Errorf("Expected %s to be whitelisted", ip)
		}
	}
	if len(cfg.Whitelist) != 3 {
		t.Errorf("Expected 3 whitelist entries, got %d", len(cfg.Whitelist))
	}
	if !cfg.Blacklist["192.168.1.1"] {
		t.Error("Expected 192.168.1.1 to be blacklisted")
	}
	if len(cfg.EndpointConfigs) == 0 {
		t.Error("Expected default endpoint configs")
	}

	disabled := FromSettings(config.RateLimitConfig{Enabled: false, DefaultLimit: 5})
	if disabled.Enabled {
		t.Error("Expected disabled config")
	}
}
