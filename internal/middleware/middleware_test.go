package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"booking-assistant/pkg/log"
)

type mockMetrics struct {
	routes   []string
	statuses []int
}

func (m *mockMetrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.routes = append(m.routes, route)
	m.statuses = append(m.statuses, status)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{}, nil)
	r := newEngine(mw.RequestID())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(HeaderRequestID)
		if id == "" || w.Body.String() != id {
			t.Errorf("expected generated id in header and context, got header=%q body=%q", id, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(HeaderRequestID) != "abc-123" || w.Body.String() != "abc-123" {
			t.Errorf("expected propagated id, got %q", w.Header().Get(HeaderRequestID))
		}
	})
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitEnabled: true, RequestsPerMin: 10}, nil)
	r := newEngine(mw.RateLimit())

	// burst is 1 at 10 requests per minute
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("unexpected codes: %v", codes)
	}

	// other clients keep their own bucket
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client throttled: %d", w.Code)
	}
}

func TestRateLimitConcurrentFirstRequests(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitEnabled: true, RequestsPerMin: 10}, nil)
	r := newEngine(mw.RateLimit())

	const clients = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	start := make(chan struct{})
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.9:1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	// one shared bucket with burst 1 admits a single request
	if allowed != 1 {
		t.Errorf("allowed = %d, want 1", allowed)
	}
}

func TestRateLimiterSharesBucketPerKey(t *testing.T) {
	rl := newRateLimiter(60)

	const workers = 16
	got := make([]*rate.Limiter, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = rl.limiterFor("10.0.0.1")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if got[i] != got[0] {
			t.Fatalf("worker %d got a different limiter", i)
		}
	}
	if rl.limiterFor("10.0.0.2") == got[0] {
		t.Error("distinct keys share a limiter")
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitEnabled: false, RequestsPerMin: 1}, nil)
	r := newEngine(mw.RateLimit())
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d throttled", i)
		}
	}
}

func TestAccessLogMetrics(t *testing.T) {
	metrics := &mockMetrics{}
	mw := New(log.NewNop(), Config{}, metrics)
	r := newEngine(mw.AccessLog())

	for _, path := range []string{"/ping", "/missing"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil).WithContext(context.Background()))
	}

	if len(metrics.routes) != 2 || metrics.routes[0] != "/ping" || metrics.routes[1] != routeUnmatched {
		t.Errorf("unexpected routes: %v", metrics.routes)
	}
	if metrics.statuses[0] != http.StatusOK || metrics.statuses[1] != http.StatusNotFound {
		t.Errorf("unexpected statuses: %v", metrics.statuses)
	}
}

func TestCors(t *testing.T) {
	mw := New(log.NewNop(), Config{AllowedOrigins: []string{"http://app.test"}}, nil)
	r := newEngine(mw.Cors())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://app.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://app.test" {
		t.Errorf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected disallowed origin to be rejected, got %d", w.Code)
	}
}
