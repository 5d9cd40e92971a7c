package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-service/config"
	"catalog-service/pkg/response"
)

func newRateLimitEngine(t *testing.T, requestsPerMin int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := New(&mockLogger{}, &config.Config{
		RateLimit: config.RateLimitConfig{
			Enabled:        true,
			RequestsPerMin: requestsPerMin,
			MaxClients:     10,
			ClientTTL:      time.Minute,
		},
	})

	r := gin.New()
	r.Use(m.Recovery(), m.ErrorHandler(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"pong": true})
	})
	return r
}

func TestRateLimitAllowsBurstThenRejects(t *testing.T) {
	// 60 req/min -> burst of 6 tokens per client.
	r := newRateLimitEngine(t, 60)

	var lastCode int
	got429 := false
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		lastCode = w.Code

		if i == 0 && w.Code != http.StatusOK {
			t.Fatalf("first request must pass, got %d", w.Code)
		}
		if w.Code == http.StatusTooManyRequests {
			got429 = true
			resp := decodeResp(t, w)
			if resp.Success {
				t.Error("429 must use the error envelope")
			}
		}
	}
	if !got429 {
		t.Errorf("expected over-limit rejection, last code %d", lastCode)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := newRateLimitEngine(t, 60)

	// Exhaust client A's burst.
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
	}

	// Client B is unaffected.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected fresh client to pass, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := New(&mockLogger{}, &config.Config{})
	r := gin.New()
	r.Use(m.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"pong": true})
	})

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with limiter disabled, got %d", i, w.Code)
		}
	}
}
