package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowBurstPerIP(t *testing.T) {
	l := NewIPRateLimiter(0.001, 2)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	assert.True(t, l.Allow("10.0.0.2"))
}

func TestLimitMiddleware(t *testing.T) {
	l := NewIPRateLimiter(0.001, 1)
	denied := 0
	l.OnDenied = func(*http.Request) { denied++ }
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/tables/solar", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, send("192.0.2.1:5000"))
	// a new source port is still the same client
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:5001"))
	assert.Equal(t, http.StatusNoContent, send("192.0.2.9:5000"))
	assert.Equal(t, 1, denied)
}

func TestCleanupDropsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(0.001, 1)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	now = now.Add(2 * time.Minute)
	assert.True(t, l.Allow("10.0.0.2"))
	assert.Equal(t, 2, l.Len())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, l.Cleanup(3*time.Minute))
	assert.Equal(t, 1, l.Len())

	// a forgotten client starts over with a full bucket
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.2"))
}

func TestCleanupLoopStopsWithContext(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	l.Allow("10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.CleanupLoop(ctx, time.Millisecond, 0)
		close(done)
	}()

	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
