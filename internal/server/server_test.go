package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	config "Surya/internal/config"
	metrics "Surya/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()
	cfg, err := config.FromEnv(func(string) string { return "" })
	require.NoError(t, err)
	cfg.RateLimitRPS = 1000
	cfg.RateLimitBurst = 1000
	if mutate != nil {
		mutate(&cfg)
	}
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	return New(cfg, zap.NewNop(), m, reg).Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCalculatorRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	cases := []struct {
		name   string
		path   string
		body   string
		status int
		want   string
	}{
		{"subsidy", "/api/tools/subsidy/calc", `{"state":"uttar-pradesh","system_size_kw":10}`, http.StatusOK, `"subsidy":108000`},
		{"subsidy fallback", "/api/tools/subsidy/calc", `{"state":"nowhere","system_size_kw":1}`, http.StatusOK, `"subsidy":30000`},
		{"solar", "/api/tools/solar/calc", `{"system_size_kw":5}`, http.StatusOK, `"roi":5.6`},
		{"solar unknown size", "/api/tools/solar/calc", `{"system_size_kw":11}`, http.StatusNotFound, `"field":"system_size_kw"`},
		{"chakki", "/api/tools/chakki/calc", `{"motor_hp":"10","solar_option":"16.8"}`, http.StatusOK, `"monthly_profit":847640`},
		{"chakki missing option", "/api/tools/chakki/calc", `{"motor_hp":"10"}`, http.StatusBadRequest, `"field":"solar_option"`},
		{"batch", "/api/tools/solar/batch", `{"sizes":[1,2]}`, http.StatusOK, `"system_size":2`},
		{"recommend", "/api/tools/solar/recommend", `{"monthly_units":600}`, http.StatusOK, `"recommended_kw":5`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(h, http.MethodPost, tc.path, tc.body)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tc.want)
			assert.NotEmpty(t, w.Header().Get(requestIDHeader))
		})
	}
}

func TestTableRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(h, http.MethodGet, "/api/tables/states/uttar-pradesh", "")
	require.Equal(t, http.StatusOK, w.Code)
	var p map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, "Uttar Pradesh", p["name"])

	for _, path := range []string{"/api/tables/solar", "/api/tables/chakki", "/api/tables/motor-brands", "/api/tables/states", "/api/tables/pricelist.xlsx", "/healthz"} {
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, path, "").Code, path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(h, http.MethodGet, "/api/tools/solar/calc", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "POST", w.Header().Get("Allow"))
	assert.Contains(t, w.Body.String(), `"error":"Method not allowed"`)

	w = do(h, http.MethodPost, "/api/tables/states/uttar-pradesh", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET", w.Header().Get("Allow"))

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/api/tools/wind/calc", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/tools/solar/calc", `{"system_size_kw":2}`).Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(t, func(c *config.Config) { c.CORSOrigin = "https://example.in" })
	w := do(h, http.MethodOptions, "/api/tools/solar/calc", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.in", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDPropagates(t *testing.T) {
	h := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, func(c *config.Config) {
		c.RateLimitRPS = 0.001
		c.RateLimitBurst = 2
	})
	body := `{"system_size_kw":1}`
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/tools/solar/calc", body).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/api/tools/solar/calc", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(h, http.MethodPost, "/api/tools/solar/calc", body).Code)

	// health and metrics are outside the limited /api tree
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", "").Code)
	w := do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "surya_rate_limited_total 1")
	assert.Contains(t, w.Body.String(), `surya_calculations_total{calculator="solar",outcome="ok"} 2`)
}

func TestRunShutsDown(t *testing.T) {
	cfg, err := config.FromEnv(func(string) string { return "" })
	require.NoError(t, err)
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(cfg, zap.NewNop(), nil, nil).Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
