package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	calc "Surya/internal/calc"
	batch "Surya/internal/calc/batch"
	chakki "Surya/internal/calc/chakki"
	recommend "Surya/internal/calc/recommend"
	report "Surya/internal/calc/report"
	sheet "Surya/internal/calc/sheet"
	solar "Surya/internal/calc/solar"
	subsidy "Surya/internal/calc/subsidy"
	config "Surya/internal/config"
	metrics "Surya/internal/metrics"
	ratelimit "Surya/internal/ratelimit"
	tables "Surya/internal/tables"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupEvery = time.Minute
	limiterIdleTTL      = 3 * time.Minute
)

type Server struct {
	cfg      config.Config
	log      *zap.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	router   *mux.Router
	limiter  *ratelimit.IPRateLimiter
}

func New(cfg config.Config, log *zap.Logger, m *metrics.Metrics, g prometheus.Gatherer) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{cfg: cfg, log: log, metrics: m, gatherer: g, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return requestID(CORS(s.cfg.CORSOrigin, s.router))
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.instrument)

	a := s.cfg.Assumptions
	limiter := ratelimit.NewIPRateLimiter(rate.Limit(s.cfg.RateLimitRPS), s.cfg.RateLimitBurst)
	s.limiter = limiter
	limiter.OnDenied = func(req *http.Request) {
		s.metrics.RecordRateLimited()
		s.log.Warn("rate limited", zap.String("remote", req.RemoteAddr), zap.String("path", req.URL.Path))
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	subsidyH := &subsidy.Handler{Metrics: s.metrics}
	solarH := &solar.Handler{Assumptions: a, Metrics: s.metrics}
	chakkiH := &chakki.Handler{Assumptions: a, Metrics: s.metrics}
	batchH := &batch.Handler{Assumptions: a, Metrics: s.metrics}
	recommendH := &recommend.Handler{Assumptions: a, Metrics: s.metrics}
	sheetH := &sheet.Handler{Metrics: s.metrics}
	reportH := &report.Handler{
		Business:    s.cfg.Business,
		Phone:       s.cfg.BusinessPhone,
		FontFile:    s.cfg.PDFFontFile,
		Assumptions: a,
		Metrics:     s.metrics,
	}
	tablesH := &tables.Handler{}

	apiRoutes := []struct {
		method  string
		path    string
		handler http.HandlerFunc
	}{
		{"POST", "/tools/subsidy/calc", subsidyH.Calc},
		{"POST", "/tools/subsidy/import", sheetH.ImportSubsidy},
		{"POST", "/tools/solar/calc", solarH.Calc},
		{"POST", "/tools/solar/batch", batchH.Solar},
		{"POST", "/tools/solar/recommend", recommendH.Solar},
		{"POST", "/tools/chakki/calc", chakkiH.Calc},
		{"POST", "/tools/report/solar", reportH.Solar},
		{"POST", "/tools/report/chakki", reportH.Chakki},

		{"GET", "/tables/solar", tablesH.Solar},
		{"GET", "/tables/chakki", tablesH.Chakki},
		{"GET", "/tables/motor-brands", tablesH.MotorBrands},
		{"GET", "/tables/states", tablesH.States},
		{"GET", "/tables/states/{key}", tablesH.State},
		{"GET", "/tables/pricelist.xlsx", sheetH.PriceList},
	}
	for _, rt := range apiRoutes {
		api.HandleFunc(rt.path, rt.handler).Methods(rt.method)
		// mux reports a method mismatch inside a subrouter as 404
		api.HandleFunc(rt.path, methodNotAllowed(rt.method))
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}).Methods("GET")
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods("GET")
	}
}

func methodNotAllowed(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		calc.WriteMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// Run serves until ctx is cancelled, then drains connections within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.limiter.CleanupLoop(ctx, limiterCleanupEvery, limiterIdleTTL)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("addr", s.cfg.Addr), zap.Bool("tls", s.cfg.TLS()))
		var err error
		if s.cfg.TLS() {
			err = srv.ListenAndServeTLS(s.cfg.TLSCert, s.cfg.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return <-errCh
}
