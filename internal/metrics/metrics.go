package metrics

import (
	"errors"
	"strconv"
	"time"

	calc "Surya/internal/calc"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK               = "ok"
	OutcomeNotFound         = "not_found"
	OutcomeMissingSelection = "missing_selection"
	OutcomeDegenerate       = "degenerate"
	OutcomeInvalid          = "invalid"
	OutcomeError            = "error"
)

// Metrics holds the quote service instruments. A nil *Metrics records nothing.
type Metrics struct {
	calculations    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rateLimited     prometheus.Counter
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "surya_calculations_total",
			Help: "Calculator invocations by calculator and outcome.",
		}, []string{"calculator", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "surya_http_request_duration_seconds",
			Help:    "HTTP request latency by route template.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "surya_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter.",
		}),
	}
	for _, c := range []prometheus.Collector{m.calculations, m.requestDuration, m.rateLimited} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Outcome classifies a calculator error into a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, calc.ErrKeyNotFound):
		return OutcomeNotFound
	case errors.Is(err, calc.ErrMissingSelection):
		return OutcomeMissingSelection
	case errors.Is(err, calc.ErrDegenerateProjection):
		return OutcomeDegenerate
	case errors.Is(err, calc.ErrInvalidInput):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

func (m *Metrics) RecordCalculation(calculator string, err error) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(calculator, Outcome(err)).Inc()
}

func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) RecordRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}
