// Package metrics exposes Prometheus collectors for the HTTP surface and the auto-reject job.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"wfh-leave-backend/internal/domain/wfh"
	"wfh-leave-backend/internal/usecase/autoreject"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wfh"

type Metrics struct {
	reg *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	autoRejectRunsTotal      *prometheus.CounterVec
	autoRejectCancelledTotal prometheus.Counter
	autoRejectScanned        prometheus.Gauge
	autoRejectDuration       prometheus.Histogram
}

// New registers every collector on a private registry, plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		autoRejectRunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auto_reject_runs_total",
				Help:      "Auto-reject runs by result (ok, error, skipped)",
			},
			[]string{"result"},
		),
		autoRejectCancelledTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auto_reject_cancelled_total",
			Help:      "Requests cancelled by the auto-reject job",
		}),
		autoRejectScanned: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "auto_reject_last_scanned",
			Help:      "Pending requests seen by the last successful run",
		}),
		autoRejectDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "auto_reject_duration_seconds",
			Help:      "Auto-reject run duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}),
	}
}

var _ autoreject.Observer = (*Metrics)(nil)

func (m *Metrics) ObserveAutoReject(res *autoreject.RunResult, err error, took time.Duration) {
	switch {
	case errors.Is(err, wfh.ErrRunInProgress):
		m.autoRejectRunsTotal.WithLabelValues("skipped").Inc()
		return
	case err != nil:
		m.autoRejectRunsTotal.WithLabelValues("error").Inc()
	default:
		m.autoRejectRunsTotal.WithLabelValues("ok").Inc()
		m.autoRejectCancelledTotal.Add(float64(res.Cancelled))
		m.autoRejectScanned.Set(float64(res.Scanned))
	}
	m.autoRejectDuration.Observe(took.Seconds())
}

// Middleware records count and latency per route template, so path params do not explode cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
