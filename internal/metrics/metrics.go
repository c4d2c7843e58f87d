package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the licensing service.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LicensesIssued      *prometheus.CounterVec
	IssuanceRejections  *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "licensing_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "licensing_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LicensesIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "licensing_licenses_issued_total",
			Help: "Total number of licenses issued by license type",
		}, []string{"type"}),
		IssuanceRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "licensing_issuance_rejections_total",
			Help: "Total number of refused license issuances by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, start time.Time) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementLicensesIssued(licenseType string) {
	m.LicensesIssued.WithLabelValues(licenseType).Inc()
}

func (m *Metrics) IncrementIssuanceRejections(reason string) {
	m.IssuanceRejections.WithLabelValues(reason).Inc()
}
