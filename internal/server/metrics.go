package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors exported on /metrics.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	respondents *prometheus.CounterVec
	validations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with registerer when
// it is not nil.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodsec_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foodsec_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		respondents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodsec_respondents_classified_total",
			Help: "Respondents classified by indicator and label",
		}, []string{"indicator", "label"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodsec_validations_total",
			Help: "Dataset validations by indicator and outcome",
		}, []string{"indicator", "result"}),
	}

	if registerer != nil {
		registerer.MustRegister(m.requests, m.duration, m.respondents, m.validations)
	}
	return m
}

func (m *Metrics) observeValidation(indicator string, valid bool) {
	result := "fail"
	if valid {
		result = "pass"
	}
	m.validations.WithLabelValues(indicator, result).Inc()
}

func (m *Metrics) observeLabels(indicator string, counts map[string]int) {
	for label, n := range counts {
		if label == "" {
			label = "unclassified"
		}
		m.respondents.WithLabelValues(indicator, label).Add(float64(n))
	}
}
