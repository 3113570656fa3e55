package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик Prometheus сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	VisitEventsTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		VisitEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "visit_events_total",
				Help:        "Total number of successful visit slot transitions",
				ConstLabels: constLabels,
			},
			[]string{"event_type"},
		),
	}
}

// IncVisitEvent увеличивает счетчик переходов состояния слота
func (m *Metrics) IncVisitEvent(eventType string) {
	m.VisitEventsTotal.WithLabelValues(eventType).Inc()
}
