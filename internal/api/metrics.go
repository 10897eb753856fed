package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver records call counts and latencies in a prometheus
// registry. The CLI writes the registry out as a node-exporter textfile.
type MetricsObserver struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewMetricsObserver registers the API collectors on reg.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	o := &MetricsObserver{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusadmin",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Admin API calls by method, path, status and outcome.",
		}, []string{"method", "path", "status", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campusadmin",
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Admin API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	if err := reg.Register(o.calls); err != nil {
		return nil, err
	}
	if err := reg.Register(o.latency); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *MetricsObserver) OnCallComplete(event CallEvent) {
	outcome := "ok"
	if !event.Success {
		outcome = event.ErrorCode
	}
	o.calls.WithLabelValues(event.Method, event.Path, strconv.Itoa(event.Status), outcome).Inc()
	o.latency.WithLabelValues(event.Method, event.Path).
		Observe((time.Duration(event.LatencyMs) * time.Millisecond).Seconds())
}

// WriteTextfile dumps every metric gathered by g into path, in the text
// exposition format read by node-exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
