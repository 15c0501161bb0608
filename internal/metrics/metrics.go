// Package metrics is the codec's optional observability seam. It gives
// github.com/prometheus/client_golang — present in this module's
// dependency graph but otherwise unused — a concrete home: per-kind
// decode/encode counters and a frame-size histogram, wired in through
// codec.WithMetrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector receives codec decode/encode observations. The codec package
// depends only on this interface, not on Prometheus directly.
type Collector interface {
	ObserveDecoded(kind string, frameBytes int)
	ObserveDecodeError(kind string)
	ObserveEncoded(kind string, frameBytes int)
}

// Noop returns a Collector whose methods do nothing, the codec package's
// default when no collector is configured via WithMetrics.
func Noop() Collector { return noopCollector{} }

type noopCollector struct{}

func (noopCollector) ObserveDecoded(string, int)  {}
func (noopCollector) ObserveDecodeError(string)   {}
func (noopCollector) ObserveEncoded(string, int)  {}

// PrometheusCollector records codec activity as Prometheus metrics: a
// counter of successfully decoded packets and decode errors by packet
// kind, and a histogram of frame sizes for decoded and encoded packets.
type PrometheusCollector struct {
	decoded      *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
	encoded      *prometheus.CounterVec
	frameBytes   *prometheus.HistogramVec
}

// NewPrometheusCollector registers its metrics with reg and returns a
// Collector backed by them. reg may be prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		decoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mqtt5x",
			Subsystem: "codec",
			Name:      "packets_decoded_total",
			Help:      "Total number of MQTT control packets successfully decoded, by kind.",
		}, []string{"kind"}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mqtt5x",
			Subsystem: "codec",
			Name:      "decode_errors_total",
			Help:      "Total number of terminal packet decode failures, by kind.",
		}, []string{"kind"}),
		encoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mqtt5x",
			Subsystem: "codec",
			Name:      "packets_encoded_total",
			Help:      "Total number of MQTT control packets encoded, by kind.",
		}, []string{"kind"}),
		frameBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mqtt5x",
			Subsystem: "codec",
			Name:      "frame_bytes",
			Help:      "Size in bytes of encoded/decoded MQTT control packet frames.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 16),
		}, []string{"kind", "direction"}),
	}
	reg.MustRegister(c.decoded, c.decodeErrors, c.encoded, c.frameBytes)
	return c
}

func (c *PrometheusCollector) ObserveDecoded(kind string, frameBytes int) {
	c.decoded.WithLabelValues(kind).Inc()
	c.frameBytes.WithLabelValues(kind, "decode").Observe(float64(frameBytes))
}

func (c *PrometheusCollector) ObserveDecodeError(kind string) {
	c.decodeErrors.WithLabelValues(kind).Inc()
}

func (c *PrometheusCollector) ObserveEncoded(kind string, frameBytes int) {
	c.encoded.WithLabelValues(kind).Inc()
	c.frameBytes.WithLabelValues(kind, "encode").Observe(float64(frameBytes))
}
