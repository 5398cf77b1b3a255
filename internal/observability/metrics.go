package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	framesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dpctl",
			Subsystem: "stream",
			Name:      "frames_written_total",
			Help:      "Frames appended to stream writers.",
		},
		[]string{"version"},
	)
	bytesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dpctl",
			Subsystem: "stream",
			Name:      "bytes_written_total",
			Help:      "Frame bytes appended to stream writers.",
		},
		[]string{"version"},
	)
	frameBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dpctl",
			Subsystem: "stream",
			Name:      "frame_bytes",
			Help:      "Size distribution of written frames.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		},
		[]string{"version"},
	)
	framesRead = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dpctl",
			Subsystem: "stream",
			Name:      "frames_read_total",
			Help:      "Frames decoded by stream scanners.",
		},
		[]string{"version"},
	)
	framesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dpctl",
			Subsystem: "stream",
			Name:      "frames_skipped_total",
			Help:      "Unknown-tag frames skipped by stream scanners.",
		},
		[]string{"version"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dpctl",
			Subsystem: "stream",
			Name:      "decode_errors_total",
			Help:      "Decode failures that stopped a scan.",
		},
		[]string{"version", "kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(framesWritten, bytesWritten, frameBytes, framesRead, framesSkipped, decodeErrors)
	})
}

func RecordFrameWritten(version string, bytes int) {
	RegisterMetrics()
	framesWritten.WithLabelValues(version).Inc()
	bytesWritten.WithLabelValues(version).Add(float64(bytes))
	frameBytes.WithLabelValues(version).Observe(float64(bytes))
}

func RecordFrameRead(version string) {
	RegisterMetrics()
	framesRead.WithLabelValues(version).Inc()
}

func RecordFrameSkipped(version string) {
	RegisterMetrics()
	framesSkipped.WithLabelValues(version).Inc()
}

func RecordDecodeError(version, kind string) {
	RegisterMetrics()
	decodeErrors.WithLabelValues(version, kind).Inc()
}
