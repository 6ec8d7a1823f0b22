package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stellar_txcore"

var (
	signingOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "signing",
		Name:      "operations_total",
		Help:      "Count of signing pipeline operations.",
	}, []string{"operation", "network", "status"})
	signingOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "signing",
		Name:      "operation_duration_seconds",
		Help:      "Duration of signing pipeline operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	signingEnvelopeSignatures = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "signing",
		Name:      "envelope_signatures",
		Help:      "Number of signatures carried by envelopes after signing.",
		Buckets:   prometheus.LinearBuckets(1, 1, 20),
	}, []string{"network"})
)

// Signing tracks metrics for the signing pipeline of one network.
type Signing struct {
	network string
}

// NewSigning constructs a metrics collector for a signing pipeline.
func NewSigning(network string) *Signing {
	if network == "" {
		network = "unknown"
	}
	return &Signing{network: network}
}

// Observe records a single pipeline operation outcome and duration.
func (m Signing) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	signingOperationsTotal.WithLabelValues(operation, m.network, status).Inc()
	signingOperationDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveSignatures records how many signatures an envelope carries.
func (m Signing) ObserveSignatures(count int) {
	signingEnvelopeSignatures.WithLabelValues(m.network).Observe(float64(count))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
