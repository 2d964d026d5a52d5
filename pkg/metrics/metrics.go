package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	rackprepSubsystem = "rackprep"

	estimatesTotal        = "estimates_total"
	serversEstimatedTotal = "servers_estimated_total"
	estimatedBatchHours   = "estimated_batch_hours"

	estimateStatusLabel = "status"
	complexityLabel     = "complexity"
)

// Estimate status label values.
const (
	EstimateStatusSucceeded = "succeeded"
	EstimateStatusFailed    = "failed"
)

var estimatesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: rackprepSubsystem,
		Name:      estimatesTotal,
		Help:      "number of estimation requests processed, by outcome",
	},
	[]string{estimateStatusLabel},
)

var serversEstimatedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: rackprepSubsystem,
		Name:      serversEstimatedTotal,
		Help:      "number of server records successfully estimated",
	},
)

var estimatedBatchHoursMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Subsystem: rackprepSubsystem,
		Name:      estimatedBatchHours,
		Help:      "distribution of total estimated hours per batch, by complexity tier",
		Buckets:   []float64{1, 5, 10, 20, 50, 100, 250},
	},
	[]string{complexityLabel},
)

// IncreaseEstimatesTotalMetric records one processed estimation request.
func IncreaseEstimatesTotalMetric(status string) {
	estimatesTotalMetric.With(prometheus.Labels{estimateStatusLabel: status}).Inc()
}

// ObserveEstimatedBatch records the outcome of one successful estimation.
func ObserveEstimatedBatch(recordCount int, totalHours float64, complexity string) {
	serversEstimatedTotalMetric.Add(float64(recordCount))
	estimatedBatchHoursMetric.With(prometheus.Labels{complexityLabel: complexity}).Observe(totalHours)
}

// NewPrometheusMetricsHandler exposes the default registry over HTTP.
func NewPrometheusMetricsHandler() http.Handler {
	return promhttp.Handler()
}

func init() {
	prometheus.MustRegister(
		estimatesTotalMetric,
		serversEstimatedTotalMetric,
		estimatedBatchHoursMetric,
	)
}
