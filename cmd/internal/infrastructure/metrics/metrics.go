package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"time"
)

// Metrics tracks company creation and score calculation.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	CompaniesCreated   prometheus.Counter
	ScoresCalculated   prometheus.Counter
	RejectedBatches    *prometheus.CounterVec
	SubmissionDuration prometheus.Histogram
}

// New registers all metrics on reg. Pass prometheus.DefaultRegisterer to expose
// them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CompaniesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "zscore_companies_created_total",
			Help: "Total number of companies created, directly or on first score submission",
		}),
		ScoresCalculated: factory.NewCounter(prometheus.CounterOpts{
			Name: "zscore_scores_calculated_total",
			Help: "Total number of yearly scores calculated and stored",
		}),
		RejectedBatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "zscore_rejected_batches_total",
			Help: "Financials batches rejected before any score was stored",
		}, []string{"reason"}),
		SubmissionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "zscore_submission_duration_seconds",
			Help:    "Duration of financials submissions, from company resolution to stored scores",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementCompaniesCreated() {
	if m == nil {
		return
	}
	m.CompaniesCreated.Inc()
}

func (m *Metrics) AddScoresCalculated(n int) {
	if m == nil {
		return
	}
	m.ScoresCalculated.Add(float64(n))
}

// IncrementRejectedBatch records a rejected submission, reason is either
// "company" or "financials".
func (m *Metrics) IncrementRejectedBatch(reason string) {
	if m == nil {
		return
	}
	m.RejectedBatches.WithLabelValues(reason).Inc()
}

// ObserveSubmission records the duration of a submission.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSubmission(start time.Time) {
	if m == nil {
		return
	}
	m.SubmissionDuration.Observe(time.Since(start).Seconds())
}
