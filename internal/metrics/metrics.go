package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Skufu/vitalrisk/internal/risk"
)

// Recorder counts assessments served by the HTTP layer.
type Recorder struct {
	assessments *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	scores      prometheus.Histogram
}

// New registers the assessment metrics on reg, or on the default registerer
// when reg is nil.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Recorder{
		assessments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitalrisk",
			Subsystem: "assessment",
			Name:      "total",
			Help:      "Completed risk assessments by tier",
		}, []string{"tier"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitalrisk",
			Subsystem: "assessment",
			Name:      "rejected_total",
			Help:      "Profiles that failed validation by error kind and field",
		}, []string{"kind", "field"}),
		scores: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vitalrisk",
			Subsystem: "assessment",
			Name:      "score",
			Help:      "Distribution of clamped risk scores",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
	}
}

// ObserveResult records a completed assessment. A nil Recorder is a no-op.
func (r *Recorder) ObserveResult(result risk.RiskResult) {
	if r == nil {
		return
	}
	r.assessments.WithLabelValues(result.Tier.String()).Inc()
	r.scores.Observe(float64(result.Score))
}

// ObserveRejection records a validation failure.
func (r *Recorder) ObserveRejection(err *risk.ValidationError) {
	if r == nil || err == nil {
		return
	}
	r.rejections.WithLabelValues(string(err.Kind), err.Field).Inc()
}
