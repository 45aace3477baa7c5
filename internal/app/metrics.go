package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "brandgen"

// generationMetrics counts what the generator hands out.
type generationMetrics struct {
	results  *prometheus.CounterVec
	logos    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// newGenerationMetrics registers the counters on reg. A nil reg leaves them
// unregistered, which keeps tests independent of the default registry.
func newGenerationMetrics(reg prometheus.Registerer) *generationMetrics {
	factory := promauto.With(reg)

	return &generationMetrics{
		results: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "results_total",
			Help:      "Generated branding results by naming style and industry.",
		}, []string{"style", "industry"}),
		logos: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "logos_total",
			Help:      "Rendered logos by logo style and sub-variant.",
		}, []string{"logo_style", "variant"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failures_total",
			Help:      "Failed use cases by operation and pipeline stage.",
		}, []string{"operation", "stage"}),
	}
}

func (m *generationMetrics) observeResult(style, industry string) {
	m.results.WithLabelValues(style, industry).Inc()
}

func (m *generationMetrics) observeLogo(style, variant string) {
	m.logos.WithLabelValues(style, variant).Inc()
}

func (m *generationMetrics) observeFailure(operation string, err error) {
	stage, ok := StageOf(err)
	if !ok {
		stage = "unknown"
	}

	m.failures.WithLabelValues(operation, string(stage)).Inc()
}
