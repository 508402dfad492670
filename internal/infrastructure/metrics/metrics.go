package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mergington/internal/ports/output"
)

var _ output.Recorder = (*Metrics)(nil)

// Metrics holds the roster collectors.
type Metrics struct {
	Operations   *prometheus.CounterVec
	Participants *prometheus.GaugeVec
}

// New registers the roster collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roster_operations_total",
				Help: "Total number of roster operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		Participants: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "roster_participants",
				Help: "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}
}

func (m *Metrics) RecordOperation(operation, outcome string) {
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) SetParticipants(activity string, count int) {
	m.Participants.WithLabelValues(activity).Set(float64(count))
}
