package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa la observabilidad del motor de trayectoria.
// Todos los métodos aceptan receptor nil para que los tests puedan omitirlo.
type Metrics struct {
	BuildLatency prometheus.Histogram
	BuildOutcome *prometheus.CounterVec

	// Registros descartados por referencia faltante (reason: activity_missing)
	RecordsDropped *prometheus.CounterVec

	// Sustituciones por placeholder (reference: space, author)
	Placeholders *prometheus.CounterVec

	NoteAppends *prometheus.CounterVec
}

// New registra las métricas en reg. Con reg nil se usa el registry global.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		BuildLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "trajectory_build_duration_seconds",
			Help:    "Duration of a full beneficiary trajectory build",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		BuildOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trajectory_builds_total",
			Help: "Trajectory builds by outcome",
		}, []string{"outcome"}), // outcome: "ok", "source_error", "invalid"

		RecordsDropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trajectory_records_dropped_total",
			Help: "Records excluded from a trajectory because a required reference is missing",
		}, []string{"reason"}),

		Placeholders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trajectory_placeholders_total",
			Help: "References replaced by a placeholder label",
		}, []string{"reference"}),

		NoteAppends: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trajectory_note_appends_total",
			Help: "Note submissions by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveBuild(outcome string, d time.Duration) {
	if m != nil {
		m.BuildLatency.Observe(d.Seconds())
		m.BuildOutcome.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncDropped(reason string) {
	if m != nil {
		m.RecordsDropped.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) IncPlaceholder(reference string) {
	if m != nil {
		m.Placeholders.WithLabelValues(reference).Inc()
	}
}

func (m *Metrics) IncNoteAppend(outcome string) {
	if m != nil {
		m.NoteAppends.WithLabelValues(outcome).Inc()
	}
}
