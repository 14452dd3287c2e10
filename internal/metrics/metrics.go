package metrics

import (
	"net/http"

	"github.com/pixil98/go-sokoban/internal/puzzle"
	"github.com/pixil98/go-sokoban/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sokoban"

// Metrics counts session activity across every connection.
type Metrics struct {
	// Events counts listener notifications by kind (update, new_scenario, win).
	Events *prometheus.CounterVec
	// Pushes counts transitions that moved an object.
	Pushes prometheus.Counter
	// ActiveSessions is the number of sessions being played.
	ActiveSessions prometheus.Gauge

	registry *prometheus.Registry
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_events_total",
			Help:      "Session notifications by kind",
		}, []string{"kind"}),
		Pushes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pushes_total",
			Help:      "Player moves that shifted an object",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently being played",
		}),
		registry: reg,
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) SessionStarted() { m.ActiveSessions.Inc() }
func (m *Metrics) SessionEnded()   { m.ActiveSessions.Dec() }

// Listener returns a session listener feeding the counters.
func (m *Metrics) Listener() session.Listener {
	return session.ListenerFuncs{
		Update: func(_ *puzzle.State, t puzzle.Transition) error {
			m.Events.WithLabelValues("update").Inc()
			if t.Pushed && !t.Replayed {
				m.Pushes.Inc()
			}
			return nil
		},
		NewScenario: func(*puzzle.State) error {
			m.Events.WithLabelValues("new_scenario").Inc()
			return nil
		},
		Win: func(*puzzle.State) error {
			m.Events.WithLabelValues("win").Inc()
			return nil
		},
	}
}
