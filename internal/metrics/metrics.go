package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Namespace = "smartcloth"
	Subsystem = "engine"
)

var (
	Transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "transitions_total",
		Help:      "State transitions, by source and target state.",
	}, []string{"from", "to"})
	Errors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "errors_total",
		Help:      "Entries into the Error state, by the state the error interrupted.",
	}, []string{"prev"})
	Warnings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "warnings_total",
		Help:      "Warnings shown, by warning event.",
	}, []string{"warning"})
	Cancels = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "cancels_total",
		Help:      "Actions cancelled by the user or by a confirmation timeout.",
	})
	State = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "state",
		Help:      "Numeric code of the current state.",
	})
	PollLatency = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace:  Namespace,
		Subsystem:  Subsystem,
		Name:       "poll_seconds",
		Help:       "Time spent in one engine poll, blocking collaborator calls included.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})

	PlatesStored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "store",
		Name:      "plates_total",
		Help:      "Plates written to local storage.",
	})
	MealsStored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "store",
		Name:      "meals_total",
		Help:      "Meals written to local storage.",
	})
	MealsUploaded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "store",
		Name:      "meals_uploaded_total",
		Help:      "Stored meals confirmed as uploaded.",
	})
	StoreErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Failed storage operations, by operation.",
	}, []string{"op"})
)

var registerMetrics sync.Once

// Register adds every collector to the default registry. It is safe to call
// more than once.
func Register() {
	registerMetrics.Do(func() {
		prometheus.MustRegister(
			Transitions,
			Errors,
			Warnings,
			Cancels,
			State,
			PollLatency,
			PlatesStored,
			MealsStored,
			MealsUploaded,
			StoreErrors,
		)
	})
}
