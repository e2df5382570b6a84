// Package metrics defines all custom Prometheus metrics for the dashboard
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "locked", "not_active"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// EventsPublishedTotal counts push-channel events fanned out to observers.
// Label:
//   - event: the wire-level event name (e.g. "userAdded")
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of events published on the push channel.",
	},
	[]string{"event"},
)

// ConnectedObservers tracks the number of currently open push-channel
// connections.
var ConnectedObservers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "connected_observers",
		Help:      "Current number of connected push-channel observers.",
	},
)

// DroppedEventsTotal counts per-observer deliveries skipped because the
// observer's send buffer was full.
var DroppedEventsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dropped_events_total",
		Help:      "Total number of event deliveries dropped due to slow observers.",
	},
)

// SimulatorMutationsTotal counts synthetic mutations produced by the
// background simulator.
// Label:
//   - kind: "order" or "notification"
var SimulatorMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulator_mutations_total",
		Help:      "Total number of synthetic mutations generated by the simulator.",
	},
	[]string{"kind"},
)
