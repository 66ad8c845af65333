// Package metrics exposes the service's Prometheus instrumentation. The
// counters count fulfillment milestones, not HTTP traffic; request-level
// metrics come from the echo middleware in main.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the fulfillment counters registered with Prometheus.
type Metrics struct {
	PicksRecorded      prometheus.Counter
	PickListsCompleted prometheus.Counter
	BatchesCheckedIn   prometheus.Counter
	CombinedPicks      prometheus.Counter
	LoadsDispatched    *prometheus.CounterVec
	LoadsRecalled      prometheus.Counter
}

// NewMetrics creates and registers the fulfillment counters on the given
// registerer. Pass prometheus.DefaultRegisterer in production.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		PicksRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fulfillment_picks_recorded_total",
			Help: "Total number of picks recorded against pick items",
		}),
		PickListsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fulfillment_pick_lists_completed_total",
			Help: "Total number of pick lists completed",
		}),
		BatchesCheckedIn: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fulfillment_batches_checked_in_total",
			Help: "Total number of inventory batches checked in",
		}),
		CombinedPicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fulfillment_combined_picks_total",
			Help: "Total number of confirmed combined picks",
		}),
		LoadsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fulfillment_loads_dispatched_total",
			Help: "Total number of delivery runs dispatched",
		}, []string{"forced"}),
		LoadsRecalled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fulfillment_loads_recalled_total",
			Help: "Total number of delivery runs recalled",
		}),
	}

	registerer.MustRegister(
		m.PicksRecorded,
		m.PickListsCompleted,
		m.BatchesCheckedIn,
		m.CombinedPicks,
		m.LoadsDispatched,
		m.LoadsRecalled,
	)
	return m
}
