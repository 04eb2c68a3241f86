package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DonationsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodlink_donations_created_total",
		Help: "Total number of donations successfully posted.",
	})

	AssignmentsComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodlink_assignments_computed_total",
		Help: "Total number of auto-assignment runs that produced a candidate list.",
	})

	OffersAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodlink_offers_accepted_total",
		Help: "Total number of donation offers accepted by agents.",
	})

	OffersDeclinedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodlink_offers_declined_total",
		Help: "Total number of donation offers declined by agents.",
	})

	ResponseConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodlink_response_conflicts_total",
		Help: "Total number of agent responses rejected because the offer was no longer available.",
	})

	DonationsPickedUpTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodlink_donations_picked_up_total",
		Help: "Total number of donations confirmed picked up.",
	})

	DonationsCollectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodlink_donations_collected_total",
		Help: "Total number of donations confirmed collected.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodlink_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	DonationCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "foodlink_donation_cache_items",
		Help: "Current number of items in the open-donation cache.",
	})
)
