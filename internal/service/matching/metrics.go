package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_offers_created_total",
			Help: "Total number of offers created by the matching engine",
		},
	)

	OfferCreateFaultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_offer_create_faults_total",
			Help: "Total number of offer creations skipped due to store faults",
		},
	)

	NoSupplyTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_no_supply_total",
			Help: "Total number of escalation runs that found no eligible drivers",
		},
	)

	SearchRadiusMeters = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_search_radius_meters",
			Help:    "Radius at which escalation stopped with at least one offer",
			Buckets: []float64{1000, 2000, 5000, 10000, 20000},
		},
	)
)
