package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AcceptWinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_accept_wins_total",
			Help: "Total number of accepts that won the request",
		},
	)

	AcceptConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_accept_conflicts_total",
			Help: "Total number of accepts that lost the winner-resolution race",
		},
	)

	LazyExpiriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_lazy_expiries_total",
			Help: "Total number of offers expired on access instead of by the sweeper",
		},
	)
)
