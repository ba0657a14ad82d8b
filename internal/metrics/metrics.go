package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the governance ledger. Registered on the default registry and
// served by the /metrics route.
var (
	ProposalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "governance_proposals_created_total",
		Help: "Total number of proposals created",
	})

	ProposalsFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "governance_proposals_finalized_total",
		Help: "Total number of proposals finalized, by outcome",
	}, []string{"outcome"})

	ProposalsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "governance_proposals_executed_total",
		Help: "Total number of proposals executed",
	})

	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "governance_votes_cast_total",
		Help: "Total number of votes cast, by choice",
	}, []string{"choice"})

	Transfers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "governance_transfers_total",
		Help: "Total number of escrow transfers, by kind",
	}, []string{"kind"})
)
