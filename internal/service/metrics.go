package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var orchestrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "cashout",
		Subsystem: "orchestrator",
		Name:      "runs_total",
		Help:      "Multi-step orchestration runs by flow and outcome.",
	},
	[]string{"flow", "outcome"},
)

var referralChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "cashout",
		Subsystem: "referral_gate",
		Name:      "checks_total",
		Help:      "Referral gate decisions: skipped, completed, none_pending or failed.",
	},
	[]string{"result"},
)

const (
	flowExternalPayment   = "external_payment"
	flowInsurancePurchase = "insurance_purchase"

	outcomeSucceeded = "succeeded"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	// wallet debited, later step failed
	outcomeUnsettled = "unsettled"
)
