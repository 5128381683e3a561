// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SeededControls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ib_catalog_seeded_controls_total",
		Help: "Controls inserted by catalog seeding",
	})

	SeedFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ib_catalog_seed_failures_total",
		Help: "Control inserts that failed during catalog seeding",
	})

	ControlUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ib_control_updates_total",
		Help: "Control updates by resulting status",
	}, []string{"status"})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ib_store_errors_total",
		Help: "Store failures swallowed or returned by the engine, by operation",
	}, []string{"operation"})

	CompliancePercentage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ib_compliance_percentage",
		Help: "Overall compliance percentage at the last stats request",
	})

	DomainCompliancePercentage = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ib_domain_compliance_percentage",
		Help: "Per-domain compliance percentage at the last stats request",
	}, []string{"domain"})

	RisksByLevel = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ib_risks",
		Help: "Risks in the register by computed level at the last summary request",
	}, []string{"level"})
)
