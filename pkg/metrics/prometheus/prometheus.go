// Package prometheus exports terminal metrics to Prometheus.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"atm-sim/pkg/money"
)

// Collector implements metrics.Collector backed by Prometheus metrics.
// It also implements prometheus.Collector so it can be registered with a
// registry directly.
type Collector struct {
	authAttempts    *prometheus.CounterVec
	sessions        prometheus.Counter
	sessionDuration prometheus.Histogram
	transactions    *prometheus.CounterVec
	transactionTime *prometheus.HistogramVec
	cashDispensed   prometheus.Counter
	depositsPending prometheus.Counter
	billCount       prometheus.Gauge
}

// New creates a Prometheus collector under the given namespace.
func New(namespace string) *Collector {
	return &Collector{
		authAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "authentication_attempts_total",
				Help:      "Total number of authentication attempts by result",
			},
			[]string{"result"},
		),
		sessions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_total",
				Help:      "Total number of completed sessions",
			},
		),
		sessionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "session_duration_seconds",
				Help:      "Duration of completed sessions",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_total",
				Help:      "Total number of executed transactions by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		transactionTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transaction_duration_seconds",
				Help:      "Duration of executed transactions by kind",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		cashDispensed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cash_dispensed_dollars_total",
				Help:      "Total cash dispensed, in dollars",
			},
		),
		depositsPending: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deposits_pending_dollars_total",
				Help:      "Total deposits posted and awaiting clearance, in dollars",
			},
		),
		billCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dispenser_bills",
				Help:      "Bills remaining in the cash dispenser",
			},
		),
	}
}

// RecordAuthentication records one authentication attempt.
func (c *Collector) RecordAuthentication(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.authAttempts.WithLabelValues(result).Inc()
}

// RecordSession records a completed session.
func (c *Collector) RecordSession(duration time.Duration) {
	c.sessions.Inc()
	c.sessionDuration.Observe(duration.Seconds())
}

// RecordTransaction records one executed transaction.
func (c *Collector) RecordTransaction(kind, outcome string, duration time.Duration) {
	c.transactions.WithLabelValues(kind, outcome).Inc()
	c.transactionTime.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordCashDispensed records cash leaving the dispenser.
func (c *Collector) RecordCashDispensed(amount money.Cents) {
	c.cashDispensed.Add(float64(amount) / money.CentsPerDollar)
}

// RecordDepositPending records a posted deposit awaiting clearance.
func (c *Collector) RecordDepositPending(amount money.Cents) {
	c.depositsPending.Add(float64(amount) / money.CentsPerDollar)
}

// RecordBillCount records the dispenser's bill inventory.
func (c *Collector) RecordBillCount(bills int) {
	c.billCount.Set(float64(bills))
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.authAttempts.Describe(ch)
	c.sessions.Describe(ch)
	c.sessionDuration.Describe(ch)
	c.transactions.Describe(ch)
	c.transactionTime.Describe(ch)
	c.cashDispensed.Describe(ch)
	c.depositsPending.Describe(ch)
	c.billCount.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.authAttempts.Collect(ch)
	c.sessions.Collect(ch)
	c.sessionDuration.Collect(ch)
	c.transactions.Collect(ch)
	c.transactionTime.Collect(ch)
	c.cashDispensed.Collect(ch)
	c.depositsPending.Collect(ch)
	c.billCount.Collect(ch)
}
