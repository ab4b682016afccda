// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry       *prometheus.Registry
	logins         *prometheus.CounterVec
	reflections    *prometheus.CounterVec
	ledgerFailures prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paperdrill",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		reflections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paperdrill",
			Name:      "reflections_total",
			Help:      "Reflection submissions by result.",
		}, []string{"result"}),
		ledgerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "paperdrill",
			Name:      "ledger_append_failures_total",
			Help:      "Ledger rows that could not be appended.",
		}),
	}
	reg.MustRegister(m.logins, m.reflections, m.ledgerFailures)
	return m
}

func (m *Metrics) Login(ok bool) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) Reflection(ok bool) {
	if m == nil {
		return
	}
	m.reflections.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) LedgerFailure() {
	if m == nil {
		return
	}
	m.ledgerFailures.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
