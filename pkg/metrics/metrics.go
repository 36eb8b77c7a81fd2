package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/gymnexus/pkg/apierr"
	"github.com/dmitrymomot/gymnexus/pkg/hostroute"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

const namespace = "gymnexus"

// Metrics holds the Prometheus collectors of the request-scoping layer.
type Metrics struct {
	TenantResolutions *prometheus.CounterVec
	HostRouting       *prometheus.CounterVec
	GuardRejections   *prometheus.CounterVec
	SweepRuns         *prometheus.CounterVec
	SweepReactivated  prometheus.Counter
	SweepFailures     prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TenantResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenant_resolutions_total",
			Help:      "Requests by the method that resolved their gym.",
		}, []string{"source"}), // source: subdomain, header_id, query_id, origin, none
		HostRouting: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "host_routing_total",
			Help:      "Navigation requests by routing action.",
		}, []string{"action"}), // action: redirect, rewrite, passthrough
		GuardRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guard_rejections_total",
			Help:      "Requests rejected by route guards, by error kind.",
		}, []string{"kind"}),
		SweepRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_runs_total",
			Help:      "Suspension sweeps by outcome.",
		}, []string{"result"}), // result: success, error
		SweepReactivated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_reactivated_total",
			Help:      "Memberships reactivated by the suspension sweep.",
		}),
		SweepFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_failures_total",
			Help:      "Memberships the suspension sweep failed to reactivate.",
		}),
	}
}

// ObserveResolution matches tenant.WithResolveHook.
func (m *Metrics) ObserveResolution(_ *http.Request, res tenant.Resolution) {
	m.TenantResolutions.WithLabelValues(string(res.Source)).Inc()
}

// ObserveDecision matches hostroute.WithDecisionHook.
func (m *Metrics) ObserveDecision(_ *http.Request, d hostroute.Decision) {
	m.HostRouting.WithLabelValues(d.Action.String()).Inc()
}

// ObserveRejection matches guard.WithRejectionHook.
func (m *Metrics) ObserveRejection(_ *http.Request, err *apierr.Error) {
	m.GuardRejections.WithLabelValues(err.Kind).Inc()
}

// ObserveSweep matches membership.WithSweepHook.
func (m *Metrics) ObserveSweep(res membership.Result, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.SweepRuns.WithLabelValues(result).Inc()
	m.SweepReactivated.Add(float64(res.Reactivated))
	m.SweepFailures.Add(float64(res.Failed))
}
