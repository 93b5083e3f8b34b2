package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the customer pages.
type Metrics struct {
	PagesRendered    *prometheus.CounterVec
	OrdersNotFound   prometheus.Counter
	OrdersIngested   prometheus.Counter
	IngestFailures   *prometheus.CounterVec
	ExpensesReplaced prometheus.Counter
}

// New registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PagesRendered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "customer_page_pages_rendered_total",
			Help: "Customer pages rendered, by page and status",
		}, []string{"page", "status"}),
		OrdersNotFound: f.NewCounter(prometheus.CounterOpts{
			Name: "customer_page_orders_not_found_total",
			Help: "Order detail requests for orders missing or owned by another customer",
		}),
		OrdersIngested: f.NewCounter(prometheus.CounterOpts{
			Name: "customer_page_orders_ingested_total",
			Help: "Orders accepted from the order feed",
		}),
		IngestFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "customer_page_ingest_failures_total",
			Help: "Order feed messages rejected, by reason",
		}, []string{"reason"}),
		ExpensesReplaced: f.NewCounter(prometheus.CounterOpts{
			Name: "customer_page_shipment_expenses_replaced_total",
			Help: "Shipment expenses overwritten by a later expense for the same shipment group",
		}),
	}
}

func (m *Metrics) PageRendered(page string, status int) {
	if m == nil {
		return
	}
	m.PagesRendered.WithLabelValues(page, statusLabel(status)).Inc()
}

func (m *Metrics) OrderNotFound() {
	if m == nil {
		return
	}
	m.OrdersNotFound.Inc()
}

func (m *Metrics) OrderIngested() {
	if m == nil {
		return
	}
	m.OrdersIngested.Inc()
}

func (m *Metrics) IngestFailed(reason string) {
	if m == nil {
		return
	}
	m.IngestFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) ShipmentExpensesReplaced(n int) {
	if m == nil || n == 0 {
		return
	}
	m.ExpensesReplaced.Add(float64(n))
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
