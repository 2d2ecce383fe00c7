package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ticket-storefront/store"
)

var (
	storeRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_records_total",
			Help: "Current record count per store collection",
		},
		[]string{"collection"},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total store operations",
		},
		[]string{"operation", "collection"},
	)

	ordersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders placed through checkout",
		},
	)

	orderRevenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_revenue_total",
			Help: "Cumulative checkout revenue including fees",
		},
	)

	dashboardRevenue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_revenue",
			Help: "Dashboard revenue metric (all orders regardless of status)",
		},
	)
)

type Monitor struct {
	store *store.Store
}

func NewMonitor(st *store.Store) *Monitor {
	monitor := &Monitor{store: st}

	// Start metrics collection
	go monitor.collectMetrics()

	return monitor
}

func (m *Monitor) collectMetrics() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.collectStoreMetrics()
	}
}

func (m *Monitor) collectStoreMetrics() {
	storeRecords.WithLabelValues("users").Set(float64(len(m.store.GetAllUsers())))
	storeRecords.WithLabelValues("organizers").Set(float64(len(m.store.GetAllOrganizers())))
	storeRecords.WithLabelValues("events").Set(float64(len(m.store.GetAllEvents())))
	storeRecords.WithLabelValues("orders").Set(float64(len(m.store.GetAllOrders())))
	storeRecords.WithLabelValues("tickets").Set(float64(len(m.store.GetAllTickets())))
	storeRecords.WithLabelValues("refunds").Set(float64(len(m.store.GetAllRefunds())))

	metrics := m.store.GetDashboardMetrics()
	dashboardRevenue.Set(metrics.TotalRevenue)
}

// TrackStoreOperation counts one mutation against a collection.
func TrackStoreOperation(operation, collection string) {
	storeOperations.WithLabelValues(operation, collection).Inc()
}

// TrackOrderPlaced counts one checkout and its revenue.
func TrackOrderPlaced(amount float64) {
	ordersPlaced.Inc()
	orderRevenue.Add(amount)
}
