package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	PatientsRegisteredTotal prometheus.Counter
	DoctorsRegisteredTotal  prometheus.Counter

	AppointmentsTotal      *prometheus.CounterVec
	BookingRejectionsTotal *prometheus.CounterVec
	AvailableSlots         prometheus.Gauge

	BillsGeneratedTotal prometheus.Counter
	BillTotal           prometheus.Histogram

	registry *prometheus.Registry
}

// NewCollector registers the ledger metrics on a fresh registry so several
// ledgers (tests, the simulator) can coexist in one process.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		PatientsRegisteredTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "patients_registered_total",
			Help:      "Total number of patients registered.",
		}),

		DoctorsRegisteredTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "doctors_registered_total",
			Help:      "Total number of doctors registered.",
		}),

		AppointmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "appointments_total",
			Help:      "Appointment status transitions by resulting status.",
		}, []string{"status"}),

		BookingRejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "booking_rejections_total",
			Help:      "Rejected booking attempts by reason.",
		}, []string{"reason"}),

		AvailableSlots: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "available_slots",
			Help:      "Slots currently open for booking across all doctors.",
		}),

		BillsGeneratedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "bills_generated_total",
			Help:      "Total bills generated.",
		}),

		BillTotal: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "bill_total",
			Help:      "Distribution of bill totals.",
			Buckets:   []float64{1000, 2500, 5000, 7500, 10000, 20000, 50000},
		}),
	}
}

func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile dumps the current values in the Prometheus text format, for
// pickup by a node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
