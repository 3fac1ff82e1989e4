package registry

import (
	"errors"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains atomic counters for registry operations.
// Metrics can be exported with Collectors or Register.
type Metrics struct {
	// CreateCount indicates the number of queues created.
	CreateCount atomic.Uint64
	// DestroyCount indicates the number of queues destroyed.
	DestroyCount atomic.Uint64

	// InsertCount indicates the number of successful head and tail insertions.
	InsertCount atomic.Uint64
	// RemoveCount indicates the number of successful head removals.
	RemoveCount atomic.Uint64
	// ReverseCount indicates the number of reverse operations.
	ReverseCount atomic.Uint64
	// SortCount indicates the number of sort operations.
	SortCount atomic.Uint64
	// ErrCount indicates the number of failed operations.
	ErrCount atomic.Uint64

	// HandleGauge indicates the number of live handles.
	HandleGauge atomic.Int64
	// ElementGauge indicates the number of elements stored across live handles.
	ElementGauge atomic.Int64
}

func (m *Metrics) incCreateCount() {
	m.CreateCount.Add(1)
	m.HandleGauge.Add(1)
}

func (m *Metrics) incDestroyCount(freed int) {
	m.DestroyCount.Add(1)
	m.HandleGauge.Add(-1)
	m.ElementGauge.Add(-int64(freed))
}

func (m *Metrics) incInsertCount() {
	m.InsertCount.Add(1)
	m.ElementGauge.Add(1)
}

func (m *Metrics) incRemoveCount() {
	m.RemoveCount.Add(1)
	m.ElementGauge.Add(-1)
}

func (m *Metrics) incReverseCount() {
	m.ReverseCount.Add(1)
}

func (m *Metrics) incSortCount() {
	m.SortCount.Add(1)
}

func (m *Metrics) incErrCount() {
	m.ErrCount.Add(1)
}

// Collectors returns Prometheus collectors reading the counters of m.
// Every metric name is prefixed with namespace, which may be empty.
func (m *Metrics) Collectors(namespace string) []prometheus.Collector {
	counter := func(name, help string, v *atomic.Uint64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "strqueue",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(v.Load()) })
	}
	gauge := func(name, help string, v *atomic.Int64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "strqueue",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(v.Load()) })
	}

	return []prometheus.Collector{
		counter("creates_total", "Total number of queues created", &m.CreateCount),
		counter("destroys_total", "Total number of queues destroyed", &m.DestroyCount),
		counter("inserts_total", "Total number of successful insertions", &m.InsertCount),
		counter("removes_total", "Total number of successful head removals", &m.RemoveCount),
		counter("reverses_total", "Total number of reverse operations", &m.ReverseCount),
		counter("sorts_total", "Total number of sort operations", &m.SortCount),
		counter("errors_total", "Total number of failed operations", &m.ErrCount),
		gauge("handles", "Number of live queue handles", &m.HandleGauge),
		gauge("elements", "Number of elements stored across live queues", &m.ElementGauge),
	}
}

// Register registers the collectors of m with reg.
func (m *Metrics) Register(reg prometheus.Registerer, namespace string) error {
	var errs []error
	for _, c := range m.Collectors(namespace) {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
