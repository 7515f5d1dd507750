package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trpycore/atomiccell/config"
	"github.com/trpycore/atomiccell/counter"
)

// Collector exports every counter of a counter.AtomicCounters as one gauge
// family, labeled by counter name. Counters created later show up on the next
// scrape. Scrapes run on the HTTP server goroutines, so only the thread-safe
// counter set is accepted.
type Collector struct {
	counters *counter.AtomicCounters
	desc     *prometheus.Desc
}

func NewCollector(counters *counter.AtomicCounters, cfg config.Prometheus) *Collector {
	return &Collector{
		counters: counters,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, "value"),
			"Current value of a named counter.",
			[]string{"counter"},
			nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, v := range c.counters.AsMap() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(v), name)
	}
}

// Register creates a Collector for counters and registers it with reg.
func Register(reg prometheus.Registerer, counters *counter.AtomicCounters, cfg config.Prometheus) (*Collector, error) {
	c := NewCollector(counters, cfg)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}
