package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/msaf1980/go-metrics"

	"github.com/trpycore/atomiccell/counter"
)

// GoMetrics mirrors counters into go-metrics counters named
// <prefix>.<counter>, so the go-metrics graphite sender can ship them.
// go-metrics counters only take deltas: Sync adds whatever changed since the
// previous Sync.
type GoMetrics struct {
	counters *counter.AtomicCounters
	prefix   string

	mu         sync.Mutex
	registered map[string]metrics.Counter
	last       map[string]int64
}

// RegisterGoMetrics registers a go-metrics counter for every existing counter
// and syncs the current values.
func RegisterGoMetrics(counters *counter.AtomicCounters, prefix string) *GoMetrics {
	g := &GoMetrics{
		counters:   counters,
		prefix:     prefix,
		registered: make(map[string]metrics.Counter),
		last:       make(map[string]int64),
	}
	g.Sync()
	return g
}

// Name returns the go-metrics name of a counter.
func (g *GoMetrics) Name(counterName string) string {
	if g.prefix == "" {
		return counterName
	}
	return g.prefix + "." + counterName
}

// Sync registers counters created since the last call and pushes value changes.
func (g *GoMetrics) Sync() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for name, v := range g.counters.AsMap() {
		m, ok := g.registered[name]
		if !ok {
			m = metrics.NewCounter()
			metrics.Register(g.Name(name), m)
			g.registered[name] = m
		}
		if d := v - g.last[name]; d != 0 {
			m.Add(uint64(d))
			g.last[name] = v
		}
	}
}

// Run calls Sync every interval until ctx is done.
func (g *GoMetrics) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			g.Sync()
		}
	}
}

func (g *GoMetrics) synced(name string) (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.last[name]
	return v, ok
}
