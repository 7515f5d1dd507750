package counter

import (
	"github.com/lomik/zapwriter"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"

	"github.com/trpycore/atomiccell/cell"
	"github.com/trpycore/atomiccell/config"
)

// Atomic is a counter safe for concurrent use. Updates never block, they
// retry their compare-and-set until it succeeds.
type Atomic struct {
	name  string
	value *cell.Cell[int64]
}

func NewAtomic(name string, value int64) *Atomic {
	return &Atomic{
		name:  name,
		value: cell.MustNew(&value),
	}
}

func (c *Atomic) Name() string { return c.name }

func (c *Atomic) Get() int64 { return *c.value.Get() }

func (c *Atomic) Set(v int64) int64 {
	return *c.value.Set(&v)
}

func (c *Atomic) Increment(n int64) int64 {
	// spinning update can't fail
	v, _ := cell.Increment(c.value, n, true)
	return v
}

func (c *Atomic) Decrement(n int64) int64 {
	v, _ := cell.Decrement(c.value, n, true)
	return v
}

// AtomicCounters is a Counters safe for concurrent use.
type AtomicCounters struct {
	initial  int64
	counters cmap.ConcurrentMap[string, *Atomic]
	logger   *zap.Logger
}

// NewAtomicCounters creates the counters listed in cfg. A nil logger means
// the "counters" logger from zapwriter.
func NewAtomicCounters(cfg config.Counters, logger *zap.Logger) *AtomicCounters {
	if logger == nil {
		logger = zapwriter.Logger("counters")
	}

	a := &AtomicCounters{
		initial:  cfg.InitialValue,
		counters: cmap.New[*Atomic](),
		logger:   logger,
	}
	for _, name := range cfg.Names {
		a.counter(name)
	}
	return a
}

func (a *AtomicCounters) counter(name string) *Atomic {
	if c, ok := a.counters.Get(name); ok {
		return c
	}

	created := false
	c := a.counters.Upsert(name, nil, func(exist bool, inMap, _ *Atomic) *Atomic {
		if exist {
			return inMap
		}
		created = true
		return NewAtomic(name, a.initial)
	})
	if created {
		a.logger.Debug("counter created",
			zap.String("counter", name),
			zap.Int64("value", a.initial),
		)
	}
	return c
}

func (a *AtomicCounters) Counter(name string) Counter { return a.counter(name) }

func (a *AtomicCounters) Get(name string) int64 { return a.counter(name).Get() }

func (a *AtomicCounters) Set(name string, v int64) int64 { return a.counter(name).Set(v) }

func (a *AtomicCounters) Increment(name string, n int64) int64 {
	return a.counter(name).Increment(n)
}

func (a *AtomicCounters) Decrement(name string, n int64) int64 {
	return a.counter(name).Decrement(n)
}

// AsMap reads every counter separately, the snapshot is not atomic across counters.
func (a *AtomicCounters) AsMap() map[string]int64 {
	m := make(map[string]int64, a.counters.Count())
	a.counters.IterCb(func(name string, c *Atomic) {
		m[name] = c.Get()
	})
	return m
}
