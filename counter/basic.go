package counter

import "github.com/trpycore/atomiccell/config"

// Basic is a counter for single goroutine use.
type Basic struct {
	name  string
	value int64
}

func NewBasic(name string, value int64) *Basic {
	return &Basic{name: name, value: value}
}

func (c *Basic) Name() string { return c.name }

func (c *Basic) Get() int64 { return c.value }

func (c *Basic) Set(v int64) int64 {
	old := c.value
	c.value = v
	return old
}

func (c *Basic) Increment(n int64) int64 {
	c.value += n
	return c.value
}

func (c *Basic) Decrement(n int64) int64 {
	c.value -= n
	return c.value
}

// BasicCounters is a Counters for single goroutine use.
type BasicCounters struct {
	initial  int64
	counters map[string]*Basic
}

func NewBasicCounters(cfg config.Counters) *BasicCounters {
	b := &BasicCounters{
		initial:  cfg.InitialValue,
		counters: make(map[string]*Basic, len(cfg.Names)),
	}
	for _, name := range cfg.Names {
		b.counters[name] = NewBasic(name, b.initial)
	}
	return b
}

func (b *BasicCounters) counter(name string) *Basic {
	c, ok := b.counters[name]
	if !ok {
		c = NewBasic(name, b.initial)
		b.counters[name] = c
	}
	return c
}

// Contains reports whether name exists, without creating it.
func (b *BasicCounters) Contains(name string) bool {
	_, ok := b.counters[name]
	return ok
}

// Lookup returns the value of an existing counter, without creating it.
func (b *BasicCounters) Lookup(name string) (int64, bool) {
	c, ok := b.counters[name]
	if !ok {
		return 0, false
	}
	return c.Get(), true
}

func (b *BasicCounters) Counter(name string) Counter { return b.counter(name) }

func (b *BasicCounters) Get(name string) int64 { return b.counter(name).Get() }

func (b *BasicCounters) Set(name string, v int64) int64 { return b.counter(name).Set(v) }

func (b *BasicCounters) Increment(name string, n int64) int64 {
	return b.counter(name).Increment(n)
}

func (b *BasicCounters) Decrement(name string, n int64) int64 {
	return b.counter(name).Decrement(n)
}

func (b *BasicCounters) AsMap() map[string]int64 {
	m := make(map[string]int64, len(b.counters))
	for name, c := range b.counters {
		m[name] = c.Get()
	}
	return m
}
