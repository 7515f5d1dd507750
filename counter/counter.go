// Package counter implements named int64 counters, plain and thread-safe.
package counter

// Counter is a single named counter.
type Counter interface {
	Name() string
	// Get returns the current value.
	Get() int64
	// Set stores v and returns the previous value.
	Set(v int64) int64
	// Increment adds n and returns the new value.
	Increment(n int64) int64
	// Decrement subtracts n and returns the new value.
	Decrement(n int64) int64
}

// Counters is a set of counters addressed by name. A counter missing from
// the set is created with the set's initial value on first access.
type Counters interface {
	Counter(name string) Counter
	Get(name string) int64
	Set(name string, v int64) int64
	Increment(name string, n int64) int64
	Decrement(name string, n int64) int64
	// AsMap returns a snapshot of all counter values.
	AsMap() map[string]int64
}

var (
	_ Counter  = (*Basic)(nil)
	_ Counter  = (*Atomic)(nil)
	_ Counters = (*BasicCounters)(nil)
	_ Counters = (*AtomicCounters)(nil)
)
