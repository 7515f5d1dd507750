// Package cell provides Cell, a mutable slot holding one shared value.
//
// Get, Set and CompareAndSet are lock-free and safe for use from many
// goroutines at once. The slot is a single pointer word: CompareAndSet
// compares by pointer identity, never by the pointed-to contents.
//
//	c := cell.MustNew(&config{Level: 1})
//	old := c.Set(&config{Level: 2})
//	if !c.CompareAndSet(old, &config{Level: 3}) {
//		// someone else replaced old first
//	}
//
// Values obtained from a cell stay valid after the cell is mutated or
// dropped. A value that refers back to its own cell forms a cycle the
// garbage collector reclaims like any other.
package cell
