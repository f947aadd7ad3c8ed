// Package mode provides explicit finite-state machines whose states
// are distinct values.
//
// A transition hands the outgoing state to a function that returns
// the incoming state, so data moves from one state to the next
// without copying.
//
// The core code is in package 'core'.  Example machines are in
// `examples`, scripted machines are in `script`, and the `modes`
// command in `cmd/modes` runs them.
package mode
