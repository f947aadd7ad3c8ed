/* Copyright 2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package core

import "fmt"

// Automaton is a state machine over the states of the Family F.
//
// An Automaton always holds exactly one current state, stored as an
// S.  The state's capabilities are available via Mode() and
// ModeMut().  Next and NextWithResult swap in another state.
//
// Automaton deliberately has few methods so that it never competes
// with B's own method names.
//
// Not safe for concurrent use.
type Automaton[F Family[B, S], B Mode[F], S any] struct {
	family F
	mode   S

	// swapping is true while a transition function owns the
	// current state.
	swapping bool
}

// New makes an Automaton whose current state is the given one.
//
// For InPlace storage, initial is just the state.  For the pointer
// disciplines, wrap the state first (NewBox, NewRc, or NewArc).  The
// Family and Base type parameters usually have to be given:
//
//	a := core.New[ActivityFamily, Activity](core.NewBox[Activity](&Working{}))
//
// New panics with *EmptyStorage if initial is a handle without a
// state.
func New[F Family[B, S], B Mode[F], S any](initial S) *Automaton[F, B, S] {
	a := &Automaton[F, B, S]{}
	a.install(initial)
	return a
}

// NewDefault makes an Automaton whose current state is the zero B.
//
// Only InPlace families have a zero state worth starting from.  The
// zero Base of a pointer discipline is a nil interface.
func NewDefault[F Family[B, B], B Mode[F]]() *Automaton[F, B, B] {
	var b B
	return New[F, B](b)
}

// validator is implemented by the pointer disciplines, whose handles
// can be nil, moved out, or released.
type validator[S any] interface {
	Valid(s S) bool
}

// install makes s the current storage unless it holds no state.
func (a *Automaton[F, B, S]) install(s S) {
	if v, is := any(a.family).(validator[S]); is && !v.Valid(s) {
		panic(&EmptyStorage{fmt.Sprintf("%T", s)})
	}
	a.mode = s
}

func (a *Automaton[F, B, S]) guard(op string) {
	if a.swapping {
		panic(&TransitionInProgress{op})
	}
}

// Mode returns the current state's capability surface.
//
// With Shared or SharedAtomic storage, the returned state is also
// seen by the other owners.  Use ModeMut to change it.
func (a *Automaton[F, B, S]) Mode() B {
	a.guard("borrow the current state")
	return a.family.Base(a.mode)
}

// ModeMut returns a pointer to the current state for mutation.
//
// With Shared or SharedAtomic storage, the state is first cloned if
// other owners exist, so those owners do not see the change.
//
// The pointer is valid until the next transition.
func (a *Automaton[F, B, S]) ModeMut() *B {
	a.guard("mutably borrow the current state")
	return a.family.BaseMut(&a.mode)
}

// Storage returns the storage holding the current state.
//
// With Shared or SharedAtomic storage, Clone the returned handle to
// become another owner of the current state.
func (a *Automaton[F, B, S]) Storage() S {
	a.guard("borrow the current storage")
	return a.mode
}

// String formats the current state.
func (a *Automaton[F, B, S]) String() string {
	if a.swapping {
		return "Automaton(swapping)"
	}
	return fmt.Sprint(a.family.Base(a.mode))
}

func (a *Automaton[F, B, S]) begin(op string) {
	a.guard(op)
	a.swapping = true
}

func (a *Automaton[F, B, S]) end() {
	a.swapping = false
}

// Next swaps the current state for whatever the given transition
// function returns.
//
// The function is called exactly once, and it owns the outgoing
// state's storage.  It may move data out of that state into the
// state it returns.  To stay in the current state, return the
// argument.
//
// If the function panics, the panic propagates unchanged and the
// Automaton keeps the storage that it handed over.  Returning a handle
// without a state (nil, moved out, or released) panics with
// *EmptyStorage in the same way.
//
// Next is a function rather than a method so that it never collides
// with a method of B.
func Next[F Family[B, S], B Mode[F], S any](a *Automaton[F, B, S], transition func(S) S) {
	a.begin("start a transition")
	defer a.end()

	a.install(transition(a.mode))
}

// NextWithResult is Next for a transition function that also returns
// a result, which NextWithResult returns untouched.
//
// The result is the way to learn what happened during a transition:
// whether the state changed, what it emitted, or an error.  Any
// input a transition needs can be captured by the function itself.
func NextWithResult[F Family[B, S], B Mode[F], S any, R any](a *Automaton[F, B, S], transition func(S) (S, R)) R {
	a.begin("start a transition")
	defer a.end()

	next, result := transition(a.mode)
	a.install(next)
	return result
}

// Lift turns a transition function on states into a transition
// function on F's storage, using F's Unwrap and Wrap.
//
// The result works with any storage discipline.  With pointer
// storage, each call allocates new storage for the returned state.
func Lift[F Family[B, S], B Mode[F], S any](transition func(B) B) func(S) S {
	var f F
	return func(s S) S {
		return f.Wrap(transition(f.Unwrap(s)))
	}
}

// LiftWithResult is Lift for transition functions that also return a
// result.
func LiftWithResult[F Family[B, S], B Mode[F], S any, R any](transition func(B) (B, R)) func(S) (S, R) {
	var f F
	return func(s S) (S, R) {
		b, r := transition(f.Unwrap(s))
		return f.Wrap(b), r
	}
}
