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

import (
	"fmt"
	"sync/atomic"
)

// SharedAtomic is the storage discipline that holds the state behind
// an Arc, whose owners may live in different goroutines.
//
// It has the same clone-before-mutate policy as Shared.  It does not
// lock the Automaton: only one goroutine may call Next (or ModeMut)
// on a given Automaton at a time.
type SharedAtomic[B Cloner[B]] struct{}

func (SharedAtomic[B]) Base(s *Arc[B]) B {
	return s.Get()
}

func (SharedAtomic[B]) BaseMut(s **Arc[B]) *B {
	return (*s).MakeMut()
}

func (SharedAtomic[B]) Unwrap(s *Arc[B]) B {
	return s.Take()
}

func (SharedAtomic[B]) Wrap(b B) *Arc[B] {
	return NewArc(b)
}

// Valid reports whether s holds a state.
func (SharedAtomic[B]) Valid(s *Arc[B]) bool {
	return s != nil && s.cell != nil
}

// Arc is an Rc with an atomic ownership count.
//
// Handles can be given to other goroutines, which may Clone,
// Release, and Get concurrently.  A single handle is not itself safe
// for concurrent use.
type Arc[B Cloner[B]] struct {
	cell *arcCell[B]
}

type arcCell[B any] struct {
	v    B
	refs atomic.Int64
}

// NewArc makes the first owner of the given state.
func NewArc[B Cloner[B]](v B) *Arc[B] {
	c := &arcCell[B]{
		v: v,
	}
	c.refs.Store(1)
	return &Arc[B]{
		cell: c,
	}
}

func (r *Arc[B]) check() {
	if r.cell == nil {
		panic(&Released{fmt.Sprintf("%T", r)})
	}
}

// Clone returns a new owner of the same state.
func (r *Arc[B]) Clone() *Arc[B] {
	r.check()
	r.cell.refs.Add(1)
	return &Arc[B]{
		cell: r.cell,
	}
}

// Release gives up this handle's ownership.
func (r *Arc[B]) Release() {
	r.check()
	c := r.cell
	r.cell = nil
	if c.refs.Add(-1) == 0 {
		var zero B
		c.v = zero
	}
}

// Get returns the state that every owner shares.  Use MakeMut to
// change it.
func (r *Arc[B]) Get() B {
	r.check()
	return r.cell.v
}

// Count returns the number of owners at the time of the call.
func (r *Arc[B]) Count() int {
	r.check()
	return int(r.cell.refs.Load())
}

// Unique reports whether this handle is the only owner.
//
// A true result stays true until this handle is cloned, since no
// other handle exists that could be cloned.
func (r *Arc[B]) Unique() bool {
	return r.Count() == 1
}

// Same reports whether both handles own the same allocation.
func (r *Arc[B]) Same(other *Arc[B]) bool {
	r.check()
	other.check()
	return r.cell == other.cell
}

// MakeMut returns a pointer to a state that only this handle owns,
// cloning the state into a fresh allocation if other owners exist.
func (r *Arc[B]) MakeMut() *B {
	r.check()
	if r.cell.refs.Load() != 1 {
		// Clone before letting go of the old cell.
		c := &arcCell[B]{
			v: r.cell.v.Clone(),
		}
		c.refs.Store(1)
		r.Release()
		r.cell = c
	}
	return &r.cell.v
}

// Take moves the state out and releases this handle.  If other
// owners exist, Take returns a clone.
func (r *Arc[B]) Take() B {
	r.check()
	c := r.cell
	if c.refs.Load() != 1 {
		v := c.v.Clone()
		r.Release()
		return v
	}
	r.cell = nil
	c.refs.Store(0)
	v := c.v
	var zero B
	c.v = zero
	return v
}

func (r *Arc[B]) String() string {
	if r.cell == nil {
		return "Arc(released)"
	}
	return fmt.Sprintf("Arc(%v)", r.cell.v)
}
