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

// Shared is the storage discipline that holds the state behind an
// Rc, which can have many owners in one goroutine.
//
// When a transition (or ModeMut) needs the state while other owners
// exist, the state is cloned first and the Automaton's handle moves
// to the copy.  The other owners keep seeing the old state.
type Shared[B Cloner[B]] struct{}

func (Shared[B]) Base(s *Rc[B]) B {
	return s.Get()
}

func (Shared[B]) BaseMut(s **Rc[B]) *B {
	return (*s).MakeMut()
}

func (Shared[B]) Unwrap(s *Rc[B]) B {
	return s.Take()
}

func (Shared[B]) Wrap(b B) *Rc[B] {
	return NewRc(b)
}

// Valid reports whether s holds a state.
func (Shared[B]) Valid(s *Rc[B]) bool {
	return s != nil && s.cell != nil
}

// Rc is a reference-counted handle to a state.
//
// Each handle is one owner.  Clone makes another owner, and Release
// gives ownership up.  The count is not synchronized.  Use Arc to
// share states across goroutines.
//
// States reached through an Rc should be treated as read-only.  Use
// MakeMut or Take to get something you may change.
type Rc[B Cloner[B]] struct {
	cell *rcCell[B]
}

type rcCell[B any] struct {
	v    B
	refs int
}

// NewRc makes the first owner of the given state.
func NewRc[B Cloner[B]](v B) *Rc[B] {
	return &Rc[B]{
		cell: &rcCell[B]{
			v:    v,
			refs: 1,
		},
	}
}

func (r *Rc[B]) check() {
	if r.cell == nil {
		panic(&Released{fmt.Sprintf("%T", r)})
	}
}

// Clone returns a new owner of the same state.
func (r *Rc[B]) Clone() *Rc[B] {
	r.check()
	r.cell.refs++
	return &Rc[B]{
		cell: r.cell,
	}
}

// Release gives up this handle's ownership.
func (r *Rc[B]) Release() {
	r.check()
	c := r.cell
	r.cell = nil
	if c.refs--; c.refs == 0 {
		var zero B
		c.v = zero
	}
}

// Get returns the state that every owner shares.  Use MakeMut to
// change it.
func (r *Rc[B]) Get() B {
	r.check()
	return r.cell.v
}

// Count returns the number of owners.
func (r *Rc[B]) Count() int {
	r.check()
	return r.cell.refs
}

// Unique reports whether this handle is the only owner.
func (r *Rc[B]) Unique() bool {
	return r.Count() == 1
}

// Same reports whether both handles own the same allocation.
func (r *Rc[B]) Same(other *Rc[B]) bool {
	r.check()
	other.check()
	return r.cell == other.cell
}

// MakeMut returns a pointer to a state that only this handle owns.
//
// If other owners exist, the state is cloned into a fresh
// allocation, and this handle moves to it.
func (r *Rc[B]) MakeMut() *B {
	r.check()
	if r.cell.refs != 1 {
		c := &rcCell[B]{
			v:    r.cell.v.Clone(),
			refs: 1,
		}
		r.cell.refs--
		r.cell = c
	}
	return &r.cell.v
}

// Take moves the state out and releases this handle.
//
// If other owners exist, they keep the state, and Take returns a
// clone.
func (r *Rc[B]) Take() B {
	r.check()
	c := r.cell
	r.cell = nil
	if c.refs != 1 {
		c.refs--
		return c.v.Clone()
	}
	c.refs = 0
	v := c.v
	var zero B
	c.v = zero
	return v
}

func (r *Rc[B]) String() string {
	if r.cell == nil {
		return "Rc(released)"
	}
	return fmt.Sprintf("Rc(%v)", r.cell.v)
}
