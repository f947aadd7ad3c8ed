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

// Exclusive is the storage discipline that holds the state in a
// Box, which has exactly one owner.
//
// Transitions never clone.  A transition function that returns the
// Box it was given allocates nothing.
type Exclusive[B any] struct{}

func (Exclusive[B]) Base(s *Box[B]) B {
	return s.Get()
}

func (Exclusive[B]) BaseMut(s **Box[B]) *B {
	return (*s).Ptr()
}

func (Exclusive[B]) Unwrap(s *Box[B]) B {
	return s.Take()
}

func (Exclusive[B]) Wrap(b B) *Box[B] {
	return NewBox(b)
}

// Valid reports whether s holds a state.
func (Exclusive[B]) Valid(s *Box[B]) bool {
	return s != nil && !s.moved
}

// Box is an exclusively owned handle to a state.
//
// Once the state has been moved out with Take, the Box can only be
// refilled with Replace.  Anything else panics with *MovedOut.
type Box[B any] struct {
	v     B
	moved bool
}

// NewBox makes a Box that owns the given state.
func NewBox[B any](v B) *Box[B] {
	return &Box[B]{
		v: v,
	}
}

func (b *Box[B]) check() {
	if b.moved {
		panic(&MovedOut{fmt.Sprintf("%T", b)})
	}
}

// Get returns the state.
func (b *Box[B]) Get() B {
	b.check()
	return b.v
}

// Ptr returns a pointer to the state, which stays valid until the
// next Take or Replace.
func (b *Box[B]) Ptr() *B {
	b.check()
	return &b.v
}

// Take moves the state out of the Box.
func (b *Box[B]) Take() B {
	b.check()
	v := b.v
	var zero B
	b.v = zero
	b.moved = true
	return v
}

// Replace installs a new state in this Box, dropping any state that
// it still holds, and returns the Box.
//
// Use Replace instead of NewBox to swap states without a new
// allocation.
func (b *Box[B]) Replace(v B) *Box[B] {
	b.v = v
	b.moved = false
	return b
}

// Moved reports whether the state has been moved out.
func (b *Box[B]) Moved() bool {
	return b.moved
}

func (b *Box[B]) String() string {
	if b.moved {
		return "Box(moved)"
	}
	return fmt.Sprintf("Box(%v)", b.v)
}
