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

// Family is the contract for a state machine kind.
//
// B is the capability surface (the "Base") through which an
// Automaton exposes its current state.  S is the storage used to
// hold that state (the "ModeStorage").
//
// A Family is a zero-size marker type that is never used for
// anything but its methods.  Implementations usually just embed one
// of InPlace, Exclusive, Shared, or SharedAtomic:
//
//	type ActivityFamily struct{ core.Exclusive[Activity] }
type Family[B, S any] interface {
	// Base returns the capability surface of the stored state.
	Base(s S) B

	// BaseMut returns a pointer to the stored state for
	// mutation.  Shared disciplines clone the state first if
	// there are other owners, updating *s to point at the fresh
	// copy.
	BaseMut(s *S) *B

	// Unwrap moves the state out of its storage.  The storage
	// value must not be used afterwards.
	Unwrap(s S) B

	// Wrap puts a state into fresh storage.
	Wrap(b B) S
}

// Mode declares that a state belongs to the Family F.
//
// Every state type implements Mode for exactly one F.  The method
// is never called by this package.
type Mode[F any] interface {
	Family() F
}

// Cloner is required of states held by the Shared and SharedAtomic
// disciplines, which clone a state before mutating it when other
// owners exist.
type Cloner[B any] interface {
	Clone() B
}

// BelongsTo reports whether v is a state of the Family F.
//
// The compiler already rejects states from the wrong Family when
// they are handled through a Base type.  This function is for values
// that have been reduced to an interface{}.
func BelongsTo[F any](v interface{}) bool {
	_, is := v.(Mode[F])
	return is
}
