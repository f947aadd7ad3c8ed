/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
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

// Package core provides the core gear for explicit state machines
// whose states are distinct values.
//
// A state machine kind is a Family: a zero-size marker type that
// fixes the capability surface B through which callers see the
// current state and the storage S used to hold it.  The marker gets
// its storage discipline by embedding exactly one of InPlace,
// Exclusive, Shared or SharedAtomic.
//
// Each state type implements Mode[F] for exactly one Family F.  When
// B is an interface that embeds Mode[F], a state that declares some
// other Family cannot be stored, and a transition function cannot
// return it.  The compiler checks that.
//
// An Automaton holds exactly one current state.  Callers drive
// per-tick behavior through Mode() and ModeMut(), and they swap
// states with Next or NextWithResult.  A transition function gets
// the outgoing storage value by ownership and returns the incoming
// one.  Returning the argument means "stay".  Data that moves from
// the outgoing state into the incoming state is not copied.
//
// Nothing in this package blocks, does IO, or starts goroutines.  An
// Automaton is not safe for concurrent use.  The SharedAtomic
// discipline only makes the state's ownership count safe to share
// across goroutines.
//
// To use this package, define a Family marker, a Base interface (or
// a single concrete state type for InPlace storage), and the state
// types.  Then New() an Automaton and call Next().
package core
