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

// These errors are programming errors, not runtime conditions.
// Nothing in this package returns them.  They are panic values, so
// a recover()ing caller can tell them apart with errors.As.

// MovedOut occurs when a Box is used after its state was moved out
// with Take.
type MovedOut struct {
	// Type is the Go type of the storage.
	Type string
}

func (e *MovedOut) Error() string {
	return `state in ` + e.Type + ` was already moved out`
}

// Released occurs when an Rc or Arc handle is used after Release or
// Take.
type Released struct {
	Type string
}

func (e *Released) Error() string {
	return `handle ` + e.Type + ` was already released`
}

// TransitionInProgress occurs when an Automaton is used from inside
// one of its own transition functions.
//
// The current state is owned by the transition function at that
// point, so there is nothing to look at.
type TransitionInProgress struct {
	// Op is the name of the attempted operation.
	Op string
}

func (e *TransitionInProgress) Error() string {
	return `cannot ` + e.Op + ` while a transition is taking place`
}

// EmptyStorage occurs when an Automaton is given a handle that holds
// no state, either initially or from a transition function.
type EmptyStorage struct {
	Type string
}

func (e *EmptyStorage) Error() string {
	return `no state in ` + e.Type
}
