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

// InPlace is the storage discipline that holds the state itself.
//
// B is then the only state type of the Family, and S is B.  A tagged
// union (a struct with a kind field) or an enum-like named type
// works well here.
type InPlace[B any] struct{}

func (InPlace[B]) Base(s B) B {
	return s
}

func (InPlace[B]) BaseMut(s *B) *B {
	return s
}

func (InPlace[B]) Unwrap(s B) B {
	return s
}

func (InPlace[B]) Wrap(b B) B {
	return b
}
