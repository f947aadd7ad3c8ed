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

// Package interpreters collects the standard script interpreters.
package interpreters

import (
	"github.com/Comcast/mode/interpreters/goja"
	"github.com/Comcast/mode/interpreters/noop"
	"github.com/Comcast/mode/script"
)

// Standard returns the standard interpreters by name.
//
// "goja" and its aliases "ecmascript" and "ecmascript-5.1" run
// ECMAScript.  "noop" does nothing.
func Standard() script.InterpretersMap {
	is := make(script.InterpretersMap)

	es := goja.NewInterpreter()
	is["goja"] = es
	is["ecmascript"] = es
	is["ecmascript-5.1"] = es

	is["noop"] = noop.NewInterpreter()

	return is
}
