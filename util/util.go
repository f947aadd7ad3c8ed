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

// Package util has a few things that don't belong anywhere else.
package util

import (
	"fmt"
	"log/slog"
)

// Logging is a clumsy switch that affects what Logf does.
//
// If Logging is true, then Logf logs at debug level with the default
// slog.Logger.
var Logging = false

// Logf is a silly utility function that logs the formatted message
// if Logging is true.
func Logf(format string, args ...interface{}) {
	if !Logging {
		return
	}
	slog.Debug(fmt.Sprintf(format, args...))
}
