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

// Package testutil has helpers for tests that look at JSON and
// line-oriented output.
package testutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// JS renders x as compact JSON, or with %#v if it has no JSON form.
func JS(x interface{}) string {
	bs, err := json.Marshal(&x)
	if err != nil {
		slog.Warn("testutil.JS", "error", err, "value", fmt.Sprintf("%#v", x))
		return fmt.Sprintf("%#v", x)
	}
	return string(bs)
}

// Dwimjs parses strings and bytes as JSON, so they can be compared
// with Go values.  Anything else is returned as is.
//
// Numbers come back as float64.
func Dwimjs(x interface{}) (interface{}, error) {
	var s string
	switch vv := x.(type) {
	case []byte:
		s = string(vv)
	case string:
		s = vv
	default:
		return x, nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("not JSON: %q: %w", s, err)
	}
	return v, nil
}

// Lines splits s into its non-blank lines, trimmed.
func Lines(s string) []string {
	var acc []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			acc = append(acc, line)
		}
	}
	return acc
}

// JSONLines parses each of the non-blank lines of s with Dwimjs.
func JSONLines(s string) ([]interface{}, error) {
	lines := Lines(s)
	acc := make([]interface{}, 0, len(lines))
	for i, line := range lines {
		x, err := Dwimjs(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		acc = append(acc, x)
	}
	return acc, nil
}
