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

package script

import (
	"encoding/json"
	"fmt"

	"github.com/jsccast/yaml"
)

// Bindings is a map from names to values that a scripted state
// carries from node to node.
//
// Values should be JSON-friendly.
type Bindings map[string]interface{}

// NewBindings makes empty Bindings.
func NewBindings() Bindings {
	return make(Bindings, 8)
}

// Copy makes a shallow copy of the Bindings.
func (bs Bindings) Copy() Bindings {
	acc := make(Bindings, len(bs))
	for p, v := range bs {
		acc[p] = v
	}
	return acc
}

// Extend adds the property; modifies and returns the Bindings.
func (bs Bindings) Extend(p string, v interface{}) Bindings {
	bs[p] = v
	return bs
}

// Delete removes the given properties; modifies and returns the
// Bindings.
func (bs Bindings) Delete(ps ...string) Bindings {
	for _, p := range ps {
		delete(bs, p)
	}
	return bs
}

// ParseBindings parses YAML (and therefore JSON) into Bindings.
//
// The empty string gives empty Bindings.
func ParseBindings(s string) (Bindings, error) {
	bs := NewBindings()
	if s == "" {
		return bs, nil
	}
	if err := yaml.Unmarshal([]byte(s), &bs); err != nil {
		return nil, fmt.Errorf("parsing bindings: %w", err)
	}
	return bs, nil
}

// Canonicalize makes a JSON-compatible representation of the given
// value, which might be an interpreter's native data.
//
// Numbers come back as float64.
func Canonicalize(x interface{}) (interface{}, error) {
	js, err := json.Marshal(&x)
	if err != nil {
		return nil, err
	}
	var y interface{}
	if err = json.Unmarshal(js, &y); err != nil {
		return nil, err
	}
	return y, nil
}

// CanonicalizeBindings is Canonicalize for Bindings.
func CanonicalizeBindings(bs Bindings) (Bindings, error) {
	if bs == nil {
		return NewBindings(), nil
	}
	x, err := Canonicalize(map[string]interface{}(bs))
	if err != nil {
		return nil, err
	}
	m, is := x.(map[string]interface{})
	if !is {
		return nil, fmt.Errorf("bindings became a %T", x)
	}
	return Bindings(m), nil
}
