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

package tools

import (
	"sort"
)

// Analysis summarizes the structure of a Graph and lists its
// problems.
type Analysis struct {
	Name       string `json:"name" yaml:"name"`
	NodeCount  int    `json:"nodeCount" yaml:"nodeCount"`
	EdgeCount  int    `json:"edgeCount" yaml:"edgeCount"`
	ErrorEdges int    `json:"errorEdges" yaml:"errorEdges"`

	// Actions counts the nodes with Code.
	Actions int `json:"actions" yaml:"actions"`

	TerminalNodes []string `json:"terminalNodes,omitempty" yaml:"terminalNodes,omitempty"`

	// Unreachable nodes can't be reached from the start node by
	// following Edges.
	Unreachable []string `json:"unreachable,omitempty" yaml:"unreachable,omitempty"`

	// MissingTargets are Edge targets with no node.
	MissingTargets []string `json:"missingTargets,omitempty" yaml:"missingTargets,omitempty"`

	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Analyze examines the Graph.
//
// Actions that choose their next node at run time make edges that
// the Graph doesn't know about, so Unreachable is a list of suspects
// for script Specs.
func Analyze(g *Graph) *Analysis {
	a := &Analysis{
		Name:      g.Name,
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}

	out := make(map[string][]string)
	missing := make(map[string]bool)
	for _, e := range g.Edges {
		if e.Error {
			a.ErrorEdges++
		}
		if g.Node(e.To) == nil {
			missing[e.To] = true
		}
		out[e.From] = append(out[e.From], e.To)
	}

	for _, n := range g.Nodes {
		if n.Code != "" {
			a.Actions++
		}
		if n.Terminal {
			a.TerminalNodes = append(a.TerminalNodes, n.Name)
		}
	}
	sort.Strings(a.TerminalNodes)

	if g.Node(g.Start) == nil {
		a.Errors = append(a.Errors, "no start node "+g.Start)
	}

	reached := map[string]bool{g.Start: true}
	pending := []string{g.Start}
	for 0 < len(pending) {
		name := pending[0]
		pending = pending[1:]
		for _, to := range out[name] {
			if !reached[to] {
				reached[to] = true
				pending = append(pending, to)
			}
		}
	}
	for _, n := range g.Nodes {
		if !reached[n.Name] {
			a.Unreachable = append(a.Unreachable, n.Name)
		}
	}
	sort.Strings(a.Unreachable)

	a.MissingTargets = keys(missing)
	for _, name := range a.MissingTargets {
		a.Errors = append(a.Errors, "no node "+name)
	}

	return a
}

func keys(m map[string]bool) []string {
	acc := make([]string, 0, len(m))
	for k := range m {
		acc = append(acc, k)
	}
	sort.Strings(acc)
	return acc
}
