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

// Package tools renders machines as Graphviz dot, Mermaid, and HTML.
//
// Both turing Programs and script Specs reduce to a Graph, which the
// renderers work from.
package tools

import (
	"fmt"
	"sort"

	"github.com/Comcast/mode/examples/turing"
	"github.com/Comcast/mode/script"

	"gopkg.in/yaml.v2"
)

// Graph is the structure of a machine.
type Graph struct {
	Name  string
	Doc   string
	Start string
	Nodes []*GraphNode
	Edges []*Edge
}

// GraphNode is a state or node of a machine.
type GraphNode struct {
	Name string
	Doc  string

	// Code is the node's action source or rules, if any.
	Code string

	// Terminal nodes go nowhere.
	Terminal bool
}

// Edge is a possible transition.
type Edge struct {
	From  string
	To    string
	Label string

	// Error is true for the edge taken when an action fails.
	Error bool
}

// Node returns the named GraphNode or nil.
func (g *Graph) Node(name string) *GraphNode {
	for _, n := range g.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// ordered returns the nodes with the start node first.
func (g *Graph) ordered() []*GraphNode {
	acc := make([]*GraphNode, 0, len(g.Nodes))
	if n := g.Node(g.Start); n != nil {
		acc = append(acc, n)
	}
	for _, n := range g.Nodes {
		if n.Name != g.Start {
			acc = append(acc, n)
		}
	}
	return acc
}

// ProgramGraph makes a Graph for a Turing Program.
//
// Each Rule is an Edge labeled with the bit read and the operations.
func ProgramGraph(p *turing.Program) (*Graph, error) {
	g := &Graph{
		Name:  p.Name,
		Doc:   p.Doc,
		Start: string(p.Start),
	}

	halts := false
	for _, s := range p.States() {
		rules := p.Rules[s]
		code, err := yaml.Marshal(rules)
		if err != nil {
			return nil, err
		}
		g.Nodes = append(g.Nodes, &GraphNode{
			Name: string(s),
			Code: string(code),
		})
		for _, bit := range []int{0, 1} {
			r, have := rules[bit]
			if !have {
				continue
			}
			label := fmt.Sprintf("%d", bit)
			if r.Print != "" || r.Shift != "" {
				label += fmt.Sprintf(": %s, %s", r.Print, r.Shift)
			}
			g.Edges = append(g.Edges, &Edge{
				From:  string(s),
				To:    string(r.Next),
				Label: label,
			})
			if r.Next == turing.Halt {
				halts = true
			}
		}
	}
	if halts || p.Start == turing.Halt {
		g.Nodes = append(g.Nodes, &GraphNode{
			Name:     string(turing.Halt),
			Doc:      "Halt.",
			Terminal: true,
		})
	}

	return g, nil
}

// SpecGraph makes a Graph for a script Spec.
//
// Only static transitions appear.  An action that chooses its next
// node at run time might go elsewhere.
func SpecGraph(s *script.Spec) (*Graph, error) {
	g := &Graph{
		Name:  s.Name,
		Doc:   s.Doc,
		Start: s.Start,
	}

	errorNode := s.ErrorNode
	if errorNode == "" {
		if _, have := s.Nodes[script.DefaultErrorNode]; have {
			errorNode = script.DefaultErrorNode
		}
	}

	names := s.NodeNames()
	for _, name := range names {
		n := s.Nodes[name]
		if n == nil {
			return nil, fmt.Errorf("spec %q node %q is empty", s.Name, name)
		}
		gn := &GraphNode{
			Name:     name,
			Doc:      n.Doc,
			Terminal: n.Terminal(),
		}
		if n.Action != nil {
			gn.Code = source(n.Action.Source)
		}
		g.Nodes = append(g.Nodes, gn)

		if n.Next != "" {
			g.Edges = append(g.Edges, &Edge{
				From: name,
				To:   n.Next,
			})
		}
		if n.Action != nil && errorNode != "" && name != errorNode {
			g.Edges = append(g.Edges, &Edge{
				From:  name,
				To:    errorNode,
				Label: "error",
				Error: true,
			})
		}
	}

	sort.SliceStable(g.Edges, func(i, j int) bool {
		return g.Edges[i].From < g.Edges[j].From
	})

	return g, nil
}

func source(x interface{}) string {
	if s, is := x.(string); is {
		return s
	}
	bs, err := yaml.Marshal(x)
	if err != nil {
		return fmt.Sprintf("%#v", x)
	}
	return string(bs)
}
