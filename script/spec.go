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
	"context"
	"fmt"
	"sort"

	"github.com/jsccast/yaml"
)

// DefaultErrorNode is the name of the node that a machine goes to
// when an action fails, unless the Spec says otherwise.
const DefaultErrorNode = "error"

// Spec is a specification used to build a scripted machine.
//
// A Spec gives the structure of the machine.  It does not include
// any state (such as the name of the current node or a machine's
// Bindings).
//
// If a Spec includes Nodes with ActionSources, then the Spec must be
// Compiled before use.
type Spec struct {
	// Name is the generic name for this machine.
	Name string `json:"name,omitempty" yaml:",omitempty"`

	// Doc is general documentation about how this Spec works.
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// Start is the name of the initial node.
	Start string `json:"start" yaml:"start"`

	// Interpreter is the default interpreter for actions that
	// don't name one.
	Interpreter string `json:"interpreter,omitempty" yaml:",omitempty"`

	// ErrorNode is the node to go to when an action fails.  The
	// failure is given in an "error" binding.
	//
	// When ErrorNode is empty, DefaultErrorNode is used if the
	// Spec has a node by that name.  Otherwise a failed action
	// leaves the machine where it is, and Step returns the error.
	ErrorNode string `json:"errorNode,omitempty" yaml:"errorNode,omitempty"`

	Nodes map[string]*Node `json:"nodes" yaml:"nodes"`

	compiled bool
}

// Node is a named part of a Spec.
//
// A Node with neither Action nor Next is terminal.
type Node struct {
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// Action, if given, computes new Bindings and maybe the next
	// node.
	Action *ActionSource `json:"action,omitempty" yaml:",omitempty"`

	// Next is the node to go to after this one.  Empty means to
	// stay at this node.
	Next string `json:"next,omitempty" yaml:",omitempty"`

	action *action
}

// Terminal reports whether the Node can't go anywhere.
func (n *Node) Terminal() bool {
	return n.Action == nil && n.Next == ""
}

// ActionSource can be compiled to an action.
type ActionSource struct {
	Interpreter string      `json:"interpreter,omitempty" yaml:",omitempty"`
	Source      interface{} `json:"source"`
}

type action struct {
	interpreter Interpreter
	source      interface{}
	compiled    interface{}
}

func (a *action) exec(ctx context.Context, node string, bs Bindings) (*Execution, error) {
	return a.interpreter.Exec(ctx, node, bs.Copy(), a.source, a.compiled)
}

// UnknownNode occurs when a Spec refers to a node it doesn't have.
type UnknownNode struct {
	Spec string
	Node string
}

func (e *UnknownNode) Error() string {
	return fmt.Sprintf("spec %q has no node %q", e.Spec, e.Node)
}

// ParseSpec parses a YAML (or JSON) Spec.
//
// The Spec still needs to be Compiled.
func ParseSpec(bs []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(bs, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec: %w", err)
	}
	return &spec, nil
}

// NodeNames returns the Spec's node names in sorted order.
func (s *Spec) NodeNames() []string {
	acc := make([]string, 0, len(s.Nodes))
	for name := range s.Nodes {
		acc = append(acc, name)
	}
	sort.Strings(acc)
	return acc
}

// Validate checks that every node the Spec mentions exists.
func (s *Spec) Validate() error {
	if _, have := s.Nodes[s.Start]; !have {
		return &UnknownNode{s.Name, s.Start}
	}
	if s.ErrorNode != "" {
		if _, have := s.Nodes[s.ErrorNode]; !have {
			return &UnknownNode{s.Name, s.ErrorNode}
		}
	}
	for _, name := range s.NodeNames() {
		n := s.Nodes[name]
		if n == nil {
			return fmt.Errorf("spec %q node %q is empty", s.Name, name)
		}
		if n.Next == "" {
			continue
		}
		if _, have := s.Nodes[n.Next]; !have {
			return &UnknownNode{s.Name, n.Next}
		}
	}
	return nil
}

// Compile validates the Spec and compiles its actions with the given
// interpreters.
func (s *Spec) Compile(ctx context.Context, interpreters InterpretersMap) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, name := range s.NodeNames() {
		n := s.Nodes[name]
		if n.Action == nil {
			continue
		}
		interpreterName := n.Action.Interpreter
		if interpreterName == "" {
			interpreterName = s.Interpreter
		}
		i, err := interpreters.Find(interpreterName)
		if err != nil {
			return fmt.Errorf("node %q: %w", name, err)
		}
		x, err := i.Compile(ctx, n.Action.Source)
		if err != nil {
			return fmt.Errorf("node %q: %w", name, err)
		}
		n.action = &action{
			interpreter: i,
			source:      n.Action.Source,
			compiled:    x,
		}
	}
	s.compiled = true
	return nil
}

// Compiled reports whether Compile succeeded.
func (s *Spec) Compiled() bool {
	return s.compiled
}

func (s *Spec) errorNode() string {
	if s.ErrorNode != "" {
		return s.ErrorNode
	}
	if _, have := s.Nodes[DefaultErrorNode]; have {
		return DefaultErrorNode
	}
	return ""
}
