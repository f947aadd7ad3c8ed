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

// Package script runs machines whose transitions are scripted
// actions.
//
// A scripted machine has a single state type, State, which is a node
// name and some Bindings.  A Spec says what each node's action is and
// where to go next.  An Interpreter runs the actions.
package script

import (
	"context"
	"errors"
	"fmt"

	"github.com/Comcast/mode/core"
)

// Family is the in-place family of scripted states.
type Family struct {
	core.InPlace[State]
}

// State is the state of a scripted machine.
type State struct {
	Node string   `json:"node"`
	Bs   Bindings `json:"bs"`
}

func (State) Family() Family { return Family{} }

func (s State) String() string {
	return fmt.Sprintf("%s %v", s.Node, map[string]interface{}(s.Bs))
}

// Stride records one step.
type Stride struct {
	From    string        `json:"from"`
	To      string        `json:"to"`
	Bs      Bindings      `json:"bs"`
	Emitted []interface{} `json:"emitted,omitempty"`

	// Error is the action's failure that sent the machine to the
	// error node.
	Error string `json:"error,omitempty"`
}

// Machine is a compiled Spec and the current State.
type Machine struct {
	Spec *Spec

	a *core.Automaton[Family, State, State]
}

// ErrNotCompiled occurs when a Machine's Spec hasn't been compiled.
var ErrNotCompiled = errors.New("spec not compiled")

// NewMachine makes a Machine at the Spec's start node with the given
// Bindings, which may be nil.
func NewMachine(spec *Spec, bs Bindings) (*Machine, error) {
	if !spec.Compiled() {
		return nil, ErrNotCompiled
	}
	if bs == nil {
		bs = NewBindings()
	}
	return &Machine{
		Spec: spec,
		a: core.New[Family, State](State{
			Node: spec.Start,
			Bs:   bs,
		}),
	}, nil
}

// State returns the current State.
func (m *Machine) State() State {
	return m.a.Mode()
}

// Done reports whether the current node is terminal.
func (m *Machine) Done() bool {
	n, have := m.Spec.Nodes[m.a.Mode().Node]
	return !have || n.Terminal()
}

type stepResult struct {
	stride *Stride
	err    error
}

// Step runs the current node's action and moves to the next node.
//
// When the action fails, the machine goes to the Spec's error node
// with the failure in an "error" binding.  Without an error node, the
// machine stays where it is, and Step returns the error.
func (m *Machine) Step(ctx context.Context) (*Stride, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := core.NextWithResult(m.a, func(s State) (State, stepResult) {
		to, stride, err := m.transition(ctx, s)
		if err != nil {
			return s, stepResult{err: err}
		}
		return to, stepResult{stride: stride}
	})
	return r.stride, r.err
}

func (m *Machine) transition(ctx context.Context, s State) (State, *Stride, error) {
	n, have := m.Spec.Nodes[s.Node]
	if !have {
		return s, nil, &UnknownNode{m.Spec.Name, s.Node}
	}

	var (
		bs      = s.Bs
		next    = n.Next
		emitted []interface{}
	)

	if n.action != nil {
		exe, err := n.action.exec(ctx, s.Node, s.Bs)
		if err == nil {
			if exe == nil {
				exe = NewExecution(nil)
			}
			bs, err = CanonicalizeBindings(exe.Bs)
		}
		if err != nil {
			errorNode := m.Spec.errorNode()
			if errorNode == "" {
				return s, nil, fmt.Errorf("node %q action: %w", s.Node, err)
			}
			bs = s.Bs.Copy().Extend("error", err.Error())
			stride := &Stride{
				From:  s.Node,
				To:    errorNode,
				Bs:    bs,
				Error: err.Error(),
			}
			return State{errorNode, bs}, stride, nil
		}
		if exe.Next != "" {
			next = exe.Next
		}
		emitted = exe.Emitted
	}

	if next == "" {
		next = s.Node
	}
	if _, have := m.Spec.Nodes[next]; !have {
		return s, nil, &UnknownNode{m.Spec.Name, next}
	}

	stride := &Stride{
		From:    s.Node,
		To:      next,
		Bs:      bs,
		Emitted: emitted,
	}
	return State{next, bs}, stride, nil
}

// StopReason represents the possible reasons for a Walk to
// terminate.
type StopReason int

const (
	Done     StopReason = iota // Reached a terminal node.
	Limited                    // Too many steps.
	Failed                     // A step returned an error.
	Canceled                   // The context is done.
)

var stopReasons = []string{"Done", "Limited", "Failed", "Canceled"}

func (r StopReason) String() string {
	if r < 0 || int(r) >= len(stopReasons) {
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
	return stopReasons[r]
}

// Walked is the result of a Walk.
type Walked struct {
	Strides        []*Stride  `json:"strides"`
	StoppedBecause StopReason `json:"stoppedBecause"`
	Error          error      `json:"-"`
}

// Walk steps until the machine is Done, or until limit steps, or
// until a step fails.  A limit of zero means no limit.
//
// Reaching an error node whose Spec gives it no action or next also
// ends the Walk with Done.
func (m *Machine) Walk(ctx context.Context, limit int) *Walked {
	walked := &Walked{}
	for {
		if m.Done() {
			walked.StoppedBecause = Done
			return walked
		}
		if 0 < limit && limit <= len(walked.Strides) {
			walked.StoppedBecause = Limited
			return walked
		}
		stride, err := m.Step(ctx)
		if err != nil {
			walked.Error = err
			walked.StoppedBecause = Failed
			if ctx.Err() != nil {
				walked.StoppedBecause = Canceled
			}
			return walked
		}
		walked.Strides = append(walked.Strides, stride)
	}
}
