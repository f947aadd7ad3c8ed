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
)

// Execution is what running a node's action produced.
type Execution struct {
	// Bs are the new Bindings.
	Bs Bindings

	// Next, if not empty, overrides the node's Next.
	Next string

	// Emitted is whatever the action emitted, in order.
	Emitted []interface{}
}

// NewExecution makes an Execution with the given Bindings.
func NewExecution(bs Bindings) *Execution {
	return &Execution{
		Bs: bs,
	}
}

// Emit adds the given message to Emitted.
func (e *Execution) Emit(x interface{}) {
	e.Emitted = append(e.Emitted, x)
}

// Interpreter can optionally compile and execute code for actions.
type Interpreter interface {
	// Compile can make something that helps when Exec()ing the
	// code later.
	Compile(ctx context.Context, code interface{}) (interface{}, error)

	// Exec executes the code at the given node with a copy of
	// the state's Bindings.  The result of previous Compile()
	// might be provided.
	Exec(ctx context.Context, node string, bs Bindings, code interface{}, compiled interface{}) (*Execution, error)
}

// InterpretersMap maps interpreter names to Interpreters.
type InterpretersMap map[string]Interpreter

// Find returns the named Interpreter, or an *UnknownInterpreter.
func (m InterpretersMap) Find(name string) (Interpreter, error) {
	i, have := m[name]
	if !have {
		return nil, &UnknownInterpreter{name}
	}
	return i, nil
}

// UnknownInterpreter occurs when an action names an interpreter that
// wasn't provided.
type UnknownInterpreter struct {
	Name string
}

func (e *UnknownInterpreter) Error() string {
	return fmt.Sprintf("interpreter %q not found", e.Name)
}

// Func is a Go function that can serve as an action.
type Func func(ctx context.Context, node string, bs Bindings) (*Execution, error)

// Funcs is an Interpreter whose action sources are names of Go
// functions.
type Funcs map[string]Func

func (fs Funcs) Compile(ctx context.Context, code interface{}) (interface{}, error) {
	name, is := code.(string)
	if !is {
		return nil, fmt.Errorf("func name is a %T, not a string", code)
	}
	f, have := fs[name]
	if !have {
		return nil, fmt.Errorf("no func %q", name)
	}
	return f, nil
}

func (fs Funcs) Exec(ctx context.Context, node string, bs Bindings, code interface{}, compiled interface{}) (*Execution, error) {
	f, is := compiled.(Func)
	if !is {
		x, err := fs.Compile(ctx, code)
		if err != nil {
			return nil, err
		}
		f = x.(Func)
	}
	return f(ctx, node, bs)
}
