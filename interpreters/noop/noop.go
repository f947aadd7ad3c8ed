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

// Package noop provides a script.Interpreter whose actions do
// nothing.
package noop

import (
	"context"

	"github.com/Comcast/mode/script"
	"github.com/Comcast/mode/util"
)

// Interpreter is a script.Interpreter which just returns the
// bindings without modification.
type Interpreter struct {
	// Silent, if true, will suppress warning log messages.
	Silent bool
}

func (i *Interpreter) Compile(ctx context.Context, code interface{}) (interface{}, error) {
	if !i.Silent {
		util.Logf("warning: Using noop Interpreter for compilation")
	}
	return nil, nil
}

func (i *Interpreter) Exec(ctx context.Context, node string, bs script.Bindings, code interface{}, compiled interface{}) (*script.Execution, error) {
	if !i.Silent {
		util.Logf("warning: Using noop Interpreter for execution at %s", node)
	}
	return script.NewExecution(bs), nil
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}
