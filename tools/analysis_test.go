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
	"testing"

	"github.com/Comcast/mode/examples/turing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBusyBeaver(t *testing.T) {
	g, err := ProgramGraph(turing.BusyBeaver())
	require.NoError(t, err)

	a := Analyze(g)
	assert.Equal(t, "busybeaver", a.Name)
	assert.Equal(t, 6, a.NodeCount)
	assert.Equal(t, 10, a.EdgeCount)
	assert.Equal(t, 5, a.Actions)
	assert.Equal(t, []string{"H"}, a.TerminalNodes)
	assert.Empty(t, a.Unreachable)
	assert.Empty(t, a.Errors)
}

func TestAnalyzeProblems(t *testing.T) {
	g := &Graph{
		Name:  "broken",
		Start: "a",
		Nodes: []*GraphNode{
			{Name: "a", Code: "x"},
			{Name: "b"},
			{Name: "c", Terminal: true},
		},
		Edges: []*Edge{
			{From: "a", To: "c"},
			{From: "a", To: "z"},
			{From: "b", To: "c"},
			{From: "c", To: "a", Error: true},
		},
	}

	a := Analyze(g)
	assert.Equal(t, 1, a.Actions)
	assert.Equal(t, 1, a.ErrorEdges)
	assert.Equal(t, []string{"b"}, a.Unreachable)
	assert.Equal(t, []string{"z"}, a.MissingTargets)
	assert.Equal(t, []string{"no node z"}, a.Errors)

	g.Start = "nowhere"
	a = Analyze(g)
	assert.Contains(t, a.Errors, "no start node nowhere")
	assert.Len(t, a.Unreachable, 3)
}
