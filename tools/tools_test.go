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

package tools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Comcast/mode/examples/turing"
	"github.com/Comcast/mode/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyBeaver(t *testing.T) *Graph {
	g, err := ProgramGraph(turing.BusyBeaver())
	require.NoError(t, err)
	return g
}

var specSrc = `
name: doubler
doc: Doubles **n** until it's big.
start: double
interpreter: goja
nodes:
  double:
    doc: Double it.
    action:
      source: |
        var bs = _.bindings; bs.n = 2 * (bs.n || 1); return bs;
    next: check
  check:
    action:
      source: |
        if (100 < _.bindings.n) { _.next("done"); }
        return _.bindings;
    next: double
  done: {}
  error: {}
`

func doubler(t *testing.T) *Graph {
	spec, err := script.ParseSpec([]byte(specSrc))
	require.NoError(t, err)
	g, err := SpecGraph(spec)
	require.NoError(t, err)
	return g
}

func TestProgramGraph(t *testing.T) {
	g := busyBeaver(t)
	assert.Equal(t, "A", g.Start)
	assert.Len(t, g.Nodes, 6)
	assert.Len(t, g.Edges, 10)

	h := g.Node("H")
	require.NotNil(t, h)
	assert.True(t, h.Terminal)

	a := g.Node("A")
	require.NotNil(t, a)
	assert.Contains(t, a.Code, "next: B")
	assert.Equal(t, &Edge{From: "A", To: "H", Label: "0"}, g.Edges[0])
	assert.Equal(t, &Edge{From: "A", To: "B", Label: "1: clear, right"}, g.Edges[1])
	assert.Nil(t, g.Node("Z"))
}

func TestSpecGraph(t *testing.T) {
	g := doubler(t)
	assert.Equal(t, "double", g.Start)
	assert.Len(t, g.Nodes, 4)
	assert.True(t, g.Node("done").Terminal)
	assert.False(t, g.Node("check").Terminal)
	assert.Contains(t, g.Node("check").Code, "_.next")

	var errs, nexts int
	for _, e := range g.Edges {
		if e.Error {
			errs++
			assert.Equal(t, "error", e.To)
		} else {
			nexts++
		}
	}
	assert.Equal(t, 2, errs)
	assert.Equal(t, 2, nexts)

	// Start first.
	assert.Equal(t, "double", g.ordered()[0].Name)
}

func TestDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dot(busyBeaver(t), &buf, "A", "B"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph G {"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"A" -> "B" [ color="red"`)
	assert.Contains(t, out, `"A" -> "H" [ color="black"`)
	assert.Contains(t, out, `"H" [shape="record", style="filled,dashed"`)
}

func TestDotSpec(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dot(doubler(t), &buf, "", ""))
	out := buf.String()
	assert.Contains(t, out, `"double" -> "error" [ color="orange" style="dashed"`)
	assert.Contains(t, out, "&lt; _.bindings.n")
}

func TestDotFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "g.dot")
	out, err := os.Create(filename)
	require.NoError(t, err)
	require.NoError(t, Dot(busyBeaver(t), out, "", ""))
	require.NoError(t, out.Close())

	bs, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "digraph")
}

func TestMermaid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Mermaid(busyBeaver(t), &buf, nil, "A", "B"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph TB\n"))
	// A is the start, so it's n1.
	assert.Contains(t, out, `n1["A"]`)
	assert.Contains(t, out, `n1 -->|"1: clear, right"| n2`)
	assert.Contains(t, out, "linkStyle 1 stroke:#f00")
	assert.Contains(t, out, `("H")`)
}

func TestMermaidSpec(t *testing.T) {
	var buf bytes.Buffer
	opts := &MermaidOpts{ActionClass: "action"}
	require.NoError(t, Mermaid(doubler(t), &buf, opts, "", ""))
	out := buf.String()
	assert.Contains(t, out, "-.->")
	assert.Contains(t, out, "class n1 action")
	assert.NotContains(t, out, "|")
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPage(doubler(t), &buf, []string{"spec.css"}))
	out := buf.String()

	assert.Contains(t, out, "<title>doubler</title>")
	assert.Contains(t, out, `<link href="spec.css" rel="stylesheet">`)
	assert.Contains(t, out, "<strong>n</strong>")
	assert.Contains(t, out, `<span id="double" class="nodeName">double</span>`)
	assert.Contains(t, out, `<a href="#check"><code>check</code></a>`)
	assert.Contains(t, out, "100 &lt; _.bindings.n")
	assert.Contains(t, out, "</html>")
}

func TestRenderHTMLProgram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(busyBeaver(t), &buf))
	assert.Contains(t, buf.String(), "<p>A five-state machine")
}
