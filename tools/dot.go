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

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Comcast/mode/util"
)

// Dot makes a Graphviz dot file for the given Graph.
//
// The optional fromNode and toNode can be names of nodes during a
// transition.  If non-zero, then the edge between them and the
// toNode will be red.
func Dot(g *Graph, w io.Writer, fromNode, toNode string) error {
	util.Logf("processing %d nodes", len(g.Nodes))

	fmt.Fprintf(w, "digraph G {\n")
	fmt.Fprintf(w, `  graph [ordering=out,rankdir=TB,nodesep=0.3,ranksep=0.6]
  node [shape="record" style="rounded,filled"]
  edge [fontsize = "12"]
`)

	for _, n := range g.ordered() {
		label := n.Name
		if n.Doc != "" {
			doc := n.Doc
			if 40 < len(doc) {
				period := strings.Index(doc, ". ")
				if 0 < period {
					doc = doc[0 : period+1]
				}
			}
			label += "<BR/><FONT POINT-SIZE='8'>" + escape(doc) + "</FONT>"
		}
		var (
			fillcolor = "#99ddc8"
			color     = "black"
			shape     = "record"
			style     = "filled"
		)
		if n.Code != "" {
			shape = "note"
			fillcolor = "#52aa5e"
			label += `<FONT POINT-SIZE="6">` +
				`<BR/>` + strings.Replace(escape(n.Code)+"\n", "\n", `<BR ALIGN="LEFT"/>`, -1) + `<BR/>` +
				`</FONT>`
		}
		if toNode == n.Name {
			color = "red"
			fillcolor = "#f98b8b"
		}
		if n.Name == g.Start {
			style += ",bold"
		}
		if n.Terminal {
			style += ",dashed"
		}
		fmt.Fprintf(w, "  %s [shape=\"%s\", style=\"%s\", color=\"%s\", fillcolor=\"%s\", label=<%s> ]\n",
			id(n.Name), shape, style, color, fillcolor, label)
	}

	for _, e := range g.Edges {
		color := "black"
		style := "solid"
		if e.Error {
			color = "orange"
			style = "dashed"
		}
		if fromNode == e.From && toNode == e.To {
			color = "red"
		}
		fmt.Fprintf(w, "  %s -> %s [ color=\"%s\" style=\"%s\" label = <%s> ]\n",
			id(e.From), id(e.To), color, style, escape(e.Label))
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}

// PNG generates a PNG image based on output from Dot.
//
// This function with write two files: basename.dot and basename.png,
// where the basename is the given string.  Requires Graphviz's "dot"
// command.
func PNG(g *Graph, basename string, fromNode, toNode string) (string, error) {
	dotname := basename + ".dot"
	pngname := basename + ".png"

	dotfile, err := os.Create(dotname)
	if err != nil {
		return pngname, err
	}
	if err := Dot(g, dotfile, fromNode, toNode); err != nil {
		dotfile.Close()
		return pngname, err
	}
	if err := dotfile.Close(); err != nil {
		return pngname, err
	}
	if err := exec.Command("dot", "-Tpng", "-Gstart=1", "-o", pngname, dotname).Run(); err != nil {
		return pngname, err
	}
	return pngname, nil
}

// id quotes a node name for dot.
func id(name string) string {
	return `"` + strings.Replace(name, `"`, `\"`, -1) + `"`
}

// escape makes the given string safe for an HTML-like label.
func escape(s string) string {
	s = strings.Replace(s, "&", `&amp;`, -1)
	s = strings.Replace(s, "<", `&lt;`, -1)
	s = strings.Replace(s, ">", `&gt;`, -1)
	return s
}
