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
	"fmt"
	"io"
	"strings"

	"github.com/Comcast/mode/util"
)

type MermaidOpts struct {
	// ShowLabels will result in edge labels.
	ShowLabels bool `json:"showLabels"`

	// ActionFill is the fill color of for nodes with code.  Does
	// not apply if ActionClass is set.
	ActionFill string `json:"actionFill,omitempty"`

	// ActionClass will be the CSS class for nodes with code.
	ActionClass string `json:"actionClass,omitempty"`
}

// Mermaid makes a Mermaid (https://mermaidjs.github.io/) input file
// for the given Graph.
//
// The optional fromNode and toNode highlight a transition.
func Mermaid(g *Graph, w io.Writer, opts *MermaidOpts, fromNode, toNode string) error {
	if opts == nil {
		opts = &MermaidOpts{
			ShowLabels: true,
			ActionFill: "#bcf2db",
		}
	}

	util.Logf("processing %d nodes", len(g.Nodes))

	fmt.Fprintf(w, "graph TB\n")

	nids := make(map[string]string)
	nid := func(name string) string {
		if id, already := nids[name]; already {
			return id
		}
		id := fmt.Sprintf("n%d", len(nids)+1)
		nids[name] = id
		return id
	}

	for _, n := range g.ordered() {
		id := nid(n.Name)
		if n.Code == "" {
			fmt.Fprintf(w, "  %s(\"%s\")\n", id, quote(n.Name))
		} else {
			fmt.Fprintf(w, "  %s[\"%s\"]\n", id, quote(n.Name))
			if opts.ActionClass != "" {
				fmt.Fprintf(w, "  class %s %s\n", id, opts.ActionClass)
			} else if opts.ActionFill != "" {
				fmt.Fprintf(w, "  style %s fill:%s\n", id, opts.ActionFill)
			}
		}
		if n.Name == toNode {
			fmt.Fprintf(w, "  style %s stroke:#f00,stroke-width:3px\n", id)
		}
	}

	for i, e := range g.Edges {
		arrow := "-->"
		if e.Error {
			arrow = "-.->"
		}
		label := ""
		if opts.ShowLabels && e.Label != "" {
			label = fmt.Sprintf("|\"%s\"|", quote(e.Label))
		}
		fmt.Fprintf(w, "  %s %s%s %s\n", nid(e.From), arrow, label, nid(e.To))
		if e.From == fromNode && e.To == toNode {
			fmt.Fprintf(w, "  linkStyle %d stroke:#f00\n", i)
		}
	}

	_, err := fmt.Fprintf(w, "\n")
	util.Logf("mermaid gen done")
	return err
}

func quote(s string) string {
	return strings.Replace(s, `"`, `'`, -1)
}
