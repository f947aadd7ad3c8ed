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
	"html"
	"io"

	md "github.com/russross/blackfriday/v2"
)

// RenderHTML writes an HTML fragment that documents the Graph.
//
// Docs are Markdown.
func RenderHTML(g *Graph, out io.Writer) error {
	var err error
	f := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="specDoc doc">%s</div>`, md.Run([]byte(g.Doc)))

	f(`<div class="nodes"><table>`)
	for _, n := range g.ordered() {
		name := html.EscapeString(n.Name)
		f(`<tr class="node"><td><span id="%s" class="nodeName">%s</span></td><td>`, name, name)

		if n.Doc != "" {
			f(`<div class="nodeDoc doc">%s</div>`, md.Run([]byte(n.Doc)))
		}
		if n.Code != "" {
			f(`<div class="code"><pre>%s</pre></div>`, html.EscapeString(n.Code))
		}

		first := true
		for _, e := range g.Edges {
			if e.From != n.Name {
				continue
			}
			if first {
				f(`<div class="edges"><table>`)
				first = false
			}
			class := "edge"
			if e.Error {
				class = "edge errorEdge"
			}
			to := html.EscapeString(e.To)
			f(`<tr class="%s"><td>%s</td><td><a href="#%s"><code>%s</code></a></td></tr>`,
				class, html.EscapeString(e.Label), to, to)
		}
		if !first {
			f(`</table></div>`)
		}
		f(`</td></tr>`)
	}
	f(`</table></div>`)

	return err
}

// RenderPage writes a complete HTML page for the Graph.
func RenderPage(g *Graph, out io.Writer, cssFiles []string) error {
	name := html.EscapeString(g.Name)

	fmt.Fprintf(out, `<!DOCTYPE html>
<html>
  <head>
  <meta charset="utf-8">
  <title>%s</title>
`, name)

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", html.EscapeString(cssFile))
	}

	fmt.Fprintf(out, `  </head>
  <body>
    <h1>%s</h1>
`, name)

	if err := RenderHTML(g, out); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, `  </body>
</html>
`)
	return err
}
