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

package core

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Family membership is checked by the compiler, so these tests
// type-check this package's source along with some extra code.

const isolationDecls = `
package core

type isoFamily struct{ Exclusive[isoState] }

type isoState interface {
	Mode[isoFamily]
	Tick()
}

type isoOtherFamily struct{ Exclusive[isoOtherState] }

type isoOtherState interface{ Mode[isoOtherFamily] }

type isoMine struct{}

func (*isoMine) Family() isoFamily { return isoFamily{} }
func (*isoMine) Tick()             {}

type isoTheirs struct{}

func (*isoTheirs) Family() isoOtherFamily { return isoOtherFamily{} }
func (*isoTheirs) Tick()                  {}

type isoPlain int

func (isoPlain) Family() isoPlainFamily { return isoPlainFamily{} }

type isoPlainFamily struct{ InPlace[isoPlain] }

func isoAutomaton() *Automaton[isoFamily, isoState, *Box[isoState]] {
	return New[isoFamily, isoState](NewBox[isoState](&isoMine{}))
}
`

// typeCheck returns the type errors in this package plus body.
func typeCheck(t *testing.T, body string) []string {
	fset := token.NewFileSet()

	filenames, err := filepath.Glob("*.go")
	require.NoError(t, err)

	var files []*ast.File
	for _, filename := range filenames {
		if strings.HasSuffix(filename, "_test.go") {
			continue
		}
		src, err := os.ReadFile(filename)
		require.NoError(t, err)
		f, err := parser.ParseFile(fset, filename, src, 0)
		require.NoError(t, err)
		files = append(files, f)
	}

	f, err := parser.ParseFile(fset, "iso.go", isolationDecls+"\nfunc isoUse() {\n"+body+"\n}\n", 0)
	require.NoError(t, err)
	files = append(files, f)

	var errs []string
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error: func(err error) {
			errs = append(errs, err.Error())
		},
	}
	conf.Check("github.com/Comcast/mode/core", fset, files, nil)
	return errs
}

func TestFamilyIsolationAccepts(t *testing.T) {
	errs := typeCheck(t, `
	a := isoAutomaton()
	Next(a, func(b *Box[isoState]) *Box[isoState] {
		return b.Replace(&isoMine{})
	})
	p := NewDefault[isoPlainFamily, isoPlain]()
	_ = p
`)
	assert.Empty(t, errs)
}

func TestFamilyIsolationRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "replace with another family's state",
			body: `
	Next(isoAutomaton(), func(b *Box[isoState]) *Box[isoState] {
		return b.Replace(&isoTheirs{})
	})`,
			want: "isoTheirs",
		},
		{
			name: "return another family's storage",
			body: `
	Next(isoAutomaton(), func(b *Box[isoState]) *Box[isoOtherState] {
		return NewBox[isoOtherState](&isoTheirs{})
	})`,
			want: "isoOtherState",
		},
		{
			name: "start in another family's state",
			body: `
	a := New[isoFamily, isoState](NewBox[isoState](&isoTheirs{}))
	_ = a`,
			want: "isoTheirs",
		},
		{
			name: "default for a pointer discipline",
			body: `
	a := NewDefault[isoFamily, isoState]()
	_ = a`,
			want: "isoFamily",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := typeCheck(t, tc.body)
			require.NotEmpty(t, errs)
			assert.Contains(t, strings.Join(errs, "\n"), tc.want)
		})
	}
}
