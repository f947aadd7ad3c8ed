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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInline(t *testing.T) {
	input := `
I like %inline("tacos"), and
I also like %inline("queso").
Both are delicious.
`
	want := `
I like TACOS, and
I also like QUESO.
Both are delicious.
`

	find := func(name string) ([]byte, error) {
		return []byte(strings.ToUpper(name)), nil
	}

	got, err := Inline([]byte(input), find)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestInlineNothing(t *testing.T) {
	got, err := Inline([]byte("plain"), nil)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(got))
}

func TestInlineFails(t *testing.T) {
	broken := errors.New("broken")
	_, err := Inline([]byte(`%inline("x")`), func(string) ([]byte, error) {
		return nil, broken
	})
	assert.ErrorIs(t, err, broken)
}

func TestReadFileWithInlines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "double.js"), []byte("return {n: 2*_.bindings.n};"), 0644))
	filename := filepath.Join(dir, "spec.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("source: '%inline(\"double.js\")'\n"), 0644))

	got, err := ReadFileWithInlines(filename)
	require.NoError(t, err)
	assert.Equal(t, "source: 'return {n: 2*_.bindings.n};'\n", string(got))

	_, err = ReadFileWithInlines(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
