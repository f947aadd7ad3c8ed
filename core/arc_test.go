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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gauge struct {
	level int
}

type gaugeFamily struct {
	SharedAtomic[*gauge]
}

func (*gauge) Family() gaugeFamily { return gaugeFamily{} }

func (g *gauge) Clone() *gauge {
	c := *g
	return &c
}

func raise(g *gauge) *gauge {
	g.level++
	return g
}

func TestArcCloneRelease(t *testing.T) {
	r := NewArc(&gauge{})
	r2 := r.Clone()
	require.Equal(t, 2, r.Count())
	assert.True(t, r.Same(r2))

	r.Release()
	assert.True(t, r2.Unique())
	assert.Equal(t, "Arc(released)", r.String())

	defer func() {
		_, is := recover().(*Released)
		assert.True(t, is)
	}()
	r.Get()
}

func TestArcCloneOnWrite(t *testing.T) {
	a := New[gaugeFamily, *gauge](NewArc(&gauge{level: 1}))
	other := a.Storage().Clone()

	Next(a, Lift[gaugeFamily, *gauge, *Arc[*gauge]](raise))

	assert.Equal(t, 1, other.Get().level)
	assert.Equal(t, 2, a.Mode().level)
	assert.False(t, other.Same(a.Storage()))
	assert.True(t, other.Unique())
}

func TestArcTakeUnique(t *testing.T) {
	g := &gauge{level: 3}
	r := NewArc(g)
	assert.Same(t, g, r.Take())
	assert.Panics(t, func() { r.Take() })
}

// Owners in other goroutines keep reading the state they were given
// while the Automaton moves on.
func TestArcConcurrentReaders(t *testing.T) {
	const readers = 8

	a := New[gaugeFamily, *gauge](NewArc(&gauge{}))
	lift := Lift[gaugeFamily, *gauge, *Arc[*gauge]](raise)

	var wg sync.WaitGroup
	seen := make([]int, readers)
	for i := 0; i < readers; i++ {
		Next(a, lift)
		h := a.Storage().Clone()
		want := a.Mode().level
		wg.Add(1)
		go func(i int, h *Arc[*gauge]) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if h.Get().level != want {
					seen[i] = -1
					return
				}
			}
			seen[i] = h.Get().level
			h.Release()
		}(i, h)
	}

	for i := 0; i < 100; i++ {
		Next(a, lift)
	}
	wg.Wait()

	for i, level := range seen {
		assert.Equal(t, i+1, level)
	}
	assert.Equal(t, readers+100, a.Mode().level)
	assert.True(t, a.Storage().Unique())
}
