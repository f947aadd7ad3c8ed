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

package core_test

import (
	"fmt"

	"github.com/Comcast/mode/core"
)

type DoorFamily struct {
	core.Exclusive[Door]
}

type Door interface {
	core.Mode[DoorFamily]
	Push(b *core.Box[Door]) *core.Box[Door]
}

type Open struct{ Pushes int }
type Closed struct{ Pushes int }

func (*Open) Family() DoorFamily   { return DoorFamily{} }
func (*Closed) Family() DoorFamily { return DoorFamily{} }

func (d *Open) Push(b *core.Box[Door]) *core.Box[Door] {
	return b.Replace(&Closed{d.Pushes + 1})
}

func (d *Closed) Push(b *core.Box[Door]) *core.Box[Door] {
	return b.Replace(&Open{d.Pushes + 1})
}

// Example demonstrates a two-state machine with boxed states.
func Example() {
	a := core.New[DoorFamily, Door](core.NewBox[Door](&Closed{}))

	push := func(b *core.Box[Door]) *core.Box[Door] {
		return b.Get().Push(b)
	}

	for i := 0; i < 3; i++ {
		core.Next(a, push)
		fmt.Printf("%T %+v\n", a.Mode(), a.Mode())
	}

	// Output:
	// *core_test.Open &{Pushes:1}
	// *core_test.Closed &{Pushes:2}
	// *core_test.Open &{Pushes:3}
}

type Light int

const (
	Off Light = iota
	On
)

type LightFamily struct {
	core.InPlace[Light]
}

func (Light) Family() LightFamily { return LightFamily{} }

func (l Light) String() string {
	if l == On {
		return "on"
	}
	return "off"
}

// ExampleNextWithResult demonstrates a transition that reports
// whether anything changed.
func ExampleNextWithResult() {
	a := core.NewDefault[LightFamily, Light]()

	flip := func(want Light) func(Light) (Light, bool) {
		return func(l Light) (Light, bool) {
			return want, l != want
		}
	}

	fmt.Println(core.NextWithResult(a, flip(On)), a)
	fmt.Println(core.NextWithResult(a, flip(On)), a)
	fmt.Println(core.NextWithResult(a, flip(Off)), a)

	// Output:
	// true on
	// false on
	// true off
}

type Note struct {
	Text string
}

func (n *Note) Clone() *Note {
	c := *n
	return &c
}

type NoteFamily struct {
	core.Shared[*Note]
}

func (*Note) Family() NoteFamily { return NoteFamily{} }

// ExampleShared demonstrates that a shared state is cloned, not
// changed, when the Automaton moves on.
func ExampleShared() {
	a := core.New[NoteFamily, *Note](core.NewRc(&Note{"draft"}))
	kept := a.Storage().Clone()

	core.Next(a, core.Lift[NoteFamily, *Note, *core.Rc[*Note]](func(n *Note) *Note {
		n.Text = "final"
		return n
	}))

	fmt.Println(a.Mode().Text, kept.Get().Text)

	// Output:
	// final draft
}
