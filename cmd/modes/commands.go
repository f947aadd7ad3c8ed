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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/Comcast/mode/core"
	"github.com/Comcast/mode/examples/activity"
	"github.com/Comcast/mode/examples/counter"
	"github.com/Comcast/mode/examples/turing"
	"github.com/Comcast/mode/interpreters"
	"github.com/Comcast/mode/interpreters/goja"
	"github.com/Comcast/mode/script"
	"github.com/Comcast/mode/tools"
	"github.com/Comcast/mode/util"

	"gopkg.in/yaml.v2"
)

// invocation is what a command gets to work with.
type invocation struct {
	cfg *Config
	log *slog.Logger
	out io.Writer
}

// command registers its own flags and returns what to do once they
// are parsed.
type command struct {
	doc   string
	setup func(fs *flag.FlagSet) func(ctx context.Context, e *invocation) error
}

var commands = map[string]command{
	"activity": {"run the activity machine", activityCmd},
	"counter":  {"run the counter machine", counterCmd},
	"turing":   {"run a Turing machine", turingCmd},
	"script":   {"run a scripted machine", scriptCmd},
	"dot":      {"write a Graphviz dot file", renderCmd("dot")},
	"mermaid":  {"write a Mermaid file", renderCmd("mermaid")},
	"html":     {"write an HTML page", renderCmd("html")},
	"analyze":  {"summarize a machine's structure", analyzeCmd},
}

// ErrUsage occurs when the command line doesn't make sense.
var ErrUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: modes COMMAND [FLAGS]\n\ncommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].doc)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return ErrUsage
	}
	name := args[0]
	c, have := commands[name]
	if !have {
		usage(stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}

	cfg, err := LoadConfig(".env")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.AddFlags(fs)
	f := c.setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %s", ErrUsage, err)
	}

	logger, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	util.Logging = strings.EqualFold(cfg.LogLevel, "debug")

	return f(ctx, &invocation{
		cfg: cfg,
		log: logger,
		out: stdout,
	})
}

func activityCmd(fs *flag.FlagSet) func(context.Context, *invocation) error {
	tagged := fs.Bool("tagged", false, "use the in-place tagged activity")

	return func(ctx context.Context, e *invocation) error {
		steps := e.cfg.Steps
		if steps <= 0 {
			return fmt.Errorf("%w: activity needs a positive step count", ErrUsage)
		}

		if *tagged {
			a := activity.NewTagged()
			for i := 0; i < steps; i++ {
				core.Next(a, activity.StepTagged)
				fmt.Fprintln(e.out, a)
			}
			return nil
		}

		a := activity.New()
		for i := 0; i < steps; i++ {
			core.Next(a, activity.Step)
			fmt.Fprintln(e.out, a)
		}
		e.log.Debug("activity done", "steps", steps, "state", a.String())
		return nil
	}
}

func counterCmd(fs *flag.FlagSet) func(context.Context, *invocation) error {
	var (
		start  = fs.Int("start", 0, "starting count")
		target = fs.Int("target", 3, "first target")
	)

	return func(ctx context.Context, e *invocation) error {
		a := counter.New(*start, *target)
		fmt.Fprintf(e.out, "starting in %s\n", a)

		for steps := 0; ; steps++ {
			if n, has := a.Mode().Result(); has {
				fmt.Fprintf(e.out, "finished after %d steps: %d\n", steps, n)
				return nil
			}
			if 0 < e.cfg.Steps && e.cfg.Steps <= steps {
				return counter.ErrLimit
			}
			if core.NextWithResult(a, counter.StepChanged) {
				fmt.Fprintf(e.out, "switched to %s\n", a)
			}
		}
	}
}

func readProgram(filename string) (*turing.Program, error) {
	if filename == "" {
		return turing.BusyBeaver(), nil
	}
	bs, err := tools.ReadFileWithInlines(filename)
	if err != nil {
		return nil, err
	}
	return turing.ParseProgram(bs)
}

func turingCmd(fs *flag.FlagSet) func(context.Context, *invocation) error {
	return func(ctx context.Context, e *invocation) error {
		p, err := readProgram(e.cfg.Program)
		if err != nil {
			return err
		}
		m := turing.NewMachine(p)
		strides, err := m.Run(e.cfg.Steps)
		for _, s := range strides {
			fmt.Fprintln(e.out, s)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(e.out, "halted after %d steps with tape %s\n", len(strides), m.Tape)
		return nil
	}
}

func readSpec(e *invocation) (*script.Spec, error) {
	if e.cfg.Spec == "" {
		return nil, fmt.Errorf("%w: need a spec (-s)", ErrUsage)
	}
	bs, err := tools.ReadFileWithInlines(e.cfg.Spec)
	if err != nil {
		return nil, err
	}
	return script.ParseSpec(bs)
}

func scriptCmd(fs *flag.FlagSet) func(context.Context, *invocation) error {
	return func(ctx context.Context, e *invocation) error {
		spec, err := readSpec(e)
		if err != nil {
			return err
		}

		is := interpreters.Standard()
		gi := goja.NewInterpreter()
		gi.LibraryProvider = goja.MakeFileLibraryProvider(e.cfg.LibDir)
		gi.Logger = e.log
		for _, name := range []string{"goja", "ecmascript", "ecmascript-5.1"} {
			is[name] = gi
		}

		if err = spec.Compile(ctx, is); err != nil {
			return err
		}

		bs, err := script.ParseBindings(e.cfg.Bindings)
		if err != nil {
			return err
		}

		m, err := script.NewMachine(spec, bs)
		if err != nil {
			return err
		}

		if 0 < e.cfg.Timeout {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
			defer cancel()
		}

		walked := m.Walk(ctx, e.cfg.Steps)

		enc := json.NewEncoder(e.out)
		for _, s := range walked.Strides {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		e.log.Info("walked", "spec", spec.Name, "steps", len(walked.Strides),
			"stoppedBecause", walked.StoppedBecause.String(), "node", m.State().Node)

		if walked.Error != nil {
			return walked.Error
		}
		return enc.Encode(m.State())
	}
}

func readGraph(e *invocation) (*tools.Graph, error) {
	if e.cfg.Spec != "" {
		spec, err := readSpec(e)
		if err != nil {
			return nil, err
		}
		if err = spec.Validate(); err != nil {
			return nil, err
		}
		return tools.SpecGraph(spec)
	}
	p, err := readProgram(e.cfg.Program)
	if err != nil {
		return nil, err
	}
	return tools.ProgramGraph(p)
}

func renderCmd(format string) func(*flag.FlagSet) func(context.Context, *invocation) error {
	return func(fs *flag.FlagSet) func(context.Context, *invocation) error {
		var (
			from = fs.String("from", "", "highlight a transition from this node")
			to   = fs.String("to", "", "highlight a transition to this node")
			css  = fs.String("css", "", "comma-separated CSS files for html")
		)

		return func(ctx context.Context, e *invocation) error {
			g, err := readGraph(e)
			if err != nil {
				return err
			}
			switch format {
			case "dot":
				return tools.Dot(g, e.out, *from, *to)
			case "mermaid":
				return tools.Mermaid(g, e.out, nil, *from, *to)
			default:
				var cssFiles []string
				if *css != "" {
					cssFiles = strings.Split(*css, ",")
				}
				return tools.RenderPage(g, e.out, cssFiles)
			}
		}
	}
}

func analyzeCmd(fs *flag.FlagSet) func(context.Context, *invocation) error {
	return func(ctx context.Context, e *invocation) error {
		g, err := readGraph(e)
		if err != nil {
			return err
		}
		a := tools.Analyze(g)
		bs, err := yaml.Marshal(a)
		if err != nil {
			return err
		}
		if _, err = e.out.Write(bs); err != nil {
			return err
		}
		if 0 < len(a.Errors) {
			return fmt.Errorf("%s has %d problems", a.Name, len(a.Errors))
		}
		return nil
	}
}
