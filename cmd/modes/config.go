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
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is what every subcommand can be told.
//
// Values come from the environment (and an optional .env file), and
// flags override them.
type Config struct {
	Steps    int           `env:"MODES_STEPS" envDefault:"100"`
	LogLevel string        `env:"MODES_LOG_LEVEL" envDefault:"info"`
	Program  string        `env:"MODES_PROGRAM"`
	Spec     string        `env:"MODES_SPEC"`
	Bindings string        `env:"MODES_BINDINGS"`
	LibDir   string        `env:"MODES_LIB_DIR" envDefault:"."`
	Timeout  time.Duration `env:"MODES_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads the given .env file, if it exists, and then the
// environment.
//
// Variables already in the environment win over the file's.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// AddFlags registers flags that override the Config.
func (c *Config) AddFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Steps, "steps", c.Steps, "maximum number of steps (0 for no limit)")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Program, "p", c.Program, "Turing program filename (YAML)")
	fs.StringVar(&c.Spec, "s", c.Spec, "script spec filename (YAML)")
	fs.StringVar(&c.Bindings, "b", c.Bindings, "initial bindings (YAML or JSON)")
	fs.StringVar(&c.LibDir, "i", c.LibDir, "directory containing script libraries")
	fs.DurationVar(&c.Timeout, "t", c.Timeout, "timeout for scripted machines")
}

// Logger makes a text logger at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", c.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}
