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

// The modes command runs example and scripted state machines and
// renders their structure.
//
// Usage:
//
//	modes activity [-tagged] [-steps N]
//	modes counter [-start N] [-target N]
//	modes turing [-p program.yaml]
//	modes script -s spec.yaml [-b bindings]
//	modes dot|mermaid|html|analyze (-p program.yaml | -s spec.yaml)
//
// Spec and program files can pull in other files with
// %inline("NAME").
//
// Settings also come from MODES_* environment variables and from a
// .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
