/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package cli wraps spf13/cobra in an instance-based application object,
// generalized from a broad enterprise CLI bootstrap down to the tester's
// sub-commands: run, list and serve.
package cli

import (
	"fmt"
	"os"

	spfcbr "github.com/spf13/cobra"
)

// FuncInit is called once cobra has parsed flags but before any command
// runs, the same hook point the teacher's bootstrap exposes.
type FuncInit func()

// App is the CLI application object. Unlike raw cobra global state, every
// App instance owns its own root command, so tests can construct more
// than one without interference.
type App struct {
	root       *spfcbr.Command
	name       string
	version    string
	forceNoHdr bool
	init       FuncInit
}

// New returns an App named name at version version.
func New(name, version string) *App {
	return &App{name: name, version: version}
}

// SetFuncInit registers the hook cobra calls via OnInitialize, after flag
// parsing and before any command body runs.
func (a *App) SetFuncInit(fct FuncInit) {
	a.init = fct
}

// SetForceNoInfo suppresses the header banner printed when cobra
// initializes a command.
func (a *App) SetForceNoInfo(flag bool) {
	a.forceNoHdr = flag
}

// Init builds the root command. Must be called before AddCommand or
// Execute.
func (a *App) Init() {
	a.root = &spfcbr.Command{
		Use:              a.name,
		Version:          a.version,
		TraverseChildren: true,
	}
	spfcbr.OnInitialize(a.printHeader, a.runInit)
}

func (a *App) printHeader() {
	if a.forceNoHdr {
		return
	}
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", a.name, a.version)
}

func (a *App) runInit() {
	if a.init != nil {
		a.init()
	}
}

// NewCommand builds a *cobra.Command with the given name/short/long
// description, use-line argument suffix and example, mirroring the
// teacher's NewCommand helper.
func (a *App) NewCommand(name, short, long, useArgs, example string) *spfcbr.Command {
	use := name
	if useArgs != "" {
		use = name + " " + useArgs
	}
	ex := example
	if ex != "" {
		ex = a.name + " " + example
	}
	return &spfcbr.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Example: ex,
	}
}

// AddCommand attaches one or more sub-commands to the root.
func (a *App) AddCommand(cmd ...*spfcbr.Command) {
	a.root.AddCommand(cmd...)
}

// Root exposes the underlying *cobra.Command for flag registration that
// has no typed helper here.
func (a *App) Root() *spfcbr.Command {
	return a.root
}

// Execute runs the parsed command line.
func (a *App) Execute() error {
	return a.root.Execute()
}
