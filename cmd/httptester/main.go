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

// Command httptester wires the cli, console, runner, registry and suites
// packages into the tool's two front-ends: a one-shot CLI runner and an
// HTTP control-plane server.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/sabouaram/httptester/cli"
	"github.com/sabouaram/httptester/config"
	"github.com/sabouaram/httptester/console"
	liberr "github.com/sabouaram/httptester/errors"
	"github.com/sabouaram/httptester/logger"
	"github.com/sabouaram/httptester/registry"
	"github.com/sabouaram/httptester/report"
	"github.com/sabouaram/httptester/runner"
	"github.com/sabouaram/httptester/service"
	"github.com/sabouaram/httptester/suites"
)

var cfgPath string
var manifestPath string

func main() {
	app := cli.New("httptester", "1.0.0")
	app.Init()
	app.Root().PersistentFlags().StringVar(&cfgPath, "config", "", "path to a config file")
	app.Root().PersistentFlags().StringVar(&manifestPath, "manifest", "", "path to a YAML manifest pinning suite fixture directories and user agents")

	app.AddCommand(newRunCommand(app), newListCommand(app), newServeCommand(app))
	app.AddCommandCompletion()

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCommand(app *cli.App) *cobra.Command {
	cmd := app.NewCommand(
		"run",
		"Run one test or a batch against a server",
		"Runs a single test id or a comma-separated list of batch numbers against the named host:port.",
		"[<host>]:[<port>] <test_id|batch,...>",
		"run localhost:8080 test_1_url_get_ok",
	)
	cmd.Args = cobra.RangeArgs(1, 2)
	cmd.RunE = func(_ *cobra.Command, args []string) error {
		cfg, _ := config.Load(cfgPath, nil)

		host, port, selector := cfg.Host, cfg.Port, args[0]
		if len(args) == 2 {
			var err error
			if host, port, err = parseHostPort(args[0], host, port); err != nil {
				return liberr.ConfigError.Error(err.Error())
			}
			selector = args[1]
		}

		cases := resolveSelector(selector)
		if len(cases) == 0 {
			return liberr.ConfigError.Error(fmt.Sprintf("unknown test id or batch: %q", selector))
		}

		r := runner.New(host, port, fixturesFor())
		r.Log = logger.New(os.Stderr, cfg.LogLevel)

		out := console.New(os.Stdout)
		progress := mpb.New(mpb.WithOutput(os.Stderr))
		bar := progress.AddBar(int64(len(cases)),
			mpb.PrependDecorators(decor.Name("running "+selector)),
			mpb.AppendDecorators(decor.CountersNoUnit("%d / %d")),
		)

		failed := 0
		for _, tc := range cases {
			res, err := r.RunSingle(tc.ID)
			bar.Increment()
			if err != nil {
				out.Error(err.Error())
				failed++
				continue
			}
			render(out, res)
			if !res.Passed() {
				failed++
			}
		}
		progress.Wait()

		fmt.Fprintf(os.Stdout, "\n%d/%d passed\n", len(cases)-failed, len(cases))
		return nil
	}
	return cmd
}

func newListCommand(app *cli.App) *cobra.Command {
	cmd := app.NewCommand("list", "List every registered suite and test id", "", "", "list")
	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		for _, s := range registry.Suites() {
			fmt.Fprintf(os.Stdout, "%s:\n", s)
			for _, tc := range registry.Suite(s) {
				fmt.Fprintf(os.Stdout, "  %-40s %s\n", tc.ID, tc.Description)
			}
		}
		return nil
	}
	return cmd
}

func newServeCommand(app *cli.App) *cobra.Command {
	cmd := app.NewCommand("serve", "Expose the control-plane HTTP surface", "", "[:port]", "serve :8088")
	cmd.RunE = func(_ *cobra.Command, args []string) error {
		cfg, _ := config.Load(cfgPath, nil)

		addr := ":" + cfg.ServicePort
		if len(args) > 0 {
			addr = args[0]
		}

		srv := service.NewServer(fixturesFor())
		return srv.Engine().Run(addr)
	}
	return cmd
}

// fixturesFor returns the suite-to-fixtures resolver passed to the runner
// and the service: the manifest named by --manifest (if any) takes
// precedence per suite, falling back to the code-registered defaults in
// suites.FixturesFor for any suite it doesn't mention.
func fixturesFor() func(string) (string, string) {
	var manifest *registry.Manifest
	if manifestPath != "" {
		m, err := registry.LoadManifest(manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring --manifest %s: %v\n", manifestPath, err)
		} else {
			manifest = m
		}
	}
	return func(suite string) (string, string) {
		if e, ok := manifest.Lookup(suite); ok {
			return e.Fixtures, e.UserAgent
		}
		return suites.FixturesFor(suite)
	}
}

// parseHostPort splits a "[<host>]:[<port>]" token, falling back to
// defHost/defPort for an omitted side.
func parseHostPort(token, defHost, defPort string) (host, port string, err error) {
	i := strings.LastIndex(token, ":")
	if i < 0 {
		return "", "", fmt.Errorf("invalid host:port %q", token)
	}
	host, port = token[:i], token[i+1:]
	if host == "" {
		host = defHost
	}
	if port == "" {
		port = defPort
	}
	return host, port, nil
}

// resolveSelector expands a comma-separated selector into test cases: each
// token is tried first as an exact test id, then as a numeric batch
// prefix searched across every registered suite.
func resolveSelector(selector string) []registry.TestCase {
	var out []registry.TestCase
	for _, tok := range strings.Split(selector, ",") {
		tok = strings.TrimSpace(tok)
		if tc, ok := registry.Find(tok); ok {
			out = append(out, tc)
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil
		}
		for _, s := range registry.Suites() {
			out = append(out, registry.Batch(s, n)...)
		}
	}
	return out
}

func render(out *console.Writer, res *report.Result) {
	out.Status(res.TestID, res.Passed())
	out.Request(res.Req.Raw)
	out.Response(res.Res.RawHeaders + "\n" + console.Payload(res.Res.Payload))
	for _, n := range res.Notes {
		out.Note(n)
	}
	for _, e := range res.Errors {
		out.Error(e)
	}
}
