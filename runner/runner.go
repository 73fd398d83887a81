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

// Package runner executes registered test cases sequentially: one test at
// a time, one transport connection owned per test and guaranteed released
// on every exit path, emitting an immutable report.Result per test.
package runner

import (
	"github.com/sabouaram/httptester/assert"
	"github.com/sabouaram/httptester/errors"
	"github.com/sabouaram/httptester/fixture"
	"github.com/sabouaram/httptester/logger"
	"github.com/sabouaram/httptester/probe"
	"github.com/sabouaram/httptester/registry"
	"github.com/sabouaram/httptester/report"
	"github.com/sabouaram/httptester/transport"
)

// Runner holds everything needed to execute any registered test case
// against one target host:port.
type Runner struct {
	Cfg  transport.Config
	Host string
	Port string
	Log  logger.Logger

	// FixturesFor resolves a suite name to the directory its fixtures live
	// in. The suites package maps each built-in suite to its directory
	// (suites.FixturesFor); the runner stays independent of that package.
	FixturesFor func(suite string) (dir string, userAgent string)
}

// New returns a Runner with default transport timeouts and a discarding
// logger; callers override Log via the struct field when they want
// diagnostics surfaced.
func New(host, port string, fixturesFor func(suite string) (string, string)) *Runner {
	return &Runner{
		Cfg:         transport.DefaultConfig(),
		Host:        host,
		Port:        port,
		Log:         logger.Discard(),
		FixturesFor: fixturesFor,
	}
}

// RunSingle executes the single test case named id.
func (r *Runner) RunSingle(id string) (*report.Result, error) {
	tc, ok := registry.Find(id)
	if !ok {
		return nil, errors.ConfigError.Error("unknown test id: " + id)
	}
	return r.execute(tc), nil
}

// RunBatch executes every test case in suite whose numeric batch prefix
// equals n, in declaration order.
func (r *Runner) RunBatch(suite string, n int) []*report.Result {
	return r.executeAll(registry.Batch(suite, n))
}

// RunSuite executes every test case registered under suite, in
// declaration order.
func (r *Runner) RunSuite(suite string) []*report.Result {
	return r.executeAll(registry.Suite(suite))
}

// RunAll executes every registered test case across every suite.
func (r *Runner) RunAll() []*report.Result {
	return r.executeAll(registry.All())
}

func (r *Runner) executeAll(cases []registry.TestCase) []*report.Result {
	out := make([]*report.Result, 0, len(cases))
	for _, tc := range cases {
		out = append(out, r.execute(tc))
	}
	return out
}

func (r *Runner) execute(tc registry.TestCase) *report.Result {
	r.Log.Info("running test", logger.Fields{"test_id": tc.ID, "suite": tc.Suite()})

	dir, userAgent := "", ""
	if r.FixturesFor != nil {
		dir, userAgent = r.FixturesFor(tc.Suite())
	}
	fdir := fixture.New(dir, r.Host, r.Port)
	fdir.UserAgent = userAgent

	driver := &probe.Driver{Cfg: r.Cfg, Fixtures: fdir}
	defer driver.Release()

	rep := driver.Run(tc.ID, tc.Suite(), tc.Description, probe.Request{
		Fixture:   tc.Fixture,
		Tokens:    tc.Tokens,
		KeepAlive: tc.KeepAlive,
	})

	if tc.Body != nil && rep.Passed() {
		r.runBody(rep, tc, driver)
	}

	r.Log.Info("test finished", logger.Fields{"test_id": tc.ID, "passed": rep.Passed()})
	return report.Freeze(rep)
}

// runBody invokes tc.Body, recovering an assert.Failure panic into rep's
// error list. Any other panic is re-raised: the assertion library's
// out-of-band control flow only models expected check failures, not
// programmer errors in a test body.
func (r *Runner) runBody(rep *report.Report, tc registry.TestCase, driver *probe.Driver) {
	defer func() {
		if rec := recover(); rec != nil {
			if f, ok := rec.(assert.Failure); ok {
				rep.AddError(f.Message)
				return
			}
			panic(rec)
		}
	}()

	ctx := &registry.Context{
		Report: rep,
		Probe: func(fixtureName string, tokens map[string]string, keepAlive bool) *report.Report {
			return driver.Run(tc.ID, tc.Suite(), tc.Description, probe.Request{
				Fixture:   fixtureName,
				Tokens:    tokens,
				KeepAlive: keepAlive,
			})
		},
	}
	tc.Body(ctx)
}
