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

// Package registry discovers test declarations at init() time, preserving
// the source-declared order that several tests depend on (a PUT in one
// test observed by a GET in a later one), and groups them by suite and by
// the numeric batch prefix of their id.
package registry

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sabouaram/httptester/report"
)

// Body is a test's executable narrative: it receives the Report produced
// by the bound fixture probe and mutates it via the assert package,
// optionally issuing further chained probes through ctx.
type Body func(ctx *Context)

// TestCase is one registered test: an identity string, a human
// description, the fixture binding the probe driver uses for the test's
// first probe, and the body that runs once that probe's Report is ready.
type TestCase struct {
	ID          string
	Description string
	Fixture     string
	Tokens      map[string]string
	KeepAlive   bool
	Body        Body

	suite string
	index int
}

// Suite returns the name this test case was registered under.
func (t TestCase) Suite() string { return t.suite }

// Index returns the stable declaration-order ordinal assigned at Register
// time.
func (t TestCase) Index() int { return t.index }

var batchPrefix = regexp.MustCompile(`^test_(\d+)`)

// Batch returns the numeric prefix of the test id, or -1 if the id has
// none (a bare "test_<name>" case with no batch component).
func (t TestCase) Batch() int {
	m := batchPrefix.FindStringSubmatch(t.ID)
	if m == nil {
		return -1
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// Context is the per-test handle a Body uses to issue chained probes. It
// is a thin handle so the registry package stays independent of the
// probe/transport packages; runner fills in the Probe function.
type Context struct {
	Report *report.Report
	Probe  func(fixture string, tokens map[string]string, keepAlive bool) *report.Report
}

var (
	mu     sync.Mutex
	seq    int
	suites = map[string][]TestCase{}
)

// Register adds tc to suite, assigning it the next global declaration
// ordinal. Called from a suite package's init(), preserving author intent
// regardless of map iteration order.
func Register(suite string, tc TestCase) {
	mu.Lock()
	defer mu.Unlock()

	suite = strings.ToLower(suite)
	seq++
	tc.suite = suite
	tc.index = seq
	suites[suite] = append(suites[suite], tc)
}

// Suites returns every registered suite name, sorted for deterministic
// listing output.
func Suites() []string {
	mu.Lock()
	defer mu.Unlock()

	out := make([]string, 0, len(suites))
	for name := range suites {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Suite returns suite's test cases ordered by declaration index.
func Suite(suite string) []TestCase {
	mu.Lock()
	defer mu.Unlock()

	cases := append([]TestCase(nil), suites[strings.ToLower(suite)]...)
	sort.Slice(cases, func(i, j int) bool { return cases[i].index < cases[j].index })
	return cases
}

// All returns every registered test case across every suite, ordered by
// suite name and then by declaration index within it.
func All() []TestCase {
	mu.Lock()
	defer mu.Unlock()

	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []TestCase
	for _, name := range names {
		cases := append([]TestCase(nil), suites[name]...)
		sort.Slice(cases, func(i, j int) bool { return cases[i].index < cases[j].index })
		out = append(out, cases...)
	}
	return out
}

// Find returns the single test case with the given id across every suite.
func Find(id string) (TestCase, bool) {
	for _, tc := range All() {
		if tc.ID == id {
			return tc, true
		}
	}
	return TestCase{}, false
}

// Batch returns every test case in suite whose numeric batch prefix
// equals n, ordered by declaration index.
func Batch(suite string, n int) []TestCase {
	var out []TestCase
	for _, tc := range Suite(suite) {
		if tc.Batch() == n {
			out = append(out, tc)
		}
	}
	return out
}

// Reset clears every registered suite. Exported for tests that need a
// clean registry between cases; production code never calls it.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	seq = 0
	suites = map[string][]TestCase{}
}
