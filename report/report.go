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

// Package report holds the shared record types that flow between the
// probe driver, the assertion library and the test runner: the mutable
// Report built during a probe and a test body, and the immutable Result
// the runner emits once a test body returns.
package report

import (
	"github.com/sabouaram/httptester/errors/pool"
)

// Connection classifies how a read ended, per spec: the state is binary,
// conflating a cleanly closed peer with a prematurely closed one.
type Connection string

const (
	// Alive means the last read ended on the end-timeout while the socket
	// was still open.
	Alive Connection = "alive"
	// Closed means the last read ended because the peer closed the socket.
	Closed Connection = "closed"
)

// Request is the raw bytes the probe driver sent, kept as text for the
// human/JSON report surfaces.
type Request struct {
	Raw string
}

// Response is everything the parser extracted from one read response.
type Response struct {
	RawHeaders  string
	Version     string
	StatusCode  int
	StatusText  string
	Headers     map[string]string
	Payload     []byte
	PayloadSize int
	Connection  Connection
}

// Report is the mutable record a probe fills in and a test body inspects
// and annotates via the assert package. A chained probe produces a fresh
// Report; the test body decides which fields to carry forward into the
// Report it ultimately hands back to the runner.
type Report struct {
	TestID      string
	Suite       string
	Description string

	Req Request
	Res Response

	errors pool.Pool
	notes  pool.Pool
}

// New returns an empty Report identified by id/suite/description.
func New(id, suite, description string) *Report {
	return &Report{
		TestID:      id,
		Suite:       suite,
		Description: description,
		errors:      pool.New(),
		notes:       pool.New(),
	}
}

// AddError appends a failure string. Per the parser's policy, multiple
// errors may be recorded for a single response without short-circuiting.
func (r *Report) AddError(msg string) {
	r.errors.Add(msg)
}

// AddNote appends a human-readable narration line, written on every
// assertion success so the report reads as a description of what was
// checked.
func (r *Report) AddNote(msg string) {
	r.notes.Add(msg)
}

// Errors returns the accumulated error strings in the order they were
// recorded.
func (r *Report) Errors() []string {
	return r.errors.List()
}

// Notes returns the accumulated note strings in the order they were
// recorded.
func (r *Report) Notes() []string {
	return r.notes.List()
}

// Passed reports whether the report carries no errors, the sole
// definition of a passing test per spec.
func (r *Report) Passed() bool {
	return r.errors.Len() == 0
}

// Header returns the case-folded header value and whether it was present.
// Res.Headers is always stored case-folded by the parser, so callers
// must fold their own lookup key too.
func (r *Report) Header(key string) (string, bool) {
	v, ok := r.Res.Headers[key]
	return v, ok
}
