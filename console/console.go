/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
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

// Package console renders the CLI's human report: colorized PASS/FAIL
// markers, "> "/"< " prefixed request/response lines, and payload elision
// for binary bodies, per the tester's CLI surface.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// markerType selects which of the three fixed color treatments this package
// knows about: the pass marker, the fail marker, and everything else
// (request/response line prefixes).
type markerType uint8

const (
	// MarkerPass colors "PASS"-style lines.
	MarkerPass markerType = iota
	// MarkerFail colors "FAIL"-style lines.
	MarkerFail
	// MarkerNeutral colors request/response/note lines.
	MarkerNeutral
)

var palette = map[markerType]*color.Color{
	MarkerPass:    color.New(color.FgGreen, color.Bold),
	MarkerFail:    color.New(color.FgRed, color.Bold),
	MarkerNeutral: color.New(color.FgHiBlack),
}

// maxPayloadEcho is the byte threshold past which Payload elides a
// body instead of printing it verbatim.
const maxPayloadEcho = 2048

// Writer wraps an io.Writer with the tester's report formatting. Out
// defaults to a colorable stdout wrapper so ANSI codes degrade gracefully
// on Windows consoles, matching the teacher's console package's use of
// mattn/go-colorable alongside fatih/color.
type Writer struct {
	out io.Writer
}

// New returns a Writer over w. A nil w defaults to a colorable stdout.
func New(w io.Writer) *Writer {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Writer{out: w}
}

// Status prints "PASS <id>" or "FAIL <id>" in the appropriate color.
func (w *Writer) Status(id string, passed bool) {
	if passed {
		_, _ = palette[MarkerPass].Fprintf(w.out, "PASS %s\n", id)
	} else {
		_, _ = palette[MarkerFail].Fprintf(w.out, "FAIL %s\n", id)
	}
}

// Request prints raw, "> "-prefixed on every line.
func (w *Writer) Request(raw string) {
	w.prefixed("> ", raw)
}

// Response prints raw, "< "-prefixed on every line.
func (w *Writer) Response(raw string) {
	w.prefixed("< ", raw)
}

func (w *Writer) prefixed(prefix, raw string) {
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		_, _ = palette[MarkerNeutral].Fprintf(w.out, "%s%s\n", prefix, line)
	}
}

// Note prints a single report note line, indented.
func (w *Writer) Note(note string) {
	fmt.Fprintf(w.out, "  - %s\n", note)
}

// Error prints a single report error line, in the failure color.
func (w *Writer) Error(msg string) {
	_, _ = palette[MarkerFail].Fprintf(w.out, "  ! %s\n", msg)
}

// Payload renders a response payload, eliding it by size when it looks
// like it is not printable text or exceeds maxPayloadEcho bytes.
func Payload(p []byte) string {
	if len(p) == 0 {
		return "(empty)"
	}
	if len(p) > maxPayloadEcho || !isPrintable(p) {
		return fmt.Sprintf("(%d bytes elided)", len(p))
	}
	return string(p)
}

func isPrintable(p []byte) bool {
	for _, b := range p {
		if b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		if b < 0x20 || b == 0x7f {
			return false
		}
	}
	return true
}
