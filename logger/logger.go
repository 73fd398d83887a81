/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2021 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

// Package logger is a thin, instance-based wrapper around
// github.com/hashicorp/go-hclog, giving the runner a structured
// diagnostic stream distinct from a Report's notes/errors:
// notes are the report artifact a human reads after the fact, log lines are
// operational telemetry for whoever is driving the run.
package logger

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Fields is a set of structured key/value pairs attached to one log line.
type Fields map[string]interface{}

// Logger is the minimal logging surface the engine depends on.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)

	// With returns a child Logger that always includes f in addition to
	// its own, mirroring hclog.Logger.With without leaking the hclog type
	// into callers.
	With(f Fields) Logger
}

type mod struct {
	l hclog.Logger
}

// New returns a Logger named "httptester" writing to w at the given level
// ("trace", "debug", "info", "warn", "error", "off").
func New(w io.Writer, level string) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &mod{l: hclog.New(&hclog.LoggerOptions{
		Name:       "httptester",
		Level:      hclog.LevelFromString(level),
		Output:     w,
		JSONFormat: false,
	})}
}

// Discard returns a Logger that drops every line, for tests and library
// callers that have not configured a sink.
func Discard() Logger {
	return New(io.Discard, "off")
}

func (m *mod) args(f Fields) []interface{} {
	out := make([]interface{}, 0, len(f)*2)
	for k, v := range f {
		out = append(out, k, v)
	}
	return out
}

func (m *mod) Debug(msg string, f Fields) { m.l.Debug(msg, m.args(f)...) }
func (m *mod) Info(msg string, f Fields)  { m.l.Info(msg, m.args(f)...) }
func (m *mod) Warn(msg string, f Fields)  { m.l.Warn(msg, m.args(f)...) }
func (m *mod) Error(msg string, f Fields) { m.l.Error(msg, m.args(f)...) }

func (m *mod) With(f Fields) Logger {
	return &mod{l: m.l.With(m.args(f)...)}
}
