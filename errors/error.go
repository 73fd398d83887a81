/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors

import (
	"fmt"
	"runtime"
)

// Error extends the standard error with a CodeError classification, a
// parent chain and the call site where it was created.
type Error interface {
	error

	// IsCode reports whether this error's own code equals code (parents
	// are not consulted).
	IsCode(code CodeError) bool

	// GetCode returns this error's own code.
	GetCode() CodeError

	// Add appends non-nil parents to this error's hierarchy.
	Add(parent ...error)

	// HasParent reports whether this error carries at least one parent.
	HasParent() bool

	// GetParent returns the parent chain, including this error itself
	// when withSelf is true.
	GetParent(withSelf bool) []error

	// Trace returns "function (file:line)" for the call site that created
	// this error.
	Trace() string

	// Unwrap exposes the parent chain to errors.Is/errors.As.
	Unwrap() []error
}

type impl struct {
	code    CodeError
	msg     string
	parents []error
	file    string
	line    int
	fn      string
}

func newError(code CodeError, msg string, parents []error) Error {
	e := &impl{code: code, msg: msg}
	for _, p := range parents {
		if p != nil {
			e.parents = append(e.parents, p)
		}
	}

	if pc, file, line, ok := runtime.Caller(2); ok {
		e.file = file
		e.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			e.fn = fn.Name()
		}
	}

	return e
}

// New builds a plain Error with no registered message, for call sites that
// want a one-off code without adding an entry to the codes table.
func New(code CodeError, msg string, parents ...error) Error {
	return newError(code, msg, parents)
}

func (e *impl) Error() string {
	if e.code == UnknownError {
		return e.msg
	}
	return fmt.Sprintf("[%s] %s", e.code, e.msg)
}

func (e *impl) IsCode(code CodeError) bool {
	return e.code == code
}

func (e *impl) GetCode() CodeError {
	return e.code
}

func (e *impl) Add(parent ...error) {
	for _, p := range parent {
		if p != nil {
			e.parents = append(e.parents, p)
		}
	}
}

func (e *impl) HasParent() bool {
	return len(e.parents) > 0
}

func (e *impl) GetParent(withSelf bool) []error {
	out := make([]error, 0, len(e.parents)+1)
	if withSelf {
		out = append(out, e)
	}
	return append(out, e.parents...)
}

func (e *impl) Trace() string {
	if e.fn == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s:%d)", e.fn, e.file, e.line)
}

func (e *impl) Unwrap() []error {
	return e.parents
}
