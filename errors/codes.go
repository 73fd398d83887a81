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

// Package errors provides the error taxonomy of the conformance tester.
//
// Every error raised by the transport, parser or probe layers carries a
// CodeError classifying it the way an HTTP status does, plus an optional
// parent chain and the file/line/function where it was created.
package errors

import "strconv"

// CodeError classifies an error the way an HTTP status code classifies a
// response. It is a uint16 so custom codes can coexist with the predefined
// table below.
type CodeError uint16

const (
	// UnknownError is the fallback code for an error with no classification.
	UnknownError CodeError = 0

	// ConfigError covers invalid host:port, unknown test id, unknown batch.
	ConfigError CodeError = 1000

	// ConnectError covers TCP connect failures (timeout, refusal).
	ConnectError CodeError = 1001

	// SendError covers failures writing request bytes within the send timeout.
	SendError CodeError = 1002

	// ReadError covers failures reading any response byte within the
	// first-byte timeout.
	ReadError CodeError = 1003

	// FramingError covers a response body that cannot be delimited: no
	// Content-Length, no chunked Transfer-Encoding, or a malformed chunk.
	FramingError CodeError = 1004

	// ParseError covers a malformed status line, malformed header line,
	// spurious header-name whitespace, or a missing blank line after headers.
	ParseError CodeError = 1005

	// AssertionFailure covers a failed predicate from the assert package.
	AssertionFailure CodeError = 1006
)

var messages = map[CodeError]string{
	UnknownError:     "unknown error",
	ConfigError:       "invalid configuration",
	ConnectError:      "connection failed",
	SendError:         "failed to send request data",
	ReadError:         "failed to read response data",
	FramingError:      "response payload could not be framed",
	ParseError:        "response could not be parsed",
	AssertionFailure:  "assertion failed",
}

// Message returns the default human message registered for c, or the
// unknown-error message if c was never registered.
func (c CodeError) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return messages[UnknownError]
}

// String renders the numeric code, mirroring how an HTTP status is usually
// printed alongside its reason phrase.
func (c CodeError) String() string {
	return strconv.Itoa(int(c))
}

// Error builds a new Error rooted at code c, with msg overriding the
// registered default message, and parent chained as p.
func (c CodeError) Error(msg string, p ...error) Error {
	if msg == "" {
		msg = c.Message()
	}
	return newError(c, msg, p)
}
