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

// Package assert is the predicate vocabulary a test body calls against a
// Report. Each predicate either appends a passing note or raises a
// Failure, a typed panic the runner recovers so that a test body reads as
// narrative: every call is simultaneously a check and a report line.
package assert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sabouaram/httptester/report"
)

// Failure is the value assert predicates panic with on a failed check. The
// runner recovers it at the end of a test body and appends Message to the
// Report's errors.
type Failure struct {
	Message string
}

func (f Failure) Error() string { return f.Message }

func fail(format string, args ...interface{}) {
	panic(Failure{Message: fmt.Sprintf(format, args...)})
}

// StatusIs asserts the response status code equals code.
func StatusIs(rep *report.Report, code int) {
	if rep.Res.StatusCode != code {
		fail("expected status %d, got %d", code, rep.Res.StatusCode)
	}
	rep.AddNote(fmt.Sprintf("status is %d", code))
}

// VersionIs asserts the response protocol token equals version exactly
// (e.g. "HTTP/1.1"), never by loose prefix match, so a server claiming
// "HTTP/1.11" is rejected rather than accepted as 1.1.
func VersionIs(rep *report.Report, version string) {
	if rep.Res.Version != version {
		fail("expected protocol version %q, got %q", version, rep.Res.Version)
	}
	rep.AddNote(fmt.Sprintf("protocol version is %s", version))
}

func header(rep *report.Report, key string) (string, bool) {
	return rep.Header(strings.ToLower(key))
}

// HeaderPresent asserts the header key is present, regardless of value.
func HeaderPresent(rep *report.Report, key string) {
	if _, ok := header(rep, key); !ok {
		fail("expected header %q to be present", key)
	}
	rep.AddNote(fmt.Sprintf("header %s is present", key))
}

// HeaderAbsent asserts the header key is not present.
func HeaderAbsent(rep *report.Report, key string) {
	if _, ok := header(rep, key); ok {
		fail("expected header %q to be absent", key)
	}
	rep.AddNote(fmt.Sprintf("header %s is absent", key))
}

// HeaderIs asserts the header key's value equals want exactly.
func HeaderIs(rep *report.Report, key, want string) {
	got, ok := header(rep, key)
	if !ok || got != want {
		fail("expected header %q to equal %q, got %q", key, want, got)
	}
	rep.AddNote(fmt.Sprintf("header %s is %q", key, want))
}

// HeaderContains asserts the header key's value contains sub.
func HeaderContains(rep *report.Report, key, sub string) {
	got, ok := header(rep, key)
	if !ok || !strings.Contains(got, sub) {
		fail("expected header %q to contain %q, got %q", key, sub, got)
	}
	rep.AddNote(fmt.Sprintf("header %s contains %q", key, sub))
}

// HeaderDoesNotContain asserts the header key's value does not contain sub.
func HeaderDoesNotContain(rep *report.Report, key, sub string) {
	got, ok := header(rep, key)
	if ok && strings.Contains(got, sub) {
		fail("expected header %q not to contain %q, got %q", key, sub, got)
	}
	rep.AddNote(fmt.Sprintf("header %s does not contain %q", key, sub))
}

// HeaderBeginsWith asserts the header key's value begins with prefix.
func HeaderBeginsWith(rep *report.Report, key, prefix string) {
	got, ok := header(rep, key)
	if !ok || !strings.HasPrefix(got, prefix) {
		fail("expected header %q to begin with %q, got %q", key, prefix, got)
	}
	rep.AddNote(fmt.Sprintf("header %s begins with %q", key, prefix))
}

// HeaderEndsWith asserts the header key's value ends with suffix.
func HeaderEndsWith(rep *report.Report, key, suffix string) {
	got, ok := header(rep, key)
	if !ok || !strings.HasSuffix(got, suffix) {
		fail("expected header %q to end with %q, got %q", key, suffix, got)
	}
	rep.AddNote(fmt.Sprintf("header %s ends with %q", key, suffix))
}

// MimeIs asserts Content-Type begins with mime, a shorthand over
// HeaderBeginsWith for the common "type/subtype" prefix check that ignores
// a trailing charset parameter.
func MimeIs(rep *report.Report, mime string) {
	HeaderBeginsWith(rep, "content-type", mime)
}

var imfFixdate = regexp.MustCompile(`^(Mon|Tue|Wed|Thu|Fri|Sat|Sun), \d{2} (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4} \d{2}:\d{2}:\d{2} GMT$`)

// DateValid asserts the Date header matches the preferred RFC 7231
// IMF-fixdate form.
func DateValid(rep *report.Report) {
	got, ok := header(rep, "date")
	if !ok || !imfFixdate.MatchString(got) {
		fail("expected Date header in IMF-fixdate form, got %q", got)
	}
	rep.AddNote("Date header is valid IMF-fixdate")
}

var strongETag = regexp.MustCompile(`^"(\S+)"$`)

// ETagValid asserts the ETag header is present and strongly quoted,
// rejecting the weak "W/" form, and returns the unquoted tag for reuse by
// a chained probe (e.g. the ETag capture-and-reuse scenario).
func ETagValid(rep *report.Report) string {
	got, ok := header(rep, "etag")
	if !ok {
		fail("expected an ETag header")
	}
	m := strongETag.FindStringSubmatch(got)
	if m == nil {
		fail("expected a strong ETag, got %q", got)
	}
	rep.AddNote(fmt.Sprintf("ETag %q is strongly quoted", got))
	return m[1]
}

// RedirectsTo asserts the response is a redirect with the given status
// code and a Location header ending with suffix.
func RedirectsTo(rep *report.Report, code int, suffix string) {
	StatusIs(rep, code)
	HeaderEndsWith(rep, "location", suffix)
}

// PayloadEmpty asserts the payload has zero length.
func PayloadEmpty(rep *report.Report) {
	if rep.Res.PayloadSize != 0 {
		fail("expected an empty payload, got %d bytes", rep.Res.PayloadSize)
	}
	rep.AddNote("payload is empty")
}

// PayloadNonEmpty asserts the payload has at least one byte.
func PayloadNonEmpty(rep *report.Report) {
	if rep.Res.PayloadSize == 0 {
		fail("expected a non-empty payload")
	}
	rep.AddNote("payload is non-empty")
}

// PayloadSizeIs asserts the payload is exactly n bytes.
func PayloadSizeIs(rep *report.Report, n int) {
	if rep.Res.PayloadSize != n {
		fail("expected payload size %d, got %d", n, rep.Res.PayloadSize)
	}
	rep.AddNote(fmt.Sprintf("payload size is %d", n))
}

// PayloadEquals asserts the payload equals want exactly.
func PayloadEquals(rep *report.Report, want string) {
	if string(rep.Res.Payload) != want {
		fail("expected payload to equal %q", want)
	}
	rep.AddNote("payload equals expected content")
}

// PayloadContains asserts the payload contains sub.
func PayloadContains(rep *report.Report, sub string) {
	if !strings.Contains(string(rep.Res.Payload), sub) {
		fail("expected payload to contain %q", sub)
	}
	rep.AddNote(fmt.Sprintf("payload contains %q", sub))
}

// PayloadDoesNotContain asserts the payload does not contain sub.
func PayloadDoesNotContain(rep *report.Report, sub string) {
	if strings.Contains(string(rep.Res.Payload), sub) {
		fail("expected payload not to contain %q", sub)
	}
	rep.AddNote(fmt.Sprintf("payload does not contain %q", sub))
}

// PayloadBeginsWith asserts the payload begins with prefix.
func PayloadBeginsWith(rep *report.Report, prefix string) {
	if !strings.HasPrefix(string(rep.Res.Payload), prefix) {
		fail("expected payload to begin with %q", prefix)
	}
	rep.AddNote(fmt.Sprintf("payload begins with %q", prefix))
}

// PayloadDoesNotBeginWith asserts the payload does not begin with prefix.
func PayloadDoesNotBeginWith(rep *report.Report, prefix string) {
	if strings.HasPrefix(string(rep.Res.Payload), prefix) {
		fail("expected payload not to begin with %q", prefix)
	}
	rep.AddNote(fmt.Sprintf("payload does not begin with %q", prefix))
}

// PayloadEndsWith asserts the payload ends with suffix.
func PayloadEndsWith(rep *report.Report, suffix string) {
	if !strings.HasSuffix(string(rep.Res.Payload), suffix) {
		fail("expected payload to end with %q", suffix)
	}
	rep.AddNote(fmt.Sprintf("payload ends with %q", suffix))
}

// ConnectionAlive asserts the last read left the connection open.
func ConnectionAlive(rep *report.Report) {
	if rep.Res.Connection != report.Alive {
		fail("expected connection to remain alive, server closed it")
	}
	rep.AddNote("connection remained alive")
}

// ConnectionClosed asserts the peer closed the connection.
func ConnectionClosed(rep *report.Report) {
	if rep.Res.Connection != report.Closed {
		fail("expected connection to be closed, it remained alive")
	}
	rep.AddNote("connection was closed")
}
