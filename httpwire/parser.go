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

// Package httpwire parses raw HTTP/1.1 response bytes without trusting the
// peer: it never rejects a buffer outright, instead recording every defect
// it finds on the Report and doing its best to still extract a status line,
// headers and payload for the assertion layer to inspect.
package httpwire

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sabouaram/httptester/report"
)

var (
	blankLineCRLF   = regexp.MustCompile(`\r\n\r\n`)
	blankLineAny    = regexp.MustCompile(`\r?\n\r?\n`)
	statusLineRegex = regexp.MustCompile(`^(\S+)\s+(\d+)\s+(.*)$`)
)

// Parse fills rep.Res from buf. It never returns an error itself; every
// defect is recorded via rep.AddError so the runner can still consult
// whatever was extracted.
func Parse(buf []byte, rep *report.Report) {
	if len(buf) == 0 {
		rep.AddError("Empty response")
		return
	}

	s := string(buf)

	loc := blankLineAny.FindStringIndex(s)
	var headerBlock, payload string
	if loc == nil {
		rep.AddError("Missing empty line after headers")
		headerBlock = s
		payload = ""
	} else {
		headerBlock = s[:loc[0]]
		payload = s[loc[1]:]
		if !blankLineCRLF.MatchString(s[loc[0]:loc[1]]) {
			rep.AddError("Using LF as header separator instead of CRLF")
		}
	}

	rep.Res.RawHeaders = headerBlock
	rep.Res.Payload = []byte(payload)
	rep.Res.PayloadSize = len(payload)
	rep.Res.Headers = map[string]string{}

	lines := unfold(strings.ReplaceAll(headerBlock, "\r", ""))
	if len(lines) == 0 {
		rep.AddError("Malformed status line: empty response headers")
		return
	}

	parseStatusLine(lines[0], rep)

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		parseHeaderLine(line, rep)
	}
}

// unfold splits a normalized (no \r) header block into logical lines,
// joining any continuation line beginning with a tab or space onto the
// previous line, per RFC 7230 obsolete line folding.
func unfold(block string) []string {
	raw := strings.Split(block, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if len(l) > 0 && (l[0] == ' ' || l[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += " " + strings.TrimSpace(l)
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func parseStatusLine(line string, rep *report.Report) {
	m := statusLineRegex.FindStringSubmatch(line)
	if m == nil {
		rep.AddError("Malformed status line: " + line)
		return
	}
	rep.Res.Version = m[1]
	code, err := strconv.Atoi(m[2])
	if err != nil {
		rep.AddError("Malformed status line: " + line)
		return
	}
	rep.Res.StatusCode = code
	rep.Res.StatusText = m[3]
}

func parseHeaderLine(line string, rep *report.Report) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		rep.AddError("Malformed header line: " + line)
		return
	}

	key := line[:i]
	trimmedKey := strings.TrimSpace(key)
	if key != trimmedKey {
		rep.AddError("Header name \"" + trimmedKey + "\" has spurious white-spaces")
	}

	value := strings.TrimSpace(line[i+1:])
	rep.Res.Headers[strings.ToLower(trimmedKey)] = value
}
