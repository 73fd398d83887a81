/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
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

// Package duration wraps time.Duration with a days-aware string form so the
// tester's tiered timeouts (connect, send, first-byte, inter-byte, the
// long-lived-connection probe) can be expressed uniformly in config files,
// flags and code ("200ms", "5s", "1d2h").
package duration

import (
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration with a "NdNhNmNs" text form.
type Duration time.Duration

// Parse parses a Go duration string, additionally accepting a leading "Nd"
// days component that time.ParseDuration does not support.
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)

	if i := strings.IndexByte(s, 'd'); i > 0 {
		daysPart, restPart := s[:i], s[i+1:]

		days, err := time.ParseDuration(daysPart + "h")
		if err != nil {
			return 0, err
		}

		rest := time.Duration(0)
		if restPart != "" {
			rest, err = time.ParseDuration(restPart)
			if err != nil {
				return 0, err
			}
		}

		return Duration(days*24 + rest), nil
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return Duration(v), nil
}

// MustParse is Parse, panicking on error. Intended for package-level
// default-config literals where the duration string is a compile-time
// constant known to be valid.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the underlying time.Duration.
func (d Duration) Time() time.Duration {
	return time.Duration(d)
}

// Days returns the number of whole days in d.
func (d Duration) Days() int64 {
	return int64(d.Time() / (24 * time.Hour))
}

// String renders d as "NdNhNmNs", omitting any all-zero leading components.
func (d Duration) String() string {
	n := d.Days()
	rest := d.Time() - time.Duration(n)*24*time.Hour

	var b strings.Builder
	if n > 0 {
		b.WriteString(strconv.FormatInt(n, 10))
		b.WriteByte('d')
	}
	b.WriteString(rest.String())
	return b.String()
}

// MarshalText implements encoding.TextMarshaler for YAML/viper config.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Time().String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for YAML/viper config.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
