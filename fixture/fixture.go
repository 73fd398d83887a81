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

// Package fixture reads on-disk request templates, substitutes <TOKEN>
// placeholders and canonicalizes line endings into the exact byte sequence
// a probe sends on the wire.
package fixture

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sabouaram/httptester/errors"
)

// pipelineSentinel visually separates concatenated pipelined requests in a
// fixture's source form; it carries no meaning on the wire and is removed
// during normalization.
const pipelineSentinel = "<PIPELINE>"

// Split holds a fixture's wire bytes already separated at the first blank
// line, mirroring the same split the response parser performs on a reply.
type Split struct {
	Header []byte
	Body   []byte
}

// Dir is a fixture directory: a base path plus the built-in token values
// shared by every fixture loaded from it.
type Dir struct {
	Path string
	Host string
	Port string

	// UserAgent is the suite-level template substituted for <USERAGENT>.
	UserAgent string
}

// New returns a Dir rooted at path, targeting host:port.
func New(path, host, port string) Dir {
	return Dir{Path: path, Host: host, Port: port, UserAgent: "httptester/1.0"}
}

// Load reads the named fixture file, expands tokens and canonicalizes it
// per the loader algorithm: read, substitute, split at the first blank
// line, strip the pipeline sentinel from the header block, normalize line
// endings to CRLF, and reassemble header+blank-line+body.
func (d Dir) Load(name string, tokens map[string]string) ([]byte, Split, error) {
	path := filepath.Join(d.Path, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Split{}, errors.ConfigError.Error("cannot read fixture "+name, err)
	}

	expanded := d.expand(string(raw), tokens)

	header, body := splitHeaderBody(expanded)
	header = strings.ReplaceAll(header, pipelineSentinel, "")
	header = canonicalize(header)

	out := make([]byte, 0, len(header)+len(body)+4)
	out = append(out, []byte(header)...)
	out = append(out, '\r', '\n', '\r', '\n')
	out = append(out, []byte(body)...)

	return out, Split{Header: []byte(header), Body: []byte(body)}, nil
}

// builtins returns the always-registered token table, computed fresh on
// every call so <EPOCH> and <RANDOMINT> vary per load as the spec requires.
func (d Dir) builtins() map[string]string {
	return map[string]string{
		"HOST":      d.Host,
		"PORT":      d.Port,
		"HOSTPORT":  d.Host + ":" + d.Port,
		"EPOCH":     strconv.FormatInt(time.Now().Unix(), 10),
		"RANDOMINT": strconv.Itoa(rand.Intn(1_000_000)),
		"USERAGENT": d.UserAgent,
	}
}

func (d Dir) expand(raw string, tokens map[string]string) string {
	all := d.builtins()
	for k, v := range tokens {
		all[k] = v
	}
	out := raw
	for k, v := range all {
		out = strings.ReplaceAll(out, "<"+k+">", v)
	}
	return out
}

// splitHeaderBody splits at the first blank line (LF or CRLF form), the
// same separator the response parser looks for.
func splitHeaderBody(s string) (header, body string) {
	if i := strings.Index(s, "\r\n\r\n"); i >= 0 {
		return s[:i], s[i+4:]
	}
	if i := strings.Index(s, "\n\n"); i >= 0 {
		return s[:i], s[i+2:]
	}
	return s, ""
}

// canonicalize strips stray \r then rewrites every \n as \r\n, so fixture
// authors can write LF-only files in their editor while the wire always
// sees CRLF.
func canonicalize(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
