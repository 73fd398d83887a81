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

package httpwire

import (
	"strconv"
	"strings"

	"github.com/sabouaram/httptester/errors"
)

// IsChunked reports whether the Transfer-Encoding header (already
// case-folded and trimmed by Parse) ends with "chunked", per RFC 7230's
// rule that chunked must be the final coding applied.
func IsChunked(headers map[string]string) bool {
	te, ok := headers["transfer-encoding"]
	if !ok {
		return false
	}
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(te)), "chunked")
}

// DecodeChunked decodes a sequence of HTTP chunks from body, each of the
// form "<hex-size>[;ext]\r\n<size bytes>\r\n", terminating at a zero-size
// chunk. It returns the decoded payload and the byte offset in body just
// past the terminating chunk (including its trailing CRLF).
func DecodeChunked(body []byte) (decoded []byte, consumed int, err error) {
	pos := 0
	for {
		lineEnd := indexCRLF(body[pos:])
		if lineEnd < 0 {
			return decoded, pos, errors.FramingError.Error("chunk size line missing terminating CRLF")
		}
		sizeLine := string(body[pos : pos+lineEnd])
		pos += lineEnd + 2

		if i := strings.IndexByte(sizeLine, ';'); i >= 0 {
			sizeLine = sizeLine[:i]
		}
		sizeLine = strings.TrimSpace(sizeLine)

		size, perr := strconv.ParseInt(sizeLine, 16, 64)
		if perr != nil {
			return decoded, pos, errors.FramingError.Error("malformed chunk size: "+sizeLine, perr)
		}

		if size == 0 {
			// The terminating chunk may carry trailers before the final
			// CRLF; skip any trailer lines up to the blank line.
			for {
				tEnd := indexCRLF(body[pos:])
				if tEnd < 0 {
					return decoded, pos, errors.FramingError.Error("chunked body missing final CRLF")
				}
				if tEnd == 0 {
					pos += 2
					return decoded, pos, nil
				}
				pos += tEnd + 2
			}
		}

		if pos+int(size) > len(body) {
			return decoded, pos, errors.FramingError.Error("chunk size exceeds remaining body")
		}
		decoded = append(decoded, body[pos:pos+int(size)]...)
		pos += int(size)

		if pos+2 > len(body) || body[pos] != '\r' || body[pos+1] != '\n' {
			return decoded, pos, errors.FramingError.Error("chunk data missing terminating CRLF")
		}
		pos += 2
	}
}

// EncodeChunked renders b as a single HTTP chunk followed by the
// terminating zero-size chunk, the inverse used by the round-trip test in
// DESIGN.md's testable-properties coverage.
func EncodeChunked(b []byte) []byte {
	var out []byte
	if len(b) > 0 {
		out = append(out, []byte(strconv.FormatInt(int64(len(b)), 16))...)
		out = append(out, '\r', '\n')
		out = append(out, b...)
		out = append(out, '\r', '\n')
	}
	out = append(out, '0', '\r', '\n', '\r', '\n')
	return out
}

func indexCRLF(b []byte) int {
	for i := 0; i+1 < len(b); i++ {
		if b[i] == '\r' && b[i+1] == '\n' {
			return i
		}
	}
	return -1
}
