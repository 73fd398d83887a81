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

	"github.com/sabouaram/httptester/errors"
	"github.com/sabouaram/httptester/report"
)

// Frame splits rep's already-extracted payload into one message body and
// the bytes left over for a pipelined successor, applying chunked decoding
// or Content-Length framing on demand. It does not mutate rep.Res.Payload;
// callers that need to walk a pipelined stream re-invoke Parse on the
// remainder themselves, per spec.md's "pipelined request" definition.
func Frame(rep *report.Report) (body []byte, remainder []byte, err error) {
	payload := rep.Res.Payload

	if IsChunked(rep.Res.Headers) {
		decoded, consumed, derr := DecodeChunked(payload)
		if derr != nil {
			rep.AddError(derr.Error())
			return decoded, nil, derr
		}
		return decoded, payload[consumed:], nil
	}

	if cl, ok := rep.Res.Headers["content-length"]; ok {
		n, cerr := strconv.Atoi(cl)
		if cerr != nil || n < 0 {
			e := errors.FramingError.Error("malformed Content-Length: " + cl)
			rep.AddError(e.Error())
			return nil, payload, e
		}
		if n > len(payload) {
			n = len(payload)
		}
		return payload[:n], payload[n:], nil
	}

	e := errors.FramingError.Error("response has neither Content-Length nor chunked Transfer-Encoding")
	rep.AddError(e.Error())
	return nil, payload, e
}
