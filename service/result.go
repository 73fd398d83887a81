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

// Package service is the HTTP control-plane boundary: it turns a
// report.Result into the wire JSON shape an external caller consumes and
// streams those records NDJSON-style as a run progresses. Everything
// beyond that framing is explicitly out of scope: no auth, no
// orchestration, no persistence.
package service

import (
	"encoding/base64"

	"github.com/sabouaram/httptester/report"
)

// ReqJSON mirrors report.Request for the wire.
type ReqJSON struct {
	Raw string `json:"raw"`
}

// ResJSON mirrors report.Response for the wire; Payload is base64-encoded
// when non-empty and omitted entirely when empty, so an empty HEAD
// response doesn't carry a spurious empty string.
type ResJSON struct {
	RawHeaders  string            `json:"raw_headers"`
	HTTPVersion string            `json:"http_version"`
	StatusCode  int               `json:"status_code"`
	Headers     map[string]string `json:"headers"`
	Payload     string            `json:"payload,omitempty"`
	PayloadSize int               `json:"payload_size"`
	Connection  string            `json:"connection"`
}

// Result is the per-test JSON record streamed to a service caller,
// matching the service surface's documented field names exactly.
type Result struct {
	ID          string   `json:"id"`
	Suite       string   `json:"suite"`
	Description string   `json:"description"`
	Errors      []string `json:"errors"`
	Notes       []string `json:"notes"`
	Req         ReqJSON  `json:"req"`
	Res         ResJSON  `json:"res"`
}

// FromResult converts a runner-produced report.Result into its wire shape.
func FromResult(r *report.Result) Result {
	payload := ""
	if len(r.Res.Payload) > 0 {
		payload = base64.StdEncoding.EncodeToString(r.Res.Payload)
	}

	headers := r.Res.Headers
	if headers == nil {
		headers = map[string]string{}
	}

	return Result{
		ID:          r.TestID,
		Suite:       r.Suite,
		Description: r.Description,
		Errors:      r.Errors,
		Notes:       r.Notes,
		Req:         ReqJSON{Raw: r.Req.Raw},
		Res: ResJSON{
			RawHeaders:  r.Res.RawHeaders,
			HTTPVersion: r.Res.Version,
			StatusCode:  r.Res.StatusCode,
			Headers:     headers,
			Payload:     payload,
			PayloadSize: r.Res.PayloadSize,
			Connection:  string(r.Res.Connection),
		},
	}
}
