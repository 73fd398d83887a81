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

package suites

import (
	"github.com/sabouaram/httptester/assert"
	"github.com/sabouaram/httptester/registry"
)

// a1Dir is the directory FixturesFor resolves the "a1" suite to.
const a1Dir = "suites/fixtures/a1"

func init() {
	registry.Register("a1", registry.TestCase{
		ID:          "test_1_url_get_ok",
		Description: "GET on an absolute-URL target returns 200",
		Fixture:     "get-url.http",
		Tokens:      map[string]string{"PATH": "/"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.PayloadNonEmpty(ctx.Report)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_path_head_ok",
		Description: "HEAD on a bare path returns 200 with no body",
		Fixture:     "method-path.http",
		Tokens:      map[string]string{"METHOD": "HEAD", "PATH": "/"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.PayloadEmpty(ctx.Report)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_path_options_ok",
		Description: "OPTIONS advertises the allowed methods",
		Fixture:     "method-path.http",
		Tokens:      map[string]string{"METHOD": "OPTIONS", "PATH": "*"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.HeaderPresent(ctx.Report, "Allow")
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_post_not_implemented",
		Description: "POST to a static resource is rejected",
		Fixture:     "method-path.http",
		Tokens:      map[string]string{"METHOD": "POST", "PATH": "/"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 501)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_trace_echoback",
		Description: "TRACE echoes the request back as the response body",
		Fixture:     "method-path.http",
		Tokens:      map[string]string{"METHOD": "TRACE", "PATH": "/"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.MimeIs(ctx.Report, "message/http")
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_get_missing",
		Description: "GET on a missing resource returns 404",
		Fixture:     "get-path.http",
		Tokens:      map[string]string{"PATH": "/no-such-file-here"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 404)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_unsupported_version",
		Description: "A client version the server cannot speak is rejected",
		Fixture:     "unsupported-version.http",
		Tokens:      map[string]string{"VERSION": "HTTP/9.9"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 505)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_tight_unsupported_version_check",
		Description: "A minor-version-only bump is still rejected, not silently accepted",
		Fixture:     "unsupported-version.http",
		Tokens:      map[string]string{"VERSION": "HTTP/1.11"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 505)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_invalid_request",
		Description: "A malformed request line is rejected with 400",
		Fixture:     "invalid-request.http",
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 400)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_missing_host_header",
		Description: "An HTTP/1.1 request with no Host header is rejected with 400",
		Fixture:     "missing-host.http",
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 400)
		},
	})

	registry.Register("a1", registry.TestCase{
		ID:          "test_1_url_head_ok",
		Description: "HEAD on a bare URL-form target returns 200 with no body",
		Fixture:     "method-url.http",
		Tokens:      map[string]string{"METHOD": "HEAD", "PATH": "/"},
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.PayloadEmpty(ctx.Report)
		},
	})
}
