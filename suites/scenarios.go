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
	"time"

	"github.com/sabouaram/httptester/assert"
	"github.com/sabouaram/httptester/httpwire"
	"github.com/sabouaram/httptester/registry"
	"github.com/sabouaram/httptester/report"
)

// coreDir is the directory FixturesFor resolves the "core" suite to.
const coreDir = "suites/fixtures/core"

func init() {
	registry.Register("core", registry.TestCase{
		ID:          "scenario_healthy_root",
		Description: "a clean GET / on a known-good server",
		Fixture:     "healthy-root.http",
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.VersionIs(ctx.Report, "HTTP/1.1")
			assert.DateValid(ctx.Report)
			assert.HeaderPresent(ctx.Report, "Content-Type")
			assert.PayloadNonEmpty(ctx.Report)
		},
	})

	registry.Register("core", registry.TestCase{
		ID:          "scenario_tight_version_check",
		Description: "HTTP/1.11 is not mistaken for HTTP/1.1",
		Fixture:     "bad-version.http",
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 505)
		},
	})

	registry.Register("core", registry.TestCase{
		ID:          "scenario_conditional_head",
		Description: "a conditional HEAD against an unmodified resource",
		Fixture:     "conditional-head.http",
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 304)
			assert.PayloadEmpty(ctx.Report)
		},
	})

	registry.Register("core", registry.TestCase{
		ID:          "scenario_pipelined_triple_get",
		Description: "three pipelined GETs answered in order on one connection",
		Fixture:     "pipeline-triple-get.http",
		KeepAlive:   true,
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.MimeIs(ctx.Report, "text/html")

			_, remainder, err := httpwire.Frame(ctx.Report)
			if err != nil {
				return
			}

			second := report.New(ctx.Report.TestID, ctx.Report.Suite, "pipelined response 2")
			httpwire.Parse(remainder, second)
			assert.StatusIs(second, 200)
			assert.MimeIs(second, "text/html")

			_, remainder2, err := httpwire.Frame(second)
			if err != nil {
				ctx.Report.AddError(err.Error())
				return
			}

			third := report.New(ctx.Report.TestID, ctx.Report.Suite, "pipelined response 3")
			httpwire.Parse(remainder2, third)
			assert.StatusIs(third, 200)
			assert.MimeIs(third, "text/html")
			assert.PayloadContains(third, "coolcar.html")

			assert.ConnectionClosed(ctx.Report)
		},
	})

	registry.Register("core", registry.TestCase{
		ID:          "scenario_keepalive_then_timeout",
		Description: "a keep-alive connection answers a second request, then the idle connection eventually times out",
		Fixture:     "keepalive-head.http",
		KeepAlive:   true,
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			assert.ConnectionAlive(ctx.Report)

			followUp := ctx.Probe("keepalive-followup.http", nil, true)
			assert.StatusIs(followUp, 200)

			time.Sleep(6 * time.Second)

			idle := ctx.Probe("keepalive-followup.http", nil, false)
			switch {
			case len(idle.Errors()) > 0:
				idle.AddNote("idle timeout honored: transport read error on the second request")
			case idle.Res.Connection == report.Closed:
				idle.AddNote("idle timeout honored: connection closed on the second request")
			default:
				assert.StatusIs(idle, 408)
				assert.HeaderIs(idle, "connection", "close")
			}
		},
	})

	registry.Register("core", registry.TestCase{
		ID:          "scenario_etag_capture_and_reuse",
		Description: "an ETag captured from a HEAD is honored by a conditional GET",
		Fixture:     "etag-head.http",
		KeepAlive:   true,
		Body: func(ctx *registry.Context) {
			assert.StatusIs(ctx.Report, 200)
			tag := assert.ETagValid(ctx.Report)

			follow := ctx.Probe("etag-get.http", map[string]string{"TAG": tag}, false)
			assert.StatusIs(follow, 200)
			assert.PayloadContains(follow, "1966 Ford Fairlane")
		},
	})
}
