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

// Package probe orchestrates one request/response round trip: load a
// fixture, open or reuse the test's transport connection, send, receive,
// and parse the reply into a Report. A probe never raises; every failure
// is recorded as data on the returned Report.
package probe

import (
	"github.com/sabouaram/httptester/fixture"
	"github.com/sabouaram/httptester/httpwire"
	"github.com/sabouaram/httptester/report"
	"github.com/sabouaram/httptester/transport"
)

// Request names the fixture and parameters for one probe, plus the
// keep-alive policy governing the connection afterward.
type Request struct {
	Fixture   string
	Tokens    map[string]string
	KeepAlive bool
}

// Driver binds a transport configuration and a fixture directory to one
// running test. Conn is nil until the first probe opens it, and is
// replaced/cleared by Run according to the keep-alive policy.
type Driver struct {
	Cfg      transport.Config
	Fixtures fixture.Dir
	Conn     *transport.Conn
}

// Run executes one probe against the driver's (host, port), identified by
// testID/suite/description for the returned Report, and returns the
// Report annotated with notes and any errors encountered at each stage.
func (d *Driver) Run(testID, suite, description string, req Request) *report.Report {
	rep := report.New(testID, suite, description)

	wire, _, err := d.Fixtures.Load(req.Fixture, req.Tokens)
	if err != nil {
		rep.AddError(err.Error())
		return rep
	}
	rep.Req.Raw = string(wire)

	if d.Conn == nil {
		rep.AddNote("Connecting to " + d.Fixtures.Host + ":" + d.Fixtures.Port)
		conn, err := transport.Open(d.Cfg, d.Fixtures.Host, d.Fixtures.Port)
		if err != nil {
			rep.AddError(err.Error())
			return rep
		}
		d.Conn = conn
	} else {
		rep.AddNote("Reusing existing connection")
	}

	if err := d.Conn.Send(wire); err != nil {
		rep.AddError(err.Error())
		d.destroy()
		return rep
	}
	rep.AddNote("Request data sent")

	buf, state, err := d.Conn.RecvAll()
	if err != nil {
		rep.AddError(err.Error())
		d.destroy()
		return rep
	}
	rep.AddNote("Response data read")
	rep.Res.Connection = state

	httpwire.Parse(buf, rep)
	rep.AddNote("Response parsed")

	if !req.KeepAlive || !rep.Passed() {
		d.destroy()
	}

	return rep
}

// Release closes and clears the driver's connection unconditionally,
// called by the runner at the end of a test body on every exit path.
func (d *Driver) Release() {
	d.destroy()
}

func (d *Driver) destroy() {
	if d.Conn != nil {
		_ = d.Conn.Close()
		d.Conn = nil
	}
}
