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

package report

import (
	"github.com/hashicorp/go-uuid"
)

// Result is the immutable record the runner emits for one finished test.
// A Report is mutable scratch space held for the duration of a test body;
// the runner takes ownership at the end of the body and freezes it here.
type Result struct {
	RunID       string
	TestID      string
	Suite       string
	Description string

	Req Request
	Res Response

	Errors []string
	Notes  []string
}

// Passed reports whether Errors is empty, per the runner's pass/fail rule.
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// Freeze copies rep's fields into an immutable Result stamped with a
// fresh run id, generated the way the teacher correlates one invocation's
// worth of records.
func Freeze(rep *Report) *Result {
	id, err := uuid.GenerateUUID()
	if err != nil {
		id = ""
	}
	return &Result{
		RunID:       id,
		TestID:      rep.TestID,
		Suite:       rep.Suite,
		Description: rep.Description,
		Req:         rep.Req,
		Res:         rep.Res,
		Errors:      rep.Errors(),
		Notes:       rep.Notes(),
	}
}
