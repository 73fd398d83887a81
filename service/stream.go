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

package service

import (
	"encoding/json"
	"io"

	"github.com/sabouaram/httptester/report"
)

// Stream NDJSON-encodes each report.Result arriving on results, one line
// per record, flushing after every write when w supports it so a
// streaming HTTP caller sees results as they complete rather than only at
// the end of the run.
func Stream(w io.Writer, results <-chan *report.Result) error {
	enc := json.NewEncoder(w)

	type flusher interface{ Flush() }

	for r := range results {
		if err := enc.Encode(FromResult(r)); err != nil {
			return err
		}
		if f, ok := w.(flusher); ok {
			f.Flush()
		}
	}
	return nil
}
