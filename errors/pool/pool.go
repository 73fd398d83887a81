/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package pool provides a thread-safe, sequentially indexed string log.
//
// A Report's notes and errors are each append-only during one probe: the
// probe driver appends from a single goroutine, but the runner may read the
// pool for reporting while a later probe of the same test is still running.
// Pool gives both a mutex-guarded index assignment and a stable iteration order.
package pool

import (
	"sort"
	"sync"
)

// Pool is a concurrent-safe, insertion-ordered collection of strings.
type Pool interface {
	// Add appends non-empty entries, assigning each the next sequence index.
	Add(entry ...string)

	// List returns all entries in insertion order.
	List() []string

	// Len returns the number of entries currently stored.
	Len() int
}

type mod struct {
	mu  sync.Mutex
	seq uint64
	m   map[uint64]string
}

// New returns an empty Pool.
func New() Pool {
	return &mod{m: make(map[uint64]string)}
}

func (o *mod) Add(entry ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, e := range entry {
		if e == "" {
			continue
		}
		o.seq++
		o.m[o.seq] = e
	}
}

func (o *mod) List() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	keys := make([]uint64, 0, len(o.m))
	for k := range o.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, o.m[k])
	}
	return out
}

func (o *mod) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.m)
}
