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

// Package atomic provides a generic, type-safe wrapper over sync/atomic.Value.
//
// The transport's connection-state flag is the place in this module that
// needs a value read and written from different goroutines without a mutex;
// it uses Value[T]. The registry guards its suite index with a mutex instead.
package atomic

import (
	"sync/atomic"
)

// Value is a type-safe, lock-free container for a single value of type T.
type Value[T any] interface {
	// SetDefaultLoad sets the value Load returns when nothing has been stored yet.
	SetDefaultLoad(def T)
	// SetDefaultStore sets the value Store substitutes for an empty T.
	SetDefaultStore(def T)
	// Load returns the current value, or the default load value if empty.
	Load() T
	// Store sets the current value, substituting the default store value if val is empty.
	Store(val T)
	// Swap atomically replaces the value and returns the previous one.
	Swap(new T) (old T)
}

type defaultValue[T any] struct{ v T }

func (d defaultValue[T]) GetDefault() T { return d.v }

func newDefault[T any](v T) defaultValue[T] { return defaultValue[T]{v: v} }

type val[T any] struct {
	av *atomic.Value
	dl *atomic.Value
	ds *atomic.Value
}

// NewValue returns a Value[T] whose default load and store values are the
// zero value of T.
func NewValue[T any]() Value[T] {
	var zero T
	return NewValueDefault[T](zero, zero)
}

// NewValueDefault returns a Value[T] with explicit default load/store values.
func NewValueDefault[T any](load, store T) Value[T] {
	o := &val[T]{av: new(atomic.Value), dl: new(atomic.Value), ds: new(atomic.Value)}
	o.SetDefaultLoad(load)
	o.SetDefaultStore(store)
	return o
}

func (o *val[T]) SetDefaultLoad(def T) {
	o.dl.Store(newDefault[T](def))
}

func (o *val[T]) SetDefaultStore(def T) {
	o.ds.Store(newDefault[T](def))
}

func (o *val[T]) getDefault(i any) T {
	if v, k := Cast[defaultValue[T]](i); !k {
		var zero T
		return zero
	} else {
		return v.GetDefault()
	}
}

func (o *val[T]) Load() T {
	if v, k := Cast[T](o.av.Load()); !k {
		return o.getDefault(o.dl.Load())
	} else {
		return v
	}
}

func (o *val[T]) Store(val T) {
	if IsEmpty[T](val) {
		o.av.Store(o.getDefault(o.ds.Load()))
	} else {
		o.av.Store(val)
	}
}

func (o *val[T]) Swap(new T) (old T) {
	if IsEmpty[T](new) {
		new = o.getDefault(o.ds.Load())
	}
	if v, k := Cast[T](o.av.Swap(new)); !k {
		return o.getDefault(o.dl.Load())
	} else {
		return v
	}
}
