// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

// Pool recycles Array backing storage to cut allocator churn; this is
// component A, TokenArrayPool, of spec.md 4.A. It is an unbounded
// stack: Acquire pops a logically-empty Array if one is free,
// otherwise allocates; Release clears and pushes one back.
type Pool struct {
	free []*Array
}

// NewPool returns an empty Pool.
func NewPool() *Pool { return &Pool{} }

// Acquire returns a logically-empty Array.
func (p *Pool) Acquire() *Array {
	if n := len(p.free); n != 0 {
		a := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return a
	}
	return &Array{}
}

// Release resets a and returns it to the pool. Release(nil) is a nop.
// After Release, the caller must not use a again.
func (p *Pool) Release(a *Array) {
	if a == nil {
		return
	}
	a.Reset()
	p.free = append(p.free, a)
}

// Destroy discards every array the pool is holding. Call once at
// process teardown (see cpp.Context.Close).
func (p *Pool) Destroy() { p.free = nil }

// Len reports how many arrays are currently idle in the pool. Exposed
// for tests asserting "release(acquire()) == no-op" (spec.md 8).
func (p *Pool) Len() int { return len(p.free) }
