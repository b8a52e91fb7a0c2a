// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

// Array is an ordered, randomly-indexable, growable sequence of
// Token, as described by spec.md's TokenArray. Arrays are owned by
// exactly one caller at a time; ownership moves to Pool on Release.
type Array struct {
	toks []Token
}

// NewArray returns an empty, unpooled Array. Prefer Pool.Acquire.
func NewArray() *Array { return &Array{} }

// Len returns the number of tokens currently held.
func (a *Array) Len() int { return len(a.toks) }

// At returns the token at index i.
func (a *Array) At(i int) Token { return a.toks[i] }

// Set overwrites the token at index i.
func (a *Array) Set(i int, t Token) { a.toks[i] = t }

// Slice returns the backing slice. Callers must not retain it past
// the Array's next mutation.
func (a *Array) Slice() []Token { return a.toks }

// SetSlice replaces the entire backing slice.
func (a *Array) SetSlice(s []Token) { a.toks = s }

// Append appends tokens to the end of a.
func (a *Array) Append(toks ...Token) { a.toks = append(a.toks, toks...) }

// Concat appends the contents of b to a. b is left unmodified.
func (a *Array) Concat(b *Array) { a.toks = append(a.toks, b.toks...) }

// Truncate shrinks a to its first n tokens.
func (a *Array) Truncate(n int) { a.toks = a.toks[:n] }

// Replace substitutes the slice [from, to) with repl, growing or
// shrinking the backing storage and shifting the tail as needed so
// that tokens after the replaced region keep their relative order.
// This is the primitive the Rewriter uses to splice an expansion in
// place (spec.md 4.G and 9's "in-place rewrite" design note).
func (a *Array) Replace(from, to int, repl []Token) {
	tail := append([]Token(nil), a.toks[to:]...)
	a.toks = append(a.toks[:from], repl...)
	a.toks = append(a.toks, tail...)
}

// Reset clears a's length to zero and zeroes its backing storage, so
// stale String/Number payloads are not kept alive by a pooled array.
func (a *Array) Reset() {
	for i := range a.toks {
		a.toks[i] = Token{}
	}
	a.toks = a.toks[:0]
}

// Clone returns an independent copy of a's contents.
func (a *Array) Clone() []Token { return append([]Token(nil), a.toks...) }
