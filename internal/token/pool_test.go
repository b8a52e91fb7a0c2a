// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import "testing"

func TestPoolReuse(t *testing.T) {
	p := NewPool()
	a := p.Acquire()
	a.Append(Token{Kind: IDENTIFIER}, Token{Kind: NUMBER})
	if g, e := a.Len(), 2; g != e {
		t.Fatalf("got %d, exp %d", g, e)
	}

	p.Release(a)
	if g, e := p.Len(), 1; g != e {
		t.Fatalf("got %d, exp %d", g, e)
	}

	b := p.Acquire()
	if a != b {
		t.Fatal("Acquire after Release did not return the recycled array")
	}
	if g, e := b.Len(), 0; g != e {
		t.Fatalf("recycled array was not cleared: got len %d, exp %d", g, e)
	}
	if g, e := p.Len(), 0; g != e {
		t.Fatalf("got %d, exp %d", g, e)
	}
}

func TestPoolAcquireAllocatesWhenEmpty(t *testing.T) {
	p := NewPool()
	a := p.Acquire()
	if a == nil {
		t.Fatal("Acquire returned nil")
	}
	if g, e := a.Len(), 0; g != e {
		t.Fatalf("got %d, exp %d", g, e)
	}
}

func TestPoolDestroy(t *testing.T) {
	p := NewPool()
	p.Release(p.Acquire())
	p.Release(p.Acquire())
	p.Destroy()
	if g, e := p.Len(), 0; g != e {
		t.Fatalf("got %d, exp %d", g, e)
	}
}
