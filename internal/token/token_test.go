// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/cznic/ppmacro/internal/intern"
)

func TestIdentStrPunct(t *testing.T) {
	id := Ident(intern.New("foo"))
	if id.Kind != IDENTIFIER || id.Str.String() != "foo" {
		t.Fatalf("got %v %q", id.Kind, id.Str.String())
	}

	s := Str(intern.New(`"hi"`))
	if s.Kind != STRING || s.Str.String() != `"hi"` {
		t.Fatalf("got %v %q", s.Kind, s.Str.String())
	}

	p := Punct('(')
	if p.Kind != Kind('(') {
		t.Fatalf("got %v, exp %v", p.Kind, Kind('('))
	}
}

func TestIsEmptyArg(t *testing.T) {
	if !(Token{Kind: EMPTY_ARG}).IsEmptyArg() {
		t.Fatal("expected an EMPTY_ARG token to report IsEmptyArg() true")
	}
	if (Token{Kind: IDENTIFIER}).IsEmptyArg() {
		t.Fatal("expected a non-EMPTY_ARG token to report IsEmptyArg() false")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		IDENTIFIER:  "IDENTIFIER",
		TOKEN_PASTE: "##",
		Kind('('):   "(",
	}
	for k, want := range cases {
		if g := k.String(); g != want {
			t.Fatalf("Kind(%d).String() = %q, exp %q", k, g, want)
		}
	}
}

func TestSpelling(t *testing.T) {
	negSeven := int64(-7)
	cases := []struct {
		tok  Token
		want string
	}{
		{Ident(intern.New("foo")), "foo"},
		{Token{Kind: NUMBER, Num: Number{Kind: NumInt, Bits: uint64(negSeven)}}, "-7"},
		{Token{Kind: NUMBER, Num: Number{Kind: NumUint, Bits: 7}}, "7"},
		{Token{Kind: EMPTY_ARG}, ""},
		{Punct('+'), "+"},
	}
	for _, c := range cases {
		if g := Spelling(c.tok); g != c.want {
			t.Fatalf("got %q, exp %q", g, c.want)
		}
	}
}

func TestArrayReplaceSplicesInPlace(t *testing.T) {
	a := NewArray()
	a.Append(Ident(intern.New("a")), Ident(intern.New("b")), Ident(intern.New("c")))
	a.Replace(1, 2, []Token{Ident(intern.New("x")), Ident(intern.New("y"))})

	want := []string{"a", "x", "y", "c"}
	if g, e := a.Len(), len(want); g != e {
		t.Fatalf("got %d tokens, exp %d", g, e)
	}
	for i, w := range want {
		if g := a.At(i).Str.String(); g != w {
			t.Fatalf("token %d: got %q, exp %q", i, g, w)
		}
	}
}

func TestArrayResetZeroesPayloads(t *testing.T) {
	a := NewArray()
	a.Append(Ident(intern.New("a")))
	a.Reset()
	if g, e := a.Len(), 0; g != e {
		t.Fatalf("got len %d, exp %d", g, e)
	}
}

func TestArrayClone(t *testing.T) {
	a := NewArray()
	a.Append(Ident(intern.New("a")))
	clone := a.Clone()
	a.Append(Ident(intern.New("b")))
	if g, e := len(clone), 1; g != e {
		t.Fatalf("clone observed the later Append: got len %d, exp %d", g, e)
	}
}
