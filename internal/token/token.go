// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the preprocessing-token data model: Token,
// its Kind, the growable TokenArray, and numeric payload comparison
// rules. Single-character punctuators (including '#', '(', ')', ',')
// are represented by their own byte value, as in internal/c99; every
// other kind lives above 0xff so the two numberings never collide.
package token

import (
	"github.com/cznic/ppmacro/internal/intern"
)

// Kind classifies a Token. Values <= 0xff are single-byte punctuators;
// the named kinds below start at 0x100.
type Kind int32

const (
	_ Kind = iota + 0xff
	IDENTIFIER
	NUMBER
	STRING
	PREP_NUMBER
	NEWLINE
	END
	PARAM       // payload: Param, a zero-based parameter index
	EMPTY_ARG   // sentinel for a missing macro argument
	TOKEN_PASTE // '##'
)

func (k Kind) String() string {
	switch k {
	case IDENTIFIER:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case PREP_NUMBER:
		return "PREP_NUMBER"
	case NEWLINE:
		return "NEWLINE"
	case END:
		return "END"
	case PARAM:
		return "PARAM"
	case EMPTY_ARG:
		return "EMPTY_ARG"
	case TOKEN_PASTE:
		return "##"
	default:
		if k >= 0 && k <= 0xff {
			return string(rune(k))
		}
		return "?"
	}
}

// NumKind distinguishes the three payload shapes a NUMBER token can
// carry; the bit pattern is compared according to this discriminator,
// per spec.md's "signed vs unsigned chosen by type" rule for J.
type NumKind int8

const (
	NumInt NumKind = iota
	NumUint
	NumFloat
)

// Number is the typed numeric payload of a NUMBER token.
type Number struct {
	Kind NumKind
	Bits uint64 // int64/uint64 bit pattern, or math.Float64bits for NumFloat
	Lit  intern.String
}

// Token is a single preprocessing token.
type Token struct {
	Kind Kind

	// LeadingWhitespace is a non-negative count of spaces logically
	// preceding this token; the Stringifier and Rewriter splice logic
	// both depend on it being exactly 0 or >=1, never negative.
	LeadingWhitespace int

	// Str holds the payload for IDENTIFIER, STRING and PREP_NUMBER.
	Str intern.String

	// Num holds the payload for NUMBER.
	Num Number

	// Param holds the payload for PARAM: the zero-based parameter index.
	Param int
}

// Ident returns an IDENTIFIER token.
func Ident(s intern.String) Token { return Token{Kind: IDENTIFIER, Str: s} }

// Str returns a STRING token.
func Str(s intern.String) Token { return Token{Kind: STRING, Str: s} }

// Punct returns a single-character punctuator token.
func Punct(r rune) Token { return Token{Kind: Kind(r)} }

// IsEmptyArg reports whether t is the EMPTY_ARG sentinel.
func (t Token) IsEmptyArg() bool { return t.Kind == EMPTY_ARG }

// tableSizeHint is the MacroTable bucket-count hint (spec.md 4.B:
// "buckets ~= 1024 is a reasonable default").
const tableSizeHint = 1024

// TableSizeHint returns the suggested initial bucket count for a
// MacroTable-backing map.
func TableSizeHint() int { return tableSizeHint }
