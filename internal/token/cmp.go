// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

// Equal reports whether a and b are the same token per spec.md 4.J:
// same kind, and matching payload by kind (PARAM compares parameter
// index, NUMBER compares numeric kind and bit pattern, everything
// else compares interned string payload).
func Equal(a, b Token) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case PARAM:
		return a.Param == b.Param
	case NUMBER:
		return a.Num.Kind == b.Num.Kind && a.Num.Bits == b.Num.Bits
	default:
		return a.Str == b.Str
	}
}

// Cmp returns 0 if a and b are Equal, and a non-zero value otherwise,
// matching the tok_cmp external interface of spec.md 6.
func Cmp(a, b Token) int {
	if Equal(a, b) {
		return 0
	}
	return 1
}

// EqualSequence reports whether two token runs are pairwise Equal and
// of the same length; used by MacroTable's redefinition check (4.J's
// "every token pairwise equal").
func EqualSequence(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if !Equal(v, b[i]) {
			return false
		}
	}
	return true
}
