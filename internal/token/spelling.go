// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"math"
	"strconv"
)

// Spelling returns the textual form of t: the interned literal for
// IDENTIFIER/STRING/PREP_NUMBER, the decimal/float rendering of a
// NUMBER's bit pattern, or the single byte of a punctuator. This is
// the "textual form" spec.md 4.D's PasteOperator and 4.E's
// Stringifier both need.
func Spelling(t Token) string {
	switch t.Kind {
	case IDENTIFIER, STRING, PREP_NUMBER:
		return t.Str.String()
	case NUMBER:
		switch t.Num.Kind {
		case NumFloat:
			return strconv.FormatFloat(math.Float64frombits(t.Num.Bits), 'g', -1, 64)
		case NumUint:
			return strconv.FormatUint(t.Num.Bits, 10)
		default:
			return strconv.FormatInt(int64(t.Num.Bits), 10)
		}
	case EMPTY_ARG:
		return ""
	case PARAM, TOKEN_PASTE, NEWLINE, END:
		return ""
	default:
		return string(rune(t.Kind))
	}
}
