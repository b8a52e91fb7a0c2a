// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"strings"

	"github.com/cznic/ppmacro/internal/intern"
	"github.com/cznic/ppmacro/internal/token"
)

// Stringify is component E: it converts an argument's token sequence
// into a single STRING token per spec.md 4.E. It is also exported on
// Context for the driver's #error support (spec.md 6).
func (c *Context) Stringify(arg []token.Token) token.Token {
	var b strings.Builder

	switch {
	case len(arg) == 0, len(arg) == 1 && arg[0].Kind == token.EMPTY_ARG:
		// empty string

	case len(arg) == 1:
		b.WriteString(stringifySpelling(arg[0]))

	default:
		for i, t := range arg {
			if t.Kind == token.NEWLINE {
				break // only permitted as the final token, e.g. from #error
			}
			if i != 0 && t.LeadingWhitespace > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(stringifySpelling(t))
		}
	}

	return token.Token{Kind: token.STRING, Str: intern.New(`"` + b.String() + `"`)}
}

// stringifySpelling renders one token's contribution to a stringized
// argument: a NUMBER prefers its original literal spelling over the
// bit-pattern reconstruction, and a STRING's embedded quotes and
// backslashes are escaped since it now sits inside another string.
func stringifySpelling(t token.Token) string {
	if t.Kind == token.NUMBER && !t.Num.Lit.IsEmpty() {
		return t.Num.Lit.String()
	}
	s := token.Spelling(t)
	if t.Kind == token.STRING {
		s = escapeQuotesAndBackslashes(s)
	}
	return s
}

func escapeQuotesAndBackslashes(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
