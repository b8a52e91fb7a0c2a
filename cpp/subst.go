// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import "github.com/cznic/ppmacro/internal/token"

// substitute is component F, the Substituter (expand_macro of
// spec.md 4.F): given a definition and its already-collected
// arguments, it produces the body of one macro expansion — stringify
// snapshot, argument pre-expansion, parameter substitution, the paste
// pass, and the rescan that realizes the C rule that a replacement's
// result is itself subject to further macro expansion.
func (c *Context) substitute(m *Macro, args []*token.Array) *token.Array {
	c.disable(m.Name)

	// Pre-stringify snapshot: the standard requires # to see the raw,
	// not-yet-pre-expanded argument, so this must run before the
	// pre-expansion loop below.
	var strings []token.Token
	if m.Stringify {
		strings = make([]token.Token, len(args))
		for i, a := range args {
			strings[i] = c.Stringify(a.Slice())
		}
	}

	// Pre-expand arguments, then force a separating space at the
	// splice seam so e.g. "x" followed by a pre-expanded "-1" doesn't
	// glue into "x-1" becoming a single token on rescan.
	for _, a := range args {
		c.Expand(a)
		if a.Len() > 0 {
			s := a.Slice()
			if s[0].LeadingWhitespace < 1 {
				s[0].LeadingWhitespace = 1
			}
		}
	}

	out := c.pool.Acquire()
	repl := m.Replacement.Slice()
	for i := 0; i < len(repl); {
		t := repl[i]

		if t.Kind == token.Kind('#') && i+1 < len(repl) && repl[i+1].Kind == token.PARAM {
			out.Append(strings[repl[i+1].Param])
			i += 2
			continue
		}

		if t.Kind == token.PARAM {
			out.Append(args[t.Param].Slice()...)
			i++
			continue
		}

		out.Append(t)
		i++
	}

	out.SetSlice(c.pastePass(out.Slice()))

	c.Expand(out)

	c.enable(m.Name)
	for _, a := range args {
		c.pool.Release(a)
	}

	return out
}

// pastePass is the "##" processing walk of spec.md 4.F: two cursors,
// i writing and j reading, collapse TOKEN_PASTE operators (and the
// EMPTY_ARG operands that can flank them after parameter
// substitution) into the pasted result.
func (c *Context) pastePass(l []token.Token) []token.Token {
	if len(l) == 0 {
		return l
	}
	if l[0].Kind == token.TOKEN_PASTE || l[len(l)-1].Kind == token.TOKEN_PASTE {
		c.diag.Errorf("'##' cannot appear at the start or end of a replacement list")
		return l
	}

	i, j := 0, 1
	for j < len(l) {
		switch {
		case l[j].Kind == token.TOKEN_PASTE:
			var lt token.Token
			if i >= 0 {
				lt = l[i]
			} else {
				lt = token.Token{Kind: token.EMPTY_ARG}
			}
			rt := l[j+1]
			if lt.Kind == token.EMPTY_ARG && rt.Kind == token.EMPTY_ARG {
				i--
			} else {
				if i < 0 {
					i = 0
				}
				l[i] = c.paste(lt, rt)
			}
			j += 2

		case l[j].Kind != token.EMPTY_ARG:
			i++
			if i < j {
				l[i] = l[j]
			}
			j++

		default:
			j++ // l[j] is EMPTY_ARG, drop it
		}
	}

	n := i + 1
	if n < 0 {
		n = 0
	}
	return l[:n]
}
