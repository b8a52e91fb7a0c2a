// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import "github.com/cznic/ppmacro/internal/token"

// readArguments is component C, ArgumentReader: given arr positioned
// at start (the token right after the invocation's opening '('), it
// collects params parenthesis-balanced, comma-separated arguments and
// returns them together with the index of the token right after the
// matching ')' (spec.md 4.C). Object-like macros never call this.
func (c *Context) readArguments(arr *token.Array, start int, params uint32) ([]*token.Array, int) {
	if params == 0 {
		if start >= arr.Len() || arr.At(start).Kind != token.Kind(')') {
			c.diag.Errorf("mismatched arity: expected 0 arguments")
			return nil, start
		}
		return nil, start + 1
	}

	var args []*token.Array
	i := start
	for {
		cur, next, term := c.readOneArgument(arr, i)
		i = next
		args = append(args, finalizeArgument(cur))
		// A ')' ends a well-formed call; anything else that isn't a
		// ',' (i.e. END, from running off the array or hitting a
		// NEWLINE) has already been diagnosed by readOneArgument and
		// does not advance i, so looping on it again would spin
		// forever re-reading the same position.
		if term != token.Kind(',') {
			break
		}
	}

	if uint32(len(args)) != params {
		c.diag.Errorf("mismatched arity: expected %d arguments, got %d", params, len(args))
	}
	return args, i
}

// readOneArgument reads tokens verbatim, at nesting depth zero,
// stopping at the first ',' or ')'; it returns the accumulated
// tokens, the index after the terminator, and the terminator's Kind.
func (c *Context) readOneArgument(arr *token.Array, i int) (*token.Array, int, token.Kind) {
	cur := c.pool.Acquire()
	depth := 0
	for {
		if i >= arr.Len() {
			c.diag.Errorf("unexpected end of input in expansion")
			return cur, i, token.END
		}

		t := arr.At(i)
		switch {
		case t.Kind == token.NEWLINE:
			c.diag.Errorf("unexpected end of input in expansion")
			return cur, i, token.END

		case t.Kind == token.Kind('('):
			depth++
			cur.Append(t)
			i++

		case t.Kind == token.Kind(')'):
			if depth == 0 {
				return cur, i + 1, token.Kind(')')
			}
			depth--
			if depth < 0 {
				panic("internal error: paren underflow")
			}
			cur.Append(t)
			i++

		case t.Kind == token.Kind(',') && depth == 0:
			return cur, i + 1, token.Kind(',')

		default:
			cur.Append(t)
			i++
		}
	}
}

// finalizeArgument normalizes a collected argument: an empty argument
// becomes the single EMPTY_ARG sentinel (invariant 6), and the first
// real token's LeadingWhitespace is cleared since it sat right after
// '(' or ','.
func finalizeArgument(cur *token.Array) *token.Array {
	if cur.Len() == 0 {
		cur.Append(token.Token{Kind: token.EMPTY_ARG})
		return cur
	}
	s := cur.Slice()
	s[0].LeadingWhitespace = 0
	return cur
}
