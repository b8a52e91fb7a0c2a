// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import "github.com/cznic/ppmacro/internal/token"

// Expand is component G, the Rewriter: it walks arr left to right,
// and whenever it finds an identifier bound to a non-disabled macro
// (followed, for function-like macros, by '('), replaces that span
// in place with the Substituter's output and continues scanning right
// after the spliced region, which the Substituter has already rescanned
// with the macro disabled (spec.md 4.G). This is the
// "expand(&mut TokenArray)" external interface of spec.md 6.
func (c *Context) Expand(arr *token.Array) {
	i := 0
	for i < arr.Len() {
		t := arr.At(i)
		if t.Kind != token.IDENTIFIER {
			i++
			continue
		}

		m, ok := c.Definition(t.Str)
		if !ok || c.isDisabled(m.Name) {
			i++
			continue
		}

		if m.Kind == FunctionLike {
			if i+1 >= arr.Len() || arr.At(i+1).Kind != token.Kind('(') {
				i++
				continue
			}
		}

		var args []*token.Array
		end := i + 1
		if m.Kind == FunctionLike {
			args, end = c.readArguments(arr, i+2, m.Params)
		}

		expn := c.substitute(m, args)
		if expn.Len() > 0 {
			s := expn.Slice()
			s[0].LeadingWhitespace = t.LeadingWhitespace
		}
		arr.Replace(i, end, expn.Slice())
		// The expansion was already rescanned inside substitute; skip
		// over it so a self-referencing macro, re-enabled by now, is
		// not expanded again.
		i += expn.Len()
		c.pool.Release(expn)
	}
}
