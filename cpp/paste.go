// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"github.com/cznic/ppmacro/internal/lexer"
	"github.com/cznic/ppmacro/internal/token"
)

// paste is component D, PasteOperator: it concatenates the spellings
// of l and r (no separator) and re-tokenizes the result, requiring
// the tokenizer collaborator to consume the whole buffer producing
// exactly one token (spec.md 4.D). If either operand is EMPTY_ARG the
// other is returned unchanged, per the "## with an empty operand
// vanishes" rule threaded through from subst.go's paste pass.
func (c *Context) paste(l, r token.Token) token.Token {
	if l.Kind == token.EMPTY_ARG {
		return r
	}
	if r.Kind == token.EMPTY_ARG {
		return l
	}

	buf := []byte(token.Spelling(l) + token.Spelling(r))
	t, err := lexer.TokenizeOne(buf)
	if err != nil {
		c.diag.Errorf("invalid token resulting from pasting %q and %q", token.Spelling(l), token.Spelling(r))
		return l
	}
	t.LeadingWhitespace = l.LeadingWhitespace
	return t
}
