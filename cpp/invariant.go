// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import "github.com/cznic/ppmacro/internal/token"

// validate enforces the data-model invariants of spec.md 3 before a
// Macro is handed to define: every PARAM payload is in range, an
// object-like macro carries no PARAM tokens, and "##" never sits at
// the very start or end of the replacement list (the "Misplaced ##"
// fatal error of spec.md 7).
func (c *Context) validate(m *Macro) bool {
	s := m.Replacement.Slice()

	if len(s) != 0 && (s[0].Kind == token.TOKEN_PASTE || s[len(s)-1].Kind == token.TOKEN_PASTE) {
		c.diag.Errorf("%s: '##' cannot appear at the start or end of a macro definition", m.Name)
		return false
	}

	for _, t := range s {
		if t.Kind != token.PARAM {
			continue
		}
		if m.Kind == ObjectLike {
			c.diag.Errorf("%s: object-like macro body cannot reference parameters", m.Name)
			return false
		}
		if uint32(t.Param) >= m.Params {
			c.diag.Errorf("%s: parameter index %d out of range for %d parameters", m.Name, t.Param, m.Params)
			return false
		}
	}

	return true
}
