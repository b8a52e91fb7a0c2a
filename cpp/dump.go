// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"bytes"

	"github.com/cznic/strutil"

	"github.com/cznic/ppmacro/internal/token"
)

// dumpTokens renders a token run for diagnostics, the same role
// internal/c99's toksDump/PrettyString pairing plays when a
// redefinition or paste error needs to show the offending tokens.
func dumpTokens(toks []token.Token) string {
	var b bytes.Buffer
	for i, t := range toks {
		if i != 0 && t.LeadingWhitespace > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(token.Spelling(t))
	}
	return strutil.PrettyString(b.String(), "", "", nil)
}
