// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"github.com/cznic/ppmacro/internal/intern"
	"github.com/cznic/ppmacro/internal/token"
)

// Kind distinguishes object-like from function-like macros.
type Kind int8

const (
	ObjectLike Kind = iota
	FunctionLike
)

// Macro is a stored macro definition, per spec.md's data model (3).
// Once inserted into a Table a Macro is immutable, with one exception:
// the __FILE__ and __LINE__ builtins rewrite Replacement's token 0 on
// every lookup (see builtins.go).
type Macro struct {
	Name        intern.String
	Kind        Kind
	Params      uint32      // arity; 0 for ObjectLike
	Replacement *token.Array // body; may contain PARAM tokens

	// Stringify caches whether Replacement contains a "# PARAM" pair.
	Stringify bool

	// IsFile and IsLine mark the two builtins whose Replacement[0] is
	// rewritten on every lookup instead of being truly immutable.
	IsFile bool
	IsLine bool
}

func newMacro(name intern.String, repl *token.Array) *Macro {
	m := &Macro{Name: name, Replacement: repl}
	m.Stringify = computeStringify(repl)
	return m
}

func computeStringify(repl *token.Array) bool {
	s := repl.Slice()
	for i := 0; i+1 < len(s); i++ {
		if s[i].Kind == token.Kind('#') && s[i+1].Kind == token.PARAM {
			return true
		}
	}
	return false
}

// identical reports whether m and other are equal per spec.md 4.J:
// same Kind, same Params, same Name, same Replacement length, and
// every token pairwise Equal.
func (m *Macro) identical(other *Macro) bool {
	if m.Kind != other.Kind || m.Params != other.Params || m.Name != other.Name {
		return false
	}
	return token.EqualSequence(m.Replacement.Slice(), other.Replacement.Slice())
}
