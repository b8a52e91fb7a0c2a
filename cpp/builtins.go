// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"strconv"

	"github.com/cznic/ppmacro/internal/intern"
	"github.com/cznic/ppmacro/internal/lexer"
	"github.com/cznic/ppmacro/internal/token"
)

// Dialect selects which C dialect's builtin set RegisterBuiltinDefinitions
// installs (spec.md 4.H).
type Dialect int8

const (
	C99 Dialect = iota
	C89
)

// BuiltinOptions configures RegisterBuiltinDefinitions, playing the
// same role the teacher's Tweaks struct plays for the whole front end
// (internal/c99/c99.go), reduced to the one knob this engine's
// builtins need.
type BuiltinOptions struct {
	Dialect Dialect
}

// RegisterBuiltinDefinitions is component H: it registers the
// predefined macros spec.md 4.H lists. __FILE__ and __LINE__ are
// registered with a placeholder body slot that refreshBuiltin
// rewrites on every subsequent lookup.
func (c *Context) RegisterBuiltinDefinitions(opts BuiltinOptions) {
	c.defineBuiltinObject("__STDC__", "1")
	c.defineBuiltinObject("__STDC_HOSTED__", "1")
	c.defineBuiltinObject("__x86_64__", "1")
	c.defineBuiltinObject("__inline", "")

	switch opts.Dialect {
	case C89:
		c.defineBuiltinObject("__STDC_VERSION__", "199409L")
		c.defineBuiltinObject("__STRICT_ANSI__", "")
	default:
		c.defineBuiltinObject("__STDC_VERSION__", "199901L")
	}

	c.registerFile()
	c.registerLine()
}

func (c *Context) defineBuiltinObject(name, body string) {
	repl := c.pool.Acquire()
	repl.Append(parseBuiltinBody(body)...)
	c.table.defs[intern.New(name)] = newMacro(intern.New(name), repl)
}

func (c *Context) registerFile() {
	repl := c.pool.Acquire()
	repl.Append(token.Token{Kind: token.STRING, Str: intern.New(`""`)})
	m := newMacro(intern.New("__FILE__"), repl)
	m.IsFile = true
	c.table.defs[m.Name] = m
}

func (c *Context) registerLine() {
	repl := c.pool.Acquire()
	repl.Append(token.Token{Kind: token.PREP_NUMBER, Str: intern.New("0")})
	m := newMacro(intern.New("__LINE__"), repl)
	m.IsLine = true
	c.table.defs[m.Name] = m
}

// refreshBuiltin implements the "dynamic __FILE__/__LINE__ rebinding"
// design note (spec.md 9): a read-through hook on lookup that
// overwrites Replacement[0] in place, the one mutable cell a stored
// Macro has.
func (c *Context) refreshBuiltin(m *Macro) {
	switch {
	case m.IsFile:
		s := m.Replacement.Slice()
		if len(s) > 0 {
			ws := s[0].LeadingWhitespace
			s[0] = token.Token{
				Kind:              token.STRING,
				Str:               intern.New(strconv.Quote(c.lexer.CurrentFilePath())),
				LeadingWhitespace: ws,
			}
		}
	case m.IsLine:
		s := m.Replacement.Slice()
		if len(s) > 0 {
			ws := s[0].LeadingWhitespace
			s[0] = token.Token{
				Kind:              token.PREP_NUMBER,
				Str:               intern.New(strconv.Itoa(c.lexer.CurrentFileLine())),
				LeadingWhitespace: ws,
			}
		}
	}
}

// parseBuiltinBody parses a builtin's literal body, the "tiny helper
// that treats @ as a PARAM placeholder and forwards other runs of
// characters to the tokenizer" of spec.md 4.H. None of the C89/C99
// builtins actually use '@', but the helper stays general so a future
// parameterized builtin doesn't need a second code path.
func parseBuiltinBody(src string) []token.Token {
	var out []token.Token
	param := 0
	i := 0
	for i < len(src) {
		if src[i] == '@' {
			out = append(out, token.Token{Kind: token.PARAM, Param: param})
			param++
			i++
			continue
		}
		j := i
		for j < len(src) && src[j] != '@' {
			j++
		}
		toks, err := lexer.TokenizeAll([]byte(src[i:j]))
		if err != nil {
			panic(err)
		}
		out = append(out, toks...)
		i = j
	}
	return out
}
