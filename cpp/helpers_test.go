// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"fmt"
	"testing"

	"github.com/cznic/ppmacro/internal/intern"
	"github.com/cznic/ppmacro/internal/lexer"
	"github.com/cznic/ppmacro/internal/token"
)

// fakeLexerState is a mutable (file, line) LexerState stand-in for
// driving __FILE__/__LINE__ in tests; tests hold the pointer and
// mutate line between calls to Expand to exercise the dynamic
// refresh of builtin definitions.
type fakeLexerState struct {
	file string
	line int
}

func (f *fakeLexerState) CurrentFilePath() string { return f.file }
func (f *fakeLexerState) CurrentFileLine() int    { return f.line }

// newTestContext returns a Context whose Diagnostics records every
// Errorf call instead of exiting, so tests can assert on fatal
// error paths.
func newTestContext(t *testing.T, ls LexerState) (*Context, *recordingDiagnostics) {
	t.Helper()
	rec := &recordingDiagnostics{}
	if ls == nil {
		ls = &fakeLexerState{file: "test.c", line: 1}
	}
	return NewContext(rec, ls), rec
}

func mustTokenize(t *testing.T, src string) ([]token.Token, error) {
	t.Helper()
	return lexer.TokenizeAll([]byte(src))
}

type recordingDiagnostics struct {
	msgs []string
}

func (r *recordingDiagnostics) Errorf(format string, args ...interface{}) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *recordingDiagnostics) fired() bool { return len(r.msgs) != 0 }

// mustBody tokenizes src and rewrites any IDENTIFIER matching a name
// in params into a PARAM token at that name's index, standing in for
// the directive layer's argument binding (out of scope here; spec.md
// 1). "##" is already recognized by the tokenizer as TOKEN_PASTE.
func mustBody(t *testing.T, c *Context, params []string, src string) *token.Array {
	t.Helper()
	toks, err := lexer.TokenizeAll([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	for i, tk := range toks {
		if tk.Kind != token.IDENTIFIER {
			continue
		}
		name := tk.Str.String()
		for p, pn := range params {
			if pn == name {
				toks[i] = token.Token{Kind: token.PARAM, Param: p, LeadingWhitespace: tk.LeadingWhitespace}
				break
			}
		}
	}
	a := c.GetTokenArray()
	a.Append(toks...)
	return a
}

func defineObject(t *testing.T, c *Context, name, src string) {
	t.Helper()
	c.DefineObject(intern.New(name), mustBody(t, c, nil, src))
}

func defineFunction(t *testing.T, c *Context, name string, params []string, src string) {
	t.Helper()
	c.DefineFunction(intern.New(name), uint32(len(params)), mustBody(t, c, params, src))
}

// invoke tokenizes src (a call-site fragment) and runs Expand on it,
// returning the textual join of the result for easy comparison
// against spec.md 8's end-to-end scenarios.
func invoke(t *testing.T, c *Context, src string) string {
	t.Helper()
	toks, err := lexer.TokenizeAll([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	a := c.GetTokenArray()
	a.Append(toks...)
	c.Expand(a)
	return join(a.Slice())
}

func join(toks []token.Token) string {
	s := ""
	for i, tk := range toks {
		if i != 0 && tk.LeadingWhitespace > 0 {
			s += " "
		}
		s += token.Spelling(tk)
	}
	return s
}
