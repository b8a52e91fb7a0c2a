// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"github.com/cznic/ppmacro/internal/intern"
	"github.com/cznic/ppmacro/internal/token"
)

// LexerState is the external lexer-state collaborator (spec.md 6):
// the current file path and line, consulted on every lookup of
// __FILE__/__LINE__ (spec.md 4.H).
type LexerState interface {
	CurrentFilePath() string
	CurrentFileLine() int
}

// Context bundles the process-wide state spec.md 9 calls out
// (MacroTable, TokenArrayPool, the disabling stack) behind a single
// owning value, as the design note there recommends, instead of
// package-level globals. One Context serves one translation unit and
// is not safe for concurrent use (spec.md 5).
type Context struct {
	pool      *token.Pool
	table     *Table
	disabling map[intern.String]int
	diag      Diagnostics
	lexer     LexerState
}

// NewContext constructs a Context. diag and lexer may be nil, in
// which case NewStderrDiagnostics and a LexerState always reporting
// ("", 0) are used.
func NewContext(diag Diagnostics, lexer LexerState) *Context {
	if diag == nil {
		diag = NewStderrDiagnostics()
	}
	if lexer == nil {
		lexer = nullLexerState{}
	}
	pool := token.NewPool()
	return &Context{
		pool:      pool,
		table:     newTable(pool),
		disabling: map[intern.String]int{},
		diag:      diag,
		lexer:     lexer,
	}
}

type nullLexerState struct{}

func (nullLexerState) CurrentFilePath() string { return "" }
func (nullLexerState) CurrentFileLine() int    { return 0 }

// Close is the Lifecycle teardown (spec.md 3 "Lifecycle", 4.I): it
// empties the disabling stack, destroys the macro table (pooling
// every Replacement), then discards the pool's cached arrays. The
// driver calls this once, at translation-unit end, mirroring the
// teacher's process-exit cleanup registration since Go has no atexit.
func (c *Context) Close() {
	for k := range c.disabling {
		delete(c.disabling, k)
	}
	c.table.destroy()
	c.pool.Destroy()
}

func (c *Context) disable(name intern.String)    { c.disabling[name]++ }
func (c *Context) enable(name intern.String) {
	c.disabling[name]--
	if c.disabling[name] <= 0 {
		delete(c.disabling, name)
	}
}
func (c *Context) isDisabled(name intern.String) bool { return c.disabling[name] > 0 }

// GetTokenArray and ReleaseTokenArray are the pool handles spec.md 6
// exports for collaborators that also need transient buffers.
func (c *Context) GetTokenArray() *token.Array        { return c.pool.Acquire() }
func (c *Context) ReleaseTokenArray(a *token.Array)   { c.pool.Release(a) }

// TokCmp implements the tok_cmp external interface of spec.md 6.
func (c *Context) TokCmp(a, b token.Token) int { return token.Cmp(a, b) }

// Undef deletes name's definition, if any (spec.md 6).
func (c *Context) Undef(name intern.String) { c.table.remove(name) }

// Definition looks up name, dynamically refreshing __FILE__/__LINE__
// bodies before returning, per spec.md 4.H and 6.
func (c *Context) Definition(name intern.String) (*Macro, bool) {
	m, ok := c.table.lookup(name)
	if !ok {
		return nil, false
	}
	c.refreshBuiltin(m)
	return m, true
}

// Define is the "define(Macro)" external interface of spec.md 6: the
// engine takes ownership of repl. Kept equal to an existing
// definition, the call is a no-op (repl is pooled); if it differs,
// Diagnostics.Errorf is called (fatal), per invariant 5 and the
// "Redefinition conflict" error of spec.md 7.
func (c *Context) Define(name intern.String, kind Kind, params uint32, repl *token.Array) {
	m := newMacro(name, repl)
	m.Kind = kind
	m.Params = params
	c.define(m)
}

// DefineObject installs an object-like macro.
func (c *Context) DefineObject(name intern.String, repl *token.Array) {
	c.Define(name, ObjectLike, 0, repl)
}

// DefineFunction installs a function-like macro of the given arity.
func (c *Context) DefineFunction(name intern.String, params uint32, repl *token.Array) {
	c.Define(name, FunctionLike, params, repl)
}

func (c *Context) define(m *Macro) {
	if !c.validate(m) {
		c.pool.Release(m.Replacement)
		return
	}
	if ex, ok := c.table.lookup(m.Name); ok {
		if ex.identical(m) {
			c.pool.Release(m.Replacement)
			return
		}
		c.diag.Errorf("%s: redefinition does not match: old %q, new %q",
			m.Name, dumpTokens(ex.Replacement.Slice()), dumpTokens(m.Replacement.Slice()))
		return
	}
	c.table.insert(m)
}
