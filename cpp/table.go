// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"github.com/cznic/ppmacro/internal/intern"
	"github.com/cznic/ppmacro/internal/token"
)

// Table is component B, MacroTable: a name -> Macro map with
// insert/lookup/remove/destroy (spec.md 4.B). The redefinition check
// lives in Context.define; insert itself keeps an existing entry
// without comparing it.
type Table struct {
	defs map[intern.String]*Macro
	pool *token.Pool
}

func newTable(pool *token.Pool) *Table {
	return &Table{
		defs: make(map[intern.String]*Macro, token.TableSizeHint()),
		pool: pool,
	}
}

// lookup returns the stored Macro for name, if any.
func (t *Table) lookup(name intern.String) (*Macro, bool) {
	m, ok := t.defs[name]
	return m, ok
}

// insert stores m, returning a pointer to the stored copy. If a
// definition with the same name already exists, m is discarded (its
// Replacement released back to the pool) and the pre-existing entry
// is returned; callers distinguish the two cases by comparing the
// returned pointer against m, or by calling identical beforehand.
func (t *Table) insert(m *Macro) *Macro {
	if ex, ok := t.defs[m.Name]; ok {
		t.pool.Release(m.Replacement)
		return ex
	}
	t.defs[m.Name] = m
	return m
}

// remove deletes name's entry, if present, releasing its Replacement.
func (t *Table) remove(name intern.String) {
	if m, ok := t.defs[name]; ok {
		t.pool.Release(m.Replacement)
		delete(t.defs, name)
	}
}

// destroy pools every stored Replacement and discards the table.
func (t *Table) destroy() {
	for _, m := range t.defs {
		t.pool.Release(m.Replacement)
	}
	t.defs = nil
}
