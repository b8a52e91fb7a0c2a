// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"testing"

	"github.com/cznic/ppmacro/internal/intern"
	"github.com/cznic/ppmacro/internal/token"
)

func TestTableInsertLookupRemove(t *testing.T) {
	pool := token.NewPool()
	tbl := newTable(pool)

	name := intern.New("FOO")
	m := newMacro(name, pool.Acquire())
	if got := tbl.insert(m); got != m {
		t.Fatal("insert of a fresh name did not return the same Macro")
	}

	got, ok := tbl.lookup(name)
	if !ok || got != m {
		t.Fatal("lookup did not return the inserted Macro")
	}

	tbl.remove(name)
	if _, ok := tbl.lookup(name); ok {
		t.Fatal("lookup succeeded after remove")
	}
}

func TestTableInsertExistingIsNoOp(t *testing.T) {
	pool := token.NewPool()
	tbl := newTable(pool)

	name := intern.New("FOO")
	first := newMacro(name, pool.Acquire())
	tbl.insert(first)

	second := newMacro(name, pool.Acquire())
	got := tbl.insert(second)
	if got != first {
		t.Fatal("insert of a duplicate name should return the pre-existing entry")
	}
}

func TestTableDestroyClearsDefs(t *testing.T) {
	pool := token.NewPool()
	tbl := newTable(pool)

	tbl.insert(newMacro(intern.New("A"), pool.Acquire()))
	tbl.insert(newMacro(intern.New("B"), pool.Acquire()))
	tbl.destroy()

	if _, ok := tbl.lookup(intern.New("A")); ok {
		t.Fatal("lookup succeeded after destroy")
	}
}

func TestContextRedefinitionIdentical(t *testing.T) {
	c, rec := newTestContext(t, nil)
	defineObject(t, c, "A", "42")
	defineObject(t, c, "A", "42")
	if rec.fired() {
		t.Fatalf("identical redefinition should not diagnose, got %v", rec.msgs)
	}
}

func TestContextRedefinitionConflict(t *testing.T) {
	c, rec := newTestContext(t, nil)
	defineObject(t, c, "A", "42")
	defineObject(t, c, "A", "43")
	if !rec.fired() {
		t.Fatal("conflicting redefinition should diagnose")
	}
}

func TestContextUndef(t *testing.T) {
	c, _ := newTestContext(t, nil)
	defineObject(t, c, "A", "42")
	c.Undef(intern.New("A"))
	if _, ok := c.Definition(intern.New("A")); ok {
		t.Fatal("Definition found A after Undef")
	}
}
