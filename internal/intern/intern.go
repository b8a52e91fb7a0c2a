// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intern provides the String collaborator: an interned,
// immutable byte sequence with O(1) equality, backed by the cznic/xc
// string dictionary the same way internal/c99 uses its package-level
// dict.
package intern

import "github.com/cznic/xc"

var dict = xc.Dict

// String is an interned identifier. The zero value is the empty string.
type String int

// Empty is the interned empty string.
var Empty = New("")

// New interns s and returns its handle.
func New(s string) String { return String(dict.SID(s)) }

// NewBytes interns b and returns its handle. b is not retained.
func NewBytes(b []byte) String { return String(dict.ID(b)) }

// Bytes returns the raw bytes s was interned from.
func (s String) Bytes() []byte { return dict.S(int(s)) }

// String implements fmt.Stringer.
func (s String) String() string { return string(s.Bytes()) }

// IsEmpty reports whether s interns the empty string.
func (s String) IsEmpty() bool { return s == Empty }
