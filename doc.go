// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppmacro implements the macro expansion engine of a C
// preprocessor: a table of object-like and function-like macro
// definitions, and a rewriter that recursively replaces identifiers
// bound to macros with their argument-substituted, stringified and
// pasted replacement lists.
//
// The engine is single-threaded and non-reentrant; see cpp.Context.
package ppmacro
