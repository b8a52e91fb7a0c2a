// Copyright 2017 The C99 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpp

import (
	"fmt"
	"os"
)

// Diagnostics is the external diagnostics sink collaborator (spec.md
// 6, 7): every error reported through it is fatal for the current
// translation unit. Modeled on internal/c99's context.err/errPos
// pair, but collapsed to this engine's single-shot, no-recovery
// contract: the default implementation exits the process. If an
// implementation's Errorf returns instead, the engine abandons the
// failing step and carries on with whatever partial result it has.
type Diagnostics interface {
	Errorf(format string, args ...interface{})
}

// stderrDiagnostics is the default Diagnostics: print to stderr and
// exit, matching spec.md 5's "Errors raised via the diagnostics
// collaborator are terminal... callers are not expected to recover."
type stderrDiagnostics struct{}

func (stderrDiagnostics) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// NewStderrDiagnostics returns the default Diagnostics implementation.
func NewStderrDiagnostics() Diagnostics { return stderrDiagnostics{} }
