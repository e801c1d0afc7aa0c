// Copyright 2016 The Gocontact Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"github.com/cpmech/gosl/io"
)

// ConfigError indicates conflicting or missing solver inputs; e.g. both
// offset and external force prescribed, or a height field whose shape does
// not match the operator. Configuration errors are reported eagerly by
// NewSolver, before any iteration runs
type ConfigError struct {
	Msg string
}

// Error returns the message
func (e *ConfigError) Error() string { return e.Msg }

// confErr returns a new ConfigError with a formatted message
func confErr(msg string, prm ...interface{}) *ConfigError {
	return &ConfigError{Msg: io.Sf(msg, prm...)}
}

// BreakdownError indicates that a non-finite gradient norm or penetration
// was encountered mid-iteration. The solve aborts immediately; the solver
// state is not meaningful afterwards
type BreakdownError struct {
	It  int // iteration at which the breakdown occurred
	Msg string
}

// Error returns the message
func (e *BreakdownError) Error() string {
	return io.Sf("numerical breakdown at iteration %d: %s", e.It, e.Msg)
}
