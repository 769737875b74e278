// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

import "errors"

var (
	// ErrClosed is returned by every operation on a closed Display.
	ErrClosed = errors.New("mono: display is closed")
	// ErrLockTimeout is returned when the display lock could not be acquired
	// within Opts.LockTimeout.
	ErrLockTimeout = errors.New("mono: timed out waiting for the display lock")
	// ErrInvalidArgument wraps argument validation failures.
	ErrInvalidArgument = errors.New("mono: invalid argument")
	// ErrNoFont is returned when text is written before a font is selected.
	ErrNoFont = errors.New("mono: no font selected")
)
