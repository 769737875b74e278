// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mono implements an in-memory frame buffer for monochrome,
// page-addressed displays such as the SSD1306, SH1106 and SH1107 OLED
// controllers.
//
// # Memory layout
//
// The buffer is organized in horizontal pages of 8 rows. Byte
// (y/8)*width+x holds the 8 pixels of column x for the rows of page y/8, bit
// y%8 (LSB at the top) being pixel (x, y). This is the layout of the
// controller's GDDRAM and of image1bit.VerticalLSB, so the buffer can be sent
// to the panel as is.
//
// # Drawing
//
// Pixels, Bresenham lines, rectangles, progress bars, bitmaps and text are
// drawn in the buffer. Coordinates outside the display are silently clipped.
// Bitmaps and glyphs are blitted at any pixel offset with an OR or XOR
// combination; text is XORed so drawing the same string twice at the same
// place restores the previous content.
//
// # Output
//
// The display does no I/O by itself. Show, Enable and SetContrast are
// forwarded to the Transport given in Opts, for example a ssd1306.Dev, a
// termscreen.Dev or a websink.Display.
//
// # Concurrency
//
// A Display is safe for concurrent use. Every method takes the display lock
// for its whole duration; composite operations such as DrawProgressBar or
// WriteText run under a single acquisition. Waiting for the lock is bounded by
// Opts.LockTimeout.
package mono
