// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font describes the bitmap fonts used by package mono.
//
// A Font covers a contiguous range of single byte codes. Fixed pitch fonts
// store every glyph as a page packed bitmap, the same layout as the display
// memory, so a glyph can be blitted without conversion. Variable pitch fonts
// only expose the width of their glyphs.
//
// Fonts are usually generated: FromFace rasterizes any
// golang.org/x/image/font.Face, ParseTTF loads a TrueType file and
// FromTinyfont converts a tinygo.org/x/tinyfont font.
package font
