// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import (
	"errors"
	"fmt"
)

// Pitch tells how glyph widths are stored.
type Pitch uint8

const (
	// Fixed pitch: every glyph has the font's Width.
	Fixed Pitch = 0
	// Variable pitch: the first byte of each glyph record is its width.
	//
	// Rendering variable pitch glyphs is not supported; only their width can be
	// queried.
	Variable Pitch = 1
)

func (p Pitch) String() string {
	switch p {
	case Fixed:
		return "Fixed"
	case Variable:
		return "Variable"
	default:
		return fmt.Sprintf("Pitch(%d)", uint8(p))
	}
}

// Font is a read-only bitmap font covering the codes First to Last
// inclusive.
//
// Glyph records use the same layout as the display memory: horizontal bands
// of 8 rows, one byte per column, LSB at the top of the band. A fixed pitch
// record is Width bytes per band and Pages() bands.
//
// A Font is never modified by this module; it can be shared by any number of
// displays.
type Font struct {
	Pitch Pitch
	// Data is the fixed pitch glyph table.
	Data []byte
	// Glyphs is the variable pitch table, one record per code.
	Glyphs [][]byte
	// First and Last are the inclusive range of codes covered.
	First, Last byte
	// Space is the code used to derive the representative line height.
	Space byte
	// Width and Height are the glyph size in pixels. Width is ignored for
	// variable pitch fonts.
	Width, Height int
}

// Glyph is a single character bitmap, as found in the font table.
type Glyph struct {
	// Bitmap is Width bytes per 8-row band, ceil(Height/8) bands.
	Bitmap []byte
	Width  int
	Height int
}

// Pages returns the number of 8-row bands of each glyph.
func (f *Font) Pages() int {
	return (f.Height + 7) / 8
}

// Contains returns true if code is in the font's range.
func (f *Font) Contains(code byte) bool {
	return code >= f.First && code <= f.Last
}

// Glyph returns the bitmap for code.
//
// It returns false when the code is outside the font, when the font is
// variable pitch or when the table is too short to hold the glyph.
func (f *Font) Glyph(code byte) (Glyph, bool) {
	if !f.Contains(code) || f.Pitch != Fixed {
		return Glyph{}, false
	}
	size := f.Width * f.Pages()
	start := int(code-f.First) * size
	if size <= 0 || start+size > len(f.Data) {
		return Glyph{}, false
	}
	return Glyph{Bitmap: f.Data[start : start+size : start+size], Width: f.Width, Height: f.Height}, true
}

// WidthOf returns the width of code in pixels, 0 if it is not covered.
func (f *Font) WidthOf(code byte) int {
	if !f.Contains(code) {
		return 0
	}
	if f.Pitch == Variable {
		i := int(code - f.First)
		if i >= len(f.Glyphs) || len(f.Glyphs[i]) == 0 {
			return 0
		}
		return int(f.Glyphs[i][0])
	}
	return f.Width
}

// HeightOf returns the height of code in pixels, 0 if it is not covered.
//
// Height is global to the font for both pitches.
func (f *Font) HeightOf(code byte) int {
	if !f.Contains(code) {
		return 0
	}
	return f.Height
}

// LineHeight returns the height of the space code, or the font height if the
// space code is not covered.
func (f *Font) LineHeight() int {
	if h := f.HeightOf(f.Space); h != 0 {
		return h
	}
	return f.Height
}

// Metrics returns the total width and the tallest character of text.
//
// Processing stops at the end of the string or at the first 0 byte.
func (f *Font) Metrics(text string) (width, height int) {
	for i := 0; i < len(text) && text[i] != 0; i++ {
		width += f.WidthOf(text[i])
		if h := f.HeightOf(text[i]); h > height {
			height = h
		}
	}
	return width, height
}

// Validate checks the font record for consistency.
func (f *Font) Validate() error {
	if f.First > f.Last {
		return fmt.Errorf("font: first code %#x is after last code %#x", f.First, f.Last)
	}
	if f.Height <= 0 {
		return fmt.Errorf("font: invalid height %d", f.Height)
	}
	n := int(f.Last-f.First) + 1
	switch f.Pitch {
	case Fixed:
		if f.Width <= 0 {
			return fmt.Errorf("font: invalid width %d", f.Width)
		}
		if want := n * f.Width * f.Pages(); len(f.Data) < want {
			return fmt.Errorf("font: glyph table is %d bytes, expected %d", len(f.Data), want)
		}
	case Variable:
		if len(f.Glyphs) < n {
			return fmt.Errorf("font: %d glyph records, expected %d", len(f.Glyphs), n)
		}
	default:
		return errors.New("font: unknown pitch " + f.Pitch.String())
	}
	return nil
}

func (f *Font) String() string {
	return fmt.Sprintf("Font{%s %dx%d %#x-%#x}", f.Pitch, f.Width, f.Height, f.First, f.Last)
}
