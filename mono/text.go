// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

import (
	"fmt"
	"image"

	"github.com/GermanBionicSystems/oledfb/font"
)

// Axis is an optional cursor coordinate.
type Axis struct {
	v   int
	set bool
}

// Keep leaves a cursor coordinate unchanged.
var Keep = Axis{}

// At sets a cursor coordinate to v. A negative v is the same as Keep.
func At(v int) Axis {
	if v < 0 {
		return Keep
	}
	return Axis{v: v, set: true}
}

// Value returns the coordinate and whether it is set.
func (a Axis) Value() (int, bool) {
	return a.v, a.set
}

func (a Axis) String() string {
	if !a.set {
		return "Keep"
	}
	return fmt.Sprintf("At(%d)", a.v)
}

// SetCursor moves the text cursor. Each axis is either At a coordinate
// inside the display or Keep.
func (d *Display) SetCursor(x, y Axis) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	if x.set && x.v >= d.rect.Max.X {
		return fmt.Errorf("%w: cursor x %d outside of %s", ErrInvalidArgument, x.v, d.rect)
	}
	if y.set && y.v >= d.rect.Max.Y {
		return fmt.Errorf("%w: cursor y %d outside of %s", ErrInvalidArgument, y.v, d.rect)
	}
	if x.set {
		d.cursor.X = x.v
	}
	if y.set {
		d.cursor.Y = y.v
	}
	return nil
}

// Cursor returns the text cursor, the top left corner of the next glyph.
func (d *Display) Cursor() (image.Point, error) {
	if err := d.lock(); err != nil {
		return image.Point{}, err
	}
	defer d.unlock()
	return d.cursor, nil
}

// SetFont selects the font used by WriteText and DrawProgressBar.
//
// The font is only referenced; it must not be modified while selected. The
// line height is taken from the font's space code.
func (d *Display) SetFont(f *font.Font) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	d.font = f
	d.lineHeight = 0
	if f != nil {
		d.lineHeight = f.LineHeight()
	}
	return nil
}

// Font returns the selected font, nil if none.
func (d *Display) Font() (*font.Font, error) {
	if err := d.lock(); err != nil {
		return nil, err
	}
	defer d.unlock()
	return d.font, nil
}

// WriteText draws text at the cursor with the selected font, then shows the
// frame.
//
// Glyphs are XORed into the frame buffer and the cursor advances by the glyph
// width. A '\n' or a glyph that would cross the right edge moves the cursor
// to the start of the next line. Text stops at the first 0 byte. Codes
// without a glyph are skipped. Nothing scrolls: text below the display is
// clipped.
func (d *Display) WriteText(text string) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	return d.writeTextLocked(text)
}

func (d *Display) writeTextLocked(text string) error {
	if d.font == nil {
		return ErrNoFont
	}
	for i := 0; i < len(text) && text[i] != 0; {
		c := text[i]
		g, ok := d.font.Glyph(c)
		// A glyph wider than the display is drawn clipped at the start of a
		// line instead of wrapping forever.
		if c == '\n' || (d.cursor.X > 0 && d.cursor.X+d.font.WidthOf(c) > d.rect.Max.X) {
			d.cursor.X = 0
			d.cursor.Y += d.lineHeight
			if c == '\n' {
				i++
			}
			continue
		}
		if ok {
			d.putBitmapLocked(g.Bitmap, g.Width, g.Height, XOR, d.cursor.X, d.cursor.Y)
			d.cursor.X += g.Width
		}
		i++
	}
	return d.showLocked()
}
