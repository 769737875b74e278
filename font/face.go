// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// FromFace rasterizes the codes first to last of face into a fixed pitch
// font.
//
// The cell width is the widest advance in the range and the cell height is
// the face ascent plus descent. Partially covered pixels of anti-aliased faces
// are thresholded by image1bit.BitModel.
func FromFace(face xfont.Face, first, last byte) (*Font, error) {
	if first > last {
		return nil, fmt.Errorf("font: first code %#x is after last code %#x", first, last)
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	width := 0
	for c := int(first); c <= int(last); c++ {
		if adv, ok := face.GlyphAdvance(rune(c)); ok && adv.Ceil() > width {
			width = adv.Ceil()
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("font: face has an empty cell %dx%d", width, height)
	}
	f := &Font{Pitch: Fixed, First: first, Last: last, Space: ' ', Width: width, Height: height}
	if !f.Contains(f.Space) {
		f.Space = first
	}
	cell := image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))
	d := xfont.Drawer{Dst: cell, Src: image.NewUniform(image1bit.On), Face: face}
	f.Data = make([]byte, 0, (int(last-first)+1)*len(cell.Pix))
	for c := int(first); c <= int(last); c++ {
		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		d.Dot = fixed.P(0, ascent)
		d.DrawString(string(rune(c)))
		f.Data = append(f.Data, cell.Pix...)
	}
	return f, nil
}

// ParseTTF loads a TrueType font at size points (72 DPI) and rasterizes the
// codes first to last.
func ParseTTF(data []byte, size float64, first, last byte) (*Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: xfont.HintingFull})
	defer face.Close()
	return FromFace(face, first, last)
}
