// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// FromTinyfont converts the codes first to last of a tinyfont font into a
// fixed pitch font.
//
// The cell is as wide as the largest XAdvance and as tall as the largest
// ascent plus the largest descent found in the range.
func FromTinyfont(tf tinyfont.Fonter, first, last byte) (*Font, error) {
	if first > last {
		return nil, fmt.Errorf("font: first code %#x is after last code %#x", first, last)
	}
	width, ascent, descent := 0, 0, 0
	for c := int(first); c <= int(last); c++ {
		info := tf.GetGlyph(rune(c)).Info()
		if w := int(info.XAdvance); w > width {
			width = w
		}
		if a := -int(info.YOffset); a > ascent {
			ascent = a
		}
		if d := int(info.Height) + int(info.YOffset); d > descent {
			descent = d
		}
	}
	height := ascent + descent
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("font: tinyfont has an empty cell %dx%d", width, height)
	}
	f := &Font{Pitch: Fixed, First: first, Last: last, Space: ' ', Width: width, Height: height}
	if !f.Contains(f.Space) {
		f.Space = first
	}
	cv := &canvas{img: image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))}
	f.Data = make([]byte, 0, (int(last-first)+1)*len(cv.img.Pix))
	for c := int(first); c <= int(last); c++ {
		for i := range cv.img.Pix {
			cv.img.Pix[i] = 0
		}
		tinyfont.DrawChar(cv, tf, 0, int16(ascent), rune(c), color.RGBA{R: 255, G: 255, B: 255, A: 255})
		f.Data = append(f.Data, cv.img.Pix...)
	}
	return f, nil
}

// canvas is the glyph cell tinyfont draws into.
type canvas struct {
	img *image1bit.VerticalLSB
}

func (c *canvas) Size() (x, y int16) {
	r := c.img.Bounds()
	return int16(r.Dx()), int16(r.Dy())
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(c.img.Rect) {
		return
	}
	c.img.SetBit(int(x), int(y), image1bit.BitModel.Convert(col).(image1bit.Bit))
}

func (c *canvas) Display() error {
	return nil
}

var _ drivers.Displayer = &canvas{}
