// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview renders a monochrome frame as an enlarged color image, the
// way it looks on an OLED panel.
package preview

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// DefaultOpts renders white dots on black, 4x the panel size.
var DefaultOpts = Opts{
	Scale: 4,
	On:    color.White,
	Off:   color.Black,
}

// Opts defines the rendering.
type Opts struct {
	// Scale is the size in pixels of one panel dot. Values below 1 mean 1.
	Scale int
	// Gap is the dark space left between dots. It is ignored unless smaller
	// than Scale.
	Gap int
	// On and Off are the colors of lit and dark dots.
	On, Off color.Color
}

// Render returns img enlarged by opts.Scale. A pixel is lit when its gray
// level is at least half the range.
func Render(img image.Image, opts *Opts) image.Image {
	if opts == nil {
		opts = &DefaultOpts
	}
	s := opts.Scale
	if s < 1 {
		s = 1
	}
	dot := s
	if opts.Gap > 0 && opts.Gap < s {
		dot = s - opts.Gap
	}
	on, off := opts.On, opts.Off
	if on == nil {
		on = color.White
	}
	if off == nil {
		off = color.Black
	}

	r := img.Bounds()
	dc := gg.NewContext(r.Dx()*s, r.Dy()*s)
	dc.SetColor(off)
	dc.Clear()
	dc.SetColor(on)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if lit(img.At(x, y)) {
				dc.DrawRectangle(float64((x-r.Min.X)*s), float64((y-r.Min.Y)*s), float64(dot), float64(dot))
			}
		}
	}
	dc.Fill()
	return dc.Image()
}

// SavePNG renders img and writes it to path.
func SavePNG(path string, img image.Image, opts *Opts) error {
	if img == nil {
		return errors.New("preview: nil image")
	}
	return gg.SavePNG(path, Render(img, opts))
}

func lit(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= 0x80
}
