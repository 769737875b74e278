// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

func TestFromFace(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, ' ', '~')
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Validate(); err != nil {
		t.Fatal(err)
	}
	if f.Width != 7 || f.Height != 13 || f.Pages() != 2 {
		t.Fatalf("got %s with %d pages", f, f.Pages())
	}
	if f.LineHeight() != 13 {
		t.Fatalf("LineHeight() = %d", f.LineHeight())
	}
	sp, _ := f.Glyph(' ')
	for i, b := range sp.Bitmap {
		if b != 0 {
			t.Fatalf("space has ink at byte %d", i)
		}
	}
	a, _ := f.Glyph('A')
	ink := 0
	for _, b := range a.Bitmap {
		ink += popcount(b)
	}
	if ink == 0 {
		t.Fatal("'A' has no ink")
	}
}

func TestFromFaceRange(t *testing.T) {
	if _, err := FromFace(basicfont.Face7x13, 'z', 'a'); err == nil {
		t.Fatal("inverted range accepted")
	}
	f, err := FromFace(basicfont.Face7x13, '0', '9')
	if err != nil {
		t.Fatal(err)
	}
	if f.Space != '0' {
		t.Fatalf("Space = %q", f.Space)
	}
}

func TestParseTTF(t *testing.T) {
	f, err := ParseTTF(gomono.TTF, 10, ' ', '~')
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Validate(); err != nil {
		t.Fatal(err)
	}
	if f.Width <= 0 || f.Height <= 8 {
		t.Fatalf("unexpected cell %s", f)
	}
	if _, err := ParseTTF([]byte("not a font"), 10, ' ', '~'); err == nil {
		t.Fatal("invalid TTF accepted")
	}
}

// barFont is a tinyfont font whose glyphs are a single column as tall as the
// cell, 3 pixels apart.
type barFont struct{ g barGlyph }

type barGlyph struct{ r rune }

func (g *barGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	if g.r == ' ' {
		return
	}
	for row := int16(0); row < 9; row++ {
		display.SetPixel(x, y-7+row, c)
	}
}

func (g *barGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{Rune: g.r, Width: 1, Height: 9, XAdvance: 3, YOffset: -7}
}

func (f *barFont) GetYAdvance() uint8 { return 10 }

func (f *barFont) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func TestFromTinyfont(t *testing.T) {
	f, err := FromTinyfont(&barFont{}, ' ', '#')
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 3 || f.Height != 9 || f.Pages() != 2 {
		t.Fatalf("got %s", f)
	}
	sp, _ := f.Glyph(' ')
	for _, b := range sp.Bitmap {
		if b != 0 {
			t.Fatalf("space has ink: %v", sp.Bitmap)
		}
	}
	g, _ := f.Glyph('!')
	// Column 0 is lit on all 9 rows: 8 in the first band, 1 in the second.
	want := []byte{0xff, 0, 0, 0x01, 0, 0}
	for i := range want {
		if g.Bitmap[i] != want[i] {
			t.Fatalf("Glyph('!') = %v, want %v", g.Bitmap, want)
		}
	}
	if _, err := FromTinyfont(&barFont{}, 'b', 'a'); err == nil {
		t.Fatal("inverted range accepted")
	}
}

func popcount(b byte) int {
	n := 0
	for ; b != 0; b &= b - 1 {
		n++
	}
	return n
}
