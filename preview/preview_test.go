// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func frame() *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.SetBit(1, 2, image1bit.On)
	img.SetBit(7, 7, image1bit.On)
	return img
}

func isOn(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestRender(t *testing.T) {
	out := Render(frame(), &Opts{Scale: 3})
	if got := out.Bounds().Size(); got != (image.Point{24, 24}) {
		t.Fatalf("size %v", got)
	}
	for _, line := range []struct {
		x, y int
		on   bool
	}{
		{3, 6, true},
		{5, 8, true},
		{4, 7, true},
		{2, 7, false},
		{6, 7, false},
		{22, 22, true},
		{0, 0, false},
		{12, 12, false},
	} {
		if got := isOn(out.At(line.x, line.y)); got != line.on {
			t.Errorf("(%d,%d) = %t", line.x, line.y, got)
		}
	}
}

func TestRenderGap(t *testing.T) {
	out := Render(frame(), &Opts{Scale: 4, Gap: 1})
	if !isOn(out.At(4, 8)) || !isOn(out.At(6, 10)) {
		t.Fatal("dot not drawn")
	}
	if isOn(out.At(7, 11)) {
		t.Fatal("gap drawn")
	}
}

func TestRenderDefaults(t *testing.T) {
	out := Render(frame(), nil)
	if got := out.Bounds().Dx(); got != 8*DefaultOpts.Scale {
		t.Fatalf("width %d", got)
	}
	out = Render(frame(), &Opts{})
	if got := out.Bounds().Dx(); got != 8 {
		t.Fatalf("width %d", got)
	}
	if !isOn(out.At(1, 2)) || isOn(out.At(2, 1)) {
		t.Fatal("unscaled render differs from the frame")
	}
}

func TestSavePNG(t *testing.T) {
	p := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(p, frame(), &Opts{Scale: 2}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(p)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != (image.Point{16, 16}) {
		t.Fatalf("size %v", got)
	}
	if err := SavePNG(p, nil, nil); err == nil {
		t.Fatal("nil image accepted")
	}
}
