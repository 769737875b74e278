// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

import (
	"bytes"
	"testing"
)

func TestDrawPixelAddressing(t *testing.T) {
	const w, h = 24, 16
	d, _ := newDisplay(t, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			before, _ := d.Bytes()
			if err := d.DrawPixel(x, y, true); err != nil {
				t.Fatal(err)
			}
			after, _ := d.Bytes()
			i := (y/8)*w + x
			if after[i]&(1<<uint(y%8)) == 0 {
				t.Fatalf("(%d, %d): bit %d of byte %d is off", x, y, y%8, i)
			}
			if after[i] != before[i]|1<<uint(y%8) {
				t.Fatalf("(%d, %d): other bits of byte %d changed", x, y, i)
			}
			after[i] = before[i]
			if !bytes.Equal(before, after) {
				t.Fatalf("(%d, %d): other bytes changed", x, y)
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if err := d.DrawPixel(x, y, false); err != nil {
				t.Fatal(err)
			}
			b, _ := d.Bytes()
			if b[(y/8)*w+x]&(1<<uint(y%8)) != 0 {
				t.Fatalf("(%d, %d) still on", x, y)
			}
		}
	}
	b, _ := d.Bytes()
	if !bytes.Equal(b, make([]byte, w*h/8)) {
		t.Fatal("frame not empty")
	}
}

func TestDrawPixelClipping(t *testing.T) {
	d, _ := newDisplay(t, 16, 8)
	if err := d.DrawRectangle(0, 0, 16, 8, Fill); err != nil {
		t.Fatal(err)
	}
	if err := d.DrawPixel(5, 5, false); err != nil {
		t.Fatal(err)
	}
	before, _ := d.Bytes()
	for _, p := range [][2]int{{-1, 0}, {16, 0}, {0, -1}, {0, 8}, {-100, -100}, {1000, 3}} {
		for _, on := range []bool{true, false} {
			if err := d.DrawPixel(p[0], p[1], on); err != nil {
				t.Fatal(err)
			}
		}
	}
	after, _ := d.Bytes()
	if !bytes.Equal(before, after) {
		t.Fatal("out of range pixels modified the frame")
	}
}

func TestClear(t *testing.T) {
	d, r := newDisplay(t, 16, 16)
	if err := d.DrawRectangle(0, 0, 16, 16, Fill); err != nil {
		t.Fatal(err)
	}
	if err := d.Clear(); err != nil {
		t.Fatal(err)
	}
	if n := len(lit(d)); n != 0 {
		t.Fatalf("%d pixels lit after Clear()", n)
	}
	if len(r.frames) != 0 {
		t.Fatal("Clear() must not show the frame")
	}
}
