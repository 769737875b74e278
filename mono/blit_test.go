// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

// bitmapPixel reads (x, y) of a packed w wide bitmap.
func bitmapPixel(bitmap []byte, w, x, y int) bool {
	return bitmap[(y/8)*w+x]&(1<<uint(y%8)) != 0
}

func randomBitmap(rnd *rand.Rand, w, h int) []byte {
	b := make([]byte, w*((h+7)/8))
	rnd.Read(b)
	return b
}

func TestPutBitmapMatchesPixels(t *testing.T) {
	const dw, dh = 24, 24
	rnd := rand.New(rand.NewSource(1))
	for h := 1; h <= 17; h++ {
		for y := -10; y < dh+2; y++ {
			for _, x := range []int{-3, 0, 7, 21} {
				w := 5
				bitmap := randomBitmap(rnd, w, h)
				d, _ := newDisplay(t, dw, dh)
				if err := d.PutBitmap(bitmap, w, h, OR, x, y); err != nil {
					t.Fatal(err)
				}
				ref, _ := newDisplay(t, dw, dh)
				for by := 0; by < h; by++ {
					for bx := 0; bx < w; bx++ {
						if bitmapPixel(bitmap, w, bx, by) {
							ref.setPixelLocked(x+bx, y+by, true)
						}
					}
				}
				if !bytes.Equal(d.buf.Pix, ref.buf.Pix) {
					t.Fatalf("h=%d at (%d, %d):\n got %v\nwant %v", h, x, y, d.buf.Pix, ref.buf.Pix)
				}
			}
		}
	}
}

func TestPutBitmapXORRestores(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for h := 1; h <= 16; h++ {
		for y := -4; y < 20; y += 3 {
			d, _ := newDisplay(t, 16, 16)
			rnd.Read(d.buf.Pix)
			before := append([]byte(nil), d.buf.Pix...)
			bitmap := randomBitmap(rnd, 6, h)
			for i := 0; i < 2; i++ {
				if err := d.PutBitmap(bitmap, 6, h, XOR, 3, y); err != nil {
					t.Fatal(err)
				}
			}
			if !bytes.Equal(before, d.buf.Pix) {
				t.Fatalf("h=%d y=%d: XOR twice didn't restore the frame", h, y)
			}
		}
	}
}

func TestPutBitmapXORToggles(t *testing.T) {
	d, _ := newDisplay(t, 8, 16)
	if err := d.DrawPixel(1, 4, true); err != nil {
		t.Fatal(err)
	}
	// 2x2 square at (1, 3) covering the lit pixel.
	if err := d.PutBitmap([]byte{0x03, 0x03}, 2, 2, XOR, 1, 3); err != nil {
		t.Fatal(err)
	}
	got := lit(d)
	if len(got) != 3 || pixel(d, 1, 4) {
		t.Fatalf("lit = %v", got)
	}
}

func TestPutBitmapORMonotonic(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		d, _ := newDisplay(t, 16, 16)
		rnd.Read(d.buf.Pix)
		before := append([]byte(nil), d.buf.Pix...)
		h := 1 + rnd.Intn(16)
		if err := d.PutBitmap(randomBitmap(rnd, 4, h), 4, h, OR, rnd.Intn(20)-2, rnd.Intn(20)-2); err != nil {
			t.Fatal(err)
		}
		for j := range before {
			if before[j]&^d.buf.Pix[j] != 0 {
				t.Fatalf("OR cleared bits of byte %d: %#x -> %#x", j, before[j], d.buf.Pix[j])
			}
		}
	}
}

func TestPutBitmapIgnoresRowsPastHeight(t *testing.T) {
	d, _ := newDisplay(t, 8, 16)
	// Only the 3 top rows belong to the bitmap.
	if err := d.PutBitmap([]byte{0xff}, 1, 3, OR, 0, 6); err != nil {
		t.Fatal(err)
	}
	got := lit(d)
	if len(got) != 3 || !pixel(d, 0, 6) || !pixel(d, 0, 7) || !pixel(d, 0, 8) {
		t.Fatalf("lit = %v", got)
	}
}

func TestPutBitmapInvalid(t *testing.T) {
	d, _ := newDisplay(t, 8, 8)
	for name, err := range map[string]error{
		"short":  d.PutBitmap([]byte{1, 2, 3}, 2, 9, OR, 0, 0),
		"width":  d.PutBitmap(nil, -1, 1, OR, 0, 0),
		"height": d.PutBitmap(nil, 1, -1, OR, 0, 0),
		"method": d.PutBitmap([]byte{1}, 1, 1, Method(9), 0, 0),
	} {
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: %v", name, err)
		}
	}
	if err := d.PutBitmap(nil, 0, 0, XOR, 0, 0); err != nil {
		t.Fatal(err)
	}
	if Method(9).String() != "Method(9)" || XOR.String() != "XOR" {
		t.Fatal("Method.String()")
	}
}
