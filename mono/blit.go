// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

import "fmt"

// Method selects how blitted bits are combined with the frame buffer.
type Method uint8

const (
	// OR turns on the bitmap's pixels and leaves the others untouched.
	OR Method = iota
	// XOR toggles the frame buffer where the bitmap is on. Blitting twice
	// restores the original content.
	XOR
)

func (m Method) String() string {
	switch m {
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// PutBitmap composes bitmap with its top left corner at (x, y).
//
// bitmap uses the frame buffer layout: bands of 8 rows, w bytes per band, LSB
// at the top of the band. It must hold at least w*ceil(h/8) bytes; rows past h
// in the last band are ignored. Parts falling outside the display are
// clipped.
func (d *Display) PutBitmap(bitmap []byte, w, h int, m Method, x, y int) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: bitmap size %dx%d", ErrInvalidArgument, w, h)
	}
	if m != OR && m != XOR {
		return fmt.Errorf("%w: method %s", ErrInvalidArgument, m)
	}
	if need := w * ((h + 7) / 8); len(bitmap) < need {
		return fmt.Errorf("%w: bitmap is %d bytes, %dx%d needs %d", ErrInvalidArgument, len(bitmap), w, h, need)
	}
	d.putBitmapLocked(bitmap, w, h, m, x, y)
	return nil
}

// putBitmapLocked copies the bitmap band by band.
//
// A source band lands on two destination pages unless y is page aligned. The
// loop alternates between the two halves: on a "left" step the source row is
// page aligned and its low bits are shifted down the destination page; on a
// "right" step the destination row is page aligned and the remaining high
// bits of the source page are shifted up into it. Each step consumes 8-shift
// rows, where shift is the misalignment of whichever row is not aligned.
func (d *Display) putBitmapLocked(bitmap []byte, w, h int, m Method, x, y int) {
	pages := d.pages()
	srcRow, dstRow := 0, y
	left := true
	for remaining := h; remaining > 0; left = !left {
		shift := mod8(srcRow + dstRow)
		n := 8 - shift
		valid := lowBits(min(n, remaining))
		if p := floorDiv8(dstRow); p >= 0 && p < pages {
			src := bitmap[(srcRow>>3)*w:]
			for col := 0; col < w; col++ {
				dx := x + col
				if dx < 0 || dx >= d.rect.Max.X {
					continue
				}
				var v byte
				if left {
					v = (src[col] & valid) << uint(shift)
				} else {
					v = (src[col] >> uint(shift)) & valid
				}
				if m == XOR {
					d.setPageByte(dx, p, d.pageByte(dx, p)^v)
				} else {
					d.setPageByte(dx, p, d.pageByte(dx, p)|v)
				}
			}
		}
		srcRow += n
		dstRow += n
		remaining -= n
	}
}

// lowBits returns a mask of the n low bits, 1 <= n <= 8.
func lowBits(n int) byte {
	return byte(1<<uint(n) - 1)
}

func mod8(v int) int {
	return v & 7
}

func floorDiv8(v int) int {
	return v >> 3
}
