// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

// Clear turns off every pixel.
func (d *Display) Clear() error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	d.clearLocked()
	return nil
}

// DrawPixel turns the pixel at (x, y) on or off. Coordinates outside the
// display are ignored.
func (d *Display) DrawPixel(x, y int, on bool) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	d.setPixelLocked(x, y, on)
	return nil
}

func (d *Display) clearLocked() {
	for i := range d.buf.Pix {
		d.buf.Pix[i] = 0
	}
}

func (d *Display) setPixelLocked(x, y int, on bool) {
	if x < 0 || y < 0 || x >= d.rect.Max.X || y >= d.rect.Max.Y {
		return
	}
	mask := byte(1) << uint(y&7)
	i := (y>>3)*d.buf.Stride + x
	if on {
		d.buf.Pix[i] |= mask
	} else {
		d.buf.Pix[i] &^= mask
	}
}

// pageByte returns the 8 pixels of column x in page p. Callers clip.
func (d *Display) pageByte(x, p int) byte {
	return d.buf.Pix[p*d.buf.Stride+x]
}

// setPageByte replaces the 8 pixels of column x in page p. Callers clip.
func (d *Display) setPageByte(x, p int, v byte) {
	d.buf.Pix[p*d.buf.Stride+x] = v
}

// pages returns the number of 8-row pages.
func (d *Display) pages() int {
	return d.rect.Max.Y >> 3
}
