// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

import (
	"fmt"
	"image"
)

// RectFlags selects what DrawRectangle paints. Flags can be combined.
type RectFlags uint8

const (
	// Fill turns on the interior.
	Fill RectFlags = 0x01
	// Border draws the 1 pixel outline; the interior is then inset by 1.
	Border RectFlags = 0x02
	// Clear turns off the interior, and the outline when combined with
	// Border.
	Clear RectFlags = 0x04
)

// DrawLine draws a line from (x1, y1) to (x2, y2), both ends included.
func (d *Display) DrawLine(x1, y1, x2, y2 int, on bool) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	d.drawLineLocked(x1, y1, x2, y2, on)
	return nil
}

// DrawRectangle draws the w x h rectangle whose top left corner is (x, y).
//
// Each edge is clamped to the display, so a partially visible rectangle
// draws its visible part with its outline on the display edge. A rectangle
// that does not intersect the display draws nothing.
func (d *Display) DrawRectangle(x, y, w, h int, flags RectFlags) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	d.drawRectangleLocked(x, y, w, h, flags)
	return nil
}

// DrawProgressBar draws a bordered bar filled in proportion to value/rng.
//
// value is clamped to [0, rng]. The part after the bar is cleared so the bar
// can be redrawn in place with a lower value. When text is not empty, it is
// centered on the bar with the selected font and written with WriteText.
// The frame is shown in all cases.
func (d *Display) DrawProgressBar(x, y, w, h, rng, value int, text string) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	if rng <= 0 {
		return fmt.Errorf("%w: progress range %d", ErrInvalidArgument, rng)
	}
	if text != "" && d.font == nil {
		return ErrNoFont
	}
	if value < 0 {
		value = 0
	} else if value > rng {
		value = rng
	}

	d.drawRectangleLocked(x, y, w, h, Border)

	// The moving bar lives inside the border.
	x++
	y++
	w -= 2
	h -= 2
	bar := (w - 1) * value / rng
	if value == rng {
		bar = w
	}
	d.drawRectangleLocked(x, y, bar, h, Fill)
	if value != rng {
		d.drawRectangleLocked(x+bar, y, w-bar, h, Clear)
	}

	if text != "" {
		tw, th := d.font.Metrics(text)
		d.cursor = image.Point{X: x + w/2 - tw/2, Y: y + h/2 - th/2}
		return d.writeTextLocked(text)
	}
	return d.showLocked()
}

// drawLineLocked is Bresenham's algorithm with the error term covering all
// octants.
func (d *Display) drawLineLocked(x1, y1, x2, y2 int, on bool) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		d.setPixelLocked(x1, y1, on)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func (d *Display) drawRectangleLocked(x, y, w, h int, flags RectFlags) {
	if w <= 0 || h <= 0 {
		return
	}
	if !image.Rect(x, y, x+w, y+h).Overlaps(d.rect) {
		return
	}
	maxX, maxY := d.rect.Max.X-1, d.rect.Max.Y-1
	x1, x2 := clamp(x, 0, maxX), clamp(x+w-1, 0, maxX)
	y1, y2 := clamp(y, 0, maxY), clamp(y+h-1, 0, maxY)
	on := flags&Clear == 0

	if flags&Border != 0 {
		d.drawLineLocked(x1, y1, x2, y1, on)
		d.drawLineLocked(x2, y1, x2, y2, on)
		d.drawLineLocked(x2, y2, x1, y2, on)
		d.drawLineLocked(x1, y2, x1, y1, on)
		x1++
		y1++
		x2--
		y2--
	}

	if flags&(Fill|Clear) != 0 && x1 <= x2 {
		for row := y1; row <= y2; row++ {
			d.drawLineLocked(x1, row, x2, row, on)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
