// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mono

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/oledfb/font"
)

// Flags configures the hardware side of a display.
type Flags uint8

// Flags recognized by New. They are only meaningful to the Transport; the
// frame buffer layout does not change.
const (
	MirrorX      Flags = 0x01
	MirrorY      Flags = 0x02
	DefaultFlags Flags = 0x00
)

// Transport pushes the frame buffer to a panel.
type Transport interface {
	// Show sends the frame to the panel. The slice must not be retained after
	// the call returns.
	Show(frame []byte) error
	// Enable turns the panel on or off without touching its memory.
	Enable(on bool) error
	// SetContrast changes the panel brightness.
	SetContrast(level byte) error
}

// Canvas is the drawing surface implemented by Display.
type Canvas interface {
	Bounds() image.Rectangle
	Clear() error
	DrawPixel(x, y int, on bool) error
	DrawLine(x1, y1, x2, y2 int, on bool) error
	DrawRectangle(x, y, w, h int, flags RectFlags) error
	DrawProgressBar(x, y, w, h, rng, value int, text string) error
	PutBitmap(bitmap []byte, w, h int, m Method, x, y int) error
	SetCursor(x, y Axis) error
	Cursor() (image.Point, error)
	SetFont(f *font.Font) error
	Font() (*font.Font, error)
	WriteText(text string) error
	Show() error
	Enable(on bool) error
	SetContrast(level byte) error
	Close() error
}

// DefaultLockTimeout is used when Opts.LockTimeout is 0.
const DefaultLockTimeout = time.Second

// DefaultOpts is the recommended default options, matching a 128x64 panel.
var DefaultOpts = Opts{
	W:     128,
	H:     64,
	Flags: DefaultFlags,
}

// Opts defines the options for the display.
type Opts struct {
	// W is the width in pixels.
	W int
	// H is the height in pixels; it must be a multiple of 8.
	H     int
	Flags Flags
	// LockTimeout bounds the wait for the display lock. 0 means
	// DefaultLockTimeout, a negative value waits forever.
	LockTimeout time.Duration
	// Transport receives Show, Enable and SetContrast. It can be nil.
	Transport Transport
}

// Display is a frame buffer with its drawing state.
type Display struct {
	sem     chan struct{}
	timeout time.Duration
	t       Transport
	rect    image.Rectangle
	flags   Flags

	// Mutable, guarded by sem.
	closed     bool
	buf        *image1bit.VerticalLSB
	cursor     image.Point
	font       *font.Font
	lineHeight int
}

// New returns a cleared Display of opts.W x opts.H pixels.
func New(opts *Opts) (*Display, error) {
	if opts.W <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidArgument, opts.W)
	}
	if opts.H <= 0 || opts.H&7 != 0 {
		return nil, fmt.Errorf("%w: height %d is not a positive multiple of 8", ErrInvalidArgument, opts.H)
	}
	timeout := opts.LockTimeout
	if timeout == 0 {
		timeout = DefaultLockTimeout
	}
	r := image.Rect(0, 0, opts.W, opts.H)
	return &Display{
		sem:     make(chan struct{}, 1),
		timeout: timeout,
		t:       opts.Transport,
		rect:    r,
		flags:   opts.Flags,
		buf:     image1bit.NewVerticalLSB(r),
	}, nil
}

func (d *Display) String() string {
	return fmt.Sprintf("mono.Display{%s}", d.rect.Max)
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Display) Bounds() image.Rectangle {
	return d.rect
}

// Flags returns the flags the display was created with.
func (d *Display) Flags() Flags {
	return d.flags
}

// ColorModel implements display.Drawer.
func (d *Display) ColorModel() color.Model {
	return image1bit.BitModel
}

// Draw implements display.Drawer.
//
// src is converted to 1 bit and replaces the content of r, then the frame is
// shown.
func (d *Display) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	draw.Src.Draw(d.buf, r, src, sp)
	return d.showLocked()
}

// Halt implements conn.Resource. It turns the panel off; the frame buffer is
// kept.
func (d *Display) Halt() error {
	return d.Enable(false)
}

// Bytes returns a copy of the packed frame buffer.
func (d *Display) Bytes() ([]byte, error) {
	if err := d.lock(); err != nil {
		return nil, err
	}
	defer d.unlock()
	return append([]byte(nil), d.buf.Pix...), nil
}

// Image returns a copy of the frame buffer.
func (d *Display) Image() (*image1bit.VerticalLSB, error) {
	if err := d.lock(); err != nil {
		return nil, err
	}
	defer d.unlock()
	img := image1bit.NewVerticalLSB(d.rect)
	copy(img.Pix, d.buf.Pix)
	return img, nil
}

// Show sends the frame buffer to the transport.
func (d *Display) Show() error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	return d.showLocked()
}

// Enable turns the panel on or off. The frame buffer is not modified.
func (d *Display) Enable(on bool) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	if d.t == nil {
		return nil
	}
	return d.t.Enable(on)
}

// SetContrast changes the panel contrast. The frame buffer is not modified.
func (d *Display) SetContrast(level byte) error {
	if err := d.lock(); err != nil {
		return err
	}
	defer d.unlock()
	if d.t == nil {
		return nil
	}
	return d.t.SetContrast(level)
}

// Close releases the frame buffer. Every later call on the display returns
// ErrClosed, except Close which returns nil.
//
// The transport and the selected font are not closed.
func (d *Display) Close() error {
	if err := d.lock(); err != nil {
		if errors.Is(err, ErrClosed) {
			return nil
		}
		return err
	}
	defer d.unlock()
	d.closed = true
	d.buf = nil
	d.font = nil
	return nil
}

func (d *Display) showLocked() error {
	if d.t == nil {
		return nil
	}
	return d.t.Show(d.buf.Pix)
}

// lock acquires the display. It fails if the wait exceeds the lock timeout
// or if the display is closed.
func (d *Display) lock() error {
	if d.timeout < 0 {
		d.sem <- struct{}{}
	} else {
		t := time.NewTimer(d.timeout)
		select {
		case d.sem <- struct{}{}:
			t.Stop()
		case <-t.C:
			return ErrLockTimeout
		}
	}
	if d.closed {
		<-d.sem
		return ErrClosed
	}
	return nil
}

func (d *Display) unlock() {
	<-d.sem
}

var _ Canvas = &Display{}
var _ display.Drawer = &Display{}
