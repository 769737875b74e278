// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termscreen implements a mono.Transport that outputs to a terminal
// using ANSI color codes.
//
// Useful while you are waiting for your OLED panel to come by mail.
package termscreen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/GermanBionicSystems/oledfb/mono"
)

// DefaultOpts is a 128x64 white on black panel printed to stdout.
var DefaultOpts = Opts{
	W:   128,
	H:   64,
	On:  color.NRGBA{255, 255, 255, 255},
	Off: color.NRGBA{0, 0, 0, 255},
}

// Opts represents the options available for this display.
type Opts struct {
	W, H int
	// Out defaults to a colorable stdout.
	Out     io.Writer
	Palette *ansi256.Palette
	// On and Off are the colors of lit and dark pixels. Zero values mean
	// white and black.
	On, Off color.NRGBA

	_ struct{}
}

// Dev is an OLED panel emulator that outputs to the console, one line per
// pixel row.
type Dev struct {
	w       io.Writer
	rect    image.Rectangle
	on, off string

	frame   []byte
	enabled bool
	drawn   bool
	buf     bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.W <= 0 || opts.H <= 0 || opts.H&7 != 0 {
		return nil, fmt.Errorf("termscreen: invalid size %dx%d", opts.W, opts.H)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	on, off := opts.On, opts.Off
	if on == (color.NRGBA{}) {
		on = DefaultOpts.On
	}
	if off == (color.NRGBA{}) {
		off = DefaultOpts.Off
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		rect:    image.Rect(0, 0, opts.W, opts.H),
		on:      p.Block(on),
		off:     p.Block(off),
		frame:   make([]byte, opts.W*opts.H/8),
		enabled: true,
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("TermScreen{%s}", d.rect.Max)
}

// Bounds returns the emulated panel size.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Show implements mono.Transport.
func (d *Dev) Show(frame []byte) error {
	if len(frame) != len(d.frame) {
		return fmt.Errorf("termscreen: invalid frame length; expected %d bytes, got %d bytes", len(d.frame), len(frame))
	}
	copy(d.frame, frame)
	return d.refresh()
}

// Enable implements mono.Transport. A disabled screen is printed dark; the
// last frame is kept and printed again once enabled.
func (d *Dev) Enable(on bool) error {
	d.enabled = on
	return d.refresh()
}

// SetContrast implements mono.Transport. The terminal has no brightness
// control, so it is ignored.
func (d *Dev) SetContrast(level byte) error {
	return nil
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	if d.drawn {
		// Go back over the previous frame.
		fmt.Fprintf(&d.buf, "\033[%dA", d.rect.Dy())
	}
	w := d.rect.Dx()
	for y := 0; y < d.rect.Dy(); y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		row := d.frame[y/8*w : (y/8+1)*w]
		mask := byte(1) << uint(y&7)
		for x := 0; x < w; x++ {
			if d.enabled && row[x]&mask != 0 {
				_, _ = d.buf.WriteString(d.on)
			} else {
				_, _ = d.buf.WriteString(d.off)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ mono.Transport = &Dev{}
var _ fmt.Stringer = &Dev{}
