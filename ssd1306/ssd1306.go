// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// The SSD1306, SH1106, SH1107 are a family of OLED displays. Some have SPI enabled.
//
// https://hallard.me/adafruit-oled-display-driver-for-pi/
//
// https://learn.adafruit.com/ssd1306-oled-displays-with-raspberry-pi-and-beaglebone-black?view=all

import (
	"bytes"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/GermanBionicSystems/oledfb/mono"
)

type variant string

const (
	_SSD1306 variant = "SSD1306"
	_SH1106  variant = "SH1106"
	_SH1107  variant = "SH1107"
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:    128,
	H:    64,
	Addr: 0x3c,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// Sequential corresponds to the Sequential/Alternative COM pin configuration
	// in the OLED panel hardware. Try toggling this if half the rows appear to be
	// missing on your display. Particularly on 32 pixel height displays.
	Sequential bool
	// MirrorVertical corresponds to the COM remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped vertically.
	MirrorVertical bool
	// MirrorHorizontal corresponds to the SEG remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped horizontally.
	MirrorHorizontal bool
	// SwapTopBottom corresponds to the Left/Right remap COM pin configuration in
	// the OLED panel hardware. Try toggling this if the top and bottom halves of
	// your display are swapped.
	SwapTopBottom bool
	// The I2C address of the display.
	Addr uint16
}

// ApplyFlags sets the mirroring options from the flags of a mono.Display:
// MirrorX is a SEG remap, MirrorY a COM remap.
func (o *Opts) ApplyFlags(f mono.Flags) {
	o.MirrorHorizontal = f&mono.MirrorX != 0
	o.MirrorVertical = f&mono.MirrorY != 0
}

// NewSPI returns a Dev object that communicates over SPI to a SSD1306 display
// controller.
//
// The SSD1306 can operate at up to 3.3Mhz, which is much higher than I²C. This
// permits higher refresh rates.
//
// # Wiring
//
// Connect SDA to SPI_MOSI, SCK to SPI_CLK, CS to SPI_CS and DC to a GPIO.
// 3-wire SPI is not supported.
//
// The RES (reset) pin can be used outside of this driver but is not supported
// natively. In case of external reset via the RES pin, this device drive must
// be reinstantiated.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("%s: a dc pin is required, 3-wire SPI is not supported", _SSD1306)
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, err
	}
	c, err := p.Connect(3300*physic.KiloHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return newDev(c, opts, true, dc)
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller.
func NewI2C(i i2c.Bus, opts *Opts) (*Dev, error) {
	if opts.Addr == 0x00 {
		opts.Addr = DefaultOpts.Addr
	}
	// Maximum clock speed is 1/2.5µs = 400KHz.
	return newDev(&i2c.Dev{Bus: i, Addr: opts.Addr}, opts, false, nil)
}

// Dev is an open handle to the display controller.
//
// It implements mono.Transport: the frame of a mono.Display is copied to the
// controller's GDDRAM, which uses the same page layout.
type Dev struct {
	// Communication
	c   conn.Conn
	dc  gpio.PinOut
	spi bool

	w, h int

	// Mutable
	// Copy of the GDDRAM: pages of 8 rows, one byte per column.
	// 8*128 = 1024 bytes total for 128x64 display.
	buffer []byte
	// fullRedraw forces the next Show to send every page.
	fullRedraw bool
	halted     bool
	// The display type. _SSD1306, _SH1106, _SH1107.
	variant variant
	// The SH1106 is a little funny. It's got 132 bytes wide of RAM, but 4 bytes
	// are unused, so you have to offset writes by two to account for it.
	startOffset byte
}

func (d *Dev) String() string {
	if d.spi {
		return fmt.Sprintf("%s.Dev{%s, %s, (%d,%d)}", d.variant, d.c, d.dc, d.w, d.h)
	}
	return fmt.Sprintf("%s.Dev{%s, (%d,%d)}", d.variant, d.c, d.w, d.h)
}

// Show implements mono.Transport.
//
// Only the smallest band of pages and columns that changed since the previous
// call is sent, which matters on I²C where the bus default speed (often
// 100kHz) is slow enough to saturate the bus at less than 10 frames per
// second.
func (d *Dev) Show(frame []byte) error {
	if len(frame) != len(d.buffer) {
		return fmt.Errorf("%s: invalid frame length; expected %d bytes, got %d bytes", d.variant, len(d.buffer), len(frame))
	}
	return d.drawInternal(frame)
}

// Enable implements mono.Transport.
//
// A disabled panel keeps receiving frames in its memory and shows them once
// enabled again.
func (d *Dev) Enable(on bool) error {
	d.halted = false
	if on {
		return d.sendCommand([]byte{_DISPLAYON})
	}
	return d.sendCommand([]byte{_DISPLAYOFF})
}

// SetContrast implements mono.Transport.
//
// Note: values other than 0xff do not seem useful...
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommand([]byte{_SETCONTRAST, level})
}

// Halt turns off the display.
//
// Sending any other command afterward reenables the display.
func (d *Dev) Halt() error {
	d.halted = false
	err := d.sendCommand([]byte{_DISPLAYOFF})
	if err == nil {
		d.halted = true
	}
	return err
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	b := []byte{_NORMALDISPLAY}
	if blackOnWhite {
		b[0] = _INVERTDISPLAY
	}
	return d.sendCommand(b)
}

// newDev is the common initialization code that is independent of the
// communication protocol (I²C or SPI) being used.
func newDev(c conn.Conn, opts *Opts, usingSPI bool, dc gpio.PinOut) (*Dev, error) {
	if opts.W < 8 || opts.W > 128 || opts.W&7 != 0 {
		return nil, fmt.Errorf("%s: invalid width %d", _SSD1306, opts.W)
	}
	d := &Dev{
		c:          c,
		spi:        usingSPI,
		dc:         dc,
		w:          opts.W,
		h:          opts.H,
		buffer:     make([]byte, opts.H/8*opts.W),
		fullRedraw: true,
	}

	// Read the variant directly from the chip.
	id, _ := d.readID()
	id &= 0x0f
	if id == 0x07 || id == 0x0f {
		d.variant = _SH1107
	} else if id == 0x08 {
		d.startOffset = 2
		d.variant = _SH1106
	} else {
		d.variant = _SSD1306
	}

	maxH := 64
	if d.variant == _SH1107 {
		maxH = 128
	}
	if opts.H < 8 || opts.H > maxH || opts.H&7 != 0 {
		return nil, fmt.Errorf("%s: invalid height %d", d.variant, opts.H)
	}

	if err := d.sendCommand(getInitCmd(opts, d.variant)); err != nil {
		return nil, err
	}
	return d, nil
}

// window is a band of pages [startPage, endPage) and columns
// [startCol, endCol).
type window struct {
	startPage, endPage int
	startCol, endCol   int
}

func (w window) empty() bool {
	return w.startPage == w.endPage || w.startCol == w.endCol
}

// dirtyWindow returns the smallest window containing every byte of next that
// differs from the controller memory.
func (d *Dev) dirtyWindow(next []byte) window {
	pageSize := d.w
	win := window{endPage: d.h / 8, endCol: d.w}
	if d.fullRedraw {
		return win
	}

	// Top.
	for ; win.startPage < win.endPage; win.startPage++ {
		x := pageSize * win.startPage
		y := pageSize * (win.startPage + 1)
		if !bytes.Equal(d.buffer[x:y], next[x:y]) {
			break
		}
	}
	// Bottom.
	for ; win.endPage > win.startPage; win.endPage-- {
		x := pageSize * (win.endPage - 1)
		y := pageSize * win.endPage
		if !bytes.Equal(d.buffer[x:y], next[x:y]) {
			break
		}
	}
	if win.startPage == win.endPage {
		// The image is exactly the same.
		return win
	}

	// Left.
	for ; win.startCol < win.endCol; win.startCol++ {
		if d.columnChanged(next, win, win.startCol) {
			break
		}
	}
	// Right.
	for ; win.endCol > win.startCol; win.endCol-- {
		if d.columnChanged(next, win, win.endCol-1) {
			break
		}
	}
	return win
}

func (d *Dev) columnChanged(next []byte, win window, col int) bool {
	for p := win.startPage; p < win.endPage; p++ {
		x := p*d.w + col
		if d.buffer[x] != next[x] {
			return true
		}
	}
	return false
}

// drawInternal sends image data to the controller.
func (d *Dev) drawInternal(next []byte) error {
	win := d.dirtyWindow(next)
	if win.empty() {
		return nil
	}
	copy(d.buffer, next)

	// The RAM column includes the SH1106 offset before it is split in nibbles.
	col := byte(win.startCol) + d.startOffset
	for page := win.startPage; page < win.endPage; page++ {
		err := d.sendCommand([]byte{
			_PAGESTARTADDRESS | byte(page),
			_SETLOWCOLUMN | col&0x0F,
			_SETHIGHCOLUMN | col>>4,
		})
		if err == nil {
			pageStart := page * d.w
			err = d.sendData(d.buffer[pageStart+win.startCol : pageStart+win.endCol])
		}
		if err != nil {
			// The controller memory is unknown now.
			d.fullRedraw = true
			return err
		}
	}
	d.fullRedraw = false
	return nil
}

func (d *Dev) sendData(c []byte) error {
	if d.halted {
		// Transparently enable the display.
		if err := d.sendCommand(nil); err != nil {
			return err
		}
	}
	if d.spi {
		if err := d.dc.Out(gpio.High); err != nil {
			return err
		}
		return d.c.Tx(c, nil)
	}
	return d.c.Tx(append([]byte{i2cData}, c...), nil)
}

func (d *Dev) sendCommand(c []byte) error {
	if d.halted {
		// Transparently enable the display.
		c = append([]byte{_DISPLAYON}, c...)
		d.halted = false
	}
	if d.spi {
		if err := d.dc.Out(gpio.Low); err != nil {
			return err
		}
		return d.c.Tx(c, nil)
	}
	return d.c.Tx(append([]byte{i2cCmd}, c...), nil)
}

// readID() reads the ID byte of the device. Piecing together the datasheet,
// the format is:
//
// Bits
// ----
// 0 - 5 Device ID
//
//	ID Values have been documented as:
//
//	    0x03 SSD1306 128x32
//	    0x06 SSD1306 128x64
//	    0x07 or 0x0f: sh1107
//	    0x08: sh1106
//
// 6 Display On/Off 0=on, 1 = off
// 7 BUSY
func (d *Dev) readID() (byte, error) {
	r := make([]byte, 1)
	err := d.c.Tx([]byte{0}, r)
	return r[0], err
}

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

var _ mono.Transport = &Dev{}
var _ conn.Resource = &Dev{}
