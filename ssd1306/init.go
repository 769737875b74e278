// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Commands, see page 28 of the SSD1306 datasheet.
const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_COMSCANINC          = 0xC0
	_DC_DC_SETTING       = 0xAD
	_DEACTIVATE_SCROLL   = 0x2E
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_PAGESTARTADDRESS    = 0xB0
	_SEGREMAP            = 0xA0
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETHIGHCOLUMN       = 0x10
	_SETLOWCOLUMN        = 0x00
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

func getInitCmd(opts *Opts, v variant) []byte {
	if v == _SH1107 {
		return getInitCmd1107(opts)
	}
	return getInitCmd1306(opts)
}

func getInitCmd1306(opts *Opts) []byte {
	// Set COM output scan direction; C0 means normal; C8 means reversed.
	comScan := byte(_COMSCANDEC)
	if opts.MirrorVertical {
		comScan = _COMSCANINC
	}
	// See page 40.
	columnAddr := byte(_SETSEGMENTREMAP)
	if opts.MirrorHorizontal {
		columnAddr = _SEGREMAP
	}
	// See page 40.
	hwLayout := byte(0x02)
	if !opts.Sequential {
		hwLayout |= 0x10
	}
	if opts.SwapTopBottom {
		hwLayout |= 0x20
	}

	// Max frequency: I²C tears visibly at lower ones. Page 23 pictures how to
	// avoid tear down.
	freq := byte(0xF0)

	// Page 64 has the full recommended flow.
	return []byte{
		_DISPLAYOFF,
		_SETDISPLAYOFFSET, 0x00,
		_SETSTARTLINE,
		columnAddr,
		comScan,
		_SETCOMPINS, hwLayout,
		_SETCONTRAST, 0xFF,
		_DISPLAYALLON_RESUME, // Use GDDRAM content
		_NORMALDISPLAY,
		_SETDISPLAYCLOCKDIV, freq,
		_CHARGEPUMP, 0x14, // page 62
		_SETPRECHARGE, 0xF1,
		_SETVCOMDETECT, 0x40, // page 32
		_DEACTIVATE_SCROLL,
		_SETMULTIPLEX, byte(opts.H - 1),
		_MEMORYMODE, 0x00, // horizontal addressing
		_COLUMNADDR, 0, uint8(opts.W - 1),
		_PAGEADDR, 0, uint8(opts.H/8 - 1),
		_DISPLAYON,
	}
}

func getInitCmd1107(opts *Opts) []byte {
	// From the adafruit driver...
	comScan := byte(_COMSCANINC)
	if opts.MirrorVertical {
		comScan = _COMSCANDEC
	}
	columnAddr := byte(_SEGREMAP)
	if opts.MirrorHorizontal {
		columnAddr = _SETSEGMENTREMAP
	}
	return []byte{
		_DISPLAYOFF,
		_SETMULTIPLEX, byte(opts.H - 1),
		_MEMORYMODE,       // page addressing
		_PAGESTARTADDRESS, // page 0
		columnAddr,
		comScan,
		_DC_DC_SETTING, 0x81,
		_SETDISPLAYCLOCKDIV, 0x50,
		_SETVCOMDETECT, 0x35,
		_SETPRECHARGE, 0x22,
		_DISPLAYON,
	}
}
