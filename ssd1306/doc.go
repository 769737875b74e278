// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 sends the frame of a mono.Display to a monochrome OLED
// panel driven by a SSD1306, SH1106, or SH1107 controller. The driver
// automatically detects the variant and adjusts accordingly.
//
// The controller memory has the same page layout as mono.Display, so frames
// are sent without conversion. Updates are differential: only the smallest
// rectangle of modified pages and columns is sent, to economize bus
// bandwidth.
//
// The device can be driven on either I²C or SPI with 4 wires. Changing
// between protocol is likely done through resistor soldering, for boards that
// support both.
//
// Some boards expose a RES / Reset pin. If present, it must be normally be
// High. When set to Low (Ground), it enables the reset circuitry. It can be
// used externally to this driver, if used, the driver must be reinstantiated.
//
// # Datasheets
//
// SSD1306
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// SH1106
//
// https://cdn.velleman.eu/downloads/29/infosheets/sh1106_datasheet.pdf
//
// SH1107
//
// https://www.displayfuture.com/Display/datasheet/controller/SH1107.pdf
package ssd1306
