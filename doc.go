// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oledfb is a container for a monochrome frame buffer and its
// outputs.
//
// The frame buffer and its drawing primitives live in package mono, fonts in
// package font. A mono.Display pushes its frame to a mono.Transport:
// ssd1306 for SSD1306, SH1106 and SH1107 panels over I²C or SPI,
// termscreen for a terminal and websink for a web browser. Package preview
// renders a frame as an enlarged image.
//
// The oledfb command in cmd/oledfb draws text, progress bars and test
// patterns with any of these outputs.
package oledfb
