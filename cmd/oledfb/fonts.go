// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/GermanBionicSystems/oledfb/font"
)

// Printable ASCII.
const (
	firstCode = ' '
	lastCode  = '~'
)

// loadFont returns one of the built-in fonts or parses a TrueType file.
func loadFont(name string, size float64) (*font.Font, error) {
	switch name {
	case "basic":
		return font.FromFace(basicfont.Face7x13, firstCode, lastCode)
	case "gomono":
		return font.ParseTTF(gomono.TTF, size, firstCode, lastCode)
	case "proggy":
		return font.FromTinyfont(&proggy.TinySZ8pt7b, firstCode, lastCode)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return font.ParseTTF(data, size, firstCode, lastCode)
}
