// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package websink

import (
	"fmt"
	"strings"
)

// ImageFormat is the encoding of the streamed frames.
//
// It implements pflag.Value so it can be used directly as a command line
// flag.
type ImageFormat int

const (
	PNG ImageFormat = iota
	JPEG

	// DefaultFormat is the format used when not set explicitly in options or
	// as a URL parameter.
	DefaultFormat = PNG
)

func (f ImageFormat) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	default:
		return fmt.Sprint(int(f))
	}
}

// Set parses value with ImageFormatFromString.
func (f *ImageFormat) Set(value string) error {
	v, err := ImageFormatFromString(value)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type returns the name shown in flag usage.
func (f *ImageFormat) Type() string {
	return "format"
}

func (f ImageFormat) mimeType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	}

	return "application/octet-stream"
}

// ImageFormatFromString returns the ImageFormat value for the given format
// abbreviation, ignoring case.
func ImageFormatFromString(value string) (ImageFormat, error) {
	switch strings.ToLower(value) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}

	return DefaultFormat, fmt.Errorf("websink: unrecognized image format %q", value)
}
