// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package websink

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"sync"
)

type pngEncoderBufferPool sync.Pool

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	buf, _ := (*sync.Pool)(p).Get().(*png.EncoderBuffer)
	return buf
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	(*sync.Pool)(p).Put(buf)
}

type pngEncoderManager struct {
	mu   sync.Mutex
	pool pngEncoderBufferPool
	enc  map[png.CompressionLevel]*png.Encoder
}

var pngEncoder pngEncoderManager

// get returns a PNG encoder with a globally shared buffer pool.
func (m *pngEncoderManager) get(level png.CompressionLevel) *png.Encoder {
	m.mu.Lock()
	defer m.mu.Unlock()

	enc := m.enc[level]
	if enc == nil {
		if m.enc == nil {
			// The vast majority of use cases will involve exactly one
			// compression level.
			m.enc = make(map[png.CompressionLevel]*png.Encoder, 1)
		}

		enc = &png.Encoder{
			CompressionLevel: level,
			BufferPool:       &m.pool,
		}

		m.enc[level] = enc
	}

	return enc
}

// encoderConfig holds the encoder settings of a Display.
type encoderConfig struct {
	pngLevel png.CompressionLevel
	jpeg     jpeg.Options
}

func newEncoderConfig(opt *Options) encoderConfig {
	q := opt.JPEGQuality
	if q <= 0 {
		q = jpeg.DefaultQuality
	}
	return encoderConfig{
		pngLevel: opt.PNGCompression,
		jpeg:     jpeg.Options{Quality: q},
	}
}

// encode returns img in format.
func (c *encoderConfig) encode(img image.Image, format ImageFormat) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case PNG:
		err = pngEncoder.get(c.pngLevel).Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &c.jpeg)
	default:
		err = fmt.Errorf("websink: unhandled image format %s", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
