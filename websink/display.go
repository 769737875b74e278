// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package websink provides a mono.Transport implementing an HTTP request
// handler. Client requests get an initial snapshot of the frame and are
// updated further on every Show.
//
// The primary use case is the development of display outputs on a host
// machine. Additionally devices with network connectivity can use this
// transport next to their panel to provide a copy of their display via a web
// interface.
//
// The protocol used is "MJPEG" (https://en.wikipedia.org/wiki/Motion_JPEG)
// which is often used by IP cameras. Because of its better suitability for
// computer-drawn graphics the PNG image format is used by default.
//
// Requests accept these URL parameters:
//
//	format=png|jpeg  image format, Options.Format by default
//	scale=N          dot size in pixels from 1 to MaxScale, Options.Scale by default
//	stream=0         reply with a single image instead of a stream
package websink

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"sync"
	"time"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/oledfb/mono"
	"github.com/GermanBionicSystems/oledfb/preview"
)

// MaxScale is the largest dot size a client can request.
const MaxScale = 16

// Options for websink devices.
type Options struct {
	// Width and height of the panel. Height must be a multiple of 8.
	Width, Height int

	// Format specifies the image format to send to clients.
	Format ImageFormat

	// Scale enlarges every dot of the panel; 0 and 1 send the frame as is.
	Scale int

	// Keepalive resends the current frame to streaming clients when no Show
	// happened for that long. 0 disables it.
	Keepalive time.Duration

	// PNGCompression and JPEGQuality tune the encoders. JPEGQuality 0 means
	// jpeg.DefaultQuality.
	PNGCompression png.CompressionLevel
	JPEGQuality    int
}

// Display streams the frames it is shown to HTTP clients.
type Display struct {
	defaults  request
	enc       encoderConfig
	keepalive time.Duration

	mu      sync.Mutex
	buffer  *image1bit.VerticalLSB
	enabled bool
	clients map[*client]struct{}
	// encoded caches the snapshots of the current frame.
	encoded map[imageKey][]byte
}

var _ mono.Transport = (*Display)(nil)
var _ http.Handler = (*Display)(nil)

// New creates a new websink device instance.
func New(opt *Options) (*Display, error) {
	if opt.Width <= 0 || opt.Height <= 0 || opt.Height&7 != 0 {
		return nil, fmt.Errorf("websink: invalid size %dx%d", opt.Width, opt.Height)
	}
	return &Display{
		defaults:  request{format: opt.Format, scale: clampScale(opt.Scale), stream: true},
		enc:       newEncoderConfig(opt),
		keepalive: opt.Keepalive,
		buffer:    image1bit.NewVerticalLSB(image.Rect(0, 0, opt.Width, opt.Height)),
		enabled:   true,
		clients:   map[*client]struct{}{},
		encoded:   map[imageKey][]byte{},
	}, nil
}

// String returns the name of the device.
func (d *Display) String() string {
	return "WebSink"
}

// Halt implements conn.Resource and terminates all running client requests
// asynchronously.
func (d *Display) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for c := range d.clients {
		c.notify(c.terminate)
	}
	return nil
}

// ColorModel returns the model of the streamed frames before scaling.
func (d *Display) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the panel size.
func (d *Display) Bounds() image.Rectangle {
	return d.buffer.Bounds()
}

// Show implements mono.Transport.
func (d *Display) Show(frame []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(frame) != len(d.buffer.Pix) {
		return fmt.Errorf("websink: invalid frame length; expected %d bytes, got %d bytes", len(d.buffer.Pix), len(frame))
	}
	copy(d.buffer.Pix, frame)
	d.changedLocked()
	return nil
}

// Enable implements mono.Transport. Clients see a dark panel while disabled.
func (d *Display) Enable(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.enabled != on {
		d.enabled = on
		d.changedLocked()
	}
	return nil
}

// SetContrast implements mono.Transport. It is ignored.
func (d *Display) SetContrast(level byte) error {
	return nil
}

// changedLocked drops the cached snapshots and wakes the streaming clients.
// A client that is still sending the previous frame gets a single wake up,
// so fast Show calls coalesce into the latest frame.
func (d *Display) changedLocked() {
	clear(d.encoded)
	for c := range d.clients {
		c.notify(c.refresh)
	}
}

// imageLocked returns the image clients see at the given dot size.
func (d *Display) imageLocked(scale int) image.Image {
	var img image.Image = d.buffer
	if !d.enabled {
		img = image1bit.NewVerticalLSB(d.buffer.Bounds())
	}
	if scale > 1 {
		img = preview.Render(img, &preview.Opts{Scale: scale})
	}
	return img
}

// snapshot returns the encoded current frame. The returned slice is shared
// and must not be modified.
func (d *Display) snapshot(k imageKey) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if b, ok := d.encoded[k]; ok {
		return b, nil
	}
	b, err := d.enc.encode(d.imageLocked(k.scale), k.format)
	if err != nil {
		return nil, err
	}
	d.encoded[k] = b
	return b, nil
}

func clampScale(s int) int {
	if s < 1 {
		return 1
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
