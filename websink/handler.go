// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package websink

import (
	"fmt"
	"log"
	"mime"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"
)

// imageKey identifies an encoding of the frame.
type imageKey struct {
	format ImageFormat
	scale  int
}

// request is what a client asked for.
type request struct {
	format ImageFormat
	scale  int
	stream bool
}

func (r request) key() imageKey {
	return imageKey{format: r.format, scale: r.scale}
}

// parseRequest applies the URL parameters over the display defaults.
func (d *Display) parseRequest(values url.Values) (request, error) {
	r := d.defaults
	if v := values.Get("format"); v != "" {
		f, err := ImageFormatFromString(v)
		if err != nil {
			return request{}, err
		}
		r.format = f
	}
	if v := values.Get("scale"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil || s < 1 || s > MaxScale {
			return request{}, fmt.Errorf("websink: scale %q is not between 1 and %d", v, MaxScale)
		}
		r.scale = s
	}
	if v := values.Get("stream"); v != "" {
		s, err := strconv.ParseBool(v)
		if err != nil {
			return request{}, fmt.Errorf("websink: invalid stream %q", v)
		}
		r.stream = s
	}
	return r, nil
}

type client struct {
	refresh   chan struct{}
	terminate chan struct{}
}

func newClient() *client {
	return &client{
		refresh:   make(chan struct{}, 1),
		terminate: make(chan struct{}, 1),
	}
}

// notify signals ch without blocking; pending signals are not duplicated.
func (c *client) notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// ServeHTTP handles HTTP GET requests. By default it sends a stream of
// images of the panel, a new one on every Show. See the package
// documentation for the URL parameters.
func (d *Display) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.Body.Close(); err != nil {
		log.Printf("Closing request body failed: %v", err)
	}
	if r.Method != http.MethodGet {
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}
	req, err := d.parseRequest(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.stream {
		d.serveStream(w, r, req.key())
	} else {
		d.serveImage(w, req.key())
	}
}

// serveImage replies with the current frame.
func (d *Display) serveImage(w http.ResponseWriter, k imageKey) {
	b, err := d.snapshot(k)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h := w.Header()
	h.Set("Content-Type", k.format.mimeType())
	h.Set("Content-Length", strconv.Itoa(len(b)))
	h.Set("Cache-Control", "no-store")
	if _, err := w.Write(b); err != nil {
		log.Printf("Sending image failed: %v", err)
	}
}

// serveStream sends frames until the client leaves or the display halts.
func (d *Display) serveStream(w http.ResponseWriter, r *http.Request, k imageKey) {
	pw := makePartWriter(w)
	w.Header().Set("Content-Type",
		mime.FormatMediaType("multipart/x-mixed-replace", map[string]string{
			"boundary": pw.boundary,
		}))

	c := newClient()
	d.mu.Lock()
	d.clients[c] = struct{}{}
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.clients, c)
		d.mu.Unlock()
	}()

	var keepalive <-chan time.Time
	if d.keepalive > 0 {
		t := time.NewTicker(d.keepalive)
		defer t.Stop()
		keepalive = t.C
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", k.format.mimeType())
	header.Set("Content-Transfer-Encoding", "binary")
	for {
		b, err := d.snapshot(k)
		if err != nil {
			log.Printf("Encoding frame failed: %v", err)
			return
		}
		// Write errors mean the client is gone; there's no way to report an
		// error within an image stream anyway.
		if err := pw.writeFrame(header, b); err != nil {
			return
		}
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		select {
		case <-c.refresh:
		case <-keepalive:
		case <-c.terminate:
			return
		case <-r.Context().Done():
			return
		}
	}
}
