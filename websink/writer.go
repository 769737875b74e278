// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package websink

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"net/textproto"
	"sort"
	"strconv"
)

// randomBoundary generates a MIME multipart boundary compatible with RFC 2046
// (section 5.1.1).
func randomBoundary() string {
	var buf [34]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", buf[:])
}

type partWriter struct {
	u        io.Writer
	boundary string
	started  bool
	head     bytes.Buffer
}

func makePartWriter(u io.Writer) *partWriter {
	return &partWriter{
		u:        u,
		boundary: randomBoundary(),
	}
}

// writeFrame sends a single part of a MIME multipart entity, ensuring it's
// fully written by the time the function returns. Headers are written in
// sorted order.
//
// The caller-owned headers are modified to set a Content-Length header.
//
// "mime/multipart".Writer cannot write a neverending stream of parts where
// each must be flushed to the client with the part-ending boundary line.
func (w *partWriter) writeFrame(header textproto.MIMEHeader, body []byte) error {
	header.Set("Content-Length", strconv.Itoa(len(body)))

	w.head.Reset()
	if !w.started {
		fmt.Fprintf(&w.head, "--%s\r\n", w.boundary)
		w.started = true
	}

	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range header[name] {
			fmt.Fprintf(&w.head, "%s: %s\r\n", name, value)
		}
	}
	w.head.WriteString("\r\n")

	if _, err := w.head.WriteTo(w.u); err != nil {
		return err
	}
	if _, err := w.u.Write(body); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w.u, "\r\n--%s\r\n", w.boundary)
	return err
}
