// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termscreen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/maruel/ansi256"

	"github.com/GermanBionicSystems/oledfb/mono"
)

func newScreen(t *testing.T, buf *bytes.Buffer) (*Dev, *mono.Display) {
	opts := DefaultOpts
	opts.W = 8
	opts.H = 16
	opts.Out = buf
	s, err := New(&opts)
	if err != nil {
		t.Fatal(err)
	}
	d, err := mono.New(&mono.Opts{W: 8, H: 16, Transport: s})
	if err != nil {
		t.Fatal(err)
	}
	return s, d
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	_, d := newScreen(t, &buf)
	if err := d.DrawLine(0, 0, 7, 7, true); err != nil {
		t.Fatal(err)
	}
	if err := d.Show(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "\n"); n != 16 {
		t.Fatalf("got %d lines, expected 16", n)
	}
	on := ansi256.Default.Block(DefaultOpts.On)
	off := ansi256.Default.Block(DefaultOpts.Off)
	if n := strings.Count(out, on); n != 8 {
		t.Fatalf("got %d lit pixels, expected 8", n)
	}
	if n := strings.Count(out, off); n != 8*16-8 {
		t.Fatalf("got %d dark pixels", n)
	}
	if strings.Contains(out, "\033[16A") {
		t.Fatal("first frame must not move the cursor up")
	}

	buf.Reset()
	if err := d.Show(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\033[16A") {
		t.Fatalf("second frame does not overwrite the first: %q", buf.String()[:8])
	}
}

func TestEnable(t *testing.T) {
	var buf bytes.Buffer
	s, d := newScreen(t, &buf)
	if err := d.DrawRectangle(0, 0, 8, 16, mono.Fill); err != nil {
		t.Fatal(err)
	}
	if err := d.Show(); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := d.Enable(false); err != nil {
		t.Fatal(err)
	}
	on := ansi256.Default.Block(DefaultOpts.On)
	if strings.Contains(buf.String(), on) {
		t.Fatal("disabled screen shows pixels")
	}
	buf.Reset()
	if err := d.Enable(true); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), on); n != 8*16 {
		t.Fatalf("got %d lit pixels after enable", n)
	}
	if err := d.SetContrast(0); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := s.Halt(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\033[0m\n" {
		t.Fatalf("Halt wrote %q", buf.String())
	}
}

func TestInvalid(t *testing.T) {
	if _, err := New(&Opts{W: 8, H: 12}); err == nil {
		t.Fatal("height 12 accepted")
	}
	var buf bytes.Buffer
	s, _ := newScreen(t, &buf)
	if err := s.Show(make([]byte, 3)); err == nil {
		t.Fatal("short frame accepted")
	}
	if s.String() != "TermScreen{(8,16)}" {
		t.Fatal(s.String())
	}
}
