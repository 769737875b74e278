// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/GermanBionicSystems/oledfb/mono"
)

func newDisplay(t *testing.T, fontName string) *mono.Display {
	d, err := mono.New(&mono.DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = d.Close() })
	if fontName != "" {
		f, err := loadFont(fontName, 12)
		if err != nil {
			t.Fatal(err)
		}
		if err := d.SetFont(f); err != nil {
			t.Fatal(err)
		}
	}
	return d
}

func lit(t *testing.T, d *mono.Display) int {
	b, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, v := range b {
		for ; v != 0; v &= v - 1 {
			n++
		}
	}
	return n
}

func TestLoadFont(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(p, gomono.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"basic", "gomono", "proggy", p} {
		f, err := loadFont(name, 10)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if f.First != firstCode || f.Last != lastCode {
			t.Errorf("%s: range %s", name, f)
		}
		if err := f.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := loadFont(filepath.Join(t.TempDir(), "missing.ttf"), 10); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestWriteText(t *testing.T) {
	d := newDisplay(t, "basic")
	if err := writeText(d, 3, 5, false, []string{"a", `b\nc`}); err != nil {
		t.Fatal(err)
	}
	// "c" is alone on the second line, 13 rows below.
	c, err := d.Cursor()
	if err != nil {
		t.Fatal(err)
	}
	if c.X != 7 || c.Y != 5+13 {
		t.Fatalf("cursor %v", c)
	}
	if lit(t, d) == 0 {
		t.Fatal("nothing drawn")
	}
	// Clearing then drawing the same text gives the same frame.
	before, _ := d.Bytes()
	if err := writeText(d, 3, 5, false, []string{"a", `b\nc`}); err != nil {
		t.Fatal(err)
	}
	after, _ := d.Bytes()
	if string(before) != string(after) {
		t.Fatal("redraw differs")
	}
	if err := writeText(d, 200, 0, false, []string{"a"}); err == nil {
		t.Fatal("cursor outside the panel accepted")
	}
}

func TestDrawBar(t *testing.T) {
	d := newDisplay(t, "")
	if err := drawBar(d, 100, 100, 0, ""); err != nil {
		t.Fatal(err)
	}
	// A full bar of 10 rows over the full width is completely lit.
	if got := lit(t, d); got != 128*10 {
		t.Fatalf("%d pixels lit", got)
	}
	if err := drawBar(d, 1, 100, 0, "%d%"); !errors.Is(err, mono.ErrNoFont) {
		t.Fatalf("label without font: %v", err)
	}
	if err := drawBar(d, 1, 0, 0, ""); err == nil {
		t.Fatal("empty range accepted")
	}

	d = newDisplay(t, "basic")
	if err := drawBar(d, 50, 100, 0, "%d%"); err != nil {
		t.Fatal(err)
	}
}

func TestDemo(t *testing.T) {
	d := newDisplay(t, "proggy")
	if err := demo(d, 3, 0); err != nil {
		t.Fatal(err)
	}
	// Corners belong to the border and the diagonals.
	b, _ := d.Bytes()
	if b[0]&1 == 0 || b[127]&1 == 0 {
		t.Fatal("border not drawn")
	}
	if err := demo(newDisplay(t, ""), 0, 0); err != nil {
		t.Fatal(err)
	}
}
