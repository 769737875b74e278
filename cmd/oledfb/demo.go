// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/oledfb/mono"
)

func init() {
	demoCmd.Flags().IntVar(&demoFlags.steps, "steps", 20, "number of progress steps")
	demoCmd.Flags().DurationVar(&demoFlags.delay, "delay", 100*time.Millisecond, "time between steps")
	rootCmd.AddCommand(demoCmd)
}

var demoFlags struct {
	steps int
	delay time.Duration
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "draw a test pattern and an animated progress bar",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(p *panel) error {
			return demo(p, demoFlags.steps, demoFlags.delay)
		})
	},
}

func demo(d mono.Canvas, steps int, delay time.Duration) error {
	r := d.Bounds()
	w, h := r.Dx(), r.Dy()
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.DrawRectangle(0, 0, w, h, mono.Border); err != nil {
		return err
	}
	if err := d.DrawLine(0, 0, w-1, h-1, true); err != nil {
		return err
	}
	if err := d.DrawLine(0, h-1, w-1, 0, true); err != nil {
		return err
	}
	if err := d.SetCursor(mono.At(2), mono.At(2)); err != nil {
		return err
	}
	if err := d.WriteText("oledfb"); err != nil && !errors.Is(err, mono.ErrNoFont) {
		return err
	}
	if steps < 1 {
		return nil
	}
	barH := 10
	if h < 3*barH {
		barH = h / 3
	}
	for i := 0; i <= steps; i++ {
		if i != 0 {
			time.Sleep(delay)
		}
		if err := d.DrawProgressBar(4, h-barH-4, w-8, barH, steps, i, ""); err != nil {
			return err
		}
	}
	return nil
}
