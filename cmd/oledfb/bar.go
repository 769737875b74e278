// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/oledfb/mono"
)

func init() {
	barCmd.Flags().IntVar(&barFlags.rng, "range", 100, "value of a full bar")
	barCmd.Flags().StringVarP(&barFlags.label, "label", "l", "", "text centered on the bar, %d is replaced by the value")
	barCmd.Flags().IntVar(&barFlags.height, "bar-height", 0, "bar height, 0 fits the font")
	rootCmd.AddCommand(barCmd)
}

var barFlags struct {
	rng    int
	label  string
	height int
}

var barCmd = &cobra.Command{
	Use:   "bar <value>",
	Short: "draw a progress bar",
	Long:  `draw a progress bar centered vertically on the panel`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(p *panel) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return drawBar(p, v, barFlags.rng, barFlags.height, barFlags.label)
		})
	},
}

// drawBar draws a progress bar over the full panel width.
func drawBar(d mono.Canvas, value, rng, h int, label string) error {
	if h <= 0 {
		h = 10
		if f, err := d.Font(); err != nil {
			return err
		} else if f != nil {
			h = f.LineHeight() + 4
		}
	}
	text := ""
	if label != "" {
		text = strings.ReplaceAll(label, "%d", strconv.Itoa(value))
	}
	r := d.Bounds()
	return d.DrawProgressBar(0, (r.Dy()-h)/2, r.Dx(), h, rng, value, text)
}
