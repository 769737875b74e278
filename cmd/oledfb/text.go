// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/oledfb/mono"
)

func init() {
	textCmd.Flags().IntVarP(&textFlags.x, "x", "x", 0, "column of the first character")
	textCmd.Flags().IntVarP(&textFlags.y, "y", "y", 0, "row of the first character")
	textCmd.Flags().BoolVar(&textFlags.keep, "keep", false, "draw over the current panel content")
	rootCmd.AddCommand(textCmd)
}

var textFlags struct {
	x, y int
	keep bool
}

var textCmd = &cobra.Command{
	Use:   "text <text>...",
	Short: "write text",
	Long:  `write the arguments separated by spaces; "\n" starts a new line`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(p *panel) error {
			return writeText(p, textFlags.x, textFlags.y, textFlags.keep, args)
		})
	},
}

func writeText(d mono.Canvas, x, y int, keep bool, args []string) error {
	if !keep {
		if err := d.Clear(); err != nil {
			return err
		}
	}
	if err := d.SetCursor(mono.At(x), mono.At(y)); err != nil {
		return err
	}
	text := strings.ReplaceAll(strings.Join(args, " "), `\n`, "\n")
	return d.WriteText(text)
}
