// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// oledfb draws text, progress bars and test patterns on a monochrome OLED
// panel, a terminal, a web page or a PNG file.
package main

import (
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/oledfb/mono"
	"github.com/GermanBionicSystems/oledfb/websink"
)

var rootCmd = &cobra.Command{
	Use:          "oledfb",
	Short:        "oledfb draws on monochrome OLED panels",
	Long:         "oledfb draws on monochrome OLED panels through I²C, SPI, a terminal or a web page",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

// flags shared by every command.
var flags = struct {
	output      string
	width       int
	height      int
	mirrorX     bool
	mirrorY     bool
	contrast    int
	lockTimeout time.Duration
	font        string
	fontSize    float64
	png         string
	scale       int
	i2cBus      string
	spiPort     string
	dcPin       string
	listen      string
	format      websink.ImageFormat
	keepalive   time.Duration
	wait        bool
}{
	format: websink.DefaultFormat,
}

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.output, "output", "o", "auto", "auto, term, i2c, spi, web or none")
	pf.IntVarP(&flags.width, "width", "W", mono.DefaultOpts.W, "panel width")
	pf.IntVarP(&flags.height, "height", "H", mono.DefaultOpts.H, "panel height, a multiple of 8")
	pf.BoolVar(&flags.mirrorX, "mirror-x", false, "mirror the panel horizontally")
	pf.BoolVar(&flags.mirrorY, "mirror-y", false, "mirror the panel vertically")
	pf.IntVar(&flags.contrast, "contrast", -1, "panel contrast 0-255, -1 keeps the current one")
	pf.DurationVar(&flags.lockTimeout, "lock-timeout", mono.DefaultLockTimeout, "maximum wait for the display lock")
	pf.StringVarP(&flags.font, "font", "f", "basic", "basic, gomono, proggy or the path of a TrueType file")
	pf.Float64Var(&flags.fontSize, "font-size", 12, "size in points of TrueType fonts")
	pf.StringVar(&flags.png, "png", "", "save the final frame as a PNG file")
	pf.IntVar(&flags.scale, "scale", 4, "dot size of the PNG and web renderings")
	pf.StringVar(&flags.i2cBus, "i2c", "", "I²C bus to use")
	pf.StringVar(&flags.spiPort, "spi", "", "SPI port to use")
	pf.StringVar(&flags.dcPin, "dc", "", "data/command GPIO pin of SPI panels")
	pf.StringVar(&flags.listen, "listen", "localhost:8080", "HTTP address of the web output")
	pf.Var(&flags.format, "format", "image format of the web output, png or jpeg")
	pf.DurationVar(&flags.keepalive, "keepalive", 5*time.Second, "resend period of the web stream when idle, 0 disables it")
	pf.BoolVar(&flags.wait, "wait", false, "keep running until interrupted")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run opens the panel, calls fn and closes the panel. Errors are fatal.
func run(fn func(p *panel) error) {
	p, err := openPanel()
	if err != nil {
		log.Fatal(err)
	}
	err = fn(p)
	if err == nil && (flags.wait || p.server != nil) {
		p.waitInterrupt()
	}
	if err2 := p.close(); err == nil {
		err = err2
	}
	if err != nil {
		log.Fatal(err)
	}
}
