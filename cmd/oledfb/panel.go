// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/oledfb/mono"
	"github.com/GermanBionicSystems/oledfb/preview"
	"github.com/GermanBionicSystems/oledfb/ssd1306"
	"github.com/GermanBionicSystems/oledfb/termscreen"
	"github.com/GermanBionicSystems/oledfb/websink"
)

// panel is an open display with the resources behind its transport.
type panel struct {
	*mono.Display
	server  *http.Server
	closers []func() error
}

func openPanel() (*panel, error) {
	opts := mono.Opts{
		W:           flags.width,
		H:           flags.height,
		LockTimeout: flags.lockTimeout,
	}
	if flags.mirrorX {
		opts.Flags |= mono.MirrorX
	}
	if flags.mirrorY {
		opts.Flags |= mono.MirrorY
	}

	p := &panel{}
	t, err := p.openTransport(&opts)
	if err != nil {
		_ = p.closeResources()
		return nil, err
	}
	opts.Transport = t
	if p.Display, err = mono.New(&opts); err != nil {
		_ = p.closeResources()
		return nil, err
	}
	f, err := loadFont(flags.font, flags.fontSize)
	if err != nil {
		_ = p.close()
		return nil, err
	}
	if err := p.SetFont(f); err != nil {
		_ = p.close()
		return nil, err
	}
	if flags.contrast >= 0 {
		if flags.contrast > 255 {
			_ = p.close()
			return nil, fmt.Errorf("contrast %d is out of range", flags.contrast)
		}
		if err := p.SetContrast(byte(flags.contrast)); err != nil {
			_ = p.close()
			return nil, err
		}
	}
	return p, nil
}

// openTransport returns the transport selected by --output, nil for none.
func (p *panel) openTransport(opts *mono.Opts) (mono.Transport, error) {
	output := flags.output
	if output == "auto" {
		output = "none"
		if fd := os.Stdout.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			output = "term"
		}
	}
	switch output {
	case "none":
		return nil, nil

	case "term":
		o := termscreen.DefaultOpts
		o.W = opts.W
		o.H = opts.H
		s, err := termscreen.New(&o)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, s.Halt)
		return s, nil

	case "i2c", "spi":
		if _, err := host.Init(); err != nil {
			return nil, err
		}
		o := ssd1306.DefaultOpts
		o.W = opts.W
		o.H = opts.H
		o.ApplyFlags(opts.Flags)
		var dev *ssd1306.Dev
		if output == "i2c" {
			b, err := i2creg.Open(flags.i2cBus)
			if err != nil {
				return nil, err
			}
			p.closers = append(p.closers, b.Close)
			if dev, err = ssd1306.NewI2C(b, &o); err != nil {
				return nil, err
			}
		} else {
			s, err := spireg.Open(flags.spiPort)
			if err != nil {
				return nil, err
			}
			p.closers = append(p.closers, s.Close)
			dc := gpioreg.ByName(flags.dcPin)
			if dc == nil {
				return nil, fmt.Errorf("unknown dc pin %q", flags.dcPin)
			}
			if dev, err = ssd1306.NewSPI(s, dc, &o); err != nil {
				return nil, err
			}
		}
		log.Printf("using %s", dev)
		return dev, nil

	case "web":
		w, err := websink.New(&websink.Options{
			Width:     opts.W,
			Height:    opts.H,
			Format:    flags.format,
			Scale:     flags.scale,
			Keepalive: flags.keepalive,
		})
		if err != nil {
			return nil, err
		}
		p.server = &http.Server{Addr: flags.listen, Handler: w}
		go func() {
			if err := p.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err)
			}
		}()
		log.Printf("serving http://%s/", flags.listen)
		p.closers = append(p.closers, w.Halt)
		return w, nil
	}
	return nil, fmt.Errorf("unknown output %q", flags.output)
}

// waitInterrupt blocks until the process is interrupted.
func (p *panel) waitInterrupt() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
}

// close saves the PNG rendering if requested and releases everything.
func (p *panel) close() error {
	var err error
	if flags.png != "" {
		if img, err2 := p.Image(); err2 != nil {
			err = err2
		} else {
			err = preview.SavePNG(flags.png, img, &preview.Opts{Scale: flags.scale})
		}
	}
	if err2 := p.Display.Close(); err == nil {
		err = err2
	}
	if err2 := p.closeResources(); err == nil {
		err = err2
	}
	return err
}

func (p *panel) closeResources() error {
	var err error
	if p.server != nil {
		if err2 := p.server.Close(); err == nil {
			err = err2
		}
	}
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err2 := p.closers[i](); err == nil {
			err = err2
		}
	}
	return err
}
