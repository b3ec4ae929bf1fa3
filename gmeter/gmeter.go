// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gmeter renders three-axis acceleration readings as colored bars on
// the terminal (stdout) using ANSI color codes.
//
// Useful to eyeball accelerometer output without attaching a display.
package gmeter

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for the meter.
type Opts struct {
	// Width is the number of cells per channel bar. Defaults to 20.
	Width int
	// FullScale is the g magnitude that fills a bar completely. Defaults to 2.
	FullScale float64
	// Palette used to map bar colors to terminal colors.
	Palette *ansi256.Palette
	// Writer is the destination. Leave nil to write to a colorable stdout.
	Writer io.Writer

	_ struct{}
}

// Meter draws per-axis g readings in place on a single terminal line.
type Meter struct {
	w       io.Writer
	width   int
	full    float64
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Meter that displays at the console.
func New(opts *Opts) *Meter {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	width := opts.Width
	if width <= 0 {
		width = 20
	}
	full := opts.FullScale
	if full <= 0 {
		full = 2
	}
	return &Meter{
		w:       w,
		width:   width,
		full:    full,
		palette: *p,
	}
}

func (m *Meter) String() string {
	return "GMeter"
}

// Update redraws the three channel bars in place.
func (m *Meter) Update(x, y, z float64) error {
	m.buf.Reset()
	_, _ = m.buf.WriteString("\r\033[0m")
	m.channel('X', x)
	m.channel('Y', y)
	m.channel('Z', z)
	_, _ = m.buf.WriteString("\033[0m ")
	_, err := m.buf.WriteTo(m.w)
	return err
}

// Halt resets the terminal attributes so the shell is not corrupted.
func (m *Meter) Halt() error {
	_, err := m.w.Write([]byte("\n\033[0m"))
	return err
}

func (m *Meter) channel(name byte, g float64) {
	fmt.Fprintf(&m.buf, "%c %+6.3fg ", name, g)
	mag := math.Abs(g) / m.full
	if mag > 1 {
		mag = 1
	}
	lit := int(mag*float64(m.width) + 0.5)
	for i := 0; i < m.width; i++ {
		c := color.NRGBA{0x28, 0x28, 0x28, 255}
		if i < lit {
			switch f := float64(i) / float64(m.width); {
			case f < 0.5:
				c = color.NRGBA{0x00, 0xC0, 0x00, 255}
			case f < 0.8:
				c = color.NRGBA{0xC0, 0xC0, 0x00, 255}
			default:
				c = color.NRGBA{0xC0, 0x00, 0x00, 255}
			}
		}
		_, _ = io.WriteString(&m.buf, m.palette.Block(c))
	}
	_, _ = m.buf.WriteString("\033[0m ")
}

var _ fmt.Stringer = &Meter{}
