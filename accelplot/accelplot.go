// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accelplot renders a rolling window of three-axis acceleration
// samples as a labelled trace image.
//
// The output is a plain image.Image, so it can be pushed to a small OLED or
// e-paper display driver or encoded to a file.
package accelplot

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// margin kept clear on the left for axis labels.
const labelMargin = 28

// Plot accumulates samples and draws them. It is not safe for concurrent
// use.
type Plot struct {
	w, h    int
	full    float64
	face    font.Face
	samples [][3]float64
	max     int
}

// New returns a Plot rendering w×h pixel images. fullScaleG is the g
// magnitude at the top and bottom edges; 0 or negative selects ±2g.
func New(w, h int, fullScaleG float64) (*Plot, error) {
	if w <= labelMargin+1 || h <= 0 {
		return nil, errors.New("accelplot: image dimensions too small")
	}
	if fullScaleG <= 0 {
		fullScaleG = 2
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Plot{
		w:    w,
		h:    h,
		full: fullScaleG,
		face: truetype.NewFace(f, &truetype.Options{Size: 10}),
		max:  w - labelMargin,
	}, nil
}

// Add appends one sample, dropping the oldest once the window is full.
func (p *Plot) Add(x, y, z float64) {
	p.samples = append(p.samples, [3]float64{x, y, z})
	if len(p.samples) > p.max {
		p.samples = p.samples[len(p.samples)-p.max:]
	}
}

// Reset drops the sample window.
func (p *Plot) Reset() {
	p.samples = p.samples[:0]
}

// Render draws the current window and returns the image.
func (p *Plot) Render() image.Image {
	dc := gg.NewContext(p.w, p.h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(p.face)

	// Zero line and full-scale grid lines.
	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1)
	for _, g := range []float64{-p.full, 0, p.full} {
		y := p.yFor(g)
		dc.DrawLine(labelMargin, y, float64(p.w), y)
		dc.Stroke()
	}
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.DrawStringAnchored(fmt.Sprintf("%+gg", p.full), 2, p.yFor(p.full), 0, 0.4)
	dc.DrawStringAnchored("0", 2, p.yFor(0), 0, 0.4)
	dc.DrawStringAnchored(fmt.Sprintf("%+gg", -p.full), 2, p.yFor(-p.full), 0, 0.4)

	traces := []struct {
		name    string
		r, g, b float64
	}{
		{"X", 0.8, 0.1, 0.1},
		{"Y", 0.1, 0.6, 0.1},
		{"Z", 0.1, 0.1, 0.8},
	}
	for axis, tr := range traces {
		dc.SetRGB(tr.r, tr.g, tr.b)
		dc.DrawStringAnchored(tr.name, float64(labelMargin+2+12*axis), 10, 0, 0.4)
		if len(p.samples) < 2 {
			continue
		}
		dc.SetLineWidth(1.5)
		for i := 1; i < len(p.samples); i++ {
			x0 := float64(labelMargin + i - 1)
			x1 := float64(labelMargin + i)
			dc.DrawLine(x0, p.yFor(p.samples[i-1][axis]), x1, p.yFor(p.samples[i][axis]))
		}
		dc.Stroke()
	}
	return dc.Image()
}

// yFor maps a g value to a pixel row, clamped to the image.
func (p *Plot) yFor(g float64) float64 {
	half := float64(p.h) / 2
	y := half - g/p.full*(half-4)
	if y < 0 {
		y = 0
	}
	if y > float64(p.h) {
		y = float64(p.h)
	}
	return y
}
