// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppm implements a decoder and encoder for Netpbm pixmap images with
// 8-bit samples, in both the plain (P3) and raw (P6) encodings.
//
// Decoding a pixmap also works through image.Decode, since this package
// registers the "ppm" format on initialization.
package ppm

import (
	"errors"
	"image"
	"image/color"
	"io"
)

// Format is the pixel encoding of a pixmap: the digit following the 'P'
// of the magic number.
type Format byte

const (
	// Plain pixmaps store samples as ASCII decimal numbers separated by
	// whitespace.
	Plain Format = '3'
	// Raw pixmaps store samples as consecutive bytes.
	Raw Format = '6'
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "P3"
	case Raw:
		return "P6"
	}
	return "P" + string(rune(f))
}

var (
	// ErrNotPixmap means the input does not start with the 'P' of a
	// Netpbm magic number.
	ErrNotPixmap = errors.New("not a pixmap")
	// ErrUnsupportedFormat means the magic number is not P3 or P6.
	ErrUnsupportedFormat = errors.New("unsupported pixmap format")
	// ErrUnsupportedDepth means the maximum sample value does not fit in
	// 8 bits.
	ErrUnsupportedDepth = errors.New("unsupported sample depth")
	// ErrTruncated means the input ended before the header or all of the
	// pixel data could be read.
	ErrTruncated = errors.New("truncated input")
	// ErrMalformed means the header or pixel data is not well formed.
	ErrMalformed = errors.New("malformed pixmap")
	// ErrTooLarge means the declared dimensions exceed the pixel limit.
	ErrTooLarge = errors.New("pixmap too large")
)

// maxPixels bounds width*height so that a short header cannot request an
// enormous allocation.
const maxPixels = 1 << 26

// Pixmap is a decoded pixmap. Pix holds the red, green and blue samples of
// each pixel, row by row starting at the top left, so that
// len(Pix) == 3*Width*Height. No sample exceeds Max.
type Pixmap struct {
	Width, Height int
	Max           int
	Format        Format
	Pix           []uint8
}

// RGB returns the samples of the pixel at (x, y).
func (p *Pixmap) RGB(x, y int) (r, g, b uint8) {
	i := 3 * (y*p.Width + x)
	s := p.Pix[i : i+3 : i+3]
	return s[0], s[1], s[2]
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle { return image.Rect(0, 0, p.Width, p.Height) }

// At implements image.Image. Samples are scaled from [0, Max] to [0, 255].
func (p *Pixmap) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := p.RGB(x, y)
	if p.Max != 0 && p.Max != 255 {
		r, g, b = p.scale(r), p.scale(g), p.scale(b)
	}
	return color.RGBA{r, g, b, 0xff}
}

func (p *Pixmap) scale(v uint8) uint8 {
	return uint8((int(v)*255 + p.Max/2) / p.Max)
}

func init() {
	image.RegisterFormat("ppm", "P3", decodeImage, DecodeConfig)
	image.RegisterFormat("ppm", "P6", decodeImage, DecodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	p, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return p, nil
}
