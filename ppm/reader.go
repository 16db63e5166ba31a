// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/xerrors"
)

// maxNumber bounds every decimal number in the input. Longer numbers
// saturate at maxNumber, which is above every limit the header checks, so
// they are classified by those checks like any other value out of range.
const maxNumber = 1 << 30

type decoder struct {
	r   *bufio.Reader
	off int64 // offset of the next unread byte

	format             Format
	width, height, max int
}

func newDecoder(r io.Reader) *decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &decoder{r: br}
}

// Decode reads a P3 or P6 pixmap from r.
//
// The returned error wraps one of ErrNotPixmap, ErrUnsupportedFormat,
// ErrUnsupportedDepth, ErrTruncated, ErrMalformed or ErrTooLarge when the
// input is at fault, or the error returned by r. Decode does not close r.
func Decode(r io.Reader) (*Pixmap, error) {
	d := newDecoder(r)
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	p := &Pixmap{
		Width:  d.width,
		Height: d.height,
		Max:    d.max,
		Format: d.format,
		Pix:    make([]uint8, 3*d.width*d.height),
	}
	var err error
	switch d.format {
	case Raw:
		err = d.readRaw(p.Pix)
	case Plain:
		err = d.readPlain(p.Pix)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DecodeConfig returns the dimensions of a pixmap without reading its pixel
// data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	d := newDecoder(r)
	if err := d.readHeader(); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      d.width,
		Height:     d.height,
	}, nil
}

func (d *decoder) readHeader() error {
	c, err := d.readByte("magic number")
	if err != nil {
		return err
	}
	if c != 'P' {
		return d.errorf(ErrNotPixmap, "magic number starts with %q", c)
	}
	c, err = d.readByte("magic number")
	if err != nil {
		return err
	}
	d.format = Format(c)
	if d.format != Plain && d.format != Raw {
		return d.errorf(ErrUnsupportedFormat, "magic number %q", []byte{'P', c})
	}
	// The magic number must stand alone: "P65" is not a P6 header.
	c, err = d.readByte("header")
	if err != nil {
		return err
	}
	if !isSpace(c) && c != '#' {
		return d.errorf(ErrUnsupportedFormat, "magic number %q", []byte{'P', byte(d.format), c})
	}
	d.unreadByte()

	if d.width, err = d.readHeaderNumber("width", true); err != nil {
		return err
	}
	if d.height, err = d.readHeaderNumber("height", true); err != nil {
		return err
	}
	// Exactly one whitespace byte separates the maximum from the pixel data.
	if d.max, err = d.readHeaderNumber("maximum sample value", false); err != nil {
		return err
	}

	switch {
	case d.max >= 256:
		return d.errorf(ErrUnsupportedDepth, "maximum sample value %d", d.max)
	case d.max == 0:
		return d.errorf(ErrMalformed, "maximum sample value 0")
	case d.width == 0 || d.height == 0:
		return d.errorf(ErrMalformed, "image size %dx%d", d.width, d.height)
	case d.width > maxPixels/d.height:
		return d.errorf(ErrTooLarge, "image size %dx%d exceeds %d pixels", d.width, d.height, maxPixels)
	}
	return nil
}

// readHeaderNumber skips whitespace and comments, then reads an unsigned
// decimal number. If comment is set, the number may be followed directly by
// a comment instead of whitespace.
func (d *decoder) readHeaderNumber(what string, comment bool) (int, error) {
	for {
		c, err := d.readByte(what)
		if err != nil {
			return 0, err
		}
		switch {
		case isSpace(c):
		case c == '#':
			if err := d.skipComment(); err != nil {
				return 0, err
			}
		case isDigit(c):
			d.unreadByte()
			return d.readNumber(what, comment)
		default:
			return 0, d.errorf(ErrMalformed, "unexpected %q at offset %d reading %s", c, d.off-1, what)
		}
	}
}

// skipComment discards the rest of a comment line, including the newline.
// A comment must end with a newline: running into the end of the input means
// the header was cut short.
func (d *decoder) skipComment() error {
	for {
		c, err := d.readByte("comment")
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

// readNumber reads the digits of a decimal number and consumes the single
// byte that terminates it. The end of the input also terminates a number.
func (d *decoder) readNumber(what string, comment bool) (int, error) {
	n := 0
	for digits := 0; ; digits++ {
		c, err := d.r.ReadByte()
		if err == io.EOF && digits > 0 {
			return n, nil
		}
		if err != nil {
			return 0, d.fail(what, err)
		}
		d.off++
		switch {
		case isDigit(c):
			if n <= (maxNumber-9)/10 {
				n = 10*n + int(c-'0')
			} else {
				n = maxNumber
			}
			continue
		case digits == 0:
			return 0, d.errorf(ErrMalformed, "unexpected %q at offset %d reading %s", c, d.off-1, what)
		case isSpace(c):
			return n, nil
		case c == '#' && comment:
			d.unreadByte()
			return n, nil
		}
		return 0, d.errorf(ErrMalformed, "unexpected %q at offset %d after %s", c, d.off-1, what)
	}
}

func (d *decoder) readRaw(pix []uint8) error {
	n, err := io.ReadFull(d.r, pix)
	d.off += int64(n)
	if err != nil {
		return d.fail(fmt.Sprintf("pixel %d of %d", n/3, len(pix)/3), err)
	}
	if d.max < 255 {
		for i, v := range pix {
			if int(v) > d.max {
				return d.sampleErr(i, int(v))
			}
		}
	}
	return nil
}

func (d *decoder) readPlain(pix []uint8) error {
	for i := range pix {
		c, err := d.r.ReadByte()
		for err == nil && isSpace(c) {
			d.off++
			c, err = d.r.ReadByte()
		}
		if err != nil {
			return d.fail(fmt.Sprintf("pixel %d of %d", i/3, len(pix)/3), err)
		}
		d.r.UnreadByte()
		v, err := d.readNumber("pixel data", false)
		if err != nil {
			return err
		}
		if v > d.max {
			return d.sampleErr(i, v)
		}
		pix[i] = uint8(v)
	}
	return nil
}

func (d *decoder) sampleErr(i, v int) error {
	return d.errorf(ErrMalformed, "sample %d of pixel %d exceeds maximum %d", v, i/3, d.max)
}

func (d *decoder) readByte(what string) (byte, error) {
	c, err := d.r.ReadByte()
	if err != nil {
		return 0, d.fail(what, err)
	}
	d.off++
	return c, nil
}

// unreadByte pushes back the byte returned by the last readByte.
func (d *decoder) unreadByte() {
	d.r.UnreadByte()
	d.off--
}

// fail reports a read error, turning a premature end of input into
// ErrTruncated.
func (d *decoder) fail(what string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = ErrTruncated
	}
	return xerrors.Errorf("ppm: reading %s at offset %d: %w", what, d.off, err)
}

func (d *decoder) errorf(kind error, format string, args ...interface{}) error {
	return xerrors.Errorf("ppm: %s: %w", fmt.Sprintf(format, args...), kind)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
