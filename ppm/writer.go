// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/xerrors"
)

// Encode writes p to w in the encoding given by p.Format. A zero Max is
// written as 255.
//
// Encode writes nothing if p could not be decoded again: the returned error
// wraps ErrMalformed, ErrUnsupportedDepth or ErrUnsupportedFormat.
func Encode(w io.Writer, p *Pixmap) error {
	if p.Width <= 0 || p.Height <= 0 || len(p.Pix) != 3*p.Width*p.Height {
		return xerrors.Errorf("ppm: cannot encode %dx%d image with %d samples: %w", p.Width, p.Height, len(p.Pix), ErrMalformed)
	}
	max := p.Max
	if max == 0 {
		max = 255
	}
	if max < 0 || max > 255 {
		return xerrors.Errorf("ppm: cannot encode maximum sample value %d: %w", max, ErrUnsupportedDepth)
	}
	if p.Format != Plain && p.Format != Raw {
		return xerrors.Errorf("ppm: cannot encode format %v: %w", p.Format, ErrUnsupportedFormat)
	}
	if max < 255 {
		for i, v := range p.Pix {
			if int(v) > max {
				return xerrors.Errorf("ppm: cannot encode sample %d of pixel %d above maximum %d: %w", v, i/3, max, ErrMalformed)
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P%c\n%d %d\n%d\n", p.Format, p.Width, p.Height, max)
	if p.Format == Raw {
		bw.Write(p.Pix)
		return bw.Flush()
	}

	// One pixel per line keeps lines well under the 70 characters that
	// plain pixmaps allow.
	buf := make([]byte, 0, len("255 255 255\n"))
	for i := 0; i < len(p.Pix); i += 3 {
		buf = strconv.AppendUint(buf[:0], uint64(p.Pix[i]), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, uint64(p.Pix[i+1]), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, uint64(p.Pix[i+2]), 10)
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	return bw.Flush()
}
