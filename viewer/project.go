// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f64"
)

// ScreenTransform returns the src2dst transform that draws an image of size
// img into a window of size win through the matrix m.
//
// The image first fills the square [-1, 1]×[-1, 1] with its top row at y=1,
// then m maps those coordinates (as (x, y, 0, 1), perspective ignored) and
// the square is stretched back over the window. The identity matrix
// therefore draws the image over the whole window.
func ScreenTransform(m mgl64.Mat4, img, win image.Point) f64.Aff3 {
	toSquare := mgl64.Translate2D(-1, 1).Mul3(mgl64.Scale2D(2/float64(img.X), -2/float64(img.Y)))
	// Rows 0 and 1 of m, dropping the Z column. Mat3 is column-major.
	xy := mgl64.Mat3{
		m.At(0, 0), m.At(1, 0), 0,
		m.At(0, 1), m.At(1, 1), 0,
		m.At(0, 3), m.At(1, 3), 1,
	}
	w, h := float64(win.X)/2, float64(win.Y)/2
	toWindow := mgl64.Translate2D(w, h).Mul3(mgl64.Scale2D(w, -h))
	return aff3(toWindow.Mul3(xy).Mul3(toSquare))
}

// aff3 returns the top two rows of a 2D homogeneous transform.
func aff3(m mgl64.Mat3) f64.Aff3 {
	return f64.Aff3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
	}
}
