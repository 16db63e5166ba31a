// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affine

import "github.com/go-gl/mathgl/mgl64"

// Shear returns the identity with x in row 0, column 1 and y in row 1,
// column 0, so that it maps (px, py) to (px + x*py, py + y*px).
func Shear(x, y float64) mgl64.Mat4 {
	m := mgl64.Ident4()
	m.Set(0, 1, x)
	m.Set(1, 0, y)
	return m
}
