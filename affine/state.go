// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affine holds the interactive 2D transform of an image viewer: a
// small set of scalars changed one step at a time by discrete events, and
// the 4×4 matrix composed from them.
package affine

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Step sizes applied by a single event.
const (
	ScaleFactor   = 2
	TranslateStep = 0.1
	ShearStep     = 0.1
	RotateStep    = math.Pi / 2
)

// An Event is a discrete request to change a State.
type Event int

const (
	None Event = iota
	ScaleUp
	ScaleDown
	TranslateUp
	TranslateDown
	TranslateLeft
	TranslateRight
	ShearUp
	ShearDown
	ShearLeft
	ShearRight
	RotateClockwise
	RotateCounterclockwise
	// Quit asks the viewer to stop. It does not change a State.
	Quit
)

var eventNames = [...]string{
	None:                   "None",
	ScaleUp:                "ScaleUp",
	ScaleDown:              "ScaleDown",
	TranslateUp:            "TranslateUp",
	TranslateDown:          "TranslateDown",
	TranslateLeft:          "TranslateLeft",
	TranslateRight:         "TranslateRight",
	ShearUp:                "ShearUp",
	ShearDown:              "ShearDown",
	ShearLeft:              "ShearLeft",
	ShearRight:             "ShearRight",
	RotateClockwise:        "RotateClockwise",
	RotateCounterclockwise: "RotateCounterclockwise",
	Quit:                   "Quit",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// State is the current transform. Rotation is in radians and is never
// normalized. Scale is never clamped: repeated ScaleDown events drive it
// towards zero.
type State struct {
	Scale                  float64
	TranslateX, TranslateY float64
	ShearX, ShearY         float64
	Rotation               float64
}

// Identity returns the state whose matrix is the identity.
func Identity() State {
	return State{Scale: 1}
}

// Apply changes s according to e. Quit, None and unknown events leave s
// unchanged.
func (s *State) Apply(e Event) {
	switch e {
	case ScaleUp:
		s.Scale *= ScaleFactor
	case ScaleDown:
		s.Scale /= ScaleFactor
	case TranslateUp:
		s.TranslateY += TranslateStep
	case TranslateDown:
		s.TranslateY -= TranslateStep
	case TranslateRight:
		s.TranslateX += TranslateStep
	case TranslateLeft:
		s.TranslateX -= TranslateStep
	case ShearUp:
		s.ShearY += ShearStep
	case ShearDown:
		s.ShearY -= ShearStep
	case ShearRight:
		s.ShearX += ShearStep
	case ShearLeft:
		s.ShearX -= ShearStep
	case RotateClockwise:
		s.Rotation -= RotateStep
	case RotateCounterclockwise:
		s.Rotation += RotateStep
	}
}

// Matrix composes s into a single matrix. The factors are always multiplied
// in the same order, rotation·shear·scale·translation, and the result is
// built from scratch on every call. Scale leaves the Z axis alone.
func (s State) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(s.Rotation).
		Mul4(Shear(s.ShearX, s.ShearY)).
		Mul4(mgl64.Scale3D(s.Scale, s.Scale, 1)).
		Mul4(mgl64.Translate3D(s.TranslateX, s.TranslateY, 0))
}
