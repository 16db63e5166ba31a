// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/ppmview/affine"
	"golang.org/x/exp/slices"
	"golang.org/x/mobile/event/key"
)

var bindings = map[key.Code]affine.Event{
	key.CodeQ:      affine.Quit,
	key.CodeEscape: affine.Quit,

	key.CodeZ: affine.ScaleUp,
	key.CodeX: affine.ScaleDown,

	key.CodeUpArrow:    affine.TranslateUp,
	key.CodeDownArrow:  affine.TranslateDown,
	key.CodeRightArrow: affine.TranslateRight,
	key.CodeLeftArrow:  affine.TranslateLeft,

	key.CodeW: affine.ShearUp,
	key.CodeS: affine.ShearDown,
	key.CodeD: affine.ShearRight,
	key.CodeA: affine.ShearLeft,

	key.CodeComma:    affine.RotateCounterclockwise,
	key.CodeFullStop: affine.RotateClockwise,
}

// Lookup returns the transform event bound to a key press. Releases, repeats
// and unbound keys report false.
func Lookup(e key.Event) (affine.Event, bool) {
	if e.Direction != key.DirPress {
		return affine.None, false
	}
	ev, ok := bindings[e.Code]
	return ev, ok
}

// A Binding pairs a key name with the event it triggers.
type Binding struct {
	Key   string
	Event affine.Event
}

// Bindings returns every key binding, ordered by key code.
func Bindings() []Binding {
	codes := maps.Keys(bindings)
	slices.Sort(codes)
	bs := make([]Binding, len(codes))
	for i, c := range codes {
		bs[i] = Binding{Key: strings.TrimPrefix(c.String(), "Code"), Event: bindings[c]}
	}
	return bs
}
