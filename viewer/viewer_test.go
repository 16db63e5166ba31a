// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/ppmview/affine"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/exp/slog"
	"golang.org/x/image/math/f64"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// fakeWindow replays a fixed list of events, then reports that the window
// died. Events sent to it are queued after the remaining ones.
type fakeWindow struct {
	events    []interface{}
	fills     []image.Rectangle
	draws     []f64.Aff3
	published int
}

func (w *fakeWindow) NextEvent() interface{} {
	if len(w.events) == 0 {
		return lifecycle.Event{To: lifecycle.StageDead}
	}
	e := w.events[0]
	w.events = w.events[1:]
	return e
}

func (w *fakeWindow) Send(e interface{}) { w.events = append(w.events, e) }

func (w *fakeWindow) Fill(dr image.Rectangle, src color.Color, op draw.Op) {
	w.fills = append(w.fills, dr)
}

func (w *fakeWindow) Draw(src2dst f64.Aff3, src screen.Texture, sr image.Rectangle, op draw.Op, opts *screen.DrawOptions) {
	w.draws = append(w.draws, src2dst)
}

func (w *fakeWindow) Publish() screen.PublishResult {
	w.published++
	return screen.PublishResult{}
}

func press(c key.Code) key.Event   { return key.Event{Code: c, Direction: key.DirPress} }
func release(c key.Code) key.Event { return key.Event{Code: c, Direction: key.DirRelease} }

func newTestViewer(size image.Point, logs *bytes.Buffer) *Viewer {
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	h := slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})
	return New(img, Options{Size: size, Logger: slog.New(h)})
}

func TestLoopAppliesKeys(t *testing.T) {
	var logs bytes.Buffer
	v := newTestViewer(image.Point{100, 100}, &logs)
	w := &fakeWindow{events: []interface{}{
		press(key.CodeZ),
		release(key.CodeZ),
		press(key.CodeZ),
		press(key.CodeRightArrow),
		press(key.CodeComma),
	}}
	v.loop(w, nil)

	want := affine.State{Scale: 4, TranslateX: 0.1, Rotation: affine.RotateStep}
	if diff := cmp.Diff(want, v.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if len(w.draws) != 4 || w.published != 4 {
		t.Errorf("got %d draws and %d publishes, want one of each per press", len(w.draws), w.published)
	}
	// Paints queued behind the presses all see the final state.
	wantDraw := ScreenTransform(want.Matrix(), image.Point{100, 100}, image.Point{100, 100})
	if diff := cmp.Diff(wantDraw, w.draws[len(w.draws)-1], approx); diff != "" {
		t.Errorf("last draw mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "event=ScaleUp") {
		t.Errorf("debug log does not mention ScaleUp:\n%s", logs.String())
	}
}

func TestLoopQuit(t *testing.T) {
	for _, c := range []key.Code{key.CodeQ, key.CodeEscape} {
		var logs bytes.Buffer
		v := newTestViewer(image.Point{10, 10}, &logs)
		w := &fakeWindow{events: []interface{}{
			press(c),
			press(key.CodeZ),
		}}
		v.loop(w, nil)
		if len(w.events) != 1 {
			t.Errorf("%v: loop consumed events after quit; %d left, want 1", c, len(w.events))
		}
		if got := v.State(); got != affine.Identity() {
			t.Errorf("%v: state changed after quit: %+v", c, got)
		}
	}
}

func TestLoopIgnoresUnboundKeys(t *testing.T) {
	var logs bytes.Buffer
	v := newTestViewer(image.Point{10, 10}, &logs)
	w := &fakeWindow{events: []interface{}{
		press(key.CodeB),
		press(key.CodeSpacebar),
		key.Event{Code: key.CodeZ, Direction: key.DirNone},
	}}
	v.loop(w, nil)
	if got := v.State(); got != affine.Identity() {
		t.Errorf("state = %+v, want identity", got)
	}
	if len(w.draws) != 0 {
		t.Errorf("got %d draws, want none", len(w.draws))
	}
}

func TestLoopResize(t *testing.T) {
	var logs bytes.Buffer
	v := newTestViewer(image.Point{50, 20}, &logs)
	w := &fakeWindow{events: []interface{}{
		size.Event{WidthPx: 200, HeightPx: 80},
		paint.Event{},
	}}
	v.loop(w, nil)
	if len(w.fills) != 1 || w.fills[0] != image.Rect(0, 0, 200, 80) {
		t.Errorf("fills = %v, want the whole 200x80 window", w.fills)
	}
	want := f64.Aff3{4, 0, 0, 0, 4, 0}
	if diff := cmp.Diff(want, w.draws[0], approx); diff != "" {
		t.Errorf("draw mismatch (-want +got):\n%s", diff)
	}
}

func TestLoopLogsErrors(t *testing.T) {
	var logs bytes.Buffer
	v := newTestViewer(image.Point{10, 10}, &logs)
	w := &fakeWindow{events: []interface{}{
		errors.New("driver hiccup"),
		press(key.CodeX),
	}}
	v.loop(w, nil)
	if !strings.Contains(logs.String(), "driver hiccup") {
		t.Errorf("error event not logged:\n%s", logs.String())
	}
	if got := v.State().Scale; got != 0.5 {
		t.Errorf("Scale = %v, want 0.5; the loop should continue after an error event", got)
	}
}

func TestNewDefaults(t *testing.T) {
	v := New(image.NewRGBA(image.Rect(0, 0, 1, 1)), Options{})
	if v.win != DefaultSize {
		t.Errorf("window size = %v, want %v", v.win, DefaultSize)
	}
	if v.title != "ppmview" {
		t.Errorf("title = %q, want %q", v.title, "ppmview")
	}
	if v.log == nil {
		t.Error("logger is nil")
	}
}
