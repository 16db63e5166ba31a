// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer shows an image in a shiny window and lets the user
// transform it from the keyboard.
//
// The image is uploaded to a texture once. Every key press listed by
// Bindings changes the viewer's affine.State and schedules a repaint; every
// paint composes the state into a matrix and draws the texture through it.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/ppmview/affine"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/exp/slog"
	"golang.org/x/image/math/f64"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// DefaultSize is the initial window size when Options.Size is zero.
var DefaultSize = image.Point{640, 480}

// Options are optional arguments to New.
type Options struct {
	// Title is the window title. The default is "ppmview".
	Title string
	// Size is the initial window size in pixels.
	Size image.Point
	// Logger receives debug output about events and frames, and errors
	// reported by the driver. The default is slog.Default().
	Logger *slog.Logger
}

// A Viewer displays one image. Its transform state is owned by the
// goroutine calling Run.
type Viewer struct {
	img   image.Image
	title string
	log   *slog.Logger

	state  affine.State
	win    image.Point // current window size
	frames int
}

// New returns a Viewer for img.
func New(img image.Image, opts Options) *Viewer {
	v := &Viewer{
		img:   img,
		title: opts.Title,
		log:   opts.Logger,
		state: affine.Identity(),
		win:   opts.Size,
	}
	if v.title == "" {
		v.title = "ppmview"
	}
	if v.win == (image.Point{}) {
		v.win = DefaultSize
	}
	if v.log == nil {
		v.log = slog.Default()
	}
	return v
}

// State returns the current transform state.
func (v *Viewer) State() affine.State { return v.state }

// Run opens a window on s and shows the image until the user quits or the
// window is closed.
func (v *Viewer) Run(s screen.Screen) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  v.win.X,
		Height: v.win.Y,
		Title:  v.title,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer w.Release()

	sz := v.img.Bounds().Size()
	b, err := s.NewBuffer(sz)
	if err != nil {
		return fmt.Errorf("creating %dx%d buffer: %w", sz.X, sz.Y, err)
	}
	defer b.Release()
	draw.Draw(b.RGBA(), b.Bounds(), v.img, v.img.Bounds().Min, draw.Src)

	t, err := s.NewTexture(sz)
	if err != nil {
		return fmt.Errorf("creating %dx%d texture: %w", sz.X, sz.Y, err)
	}
	defer t.Release()
	t.Upload(image.Point{}, b, b.Bounds())
	v.log.Debug("uploaded texture", "width", sz.X, "height", sz.Y)

	v.loop(w, t)
	v.log.Debug("window closed", "frames", v.frames)
	return nil
}

// window is the part of screen.Window used by the event loop.
type window interface {
	NextEvent() interface{}
	Send(event interface{})
	Fill(dr image.Rectangle, src color.Color, op draw.Op)
	Draw(src2dst f64.Aff3, src screen.Texture, sr image.Rectangle, op draw.Op, opts *screen.DrawOptions)
	Publish() screen.PublishResult
}

func (v *Viewer) loop(w window, t screen.Texture) {
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case key.Event:
			ev, ok := Lookup(e)
			if !ok {
				continue
			}
			v.log.Debug("key", "code", e.Code, "event", ev)
			if ev == affine.Quit {
				return
			}
			v.state.Apply(ev)
			w.Send(paint.Event{})

		case paint.Event:
			v.paint(w, t)

		case size.Event:
			v.win = e.Size()
			v.log.Debug("resized", "width", e.WidthPx, "height", e.HeightPx)

		case error:
			v.log.Error("window event", "err", e)
		}
	}
}

func (v *Viewer) paint(w window, t screen.Texture) {
	sz := v.img.Bounds().Size()
	src2dst := ScreenTransform(v.state.Matrix(), sz, v.win)
	w.Fill(image.Rectangle{Max: v.win}, color.Black, screen.Src)
	w.Draw(src2dst, t, image.Rectangle{Max: sz}, screen.Src, nil)
	w.Publish()
	v.frames++
}
