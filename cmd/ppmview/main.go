// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The ppmview command displays a P3 or P6 pixmap in a window and lets the
// keyboard scale, move, shear and rotate it.
//
// Usage:
//
//	ppmview [-v] [-json] [-width=640] [-height=480] [-title=name] file.ppm
//
// Keys:
//
//	Z, X              scale up, down
//	arrow keys        move
//	W, S              shear vertically
//	D, A              shear horizontally
//	comma, period     rotate a quarter turn counterclockwise, clockwise
//	Q, Escape         quit
//
// ppmview exits with status 1 if the file cannot be read or is not a valid
// pixmap with 8-bit samples.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/exp/mmap"
	"golang.org/x/exp/ppmview/ppm"
	"golang.org/x/exp/ppmview/viewer"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/exp/slog"
)

var (
	verboseFlag = flag.Bool("v", false, "log key presses and frames")
	jsonFlag    = flag.Bool("json", false, "write logs as JSON")
	widthFlag   = flag.Int("width", viewer.DefaultSize.X, "initial window `width` in pixels")
	heightFlag  = flag.Int("height", viewer.DefaultSize.Y, "initial window `height` in pixels")
	titleFlag   = flag.String("title", "", "window `title` (default the file name)")
)

func main() {
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, *verboseFlag, *jsonFlag)

	path := flag.Arg(0)
	p, err := load(path)
	if err != nil {
		logger.Error("cannot load image", "err", err.Error())
		os.Exit(1)
	}
	logger.Info("decoded image", "file", path, "format", p.Format, "width", p.Width, "height", p.Height, "max", p.Max)

	title := *titleFlag
	if title == "" {
		title = filepath.Base(path)
	}
	v := viewer.New(p, viewer.Options{
		Title:  title,
		Size:   image.Point{*widthFlag, *heightFlag},
		Logger: logger,
	})

	var runErr error
	driver.Main(func(s screen.Screen) {
		runErr = v.Run(s)
	})
	if runErr != nil {
		logger.Error("viewer failed", "err", runErr.Error())
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ppmview [flags] file.ppm")
	fmt.Fprintln(w, "\nFlags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w, "\nKeys:")
	for _, b := range viewer.Bindings() {
		fmt.Fprintf(w, "  %-12s %v\n", b.Key, b.Event)
	}
}

func newLogger(w io.Writer, verbose, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// load decodes the pixmap in the named file. The file is mapped into memory
// and unmapped before load returns.
func load(path string) (*ppm.Pixmap, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	p, err := ppm.Decode(io.NewSectionReader(r, 0, int64(r.Len())))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
