// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command pixedit is a minimal raster editor window built on rasteredit.
//
// Usage:
//
//	pixedit [flags] [image.png]
//
// The image is created with -size when it does not exist. Ctrl+S saves it
// and records a history snapshot; B P E R W L switch tools; [ and ] change
// the tool size.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/rasteredit"
	"github.com/gogpu/rasteredit/history/store"
	"github.com/gogpu/rasteredit/input"
	"github.com/gogpu/rasteredit/internal/cli"
	"github.com/gogpu/rasteredit/pixel"
	"github.com/gogpu/rasteredit/selection"
	"github.com/gogpu/rasteredit/surface"
)

// Version is overridden at build time with -ldflags "-X main.Version=x.y.z".
var Version = "0.1.0-dev"

type config struct {
	path       string
	width      int
	height     int
	scale      int
	surface    string
	mode       input.Mode
	color      pixel.Color
	size       float64
	tolerance  int
	historyDB  string
	maxHistory int
	watch      bool
	logLevel   string
	logJSON    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "pixedit: %v\n", err)
		return 2
	}

	level, err := cli.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixedit: %v\n", err)
		return 2
	}
	log := cli.NewLogger(os.Stderr, level, cfg.logJSON)
	rasteredit.SetLogger(log)

	a, err := newApp(cfg, log)
	if err != nil {
		log.Error("pixedit: start", "err", err)
		return 1
	}
	defer a.Close()

	w, h := a.engine.Buffer().Width(), a.engine.Buffer().Height()
	ebiten.SetWindowSize(w*cfg.scale, h*cfg.scale)
	ebiten.SetWindowTitle("pixedit - " + cfg.path)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("pixedit: run", "err", err)
		return 1
	}
	return 0
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("pixedit", flag.ContinueOnError)
	size := fs.String("size", "512x512", "canvas size WxH for new images")
	scale := fs.Int("scale", 1, "window zoom factor")
	surf := fs.String("surface", "texture", "blit backend: "+strings.Join(surface.Backends(), ", "))
	tool := fs.String("tool", "brush", "initial tool: brush, pencil, eraser, rect, wand, polygon")
	color := fs.String("color", "#000000", "paint color as #RRGGBB or #RRGGBBAA")
	toolSize := fs.Float64("brush-size", input.DefaultSize, "tool size in pixels")
	tolerance := fs.Int("tolerance", selection.DefaultTolerance, "magic wand per-channel tolerance")
	historyDB := fs.String("history", cli.DefaultHistoryPath(), "snapshot database; empty disables history snapshots")
	maxHistory := fs.Int("max-history", store.DefaultMaxPerKey, "snapshots kept per image")
	watchFile := fs.Bool("watch", true, "reload the image when another program changes it")
	logLevel := fs.String("log", "warn", "log level: debug, info, warn, error")
	logJSON := fs.Bool("log-json", false, "always log JSON")
	version := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if *version {
		fmt.Printf("pixedit %s\n", Version)
		return config{}, flag.ErrHelp
	}

	cfg := config{
		path:       "untitled.png",
		scale:      max(1, *scale),
		surface:    *surf,
		size:       *toolSize,
		tolerance:  *tolerance,
		historyDB:  *historyDB,
		maxHistory: *maxHistory,
		watch:      *watchFile,
		logLevel:   *logLevel,
		logJSON:    *logJSON,
	}
	if fs.NArg() > 0 {
		cfg.path = fs.Arg(0)
	}

	var err error
	if cfg.width, cfg.height, err = parseSize(*size); err != nil {
		return config{}, err
	}
	var ok bool
	if cfg.mode, ok = input.ParseMode(*tool); !ok {
		return config{}, fmt.Errorf("unknown tool %q", *tool)
	}
	if cfg.color, ok = pixel.ParseHex(*color); !ok {
		return config{}, fmt.Errorf("invalid color %q", *color)
	}
	return cfg, nil
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}
