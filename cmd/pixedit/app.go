// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/rasteredit"
	"github.com/gogpu/rasteredit/history/store"
	"github.com/gogpu/rasteredit/imageio"
	"github.com/gogpu/rasteredit/input"
	"github.com/gogpu/rasteredit/surface"
	"github.com/gogpu/rasteredit/watch"
)

var backdrop = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

// app is the ebiten.Game driving one engine.
//
// Update is the rendering tick: it feeds polled input to the controller and
// then ticks the frame scheduler, so all engine work happens on the game
// goroutine.
type app struct {
	log     *slog.Logger
	engine  *rasteredit.Engine
	sched   *rasteredit.ManualScheduler
	ctrl    *input.Controller
	poller  *input.Poller
	history *store.Store
	watcher *watch.Watcher

	backend string
	surf    surface.Surface
	cpu     *surface.ImageSurface

	canvas      *ebiten.Image
	needsRedraw bool
	reloads     chan string
	commits     []<-chan error
	keys        []ebiten.Key
}

func newApp(cfg config, log *slog.Logger) (*app, error) {
	a := &app{
		log:     log,
		backend: cfg.surface,
		sched:   &rasteredit.ManualScheduler{},
		reloads: make(chan string, 1),
	}

	path, err := filepath.Abs(cfg.path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", cfg.path, err)
	}

	opts := []rasteredit.Option{
		rasteredit.WithScheduler(a.sched),
		rasteredit.WithPixelStore(imageio.NewFileStore("")),
		rasteredit.WithTolerance(cfg.tolerance),
		rasteredit.WithPath(path),
	}
	if cfg.historyDB != "" {
		a.history, err = store.Open(cfg.historyDB,
			store.WithMaxPerKey(cfg.maxHistory), store.WithLogger(log))
		if err != nil {
			return nil, err
		}
		opts = append(opts, rasteredit.WithSnapshotStore(a.history))
	}

	a.engine, err = rasteredit.New(nil, opts...)
	if err != nil {
		a.Close()
		return nil, err
	}

	ctx := context.Background()
	switch err := a.engine.Open(ctx, path); {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		if err := a.engine.Resize(cfg.width, cfg.height); err != nil {
			a.Close()
			return nil, err
		}
		log.Info("pixedit: new image", "path", path, "width", cfg.width, "height", cfg.height)
	default:
		a.Close()
		return nil, err
	}
	if err := a.attach(); err != nil {
		a.Close()
		return nil, err
	}

	a.ctrl = input.New(a.engine,
		input.WithMode(cfg.mode),
		input.WithColor(cfg.color),
		input.WithSize(cfg.size),
		input.WithLogger(log))
	a.poller = input.NewPoller(a.engine.Buffer().Bounds())
	a.ctrl.Bind(a.poller, a.poller)

	if cfg.watch {
		a.startWatcher(path)
	}
	return a, nil
}

// attach points the engine at a canvas image matching the buffer size.
func (a *app) attach() error {
	buf := a.engine.Buffer()
	w, h := buf.Width(), buf.Height()
	if a.canvas == nil || a.canvas.Bounds().Dx() != w || a.canvas.Bounds().Dy() != h {
		if a.canvas != nil {
			a.canvas.Deallocate()
		}
		a.canvas = ebiten.NewImage(w, h)
	}

	opts := surface.DefaultOptions(w, h)
	opts.Updater = canvasUpdater{img: a.canvas}
	opts.Premultiply = true
	surf, err := surface.Open(a.backend, opts)
	if err != nil {
		return err
	}
	if c, ok := a.surf.(surface.Closer); ok {
		_ = c.Close()
	}
	a.surf = surf
	// CPU surfaces are copied to the canvas whole on every Draw.
	a.cpu, _ = surf.(*surface.ImageSurface)
	a.engine.SetSurface(surf)
	if a.poller != nil {
		a.poller.SetBounds(buf.Bounds())
	}
	a.needsRedraw = true
	return nil
}

func (a *app) startWatcher(path string) {
	w, err := watch.New(path, func(p string) {
		select {
		case a.reloads <- p:
		default:
		}
	},
		watch.WithLogger(a.log),
		watch.WithErrorHandler(func(err error) {
			a.log.Warn("pixedit: watch", "err", err)
		}))
	if err != nil {
		a.log.Warn("pixedit: watch disabled", "path", path, "err", err)
		return
	}
	a.watcher = w
	w.Start()
}

// Update implements ebiten.Game.
func (a *app) Update() error {
	if a.needsRedraw {
		a.engine.Redraw()
		a.needsRedraw = false
	}
	a.drainReloads()
	a.drainCommits()

	mods := modifiers()
	x, y := ebiten.CursorPosition()
	a.poller.Pointer(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), mods)

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		if quit := a.hostKey(k, mods); quit {
			return ebiten.Termination
		}
		if gk, ok := keyMap[k]; ok {
			a.poller.Key(gk, mods)
		}
	}

	a.sched.Tick()
	return nil
}

// hostKey handles the bindings the controller does not know about.
// It reports whether the window should close.
func (a *app) hostKey(k ebiten.Key, mods gpucontext.Modifiers) bool {
	command := mods.HasControl() || mods.HasSuper()
	switch {
	case command && k == ebiten.KeyS:
		a.save()
	case command && k == ebiten.KeyQ:
		return true
	case k == ebiten.KeyBracketLeft:
		a.ctrl.SetSize(max(1, a.ctrl.Size()-1))
	case k == ebiten.KeyBracketRight:
		a.ctrl.SetSize(a.ctrl.Size() + 1)
	}
	return false
}

func (a *app) save() {
	if a.watcher != nil {
		a.watcher.Suppress(time.Second)
	}
	ctx := context.Background()
	if err := a.engine.Save(ctx); err != nil {
		a.log.Error("pixedit: save", "err", err)
		return
	}
	if a.history != nil {
		a.commits = append(a.commits, a.engine.CommitHistory(ctx))
	}
}

func (a *app) drainReloads() {
	select {
	case p := <-a.reloads:
		if err := a.engine.Open(context.Background(), p); err != nil {
			a.log.Warn("pixedit: reload", "path", p, "err", err)
			return
		}
		if err := a.attach(); err != nil {
			a.log.Error("pixedit: reload", "path", p, "err", err)
			return
		}
		a.log.Info("pixedit: reloaded after external change", "path", p)
	default:
	}
}

// drainCommits collects finished history commits without blocking.
func (a *app) drainCommits() {
	pending := a.commits[:0]
	for _, ch := range a.commits {
		select {
		case err := <-ch:
			if err != nil {
				a.log.Error("pixedit: history", "err", err)
			}
		default:
			pending = append(pending, ch)
		}
	}
	clear(a.commits[len(pending):])
	a.commits = pending
}

// Draw implements ebiten.Game.
func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if a.cpu != nil {
		a.canvas.WritePixels(a.cpu.Image().Pix)
	}
	screen.DrawImage(a.canvas, nil)
}

// Layout implements ebiten.Game. The logical screen is the canvas, so
// cursor positions arrive in buffer coordinates.
func (a *app) Layout(_, _ int) (int, int) {
	b := a.canvas.Bounds()
	return b.Dx(), b.Dy()
}

// Close stops background work and waits for outstanding history commits.
func (a *app) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	for _, ch := range a.commits {
		select {
		case err := <-ch:
			if err != nil {
				a.log.Error("pixedit: history", "err", err)
			}
		case <-time.After(5 * time.Second):
			a.log.Warn("pixedit: history commit still running at exit")
		}
	}
	a.commits = nil
	if c, ok := a.surf.(surface.Closer); ok {
		_ = c.Close()
	}
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.log.Warn("pixedit: close history", "err", err)
		}
	}
}

// canvasUpdater uploads packed pixel rows into an ebiten image.
type canvasUpdater struct {
	img *ebiten.Image
}

// UpdateRegion implements gpucontext.TextureRegionUpdater.
func (u canvasUpdater) UpdateRegion(x, y, w, h int, data []byte) error {
	r := image.Rect(x, y, x+w, y+h)
	if !r.In(u.img.Bounds()) {
		return fmt.Errorf("pixedit: region %v outside canvas %v", r, u.img.Bounds())
	}
	if len(data) != w*h*4 {
		return fmt.Errorf("pixedit: region %v with %d bytes", r, len(data))
	}
	u.img.SubImage(r).(*ebiten.Image).WritePixels(data)
	return nil
}
