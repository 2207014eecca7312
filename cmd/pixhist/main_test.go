// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rasteredit/history"
	"github.com/gogpu/rasteredit/history/store"
	"github.com/gogpu/rasteredit/imageio"
	"github.com/gogpu/rasteredit/pixel"
)

// seed creates a database holding two snapshots for image a.png.
func seed(t *testing.T) (db, img string) {
	t.Helper()
	dir := t.TempDir()
	db = filepath.Join(dir, "history.db")
	img = filepath.Join(dir, "a.png")

	s, err := store.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	buf, err := pixel.New(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []pixel.Color{pixel.Red, pixel.Blue} {
		buf.Fill(c)
		if err := s.AppendSnapshot(context.Background(), img, history.Capture(buf)); err != nil {
			t.Fatal(err)
		}
	}
	if err := imageio.Save(img, buf); err != nil {
		t.Fatal(err)
	}
	return db, img
}

func runCmd(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	db, _ := seed(t)
	tests := [][]string{
		{"-db", db},
		{"-db", db, "frobnicate"},
		{"-db", db, "clear"},
		{"-db", db, "export", "a.png"},
		{"-db", db, "-log", "loud", "stats"},
	}
	for _, args := range tests {
		if code, _, _ := runCmd(t, args...); code != 2 {
			t.Errorf("run(%q) = %d, want 2", args, code)
		}
	}
}

func TestRun_ListAndStats(t *testing.T) {
	db, img := seed(t)

	code, out, errOut := runCmd(t, "-db", db, "list")
	if code != 0 || strings.TrimSpace(out) != img {
		t.Errorf("list = %d %q (stderr %q), want 0 %q", code, out, errOut, img)
	}

	code, out, _ = runCmd(t, "-db", db, "list", img)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if code != 0 || len(lines) != 3 {
		t.Fatalf("list image = %d, %d lines:\n%s", code, len(lines), out)
	}
	if !strings.Contains(lines[1], "8x4") || !strings.Contains(lines[1], "128") {
		t.Errorf("row = %q, want size 8x4 and 128 bytes", lines[1])
	}

	code, out, _ = runCmd(t, "-db", db, "stats")
	if code != 0 || !strings.Contains(out, img) || !strings.Contains(out, "total") {
		t.Errorf("stats = %d:\n%s", code, out)
	}
}

func TestRun_Export(t *testing.T) {
	db, img := seed(t)
	dir := t.TempDir()

	first := filepath.Join(dir, "first.png")
	if code, _, errOut := runCmd(t, "-db", db, "export", "-n", "0", "-o", first, img); code != 0 {
		t.Fatalf("export = %d: %s", code, errOut)
	}
	buf, err := imageio.Load(first)
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.GetPixel(0, 0); got != pixel.Red {
		t.Errorf("oldest snapshot pixel = %v, want red", got)
	}

	thumb := filepath.Join(dir, "thumb.bmp")
	if code, _, errOut := runCmd(t, "-db", db, "export", "-thumb", "4", "-o", thumb, img); code != 0 {
		t.Fatalf("export thumb = %d: %s", code, errOut)
	}
	buf, err = imageio.Load(thumb)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width() != 4 || buf.Height() != 2 {
		t.Errorf("thumbnail = %dx%d, want 4x2", buf.Width(), buf.Height())
	}
	if got := buf.GetPixel(1, 1); got.B < 250 || got.R > 5 || got.A != 255 {
		t.Errorf("newest snapshot pixel = %v, want blue", got)
	}

	if code, _, _ := runCmd(t, "-db", db, "export", "-n", "5", "-o", first, img); code != 1 {
		t.Errorf("export out of range = %d, want 1", code)
	}
}

func TestRun_Clear(t *testing.T) {
	db, img := seed(t)

	if code, out, _ := runCmd(t, "-db", db, "clear", img); code != 0 || !strings.Contains(out, "cleared") {
		t.Fatalf("clear = %d %q", code, out)
	}
	if _, out, _ := runCmd(t, "-db", db, "list"); strings.TrimSpace(out) != "" {
		t.Errorf("list after clear = %q, want empty", out)
	}

	db, _ = seed(t)
	if code, _, _ := runCmd(t, "-db", db, "clear-all"); code != 0 {
		t.Fatalf("clear-all = %d", code)
	}
	if _, out, _ := runCmd(t, "-db", db, "list"); strings.TrimSpace(out) != "" {
		t.Errorf("list after clear-all = %q, want empty", out)
	}
}

func TestRun_Info(t *testing.T) {
	_, img := seed(t)
	code, out, _ := runCmd(t, "info", img)
	if code != 0 || !strings.Contains(out, "8x4 png") || !strings.Contains(out, "texture-ready: true") {
		t.Errorf("info = %d %q", code, out)
	}
	if code, _, _ := runCmd(t, "info", filepath.Join(t.TempDir(), "missing.png")); code != 1 {
		t.Errorf("info missing = %d, want 1", code)
	}
}
