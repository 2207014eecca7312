// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command pixhist inspects the history snapshots recorded by pixedit.
//
// Usage:
//
//	pixhist [-db path] list [image]
//	pixhist [-db path] stats
//	pixhist [-db path] export [-n index] [-thumb size] -o out.png image
//	pixhist [-db path] clear image
//	pixhist [-db path] clear-all
//	pixhist info file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/gogpu/rasteredit"
	"github.com/gogpu/rasteredit/history/store"
	"github.com/gogpu/rasteredit/imageio"
	"github.com/gogpu/rasteredit/internal/cli"
)

var errUsage = errors.New("usage: pixhist [-db path] list|stats|export|clear|clear-all|info ...")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pixhist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dbPath := fs.String("db", cli.DefaultHistoryPath(), "snapshot database")
	logLevel := fs.String("log", "warn", "log level: debug, info, warn, error")
	logJSON := fs.Bool("log-json", false, "always log JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	level, err := cli.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "pixhist: %v\n", err)
		return 2
	}
	log := cli.NewLogger(stderr, level, *logJSON)
	rasteredit.SetLogger(log)

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	if cmd == "info" {
		err = info(stdout, rest)
	} else {
		err = withStore(*dbPath, func(s *store.Store) error {
			switch cmd {
			case "list":
				return list(ctx, stdout, s, rest)
			case "stats":
				return stats(ctx, stdout, s)
			case "export":
				return export(ctx, stdout, stderr, s, rest)
			case "clear":
				return clearKey(ctx, stdout, s, rest)
			case "clear-all":
				return s.ClearAll(ctx)
			default:
				return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
			}
		})
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		fmt.Fprintf(stderr, "pixhist: %v\n", err)
		return 1
	}
}

func withStore(path string, fn func(*store.Store) error) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}

// key maps an image path to the key pixedit stores it under.
func key(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

func list(ctx context.Context, w io.Writer, s *store.Store, args []string) error {
	if len(args) == 0 {
		keys, err := s.Keys(ctx)
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(w, k)
		}
		return nil
	}
	if len(args) != 1 {
		return errUsage
	}

	k, err := key(args[0])
	if err != nil {
		return err
	}
	recs, err := s.ListSnapshots(ctx, k)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tTAKEN\tSIZE\tBYTES")
	for i, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%dx%d\t%d\n", i, r.Timestamp.Format(time.RFC3339),
			r.Snapshot.Width, r.Snapshot.Height, r.Snapshot.Size())
	}
	return tw.Flush()
}

func stats(ctx context.Context, w io.Writer, s *store.Store) error {
	st, err := s.Stats(ctx)
	if err != nil {
		return err
	}
	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IMAGE\tSNAPSHOTS\tLAST MODIFIED\tBYTES")
	for _, k := range keys {
		ks := st.Keys[k]
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", k, ks.Count, ks.LastModified.Format(time.RFC3339), ks.Size)
	}
	fmt.Fprintf(tw, "total\t\t\t%d\n", st.TotalSize)
	fmt.Fprintf(tw, "max per image\t%d\t\t\n", st.MaxPerKey)
	return tw.Flush()
}

func export(ctx context.Context, stdout, stderr io.Writer, s *store.Store, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	index := fs.Int("n", -1, "snapshot index; negative counts from the newest")
	thumb := fs.Int("thumb", 0, "scale to fit this many pixels; 0 keeps full size")
	out := fs.String("o", "", "output file (.png, .bmp, .tif)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *out == "" {
		return errUsage
	}

	k, err := key(fs.Arg(0))
	if err != nil {
		return err
	}
	recs, err := s.ListSnapshots(ctx, k)
	if err != nil {
		return err
	}
	i := *index
	if i < 0 {
		i += len(recs)
	}
	if i < 0 || i >= len(recs) {
		return fmt.Errorf("%s has %d snapshots, no index %d", k, len(recs), *index)
	}

	buf, err := recs[i].Snapshot.Buffer()
	if err != nil {
		return err
	}
	if *thumb > 0 {
		if buf, err = imageio.Thumbnail(buf, *thumb); err != nil {
			return err
		}
	}
	if err := imageio.Save(*out, buf); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s (%dx%d)\n", *out, buf.Width(), buf.Height())
	return nil
}

func clearKey(ctx context.Context, w io.Writer, s *store.Store, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	k, err := key(args[0])
	if err != nil {
		return err
	}
	if err := s.Clear(ctx, k); err != nil {
		return err
	}
	fmt.Fprintf(w, "cleared %s\n", k)
	return nil
}

func info(w io.Writer, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	in, err := imageio.Stat(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %dx%d %s, %d bytes, texture-ready: %t\n",
		args[0], in.Width, in.Height, in.Format, in.Size, in.ValidTexture)
	return nil
}
