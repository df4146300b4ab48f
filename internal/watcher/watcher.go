// Package watcher implements the live-rebuild front end: a session that
// watches an input directory and, for every newly created record file,
// synchronously rebuilds the whole graph and writes a fresh artifact pair.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/vk/provgraphgo/internal/builder"
	"github.com/vk/provgraphgo/internal/ctxlog"
	"github.com/vk/provgraphgo/internal/dot"
	"github.com/vk/provgraphgo/internal/loader"
)

// Session owns one watch loop. It is created at watch start, carries the
// build options and output location for every rebuild it triggers, and is
// discarded at watch stop. Events are consumed one at a time; a rebuild runs
// to completion before the next event is read.
type Session struct {
	inputDir  string
	outputDir string
	glob      string
	opts      builder.Options
	fsw       *fsnotify.Watcher
}

// NewSession creates a session watching inputDir and writing artifacts to
// outputDir, which is created if missing.
func NewSession(inputDir, outputDir, glob string, opts builder.Options) (*Session, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating watch output directory: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", inputDir, err)
	}
	return &Session{
		inputDir:  inputDir,
		outputDir: outputDir,
		glob:      glob,
		opts:      opts,
		fsw:       fsw,
	}, nil
}

// Run blocks, handling file-create events until the context is canceled or
// the watcher closes. A failed rebuild is logged and the loop continues; the
// next event gets a clean pass.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Watch session started.", "input", s.inputDir, "output", s.outputDir)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch session stopped.")
			return nil
		case ev, ok := <-s.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) {
				continue
			}
			if info, err := os.Stat(ev.Name); err != nil || info.IsDir() {
				continue
			}
			logger.Info("New file detected.", "file", filepath.Base(ev.Name))
			if err := s.rebuild(ctx); err != nil {
				logger.Error("Rebuild failed.", "error", err)
			}
		case err, ok := <-s.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error.", "error", err)
		}
	}
}

// Close releases the underlying file watcher.
func (s *Session) Close() error {
	return s.fsw.Close()
}

// rebuild runs one full build-and-render cycle over the input directory,
// writing a uniquely named artifact pair so successive snapshots coexist.
func (s *Session) rebuild(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	records, err := loader.Load(ctx, s.inputDir, s.glob)
	if err != nil {
		return err
	}
	res, err := builder.Build(ctx, records, s.opts)
	if err != nil {
		return err
	}
	if res == nil {
		logger.Warn("No eligible records in watched directory, nothing to draw.")
		return nil
	}

	base := uuid.NewString()
	if _, _, err := dot.Save(ctx, res.Relabeled, s.outputDir, base, nil); err != nil {
		return err
	}
	builder.Diagnostics(ctx, res.Graph, res.Total, res.Disregarded)
	return nil
}
