package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/yacobolo/atomcss"
	"github.com/yacobolo/atomcss/internal/watcher"
)

// watchAndGenerate regenerates the stylesheet whenever a scanned source or
// the token file changes, until ctx is done or the process is interrupted.
func watchAndGenerate(ctx context.Context, config atomcss.Config, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cfg := watcher.DefaultConfig(watchRoots(config)...)
	cfg.Match = watchMatcher(config, log)
	cfg.Logger = log

	w, err := watcher.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	log.Info("watching for changes", zap.Strings("roots", cfg.Roots))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-onChange:
			if err := generateOnce(config); err != nil {
				// keep watching; the next save may fix it
				log.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}

// watchRoots returns the static directory prefix of every source glob and
// the token file's directory, without duplicates.
func watchRoots(config atomcss.Config) []string {
	seen := make(map[string]bool)
	var roots []string
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			roots = append(roots, dir)
		}
	}

	for _, pattern := range config.SourcePaths {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		add(filepath.FromSlash(base))
	}
	if config.TokensFile != "" {
		add(filepath.Dir(config.TokensFile))
	}
	return roots
}

// watchMatcher reports whether a changed path should trigger regeneration.
// The output file never does, so writing it cannot loop.
func watchMatcher(config atomcss.Config, log *zap.Logger) func(string) bool {
	output := filepath.Clean(config.OutputFile)
	tokens := filepath.Clean(config.TokensFile)

	return func(path string) bool {
		path = filepath.Clean(path)
		if config.OutputFile != "" && path == output {
			return false
		}
		if config.TokensFile != "" && path == tokens {
			return true
		}
		for _, pattern := range config.SourcePaths {
			ok, err := doublestar.PathMatch(filepath.Clean(pattern), path)
			if err != nil {
				log.Debug("invalid source pattern", zap.String("pattern", pattern), zap.Error(err))
				continue
			}
			if ok {
				return true
			}
		}
		return false
	}
}
