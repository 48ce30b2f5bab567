package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/midbel/tinychart/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Watch renders a file again each time it is written. A change of the
// configuration file renders all the files.
func (j Job) Watch(ctx context.Context, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	watched := make(map[string]struct{})
	for _, f := range files {
		watched[filepath.Clean(f)] = struct{}{}
		if err := w.Add(f); err != nil {
			return errors.Wrapf(err, "watch %s", f)
		}
	}
	if j.Watched != "" {
		if err := w.Add(j.Watched); err != nil {
			return errors.Wrapf(err, "watch %s", j.Watched)
		}
	}
	logger := j.logger()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(e.Name)
			if j.Watched != "" && name == filepath.Clean(j.Watched) {
				cfg, err := config.Load(j.Watched)
				if err != nil {
					logger.Error("fail reloading configuration", zap.Error(err))
					continue
				}
				if j.Override != nil {
					j.Override(&cfg)
				}
				j.Config = cfg
				if err := j.RenderAll(ctx, files); err != nil {
					logger.Error("fail rendering charts", zap.Error(err))
				}
				continue
			}
			if _, ok := watched[name]; !ok {
				continue
			}
			if err := j.Render(name); err != nil {
				logger.Error("fail rendering chart", zap.String("file", name), zap.Error(err))
			}
		}
	}
}
