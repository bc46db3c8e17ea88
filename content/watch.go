// Copyright (c) 2026, The Galaxy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch reloads the catalog in the given file whenever it is written
// or recreated, calling fun with each successfully validated catalog.
// Invalid catalogs are logged and skipped, keeping the last good one
// in effect. The parent directory is watched rather than the file so
// that editors which save by rename are handled. Watch returns once
// the watcher is running; it stops when ctx is done.
func Watch(ctx context.Context, filename string, fun func(cat *Catalog)) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(fn)); err != nil {
		w.Close()
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != fn || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				logx.PrintlnDebug("content: reloading", fn, ev.Op)
				cat, err := Open(fn)
				if errors.Log(err) != nil {
					continue
				}
				slog.Info("content: catalog reloaded", "file", fn, "topics", cat.Len())
				fun(cat)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}
