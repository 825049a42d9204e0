// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/simforge/protoform/base/errors"
)

// Watcher watches one config file and delivers reloaded configs when
// it changes on disk.
type Watcher struct {
	// C delivers a freshly loaded config after each change, keeping
	// only the most recent one.
	C <-chan *Config

	watcher *fsnotify.Watcher
	done    chan bool
}

// Watch watches the config file at the given path, delivering a
// reloaded config on [Watcher.C] whenever it is written, created, or
// renamed into place. Close the watcher to release it.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory so the file can be atomically replaced
	if err := fw.Add(filepath.Dir(path)); err != nil {
		errors.Log(fw.Close())
		return nil, err
	}
	ch := make(chan *Config, 1)
	w := &Watcher{C: ch, watcher: fw, done: make(chan bool)}
	go w.watch(path, ch)
	return w, nil
}

func (w *Watcher) watch(path string, ch chan *Config) {
	name := filepath.Base(path)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := Open(path)
			if errors.Log(err) != nil {
				continue
			}
			// a save produces several events in a row; keep only the
			// config loaded after the last one
			select {
			case <-ch:
			default:
			}
			ch <- cfg
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// Close stops watching and releases the watcher. It is safe to call
// more than once.
func (w *Watcher) Close() {
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
	if w.watcher != nil {
		errors.Log(w.watcher.Close())
		w.watcher = nil
	}
}
