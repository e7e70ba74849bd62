package testbed

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/cartesio/containers"
	"github.com/spaghettifunk/cartesio/core"
)

// SettingsWatcher watches the settings file for edits and hands the
// changed path to the frame loop through a ring queue. The watch covers
// the parent directory because most editors replace the file instead of
// writing it in place.
type SettingsWatcher struct {
	path string
	dir  string
	base string

	reloads *containers.RingQueue[string]

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewSettingsWatcher(path string, reloads *containers.RingQueue[string]) (*SettingsWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &SettingsWatcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		base:     filepath.Base(abs),
		reloads:  reloads,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (sw *SettingsWatcher) Start() error {
	if sw.isClosed {
		return core.ErrWatcherClosed
	}
	if err := sw.fsnotify.Add(sw.dir); err != nil {
		return err
	}
	go sw.watch()
	return nil
}

func (sw *SettingsWatcher) watch() {
	for {
		select {
		case e := <-sw.fsnotify.Events:
			if filepath.Base(e.Name) != sw.base {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if err := sw.reloads.Enqueue(sw.path); err != nil {
				core.LogWarn("settings reload queue is full, dropping event for %s", sw.path)
			}

		case e := <-sw.fsnotify.Errors:
			core.LogError(e.Error())

		case <-sw.done:
			return
		}
	}
}

// Close stops the watch goroutine and releases the watch handle.
// Closing twice is an error.
func (sw *SettingsWatcher) Close() error {
	if sw.isClosed {
		return core.ErrWatcherClosed
	}
	sw.isClosed = true
	close(sw.done)
	return sw.fsnotify.Close()
}
