// Package watch turns file system activity below a repository into refresh triggers.
package watch

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ImSingee/go-ex/ee"
	"github.com/fsnotify/fsnotify"
)

const (
	DefaultDelay = 200 * time.Millisecond

	gitDir = ".git"
)

// Watcher reports (debounced) changes below a root directory.
//
// Inside .git only the directory itself is watched, enough to notice index
// and HEAD updates.
type Watcher struct {
	root  string
	delay time.Duration

	fw     *fsnotify.Watcher
	events chan struct{}
}

func New(root string, delay time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ee.Wrap(err, "cannot create file watcher")
	}

	w := &Watcher{
		root:   root,
		delay:  delay,
		fw:     fw,
		events: make(chan struct{}, 1),
	}

	if err := w.addTree(root); err != nil {
		_ = fw.Close()
		return nil, err
	}

	go w.loop()

	return w, nil
}

// Events is closed after Close. Changes happening while a value is pending are merged into it.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return ee.Wrapf(err, "cannot watch %s", dir)
			}
			slog.Debug("Skip unreadable path", "path", p, "err", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		if err := w.fw.Add(p); err != nil {
			return ee.Wrapf(err, "cannot watch %s", p)
		}

		if d.Name() == gitDir {
			return fs.SkipDir
		}
		return nil
	})
}

func (w *Watcher) inGitDir(name string) bool {
	rel, err := filepath.Rel(w.root, name)
	if err != nil {
		return false
	}

	first, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return first == gitDir
}

func (w *Watcher) relevant(e fsnotify.Event) bool {
	if e.Has(fsnotify.Chmod) && !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return false
	}

	// lock files come and go around every write of git
	return !strings.HasSuffix(e.Name, ".lock")
}

func (w *Watcher) loop() {
	defer close(w.events)

	var fire <-chan time.Time

	for {
		select {
		case e, ok := <-w.fw.Events:
			if !ok {
				return
			}

			if e.Has(fsnotify.Create) && !w.inGitDir(e.Name) {
				if fi, err := os.Stat(e.Name); err == nil && fi.IsDir() {
					if err := w.addTree(e.Name); err != nil {
						slog.Debug("Cannot watch new directory", "path", e.Name, "err", err)
					}
				}
			}

			if w.relevant(e) {
				slog.Debug("File changed", "event", e.String())
				fire = time.After(w.delay)
			}
		case <-fire:
			fire = nil
			select {
			case w.events <- struct{}{}:
			default: // one pending already
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Debug("Watch error", "err", err)
		}
	}
}
