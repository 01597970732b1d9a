package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes and creations of matching files below a set of
// roots. New subdirectories are added as they appear.
type Watcher struct {
	fsw     *fsnotify.Watcher
	match   func(path string) bool
	onWrite func(path string)
	stop    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New watches every directory under roots (recursively) and calls onWrite
// for each written or created file accepted by match. Unreadable roots are
// skipped; an error is returned only if fsnotify itself is unavailable.
func New(roots []string, match func(path string) bool, onWrite func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		match:   match,
		onWrite: onWrite,
		stop:    make(chan struct{}),
	}
	for _, root := range roots {
		w.addTree(root)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// WatchFile calls onWrite whenever path is written, created or replaced.
// The parent directory is watched so editors that rename over the file
// are still seen.
func WatchFile(path string, onWrite func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:     fsw,
		match:   func(p string) bool { return p == abs },
		onWrite: func(string) { onWrite() },
		stop:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		w.wg.Wait()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) addTree(root string) {
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && info.IsDir() {
			_ = w.fsw.Add(path)
		}
		return nil
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.stop:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addTree(event.Name)
			return
		}
	}
	if w.match(event.Name) {
		w.onWrite(event.Name)
	}
}
