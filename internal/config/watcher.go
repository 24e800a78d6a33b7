package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the config file changed on disk.
type Event struct {
	Path string
}

// Watcher watches the config file for changes so long-running consumers
// can reload presets without restarting.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan Event
	Errors  chan error
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the config file at path. The parent
// directory is watched rather than the file itself, because editors
// typically replace the file on save.
func NewWatcher(path string) (*Watcher, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		Events:  make(chan Event, 10),
		Errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins forwarding config file changes on the Events channel.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Drop the event if nobody is listening; the next change
			// will fire again.
			select {
			case w.Events <- Event{Path: event.Name}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		w.watcher.Close()
		return
	}
	w.running = false
	close(w.done)
	w.watcher.Close()
}
