package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event conveys a freshly loaded content snapshot or an error from a reload.
type Event struct {
	Path    string
	Records []Record
	Err     error
}

// Watcher observes the CMS export file and republishes it once writes have
// settled. CMS syncs rewrite the file in bursts, so events are debounced by
// the settle interval before the file is re-read.
type Watcher struct {
	path   string
	settle time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching the directory containing path. A settle value
// of zero disables debouncing.
func NewWatcher(path string, settle time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   path,
		settle: settle,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 4),
	}
	w.wg.Add(1)
	go w.run(fsw)
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w, nil
}

// Events returns a channel of content events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run(fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	var settle *time.Timer
	var settleC <-chan time.Time
	arm := func() {
		if w.settle <= 0 {
			w.emit()
			return
		}
		if settle == nil {
			settle = time.NewTimer(w.settle)
			settleC = settle.C
			return
		}
		if !settle.Stop() {
			select {
			case <-settle.C:
			default:
			}
		}
		settle.Reset(w.settle)
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-settleC:
			w.emit()
		case evt, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != filepath.Clean(w.path) {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			arm()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if !w.send(Event{Path: w.path, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) emit() {
	records, err := Load(w.path)
	w.send(Event{Path: w.path, Records: records, Err: err})
}

func (w *Watcher) send(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
