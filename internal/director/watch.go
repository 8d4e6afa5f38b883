package director

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports scenario files that changed on disk
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	debounce time.Duration
}

// DefaultDebounce is how long a file must stay unchanged before it is reported
const DefaultDebounce = 100 * time.Millisecond

// NewWatcher watches the given directories for scenario changes
func NewWatcher(dirs ...string) (*Watcher, error) {
	return NewWatcherDebounce(DefaultDebounce, dirs...)
}

// NewWatcherDebounce is NewWatcher with a custom quiet period
func NewWatcherDebounce(debounce time.Duration, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: debounce,
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// Editors often write a file several times in a row; a name is only
	// reported once its file has been quiet for the debounce window
	type quiet struct {
		name string
		gen  int
	}
	type timer struct {
		t   *time.Timer
		gen int
	}
	pending := make(map[string]*timer)
	settled := make(chan quiet)
	defer func() {
		for _, p := range pending {
			p.t.Stop()
		}
	}()

	gen := 0
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsScenarioFile(event.Name) {
				continue
			}
			name := event.Name
			if p, ok := pending[name]; ok {
				p.t.Stop()
			}
			// A timer that already fired may still be waiting on settled;
			// its generation no longer matches and it is dropped.
			gen++
			q := quiet{name: name, gen: gen}
			pending[name] = &timer{
				gen: gen,
				t: time.AfterFunc(w.debounce, func() {
					select {
					case settled <- q:
					case <-w.closeCh:
					}
				}),
			}
		case q := <-settled:
			if p, ok := pending[q.name]; !ok || p.gen != q.gen {
				continue
			}
			delete(pending, q.name)
			select {
			case w.Events <- q.name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
