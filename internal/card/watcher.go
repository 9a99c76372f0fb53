package card

import (
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of card file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // card written or created and parses
	ChangeRemoved                    // card deleted or renamed away
	ChangeInvalid                    // card present but does not parse
	ChangeError                      // the watcher itself reported an error
)

// String returns the change kind's name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	case ChangeInvalid:
		return "invalid"
	case ChangeError:
		return "error"
	}
	return "unknown"
}

// Change is one debounced card file event.
type Change struct {
	Kind ChangeKind
	File string
	Card Card  // set for ChangeModified
	Err  error // set for ChangeInvalid and ChangeError
}

// debounce is how long a file must stay quiet before its change is emitted.
const debounce = 100 * time.Millisecond

// Watcher monitors a card directory using fsnotify.
type Watcher struct {
	Dir     string
	Changes <-chan Change

	changes chan Change
	stop    chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for dir. Call Start to begin receiving
// changes and Stop to release it.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan Change, 16)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop(w.watcher.Events, w.watcher.Errors)
	return nil
}

// Stop closes the watcher and Changes. Pending changes are flushed only
// while there is room in the buffer.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				for file := range pending {
					w.emit(file)
				}
				return
			}
			if !IsCard(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(file)
					delete(pending, file)
				}
			}

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.send(Change{Kind: ChangeError, File: w.Dir, Err: err})
		}
	}
}

func (w *Watcher) emit(file string) {
	change := Change{Kind: ChangeModified, File: file}
	c, err := Load(file)
	switch {
	case err == nil:
		change.Card = c
	case isNotExist(err):
		change.Kind = ChangeRemoved
	default:
		change.Kind, change.Err = ChangeInvalid, err
	}
	w.send(change)
}

func (w *Watcher) send(change Change) {
	select {
	case w.changes <- change:
	case <-w.stop:
		// Nobody is reading any more; keep what fits.
		select {
		case w.changes <- change:
		default:
		}
	}
}
