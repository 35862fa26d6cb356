// Package selection synchronizes the map with the list: activating a marker
// asks the list to scroll to the note and highlight it for a moment.
package selection

import (
	"sync"
	"time"
)

// HighlightDuration is how long a highlight stays before clearing itself
const HighlightDuration = time.Second

// Tracker holds the transiently highlighted note. Selecting again while a
// highlight is active restarts the clock instead of stacking; selecting an
// id the store does not know is a no-op.
type Tracker struct {
	mu       sync.Mutex
	exists   func(id int64) bool
	duration time.Duration
	timer    *time.Timer
	active   bool
	noteId   int64
}

// New builds a Tracker. exists answers whether a note id is present.
func New(exists func(id int64) bool) *Tracker {
	return NewWithDuration(exists, HighlightDuration)
}

func NewWithDuration(exists func(id int64) bool, duration time.Duration) *Tracker {
	return &Tracker{exists: exists, duration: duration}
}

// Select highlights the given note and (re)arms the auto-clear. Reports
// whether the request took effect.
func (t *Tracker) Select(id int64) bool {
	if !t.exists(id) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.active = true
	t.noteId = id
	var tm *time.Timer
	tm = time.AfterFunc(t.duration, func() { t.clear(tm) })
	t.timer = tm
	return true
}

// Current reports the highlighted note, if any
func (t *Tracker) Current() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.noteId, t.active
}

// clear only fires for the timer that armed it: a highlight renewed after
// this timer was scheduled must not be wiped by it
func (t *Tracker) clear(tm *time.Timer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != tm {
		return
	}
	t.active = false
	t.noteId = 0
	t.timer = nil
}
