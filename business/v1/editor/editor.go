// Package editor governs composing notes: at most one new-note draft or one
// in-place edit is active at any time.
package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/ribgsilva/geonote/business/v1/note"
	"github.com/ribgsilva/geonote/platform/location"
	"go.uber.org/zap"
)

// Modes reported by State
const (
	ModeIdle     = "idle"
	ModeDrafting = "drafting"
	ModeEditing  = "editing"
)

var (
	// ErrBusy reports an attempt to start a draft or edit while the other is
	// active. The active one must be committed or cancelled first.
	ErrBusy = errors.New("editor busy")

	// ErrIdle reports a commit, cancel or content change with nothing active
	ErrIdle = errors.New("editor idle")

	// ErrUnknownNote reports an edit request for an id not in the store
	ErrUnknownNote = errors.New("unknown note")
)

// State is a snapshot of the editor
type State struct {
	Mode    string `json:"mode"`
	NoteId  int64  `json:"noteId,omitempty"`
	Content string `json:"content"`
}

// Editor is the single composing surface over the store. Committing a draft
// resolves the device location first and only then mutates the store; a
// cancel that lands while the location query is still in flight makes the
// resolved coordinate get discarded instead of applied to a stale draft.
type Editor struct {
	mu        sync.Mutex
	mode      string
	noteId    int64
	content   string
	seq       uint64
	store     *note.Store
	locations location.Provider
	log       *zap.SugaredLogger
}

func New(store *note.Store, locations location.Provider, log *zap.SugaredLogger) *Editor {
	return &Editor{
		mode:      ModeIdle,
		store:     store,
		locations: locations,
		log:       log,
	}
}

// StartDraft begins composing a new note with an empty buffer
func (e *Editor) StartDraft() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeIdle {
		return ErrBusy
	}
	e.mode = ModeDrafting
	e.content = ""
	e.noteId = 0
	return nil
}

// StartEdit begins editing an existing note, seeding the buffer with its
// current content
func (e *Editor) StartEdit(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeIdle {
		return ErrBusy
	}

	n, ok := e.store.Get(id)
	if !ok {
		return ErrUnknownNote
	}

	e.mode = ModeEditing
	e.noteId = id
	e.content = n.Content
	return nil
}

// SetContent replaces the compose buffer
func (e *Editor) SetContent(content string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode == ModeIdle {
		return ErrIdle
	}
	e.content = content
	return nil
}

// Cancel discards the active draft or edit without touching the store
func (e *Editor) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode == ModeIdle {
		return ErrIdle
	}
	e.toIdle()
	return nil
}

// Commit finishes the active mode. A draft commit queries the device
// location; failure there is swallowed and the note is created without a
// coordinate. Either way the editor returns to idle. The returned note is
// nil when nothing was committed (blank draft, or draft cancelled while the
// location query was in flight).
func (e *Editor) Commit(ctx context.Context) (*note.Note, error) {
	e.mu.Lock()

	switch e.mode {
	case ModeEditing:
		defer e.mu.Unlock()
		id, content := e.noteId, e.content
		e.toIdle()
		if _, err := e.store.Update(ctx, id, content); err != nil {
			return nil, err
		}
		n, _ := e.store.Get(id)
		return &n, nil

	case ModeDrafting:
		content, seq := e.content, e.seq
		e.mu.Unlock()

		// The store mutation happens strictly after the location query
		// resolves, success or failure.
		var coord *location.Coordinate
		if c, err := e.locations.CurrentCoordinate(ctx); err != nil {
			e.log.Infow("draft commit without location", "reason", err)
		} else {
			coord = &c
		}

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.mode != ModeDrafting || e.seq != seq {
			// cancelled mid-query: the coordinate is stale, drop it
			return nil, nil
		}
		e.toIdle()
		return e.store.Add(ctx, content, coord)

	default:
		e.mu.Unlock()
		return nil, ErrIdle
	}
}

// State reports the current mode and buffer
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := State{Mode: e.mode, Content: e.content}
	if e.mode == ModeEditing {
		s.NoteId = e.noteId
	}
	return s
}

// toIdle clears the buffer and invalidates any in-flight commit. Callers
// hold the mutex.
func (e *Editor) toIdle() {
	e.mode = ModeIdle
	e.noteId = 0
	e.content = ""
	e.seq++
}
