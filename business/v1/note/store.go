package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	persistence "github.com/ribgsilva/geonote/persistence/v1/note"
	"github.com/ribgsilva/geonote/persistence/v1/storage"
	"github.com/ribgsilva/geonote/platform/location"
)

// Store owns the note collection and the id counter. Notes are kept newest
// first. Every mutation is written through to storage in full before the
// in-memory state changes, so memory and storage never disagree.
type Store struct {
	mu     sync.Mutex
	kv     storage.KV
	notes  []Note
	nextId int64
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted collection. Absent state loads as an empty store.
// Unparseable state returns ErrCorruptState and leaves the store empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, nextId, err := persistence.Load(ctx, s.kv)
	if errors.Is(err, persistence.ErrCorrupt) {
		return fmt.Errorf("%w: %s", ErrCorruptState, err)
	}
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	s.notes = fromRecords(records)
	s.nextId = nextId
	return nil
}

// Reset replaces whatever is persisted with an empty store. It is the
// recovery path after ErrCorruptState.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []Note{}, 0)
}

// Add creates a note with the current timestamp and the given coordinate, if
// any, and prepends it. Content that is empty after trimming is silently
// ignored and no id is consumed; the returned note is nil.
func (s *Store) Add(ctx context.Context, content string, coord *location.Coordinate) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		Id:      s.nextId + 1,
		Content: content,
		Date:    time.Now().UnixMilli(),
	}
	if coord != nil {
		lat, lon := coord.Latitude, coord.Longitude
		n.Latitude, n.Longitude = &lat, &lon
	}

	notes := make([]Note, 0, len(s.notes)+1)
	notes = append(notes, n)
	notes = append(notes, s.notes...)

	if err := s.commit(ctx, notes, n.Id); err != nil {
		return nil, err
	}
	return &n, nil
}

// Update replaces the content of the note with the given id. Returns false
// without touching anything when the id is unknown.
func (s *Store) Update(ctx context.Context, id int64, content string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.indexOf(id)
	if at < 0 {
		return false, nil
	}

	notes := make([]Note, len(s.notes))
	copy(notes, s.notes)
	notes[at].Content = content

	if err := s.commit(ctx, notes, s.nextId); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the note with the given id. Returns false when the id is
// unknown; ids are never reused, so removing twice is a no-op the second
// time. The counter keeps its value.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.indexOf(id)
	if at < 0 {
		return false, nil
	}

	notes := make([]Note, 0, len(s.notes)-1)
	notes = append(notes, s.notes[:at]...)
	notes = append(notes, s.notes[at+1:]...)

	if err := s.commit(ctx, notes, s.nextId); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceAll swaps in a whole new collection and counter, atomically. A note
// carrying only half a coordinate fails validation: coordinates exist as a
// pair or not at all.
func (s *Store) ReplaceAll(ctx context.Context, notes []Note, nextId int64) error {
	for _, n := range notes {
		if (n.Latitude == nil) != (n.Longitude == nil) {
			return fmt.Errorf("%w: note %d has half a coordinate", ErrInvalidImport, n.Id)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replacement := make([]Note, len(notes))
	copy(replacement, notes)
	return s.commit(ctx, replacement, nextId)
}

// List returns a snapshot of the collection, newest first
func (s *Store) List() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := make([]Note, len(s.notes))
	copy(notes, s.notes)
	return notes
}

// Get returns a copy of the note with the given id
func (s *Store) Get(id int64) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.indexOf(id)
	if at < 0 {
		return Note{}, false
	}
	return s.notes[at], true
}

// Contains tells whether a note with the given id exists
func (s *Store) Contains(id int64) bool {
	_, ok := s.Get(id)
	return ok
}

// Export snapshots the full store state as the downloadable blob
func (s *Store) Export() Export {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := make([]Note, len(s.notes))
	copy(notes, s.notes)
	return Export{Notes: notes, Id: s.nextId}
}

// commit persists the candidate state and, only if that succeeds, makes it
// the in-memory state. Callers hold the mutex.
func (s *Store) commit(ctx context.Context, notes []Note, nextId int64) error {
	if err := persistence.Save(ctx, s.kv, toRecords(notes), nextId); err != nil {
		return err
	}
	s.notes = notes
	s.nextId = nextId
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, n := range s.notes {
		if n.Id == id {
			return i
		}
	}
	return -1
}
