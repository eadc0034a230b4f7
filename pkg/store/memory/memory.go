// Package memory implements the notes [github.com/codecraf8/notesapi/pkg/store.Store]
// in process, with no external database. It backs tests and the
// "-store memory" mode.
package memory

import (
	"context"
	"sync"

	"github.com/codecraf8/notesapi/pkg/models"
	"github.com/codecraf8/notesapi/pkg/store"
)

// MemoryStore keeps notes in a map guarded by a mutex. Listing preserves
// insertion order so collection responses are deterministic.
type MemoryStore struct {
	mu    sync.RWMutex
	notes map[models.NoteID]*models.Note
	order []models.NoteID
}

var _ store.Store = (*MemoryStore)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *MemoryStore {
	return &MemoryStore{
		notes: make(map[models.NoteID]*models.Note),
	}
}

func (s *MemoryStore) Migrate(ctx context.Context) error { return nil }
func (s *MemoryStore) Close() error                      { return nil }

func (s *MemoryStore) ListNotes(ctx context.Context) ([]*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notes := make([]*models.Note, 0, len(s.order))
	for _, id := range s.order {
		n := *s.notes[id]
		notes = append(notes, &n)
	}
	return notes, nil
}

func (s *MemoryStore) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.notes[id]
	if !ok {
		return nil, nil
	}
	n := *stored
	return &n, nil
}

func (s *MemoryStore) CreateNote(ctx context.Context, note *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if note.ID.IsZero() {
		note.ID = models.NewNoteID()
	}
	n := *note
	if _, exists := s.notes[n.ID]; !exists {
		s.order = append(s.order, n.ID)
	}
	s.notes[n.ID] = &n
	return nil
}

func (s *MemoryStore) UpdateNote(ctx context.Context, note *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := *note
	if _, exists := s.notes[n.ID]; !exists {
		s.order = append(s.order, n.ID)
	}
	s.notes[n.ID] = &n
	return nil
}

func (s *MemoryStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return nil
	}
	delete(s.notes, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
