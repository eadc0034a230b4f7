// Package store provides the persistence collaborator the notes resource
// dispatches into.
//
// The [Store] interface is the complete surface the HTTP layer assumes:
// list, point lookup, insert, replace, and delete. Every write commits
// immediately inside the operation; there are no cross-operation transaction
// boundaries, so concurrent writers to the same note race last-write-wins
// and the backing database's own locking is the only safety net.
//
// Implementations:
//   - postgres: GORM over PostgreSQL, the relational default
//   - surreal: the SurrealDB driver with CBOR record IDs
//   - memory: in-process map, for tests and demos
//
// [NewReadOnlyStore] wraps any of them to reject writes while the
// application is in read-only mode.
package store

import (
	"context"

	"github.com/codecraf8/notesapi/pkg/models"
)

// Store is the persistence interface for notes.
//
// GetNote returns nil without error for a missing note. ListNotes returns an
// empty slice for no results, never nil. UpdateNote performs full entity
// replacement, not a partial update.
type Store interface {
	ListNotes(ctx context.Context) ([]*models.Note, error)
	GetNote(ctx context.Context, id models.NoteID) (*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, id models.NoteID) error

	// Migrate prepares the backend schema. Safe to run repeatedly.
	Migrate(ctx context.Context) error
	Close() error
}
