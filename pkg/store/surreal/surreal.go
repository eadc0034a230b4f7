// Package surreal implements the notes [github.com/codecraf8/notesapi/pkg/store.Store]
// on SurrealDB. Record IDs are the note's typed ID marshaled as a CBOR
// RecordID, so the same UUIDs identify a note here and in the relational
// backends.
package surreal

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/codecraf8/notesapi/pkg/models"
	"github.com/codecraf8/notesapi/pkg/store"
)

const notesTable = "notes"

// SurrealStore implements the Store interface over a SurrealDB connection.
type SurrealStore struct {
	db *surrealdb.DB
}

var _ store.Store = (*SurrealStore)(nil)

// NewStore connects to SurrealDB, authenticates, and selects the
// namespace/database pair. The connection uses the surrealcbor codec so typed
// IDs marshal as RecordIDs.
func NewStore(wsURL, namespace, database, user, pass string) (store.Store, error) {
	ctx := context.Background()

	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	conf := connection.NewConfig(u)
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if user != "" && pass != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": user,
			"pass": pass,
		}); err != nil {
			return nil, fmt.Errorf("failed to sign in: %w", err)
		}
	}

	if err := db.Use(ctx, namespace, database); err != nil {
		return nil, fmt.Errorf("failed to select namespace/database: %w", err)
	}

	return &SurrealStore{db: db}, nil
}

// Migrate defines the notes table. SurrealDB is schema-flexible, so this is
// minimal compared to the relational backend.
func (s *SurrealStore) Migrate(ctx context.Context) error {
	_, err := surrealdb.Query[any](ctx, s.db, "DEFINE TABLE "+notesTable, nil)
	return err
}

func (s *SurrealStore) Close() error {
	return s.db.Close(context.Background())
}

func (s *SurrealStore) ListNotes(ctx context.Context) ([]*models.Note, error) {
	result, err := surrealdb.Select[[]models.Note](ctx, s.db, surrealmodels.Table(notesTable))
	if err != nil {
		return nil, err
	}
	if result == nil {
		return []*models.Note{}, nil
	}
	notes := make([]*models.Note, 0, len(*result))
	for i := range *result {
		notes = append(notes, &(*result)[i])
	}
	return notes, nil
}

func (s *SurrealStore) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	result, err := surrealdb.Select[models.Note](ctx, s.db, id.RecordID())
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}
	// Depending on the server version, a missing id yields a nil or a zero
	// record rather than an error.
	if result == nil || result.ID.IsZero() {
		return nil, nil
	}
	return result, nil
}

func (s *SurrealStore) CreateNote(ctx context.Context, note *models.Note) error {
	if note.ID.IsZero() {
		note.ID = models.NewNoteID()
	}
	_, err := surrealdb.Create[models.Note](ctx, s.db, surrealmodels.Table(notesTable), note)
	return err
}

func (s *SurrealStore) UpdateNote(ctx context.Context, note *models.Note) error {
	_, err := surrealdb.Update[models.Note](ctx, s.db, note.ID.RecordID(), note)
	return err
}

func (s *SurrealStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	_, err := surrealdb.Delete[models.Note](ctx, s.db, id.RecordID())
	return err
}

// notFound reports whether err is the driver's way of signaling that a select
// by record id matched nothing.
func notFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}
