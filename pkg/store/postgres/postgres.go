// Package postgres implements the notes [github.com/codecraf8/notesapi/pkg/store.Store]
// over PostgreSQL using GORM. Each operation commits immediately; GORM wraps
// individual calls in their own transaction.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/codecraf8/notesapi/pkg/models"
	"github.com/codecraf8/notesapi/pkg/store"
)

// PostgresStore implements the Store interface using PostgreSQL with GORM.
type PostgresStore struct {
	db *gorm.DB
}

// NewStore connects to PostgreSQL with the given DSN.
func NewStore(dsn string) (store.Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Migrate creates the notes table and its indexes if missing. AutoMigrate
// only adds schema elements, never removes data, so it is safe to rerun.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.Note{})
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) ListNotes(ctx context.Context) ([]*models.Note, error) {
	notes := []*models.Note{}
	err := s.db.WithContext(ctx).Find(&notes).Error
	return notes, err
}

func (s *PostgresStore) GetNote(ctx context.Context, id models.NoteID) (*models.Note, error) {
	var note models.Note
	err := s.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (s *PostgresStore) CreateNote(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *PostgresStore) UpdateNote(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Save(note).Error
}

func (s *PostgresStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	return s.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id).Error
}
