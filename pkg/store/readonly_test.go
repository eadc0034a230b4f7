package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codecraf8/notesapi/pkg/models"
	"github.com/codecraf8/notesapi/pkg/store"
	"github.com/codecraf8/notesapi/pkg/store/memory"
)

func TestReadOnlyStoreRejectsWrites(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()

	seeded := &models.Note{Title: "seed"}
	require.NoError(t, inner.CreateNote(ctx, seeded))

	readOnly := true
	s := store.NewReadOnlyStore(inner, func() bool { return readOnly })

	err := s.CreateNote(ctx, &models.Note{Title: "blocked"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "read-only")

	err = s.UpdateNote(ctx, seeded)
	require.Error(t, err)

	err = s.DeleteNote(ctx, seeded.ID)
	require.Error(t, err)

	// Reads pass through regardless of mode.
	notes, err := s.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	got, err := s.GetNote(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestReadOnlyStoreTogglesDynamically(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()

	readOnly := false
	s := store.NewReadOnlyStore(inner, func() bool { return readOnly })

	note := &models.Note{Title: "a"}
	require.NoError(t, s.CreateNote(ctx, note))

	readOnly = true
	require.Error(t, s.DeleteNote(ctx, note.ID))

	readOnly = false
	require.NoError(t, s.DeleteNote(ctx, note.ID))
}

func TestReadOnlyStoreUnwrap(t *testing.T) {
	inner := memory.NewStore()
	s := store.NewReadOnlyStore(inner, func() bool { return true })

	wrapper, ok := s.(*store.ReadOnlyStore)
	require.True(t, ok)
	require.Same(t, inner, wrapper.Unwrap())
}
