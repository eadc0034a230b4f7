package notesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codecraf8/notesapi/pkg/client"
	"github.com/codecraf8/notesapi/pkg/models"
	"github.com/codecraf8/notesapi/pkg/store"
)

func newTestApp(t *testing.T) (*App, *client.Client) {
	t.Helper()
	app, err := New(&Config{StoreBackend: BackendMemory, ServerPort: "8080"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	srv := httptest.NewServer(app.router())
	t.Cleanup(srv.Close)
	return app, client.NewClient(srv.URL)
}

func TestHealthEndpoint(t *testing.T) {
	_, c := newTestApp(t)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "healthy", health["status"])
	require.Equal(t, BackendMemory, health["store"])
}

func TestNotesResourceIsWired(t *testing.T) {
	_, c := newTestApp(t)
	ctx := context.Background()

	notes, err := c.ListNotes(ctx)
	require.NoError(t, err)
	require.Empty(t, notes)

	created, err := c.CreateNote(ctx, &models.Note{
		Title:       "t",
		Description: "d",
		CreatedAt:   "2024-01-01",
		CreatedBy:   "u",
		Priority:    1,
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
}

func TestReadOnlyModeRejectsWritesButServesReads(t *testing.T) {
	app, c := newTestApp(t)
	ctx := context.Background()

	note := &models.Note{
		Title:       "t",
		Description: "d",
		CreatedAt:   "2024-01-01",
		CreatedBy:   "u",
		Priority:    1,
	}
	created, err := c.CreateNote(ctx, note)
	require.NoError(t, err)
	id := created[0].ID

	app.SetReadOnly(true)
	require.True(t, app.IsReadOnly())

	_, err = c.CreateNote(ctx, note)
	apiErr, ok := err.(*client.APIError)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Contains(t, apiErr.Body, "read-only")

	got, err := c.GetNote(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "t", got.Title)

	app.SetReadOnly(false)
	_, err = c.CreateNote(ctx, note)
	require.NoError(t, err)
}

func TestSetReadOnlyIsSafeUnderConcurrentChecks(t *testing.T) {
	app, err := New(&Config{StoreBackend: BackendMemory, ServerPort: "8080"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	var wg sync.WaitGroup
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					_ = app.IsReadOnly()
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		app.SetReadOnly(i%2 == 0)
	}
	close(done)
	wg.Wait()

	app.SetReadOnly(true)
	require.True(t, app.IsReadOnly())
}

func TestAppStoreIsReadOnlyWrapped(t *testing.T) {
	app, _ := newTestApp(t)

	_, ok := app.Store().(*store.ReadOnlyStore)
	require.True(t, ok)
}
