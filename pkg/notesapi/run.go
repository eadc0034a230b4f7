package notesapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/codecraf8/notesapi/pkg/notes"
	"github.com/codecraf8/notesapi/pkg/rest"
)

// Run starts the HTTP server.
//
// Routes:
//
//	GET    /health                  - service health status
//	GET    /notes                   - list all notes
//	POST   /notes                   - create a note (returns the updated collection)
//	GET    /notes/{instance_id}     - get a note by id
//	PUT    /notes/{instance_id}     - replace a note's fields
//	DELETE /notes/{instance_id}     - delete a note
//
// The notes routes are not registered verb by verb: the resource registrar
// binds the two URL patterns and each endpoint's dispatch table answers
// unsupported verbs with 405.
//
// Run blocks until the context is cancelled or the server fails. On
// shutdown, active requests get up to 5 seconds to drain.
func (a *App) Run(ctx context.Context, cmd *RunCommand) error {
	router := a.router()

	addr := fmt.Sprintf(":%s", a.config.ServerPort)
	a.log.Info().
		Str("addr", addr).
		Str("store", a.config.StoreBackend).
		Bool("read_only", a.IsReadOnly()).
		Msg("starting notes API server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// router assembles the full route table: the notes resource plus the health
// endpoint, with request logging in front.
func (a *App) router() *mux.Router {
	router := mux.NewRouter()
	router.Use(a.logRequests)

	notes.NewResource(a.store).Register(router)
	router.HandleFunc("/health", a.handleHealth).Methods("GET")

	return router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	body, err := rest.Encode(map[string]any{
		"status": "healthy",
		"store":  a.config.StoreBackend,
		"time":   time.Now().Unix(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// logRequests emits one structured line per request.
func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
