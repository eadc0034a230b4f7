// Package notesapi wires the notes REST service together: configuration,
// store selection, the HTTP server, and the CLI commands.
//
// The interesting machinery lives elsewhere — the generic dispatch core in
// [github.com/codecraf8/notesapi/pkg/rest], the concrete resource in
// [github.com/codecraf8/notesapi/pkg/notes], and the persistence backends
// under [github.com/codecraf8/notesapi/pkg/store]. This package only decides
// which store to connect, registers the resource on a router, and runs the
// server with graceful shutdown.
package notesapi
