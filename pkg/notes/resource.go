// Package notes plugs the Note entity into the generic dispatch core,
// exposing the collection at /notes and instances at /notes/{instance_id}.
package notes

import (
	"context"
	"net/http"

	"github.com/codecraf8/notesapi/pkg/models"
	"github.com/codecraf8/notesapi/pkg/rest"
	"github.com/codecraf8/notesapi/pkg/store"
)

// Properties is the ordered list of note fields exposed on the wire.
var Properties = []string{"id", "title", "description", "created_at", "created_by", "priority"}

// NewResource builds the notes resource against the given store. The
// endpoints hold the resource back-reference for rendering, so binding is
// two-phase.
func NewResource(s store.Store) *rest.Resource {
	res := rest.NewResource("notes", Properties)
	res.BindCollection(&collectionEndpoint{store: s, resource: res})
	res.BindInstance(&instanceEndpoint{store: s, resource: res})
	return res
}

// collectionEndpoint serves the "all notes" resource. It supports GET and
// POST; anything else is answered 405 by the dispatch table.
type collectionEndpoint struct {
	store    store.Store
	resource *rest.Resource
}

func (e *collectionEndpoint) GetHandler() rest.Handler {
	return rest.Handler{
		Call: func(ctx context.Context, _ []rest.Value) (*rest.Response, error) {
			return e.get(ctx)
		},
	}
}

func (e *collectionEndpoint) PostHandler() rest.Handler {
	return rest.Handler{
		Params: []string{rest.ParamRequest},
		Call: func(ctx context.Context, args []rest.Value) (*rest.Response, error) {
			return e.post(ctx, args[0].Request())
		},
	}
}

func (e *collectionEndpoint) get(ctx context.Context) (*rest.Response, error) {
	body, err := e.renderCollection(ctx)
	if err != nil {
		return nil, err
	}
	return rest.NewResponse(http.StatusOK, body), nil
}

// post creates a note from the request body and answers with the full
// re-queried collection, preserving the original wire shape.
func (e *collectionEndpoint) post(ctx context.Context, req *rest.Request) (*rest.Response, error) {
	payload, err := decodePayload(req)
	if err != nil {
		return nil, err
	}

	note := payload.note()
	if err := e.store.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	body, err := e.renderCollection(ctx)
	if err != nil {
		return nil, err
	}
	return rest.NewResponse(http.StatusCreated, body), nil
}

func (e *collectionEndpoint) renderCollection(ctx context.Context) ([]byte, error) {
	all, err := e.store.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	rendered := make([]rest.Fields, 0, len(all))
	for _, n := range all {
		rendered = append(rendered, e.resource.Render(n))
	}
	return rest.Encode(map[string]any{"notes": rendered})
}

// instanceEndpoint serves a single note addressed by the identifier path
// segment. It supports GET, PUT and DELETE.
type instanceEndpoint struct {
	store    store.Store
	resource *rest.Resource
}

func (e *instanceEndpoint) GetHandler() rest.Handler {
	return rest.Handler{
		Params: []string{rest.InstanceIDVar},
		Call: func(ctx context.Context, args []rest.Value) (*rest.Response, error) {
			return e.get(ctx, args[0].String())
		},
	}
}

func (e *instanceEndpoint) PutHandler() rest.Handler {
	return rest.Handler{
		Params: []string{rest.ParamRequest, rest.InstanceIDVar},
		Call: func(ctx context.Context, args []rest.Value) (*rest.Response, error) {
			return e.put(ctx, args[0].Request(), args[1].String())
		},
	}
}

func (e *instanceEndpoint) DeleteHandler() rest.Handler {
	return rest.Handler{
		Params: []string{rest.InstanceIDVar},
		Call: func(ctx context.Context, args []rest.Value) (*rest.Response, error) {
			return e.delete(ctx, args[0].String())
		},
	}
}

func (e *instanceEndpoint) get(ctx context.Context, instanceID string) (*rest.Response, error) {
	note, err := e.lookup(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	body, err := e.resource.RenderAndEncode(note)
	if err != nil {
		return nil, err
	}
	return rest.NewResponse(http.StatusOK, body), nil
}

// put overwrites every declared property from the request body. A missing
// id answers 404 for parity with get and delete.
func (e *instanceEndpoint) put(ctx context.Context, req *rest.Request, instanceID string) (*rest.Response, error) {
	payload, err := decodePayload(req)
	if err != nil {
		return nil, err
	}

	note, err := e.lookup(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	note.Title = *payload.Title
	note.Description = *payload.Description
	note.CreatedAt = *payload.CreatedAt
	note.CreatedBy = *payload.CreatedBy
	note.Priority = *payload.Priority
	if err := e.store.UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	body, err := e.resource.RenderAndEncode(note)
	if err != nil {
		return nil, err
	}
	return rest.NewResponse(http.StatusCreated, body), nil
}

func (e *instanceEndpoint) delete(ctx context.Context, instanceID string) (*rest.Response, error) {
	note, err := e.lookup(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	if err := e.store.DeleteNote(ctx, note.ID); err != nil {
		return nil, err
	}
	return rest.NoContent(), nil
}

// lookup resolves the identifier segment to a stored note. An unparsable
// identifier can never match a server-assigned id, so it reports the same
// 404 as an absent one.
func (e *instanceEndpoint) lookup(ctx context.Context, instanceID string) (*models.Note, error) {
	id, err := models.ParseNoteID(instanceID)
	if err != nil {
		return nil, rest.NotFound()
	}
	note, err := e.store.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, rest.NotFound()
	}
	return note, nil
}
