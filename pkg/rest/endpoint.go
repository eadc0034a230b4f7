package rest

import (
	"context"
	"net/http"
)

// ParamRequest is the reserved parameter name that binds the request object
// itself into a handler's available arguments.
const ParamRequest = "request"

// Value is a single bound handler argument: either a string path segment or
// the opaque request object.
type Value struct {
	str string
	req *Request
}

// StringValue wraps a path segment.
func StringValue(s string) Value { return Value{str: s} }

// RequestValue wraps the request object.
func RequestValue(r *Request) Value { return Value{req: r} }

// String returns the path-segment form of the value.
func (v Value) String() string { return v.str }

// Request returns the request form of the value, nil for path segments.
func (v Value) Request() *Request { return v.req }

// HandlerFunc runs a verb handler with its bound arguments in declared order.
type HandlerFunc func(ctx context.Context, args []Value) (*Response, error)

// Handler pairs a verb handler with the ordered parameter names it requires.
// Params may only name URL path variables or [ParamRequest].
type Handler struct {
	Params []string
	Call   HandlerFunc
}

// Capability interfaces. An endpoint implementation supports a verb by
// implementing the matching interface; the dispatch table is built from
// these once, at construction.
type (
	GetSupporter    interface{ GetHandler() Handler }
	PostSupporter   interface{ PostHandler() Handler }
	PutSupporter    interface{ PutHandler() Handler }
	DeleteSupporter interface{ DeleteHandler() Handler }
)

// Endpoint is the dispatch unit for either a collection or a single
// instance. Its verb table is immutable after construction.
type Endpoint struct {
	methods map[string]Handler
	allowed []string
}

// NewEndpoint probes impl for verb capabilities in the fixed order
// GET, POST, PUT, DELETE and records a handler for each verb it supports.
func NewEndpoint(impl any) *Endpoint {
	e := &Endpoint{methods: make(map[string]Handler)}
	if s, ok := impl.(GetSupporter); ok {
		e.register(http.MethodGet, s.GetHandler())
	}
	if s, ok := impl.(PostSupporter); ok {
		e.register(http.MethodPost, s.PostHandler())
	}
	if s, ok := impl.(PutSupporter); ok {
		e.register(http.MethodPut, s.PutHandler())
	}
	if s, ok := impl.(DeleteSupporter); ok {
		e.register(http.MethodDelete, s.DeleteHandler())
	}
	return e
}

func (e *Endpoint) register(method string, h Handler) {
	e.methods[method] = h
	e.allowed = append(e.allowed, method)
}

// Allowed returns the verbs present in the dispatch table, in probe order.
func (e *Endpoint) Allowed() []string {
	return e.allowed
}

// Dispatch looks the request verb up in the table, binds the matched
// handler's arguments, and invokes it. An absent verb yields 405 carrying
// the supported set; an unsatisfiable binding yields 400 before the handler
// body runs.
func (e *Endpoint) Dispatch(req *Request) (*Response, error) {
	h, ok := e.methods[req.Method()]
	if !ok {
		return nil, MethodNotAllowed(e.allowed)
	}
	args, err := bindArgs(h, req)
	if err != nil {
		return nil, err
	}
	return h.Call(req.Context(), args)
}

// ServeHTTP adapts the endpoint to net/http.
func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp, err := e.Dispatch(NewRequest(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	resp.Write(w)
}
