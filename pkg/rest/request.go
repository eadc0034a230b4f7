package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Request wraps an incoming HTTP request together with the path variables
// extracted by the router. It is the opaque request object handlers receive
// under the reserved parameter name [ParamRequest].
type Request struct {
	raw  *http.Request
	vars map[string]string
}

// NewRequest adapts r for dispatch, capturing its mux path variables.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r, vars: mux.Vars(r)}
}

// NewRequestWithVars adapts r with an explicit variable map. Used by tests
// that exercise dispatch without a router in front.
func NewRequestWithVars(r *http.Request, vars map[string]string) *Request {
	return &Request{raw: r, vars: vars}
}

// Method returns the HTTP verb of the request.
func (r *Request) Method() string {
	return r.raw.Method
}

// Context returns the request's context.
func (r *Request) Context() context.Context {
	return r.raw.Context()
}

// Var returns the named path variable from the URL match.
func (r *Request) Var(name string) (string, bool) {
	v, ok := r.vars[name]
	return v, ok
}

// Decode reads the request body as JSON into v. The body is consumed on
// first use; an undecodable body yields a 400 error.
func (r *Request) Decode(v any) error {
	if err := json.NewDecoder(r.raw.Body).Decode(v); err != nil {
		return BadRequest("invalid request payload")
	}
	return nil
}
