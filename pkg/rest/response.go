package rest

import "net/http"

// Response carries a handler result: a status code and an already-encoded
// body. An empty body writes no Content-Type, matching the 204 delete
// response.
type Response struct {
	Status int
	Body   []byte
}

// NewResponse builds a response with an encoded body.
func NewResponse(status int, body []byte) *Response {
	return &Response{Status: status, Body: body}
}

// NoContent builds an empty 204 response.
func NoContent() *Response {
	return &Response{Status: http.StatusNoContent}
}

// Write sends the response.
func (r *Response) Write(w http.ResponseWriter) {
	if len(r.Body) > 0 {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(r.Status)
	if len(r.Body) > 0 {
		_, _ = w.Write(r.Body)
	}
}
