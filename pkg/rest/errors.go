package rest

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is an HTTP-mapped failure produced by the dispatch core.
// Store-layer failures are not wrapped into Error; they surface as 500
// responses with their message propagated unmodified.
type Error struct {
	Status  int
	Message string
	Allowed []string // supported verbs, populated for 405 responses only
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

// MethodNotAllowed reports that the request verb has no handler in the
// endpoint's dispatch table. The allowed list carries exactly the verbs the
// table contains, not the full default set.
func MethodNotAllowed(allowed []string) *Error {
	return &Error{Status: http.StatusMethodNotAllowed, Message: "method not allowed", Allowed: allowed}
}

// BadRequest reports a request that cannot satisfy the matched handler's
// contract: undecodable body, failed presence validation, or a declared
// parameter missing from the available-arguments set.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NotFound reports a lookup by identifier that yielded no entity.
func NotFound() *Error {
	return &Error{Status: http.StatusNotFound}
}

// WriteError renders err as a JSON error response. A 404 uses the fixed wire
// body {"not found": 404}; a 405 lists the supported verbs in the body and
// the Allow header. Any error that is not a *Error is a store or handler
// failure and becomes a 500 with the message passed through.
func WriteError(w http.ResponseWriter, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = &Error{Status: http.StatusInternalServerError, Message: err.Error()}
	}

	var payload any
	switch {
	case e.Status == http.StatusNotFound:
		payload = map[string]int{"not found": http.StatusNotFound}
	case e.Status == http.StatusMethodNotAllowed:
		w.Header().Set("Allow", strings.Join(e.Allowed, ", "))
		payload = map[string]any{"error": e.Message, "allowed": e.Allowed}
	default:
		payload = map[string]string{"error": e.Message}
	}

	body, encErr := Encode(payload)
	if encErr != nil {
		http.Error(w, e.Message, e.Status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_, _ = w.Write(body)
}
