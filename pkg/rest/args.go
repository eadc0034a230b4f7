package rest

import (
	"fmt"
	"strings"
)

// bindArgs resolves a handler's declared parameter names against the values
// available for this request: every URL path variable by name, plus the
// request object under [ParamRequest]. The available set is assembled fresh
// per request and never mutated across requests.
//
// When every declared name resolves, the values are returned in the
// handler's declared order. Any unresolved name fails the whole binding with
// 400; a handler is never invoked with missing or extraneous arguments.
// Binding is synchronous and side-effect-free.
func bindArgs(h Handler, req *Request) ([]Value, error) {
	available := make(map[string]Value, len(req.vars)+1)
	for name, v := range req.vars {
		available[name] = StringValue(v)
	}
	available[ParamRequest] = RequestValue(req)

	args := make([]Value, 0, len(h.Params))
	var unsatisfied []string
	for _, name := range h.Params {
		v, ok := available[name]
		if !ok {
			unsatisfied = append(unsatisfied, name)
			continue
		}
		args = append(args, v)
	}
	if len(unsatisfied) > 0 {
		return nil, BadRequest(fmt.Sprintf("unsatisfied handler arguments: %s", strings.Join(unsatisfied, ", ")))
	}
	return args, nil
}
