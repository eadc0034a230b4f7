// Package rest implements the generic request-dispatch core of the notes API.
//
// A [Resource] declares a name and an ordered list of exposed properties, and
// binds two endpoint objects: one for the collection URL and one for the
// instance URL. Each [Endpoint] builds its verb dispatch table once at
// construction by probing the endpoint implementation for the optional
// capability interfaces ([GetSupporter], [PostSupporter], [PutSupporter],
// [DeleteSupporter]). A verb present in the table always resolves to a
// callable [Handler]; a verb absent from the table is answered with 405 and
// the set of verbs the endpoint does support.
//
// Handlers declare their inputs by name. Before a handler runs, the argument
// binder assembles the per-request set of available values (the URL path
// variables plus the request object itself under the reserved name
// [ParamRequest]) and invokes the handler with exactly its declared inputs in
// declared order, or fails with 400 when any name cannot be satisfied.
//
// Endpoints are URL-agnostic: [Resource.Register] is the only place URL shape
// is decided.
package rest
