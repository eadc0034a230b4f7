package rest

import "github.com/gorilla/mux"

// InstanceIDVar is the path variable name the registrar uses for the
// identifier segment of instance URLs. Instance handlers declare it as a
// parameter name to receive the identifier.
const InstanceIDVar = "instance_id"

// Resource is a named capability bundle: a collection endpoint, an instance
// endpoint, and the ordered list of entity properties exposed on the wire.
// Constructed once at application start and immutable thereafter.
type Resource struct {
	Name       string
	Properties []string

	collection *Endpoint
	instance   *Endpoint
}

// NewResource creates a resource with no endpoints bound yet. Endpoint
// implementations typically hold the resource back-reference for rendering,
// so binding happens in a second step.
func NewResource(name string, properties []string) *Resource {
	return &Resource{Name: name, Properties: properties}
}

// BindCollection probes impl's verb capabilities and installs it as the
// collection endpoint.
func (r *Resource) BindCollection(impl any) {
	r.collection = NewEndpoint(impl)
}

// BindInstance probes impl's verb capabilities and installs it as the
// instance endpoint.
func (r *Resource) BindInstance(impl any) {
	r.instance = NewEndpoint(impl)
}

// Register binds the resource's two URL patterns on the router: the
// collection at /{name} and the instance at /{name}/{instance_id}. Both
// accept every verb; unsupported verbs are answered by the endpoint's own
// dispatch table.
func (r *Resource) Register(router *mux.Router) {
	if r.collection != nil {
		router.Handle("/"+r.Name, r.collection)
	}
	if r.instance != nil {
		router.Handle("/"+r.Name+"/{"+InstanceIDVar+"}", r.instance)
	}
}

// Render projects an entity down to exactly the declared properties,
// preserving declaration order.
func (r *Resource) Render(e Entity) Fields {
	fields := make(Fields, 0, len(r.Properties))
	for _, name := range r.Properties {
		v, _ := e.Property(name)
		fields = append(fields, Field{Name: name, Value: v})
	}
	return fields
}

// RenderAndEncode composes Render with Encode.
func (r *Resource) RenderAndEncode(e Entity) ([]byte, error) {
	return Encode(r.Render(e))
}
