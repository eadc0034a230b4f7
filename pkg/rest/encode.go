package rest

import (
	"bytes"
	"encoding/json"
)

// Entity exposes named property values for rendering. Implementations
// return the value for a declared property name, or false for names they do
// not carry.
type Entity interface {
	Property(name string) (any, bool)
}

// Field is one rendered property.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered property projection. Unlike a map, it serializes its
// keys in declaration order.
type Fields []Field

// MarshalJSON writes the fields as a JSON object preserving field order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fd := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(fd.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(fd.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode serializes v to the wire format: UTF-8 JSON with 4-space
// indentation. It does not handle cyclic or otherwise non-serializable
// structures; everything built by [Resource.Render] encodes cleanly.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "    ")
}
