package fediskema

import (
	"context"

	js "github.com/reoring/fediskema/jsonschema"
)

// Named is implemented by schemas that describe a named entity.
type Named interface {
	Name() string
}

// JSONSchemaOf projects s into a standalone JSON Schema document. Named
// schemas become the root $ref; others are inlined.
func JSONSchemaOf[T any](s Schema[T]) *js.Schema {
	defs := js.Defs{}
	root := s.JSONSchema(defs)
	if n, ok := s.(Named); ok {
		return js.Document(n.Name(), defs)
	}
	root.SchemaURI = js.Draft
	if len(defs) > 0 {
		root.Defs = defs
	}
	return root
}

// SafeParse decodes data, returning (zero, false) on any error.
func SafeParse[T any](ctx context.Context, s Schema[T], data []byte, opts ...ParseOpt) (T, bool) {
	v, err := ParseFrom(ctx, s, JSONBytes(data), opts...)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Is returns true if data decodes with s.
func Is[T any](ctx context.Context, s Schema[T], data []byte, opts ...ParseOpt) bool {
	_, ok := SafeParse(ctx, s, data, opts...)
	return ok
}
