package fediskema

import (
	js "github.com/reoring/fediskema/jsonschema"
)

// Variant is implemented by open enumerations: string-backed types whose
// repertoire the server may extend before the model catches up.
type Variant interface {
	~string
	// Known reports whether the value is part of the modelled repertoire.
	Known() bool
}

// Enum returns the schema of an open enumeration. A value outside the known
// repertoire is not an error: it decodes to T carrying the raw string (Known
// reports false), an unknown_variant warning is recorded, and encode emits the
// raw string unchanged.
func Enum[T Variant](known ...T) Schema[T] { return enumSchema[T]{known: known} }

type enumSchema[T Variant] struct{ known []T }

func (s enumSchema[T]) Decode(st *State, at Loc, v any) (T, bool) {
	raw, ok := v.(string)
	if !ok {
		st.Fail(TypeMismatch(at, "string", v))
		var zero T
		return zero, false
	}
	val := T(raw)
	if !val.Known() {
		st.Warn(UnknownVariant(at, raw))
	}
	return val, true
}

func (s enumSchema[T]) Encode(st *State, at Loc, v T) (any, bool) { return string(v), true }

func (s enumSchema[T]) JSONSchema(js.Defs) *js.Schema {
	sc := &js.Schema{Type: "string"}
	for _, k := range s.known {
		sc.Examples = append(sc.Examples, string(k))
	}
	return sc
}
