package fediskema

import (
	js "github.com/reoring/fediskema/jsonschema"
)

// TextCodec is the contract of a content-typed string: a wire string with a
// documented format (URI, HTTPS URL, ISO-8601 datetime, ...).
type TextCodec[T any] interface {
	// Format names the contract, e.g. "https-url".
	Format() string
	// Parse validates raw and wraps it.
	Parse(raw string) (T, error)
	// Accept wraps raw without validation (lenient mode).
	Accept(raw string) T
	// Text returns the original wire string of v.
	Text(v T) string
	// Check re-validates v, returning the Parse error for values admitted
	// through Accept.
	Check(v T) error
}

// Text returns the schema of a content-typed string. In strict mode a value
// failing the contract is an invalid_format error; in lenient mode the raw
// string is kept and the issue is recorded as a warning. The same rule applies
// on encode.
func Text[T any](c TextCodec[T]) Schema[T] { return textSchema[T]{c: c} }

type textSchema[T any] struct{ c TextCodec[T] }

func (s textSchema[T]) Decode(st *State, at Loc, v any) (T, bool) {
	var zero T
	raw, ok := v.(string)
	if !ok {
		st.Fail(TypeMismatch(at, "string", v))
		return zero, false
	}
	val, err := s.c.Parse(raw)
	if err == nil {
		return val, true
	}
	if !st.Invalid(InvalidFormat(at, s.c.Format(), raw, err)) {
		return zero, false
	}
	return s.c.Accept(raw), true
}

func (s textSchema[T]) Encode(st *State, at Loc, v T) (any, bool) {
	raw := s.c.Text(v)
	if err := s.c.Check(v); err != nil {
		if !st.Invalid(InvalidFormat(at, s.c.Format(), raw, err)) {
			return nil, false
		}
	}
	return raw, true
}

func (s textSchema[T]) JSONSchema(js.Defs) *js.Schema {
	return &js.Schema{Type: "string", Format: s.c.Format()}
}
