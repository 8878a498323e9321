package fediskema

import (
	"math"
	"sort"
	"strconv"

	json "github.com/goccy/go-json"

	js "github.com/reoring/fediskema/jsonschema"
)

// String returns the schema of a plain JSON string.
func String() Schema[string] { return stringSchema{} }

// Bool returns the schema of a JSON boolean.
func Bool() Schema[bool] { return boolSchema{} }

// Count returns the schema of a non-negative 32-bit counter. Negative,
// fractional or oversized values fail with invalid_format; they are never
// clamped.
func Count() Schema[uint32] { return countSchema{} }

// Opaque returns the schema of a string-keyed mapping whose values are kept
// as raw wire values.
func Opaque() Schema[map[string]any] { return opaqueSchema{} }

type stringSchema struct{}

func (stringSchema) Decode(st *State, at Loc, v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		st.Fail(TypeMismatch(at, "string", v))
		return "", false
	}
	return s, true
}

func (stringSchema) Encode(st *State, at Loc, v string) (any, bool) { return v, true }
func (stringSchema) JSONSchema(js.Defs) *js.Schema              { return &js.Schema{Type: "string"} }

type boolSchema struct{}

func (boolSchema) Decode(st *State, at Loc, v any) (bool, bool) {
	b, ok := v.(bool)
	if !ok {
		st.Fail(TypeMismatch(at, "boolean", v))
		return false, false
	}
	return b, true
}

func (boolSchema) Encode(st *State, at Loc, v bool) (any, bool) { return v, true }
func (boolSchema) JSONSchema(js.Defs) *js.Schema            { return &js.Schema{Type: "boolean"} }

type countSchema struct{}

const countFormat = "non-negative integer"

func (countSchema) Decode(st *State, at Loc, v any) (uint32, bool) {
	var text string
	switch n := v.(type) {
	case json.Number:
		text = string(n)
	case int64:
		text = strconv.FormatInt(n, 10)
	case int:
		text = strconv.Itoa(n)
	case uint64:
		text = strconv.FormatUint(n, 10)
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			st.Fail(InvalidFormat(at, countFormat, strconv.FormatFloat(n, 'g', -1, 64), nil))
			return 0, false
		}
		text = strconv.FormatFloat(n, 'f', -1, 64)
	default:
		st.Fail(TypeMismatch(at, "number", v))
		return 0, false
	}
	u, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		st.Fail(InvalidFormat(at, countFormat, text, err))
		return 0, false
	}
	return uint32(u), true
}

func (countSchema) Encode(st *State, at Loc, v uint32) (any, bool) { return uint64(v), true }

func (countSchema) JSONSchema(js.Defs) *js.Schema {
	lo, hi := 0.0, float64(math.MaxUint32)
	return &js.Schema{Type: "integer", Minimum: &lo, Maximum: &hi}
}

type opaqueSchema struct{}

func (opaqueSchema) Decode(st *State, at Loc, v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		st.Fail(TypeMismatch(at, "object", v))
		return nil, false
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out, true
}

func (opaqueSchema) Encode(st *State, at Loc, v map[string]any) (any, bool) {
	if v == nil {
		return map[string]any{}, true
	}
	return v, true
}

func (opaqueSchema) JSONSchema(js.Defs) *js.Schema {
	return &js.Schema{Type: "object", AdditionalProperties: true}
}

// List returns the schema of a JSON array whose elements follow elem.
func List[T any](elem Schema[T]) Schema[[]T] { return listSchema[T]{elem: elem} }

type listSchema[T any] struct{ elem Schema[T] }

func (s listSchema[T]) Decode(st *State, at Loc, v any) ([]T, bool) {
	arr, ok := v.([]any)
	if !ok {
		st.Fail(TypeMismatch(at, "array", v))
		return nil, false
	}
	out := make([]T, 0, len(arr))
	all := true
	for i, raw := range arr {
		if st.Halted() {
			return nil, false
		}
		if raw == nil {
			st.Fail(TypeMismatch(at.Index(i), "non-null", raw))
			all = false
			continue
		}
		x, ok := decodeGuarded(st, at.Index(i), s.elem, raw)
		if !ok {
			all = false
			continue
		}
		out = append(out, x)
	}
	if !all {
		return nil, false
	}
	return out, true
}

func (s listSchema[T]) Encode(st *State, at Loc, v []T) (any, bool) {
	out := make([]any, 0, len(v))
	for i, x := range v {
		raw, ok := encodeGuarded(st, at.Index(i), s.elem, x)
		if !ok {
			return nil, false
		}
		out = append(out, raw)
	}
	return out, true
}

func (s listSchema[T]) JSONSchema(defs js.Defs) *js.Schema {
	return &js.Schema{Type: "array", Items: s.elem.JSONSchema(defs)}
}

// Set is an unordered, deduplicated collection of string-like values.
type Set[T ~string] map[T]struct{}

// NewSet builds a Set from values.
func NewSet[T ~string](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetOf returns the schema of a JSON array treated as a set. Duplicates are
// collapsed on decode; encode emits members in ascending order.
func SetOf[T ~string](elem Schema[T]) Schema[Set[T]] { return setSchema[T]{list: listSchema[T]{elem: elem}} }

type setSchema[T ~string] struct{ list listSchema[T] }

func (s setSchema[T]) Decode(st *State, at Loc, v any) (Set[T], bool) {
	xs, ok := s.list.Decode(st, at, v)
	if !ok {
		return nil, false
	}
	return NewSet(xs...), true
}

func (s setSchema[T]) Encode(st *State, at Loc, v Set[T]) (any, bool) {
	return s.list.Encode(st, at, v.Sorted())
}

func (s setSchema[T]) JSONSchema(defs js.Defs) *js.Schema {
	sc := s.list.JSONSchema(defs)
	sc.UniqueItems = true
	return sc
}
