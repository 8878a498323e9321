package fediskema

import (
	"sort"

	js "github.com/reoring/fediskema/jsonschema"
)

// Schema decodes raw wire values (the any tree produced by a Source) into T and
// encodes T back into a raw tree. Implementations record problems on the State
// and report through the bool whether a usable value was produced.
type Schema[T any] interface {
	Decode(st *State, at Loc, v any) (T, bool)
	Encode(st *State, at Loc, v T) (any, bool)
	JSONSchema(defs js.Defs) *js.Schema
}

// Field is one declared member of an Object schema.
type Field[E any] interface {
	Key() string
	Required() bool
	decode(st *State, at Loc, raw any, present bool, dst *E)
	encode(st *State, at Loc, src *E, out map[string]any)
	jsonSchema(defs js.Defs) *js.Schema
}

// Object is the schema of one entity kind. It is the single source of truth for
// the entity's wire keys, their optionality and their value schemas.
type Object[E any] struct {
	name   string
	fields []Field[E]
	index  map[string]struct{}
	extra  func(*E) *map[string]any
}

// NewObject declares an empty object schema. Fields are attached with Define,
// usually from an init function so that schemas can reference each other (and
// themselves) regardless of declaration order.
func NewObject[E any](name string) *Object[E] {
	return &Object[E]{name: name, index: map[string]struct{}{}}
}

// Define appends fields to the schema. Declaring a key twice panics.
func (o *Object[E]) Define(fields ...Field[E]) *Object[E] {
	for _, f := range fields {
		if _, dup := o.index[f.Key()]; dup {
			panic("fediskema: duplicate field " + o.name + "." + f.Key())
		}
		o.index[f.Key()] = struct{}{}
		o.fields = append(o.fields, f)
	}
	return o
}

// WithExtra names the bucket that receives undeclared keys under
// UnknownPassthrough. Encoding re-emits the bucket.
func (o *Object[E]) WithExtra(at func(*E) *map[string]any) *Object[E] {
	o.extra = at
	return o
}

// Name returns the entity name.
func (o *Object[E]) Name() string { return o.name }

// Keys returns the declared wire keys in declaration order.
func (o *Object[E]) Keys() []string {
	out := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, f.Key())
	}
	return out
}

// RequiredKeys returns the wire keys that must be present.
func (o *Object[E]) RequiredKeys() []string {
	var out []string
	for _, f := range o.fields {
		if f.Required() {
			out = append(out, f.Key())
		}
	}
	return out
}

func (o *Object[E]) Decode(st *State, at Loc, v any) (E, bool) {
	var zero E
	m, ok := v.(map[string]any)
	if !ok {
		if at.Entity == "" {
			at.Entity = o.name
		}
		st.Fail(TypeMismatch(at, "object", v))
		return zero, false
	}
	before := st.failures()
	var out E
	for _, f := range o.fields {
		if st.Halted() {
			return zero, false
		}
		raw, present := m[f.Key()]
		f.decode(st, at.member(o.name, f.Key()), raw, present, &out)
	}
	if st.Halted() {
		return zero, false
	}
	o.decodeUnknown(st, at, m, &out)
	if st.failures() != before {
		return zero, false
	}
	return out, true
}

func (o *Object[E]) decodeUnknown(st *State, at Loc, m map[string]any, dst *E) {
	if st.Unknown() == UnknownStrip {
		return
	}
	var keys []string
	for k := range m {
		if _, known := o.index[k]; !known {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)
	switch st.Unknown() {
	case UnknownStrict:
		self := Loc{Path: at.Path, Entity: o.name}
		for _, k := range keys {
			st.Fail(UnknownKey(self, k))
		}
	case UnknownPassthrough:
		if o.extra == nil {
			return
		}
		bucket := make(map[string]any, len(keys))
		for _, k := range keys {
			bucket[k] = m[k]
		}
		*o.extra(dst) = bucket
	}
}

func (o *Object[E]) Encode(st *State, at Loc, v E) (any, bool) {
	before := st.failures()
	out := make(map[string]any, len(o.fields))
	if o.extra != nil {
		for k, raw := range *o.extra(&v) {
			if _, known := o.index[k]; !known {
				out[k] = raw
			}
		}
	}
	for _, f := range o.fields {
		if st.Halted() {
			return nil, false
		}
		f.encode(st, at.member(o.name, f.Key()), &v, out)
	}
	if st.Halted() || st.failures() != before {
		return nil, false
	}
	return out, true
}

func (o *Object[E]) JSONSchema(defs js.Defs) *js.Schema {
	if _, done := defs[o.name]; done {
		return js.RefTo(o.name)
	}
	def := &js.Schema{Type: "object", Title: o.name, Properties: map[string]*js.Schema{}}
	// Register before descending so self-references resolve to $ref.
	defs[o.name] = def
	for _, f := range o.fields {
		def.Properties[f.Key()] = f.jsonSchema(defs)
		if f.Required() {
			def.Required = append(def.Required, f.Key())
		}
	}
	return js.RefTo(o.name)
}

// Req declares a required field. Absent and null both fail with missing_field.
func Req[E, T any](key string, s Schema[T], at func(*E) *T) Field[E] {
	return &reqField[E, T]{key: key, s: s, at: at}
}

// Opt declares an optional field held behind a pointer. Absent and null both
// decode to nil; nil is omitted on encode.
func Opt[E, T any](key string, s Schema[T], at func(*E) **T) Field[E] {
	return &optField[E, T]{key: key, s: s, at: at}
}

type reqField[E, T any] struct {
	key string
	s   Schema[T]
	at  func(*E) *T
}

func (f *reqField[E, T]) Key() string    { return f.key }
func (f *reqField[E, T]) Required() bool { return true }

func (f *reqField[E, T]) decode(st *State, at Loc, raw any, present bool, dst *E) {
	if present {
		st.mark(at, PresenceSeen)
	}
	if !present || raw == nil {
		if present {
			st.mark(at, PresenceWasNull)
		}
		st.Fail(MissingField(at))
		return
	}
	if v, ok := decodeGuarded(st, at, f.s, raw); ok {
		*f.at(dst) = v
	}
}

func (f *reqField[E, T]) encode(st *State, at Loc, src *E, out map[string]any) {
	if raw, ok := encodeGuarded(st, at, f.s, *f.at(src)); ok {
		out[f.key] = raw
	}
}

func (f *reqField[E, T]) jsonSchema(defs js.Defs) *js.Schema { return f.s.JSONSchema(defs) }

type optField[E, T any] struct {
	key string
	s   Schema[T]
	at  func(*E) **T
}

func (f *optField[E, T]) Key() string    { return f.key }
func (f *optField[E, T]) Required() bool { return false }

func (f *optField[E, T]) decode(st *State, at Loc, raw any, present bool, dst *E) {
	if !present {
		return
	}
	st.mark(at, PresenceSeen)
	if raw == nil {
		st.mark(at, PresenceWasNull)
		return
	}
	if v, ok := decodeGuarded(st, at, f.s, raw); ok {
		*f.at(dst) = &v
	}
}

func (f *optField[E, T]) encode(st *State, at Loc, src *E, out map[string]any) {
	p := *f.at(src)
	if p == nil {
		return
	}
	if raw, ok := encodeGuarded(st, at, f.s, *p); ok {
		out[f.key] = raw
	}
}

func (f *optField[E, T]) jsonSchema(defs js.Defs) *js.Schema {
	return js.Nullable(f.s.JSONSchema(defs))
}

// selfReferential is implemented by schemas whose value type contains itself.
// Fields holding one are depth-guarded.
type selfReferential interface{ selfReference() }

// Self wraps an object schema for use as a field of its own entity (or of an
// entity it transitively contains). Every hop through a Self field counts
// against ParseOpt.MaxDepth, on decode and on encode.
func Self[E any](o *Object[E]) Schema[E] { return selfRef[E]{o: o} }

type selfRef[E any] struct{ o *Object[E] }

func (selfRef[E]) selfReference() {}

func (s selfRef[E]) Decode(st *State, at Loc, v any) (E, bool) { return s.o.Decode(st, at, v) }
func (s selfRef[E]) Encode(st *State, at Loc, v E) (any, bool) { return s.o.Encode(st, at, v) }
func (s selfRef[E]) JSONSchema(defs js.Defs) *js.Schema     { return s.o.JSONSchema(defs) }

func decodeGuarded[T any](st *State, at Loc, s Schema[T], raw any) (T, bool) {
	if _, ok := s.(selfReferential); ok {
		if !st.Enter(at) {
			var zero T
			return zero, false
		}
		defer st.Leave()
	}
	return s.Decode(st, at, raw)
}

func encodeGuarded[T any](st *State, at Loc, s Schema[T], v T) (any, bool) {
	if _, ok := s.(selfReferential); ok {
		if !st.Enter(at) {
			return nil, false
		}
		defer st.Leave()
	}
	return s.Encode(st, at, v)
}
