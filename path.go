package fediskema

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way.
type PathRef struct {
	parts []string
}

// Root returns the empty path ("/").
func Root() PathRef { return PathRef{} }

// Field appends an object key, escaping '~' and '/' per RFC 6901.
func (p PathRef) Field(name string) PathRef {
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return PathRef{parts: append(append([]string{}, p.parts...), esc)}
}

// Index appends an array index.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path as a JSON Pointer.
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Loc is the position a schema is decoding or encoding: the JSON Pointer plus
// the entity and field it belongs to.
type Loc struct {
	Path   PathRef
	Entity string
	Field  string
}

// Index moves to element i of a sequence held by the same field.
func (l Loc) Index(i int) Loc {
	l.Path = l.Path.Index(i)
	return l
}

// Key moves to key k of a mapping held by the same field.
func (l Loc) Key(k string) Loc {
	l.Path = l.Path.Field(k)
	return l
}

// member returns the location of field key on entity.
func (l Loc) member(entity, key string) Loc {
	return Loc{Path: l.Path.Field(key), Entity: entity, Field: key}
}
