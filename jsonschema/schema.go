package jsonschema

// Draft is the dialect emitted by Document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Document
	SchemaURI string             `json:"$schema,omitempty"`
	Ref       string             `json:"$ref,omitempty"`
	Defs      map[string]*Schema `json:"$defs,omitempty"`

	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Enumerations are open; Examples lists the known values without
	// constraining the wire.
	Examples []any `json:"examples,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema `json:"items,omitempty"`
	UniqueItems bool    `json:"uniqueItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Defs collects named definitions while a document is being built. Object
// schemas register themselves once and are referenced by $ref afterwards, so
// self-referential entities terminate.
type Defs map[string]*Schema

// RefTo returns a $ref to a definition in the same document.
func RefTo(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// Nullable wraps s so that null is also accepted.
func Nullable(s *Schema) *Schema {
	return &Schema{OneOf: []*Schema{s, {Type: "null"}}}
}

// Document assembles a root schema referencing the definition name.
func Document(name string, defs Defs) *Schema {
	return &Schema{
		SchemaURI: Draft,
		Ref:       "#/$defs/" + name,
		Defs:      map[string]*Schema(defs),
	}
}
