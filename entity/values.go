package entity

import (
	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/content"
)

// Value schemas shared by the entity declarations.
var (
	str     = fediskema.String()
	boolean = fediskema.Bool()
	count   = fediskema.Count()
	opaque  = fediskema.Opaque()

	uri      = fediskema.Text(content.URIFormat)
	webURL   = fediskema.Text(content.URLFormat)
	httpsURL = fediskema.Text(content.HTTPSURLFormat)
	html     = fediskema.Text(content.HTMLFormat)
	datetime = fediskema.Text(content.DatetimeFormat)
	blurhash = fediskema.Text(content.BlurHashFormat)
	lang     = fediskema.Text(content.LanguageFormat)
)

// ref exposes a nested entity schema as a field value schema.
func ref[E any](o *fediskema.Object[E]) fediskema.Schema[E] { return o }
