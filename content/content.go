// Package content provides the content-typed strings of the entity model:
// wire strings with a documented format that are validated when decoded.
//
// Every type keeps the original wire string, so encode reproduces it byte for
// byte. Values admitted without validation (lenient decoding) report
// Valid() == false.
package content

import (
	"errors"
	"fmt"

	fediskema "github.com/reoring/fediskema"
)

// ErrEmpty is returned when a content-typed string is empty.
var ErrEmpty = errors.New("empty value")

// FormatError describes why a raw string does not satisfy a format.
type FormatError struct {
	Format string
	Raw    string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Format, e.Raw)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// text is the common shape of every content type.
type text interface {
	String() string
	Valid() bool
}

// codec adapts a parse/accept pair to fediskema.TextCodec.
type codec[T text] struct {
	format string
	parse  func(string) (T, error)
	accept func(string) T
}

func (c codec[T]) Format() string              { return c.format }
func (c codec[T]) Parse(raw string) (T, error) { return c.parse(raw) }
func (c codec[T]) Accept(raw string) T         { return c.accept(raw) }
func (c codec[T]) Text(v T) string             { return v.String() }

func (c codec[T]) Check(v T) error {
	if v.Valid() {
		return nil
	}
	_, err := c.parse(v.String())
	if err == nil {
		// Accepted leniently but parses now; nothing to report.
		return nil
	}
	return err
}

// Codecs for each content type, ready for fediskema.Text.
var (
	URIFormat      fediskema.TextCodec[URI]      = codec[URI]{format: "uri", parse: ParseURI, accept: func(s string) URI { return URI{raw: s} }}
	URLFormat      fediskema.TextCodec[URL]      = codec[URL]{format: "url", parse: ParseURL, accept: func(s string) URL { return URL{raw: s} }}
	HTTPSURLFormat fediskema.TextCodec[HTTPSURL] = codec[HTTPSURL]{format: "https-url", parse: ParseHTTPSURL, accept: func(s string) HTTPSURL { return HTTPSURL{raw: s} }}
	HTMLFormat     fediskema.TextCodec[HTML]     = codec[HTML]{format: "html", parse: ParseHTML, accept: func(s string) HTML { return HTML{raw: s} }}
	DatetimeFormat fediskema.TextCodec[Datetime] = codec[Datetime]{format: "date-time", parse: ParseDatetime, accept: func(s string) Datetime { return Datetime{raw: s} }}
	BlurHashFormat fediskema.TextCodec[BlurHash] = codec[BlurHash]{format: "blurhash", parse: ParseBlurHash, accept: func(s string) BlurHash { return BlurHash{raw: s} }}
	LanguageFormat fediskema.TextCodec[Language] = codec[Language]{format: "iso-639", parse: ParseLanguage, accept: func(s string) Language { return Language{raw: s} }}
)
