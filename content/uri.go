package content

import (
	"net/url"
	"strings"
	"unicode"
)

// URI is a Uniform Resource Identifier as it appears on the wire. Account
// handles ("user@example.org") and absolute identifiers both qualify; the
// only requirement is that the string parses as a URI reference without
// whitespace or control characters.
type URI struct {
	raw     string
	checked bool
}

// ParseURI validates raw as a URI reference.
func ParseURI(raw string) (URI, error) {
	if raw == "" {
		return URI{}, &FormatError{Format: "uri", Raw: raw, Err: ErrEmpty}
	}
	if i := strings.IndexFunc(raw, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }); i >= 0 {
		return URI{}, &FormatError{Format: "uri", Raw: raw, Reason: "contains whitespace or control characters"}
	}
	if _, err := url.Parse(raw); err != nil {
		return URI{}, &FormatError{Format: "uri", Raw: raw, Err: err}
	}
	return URI{raw: raw, checked: true}, nil
}

func (u URI) String() string { return u.raw }
func (u URI) Valid() bool    { return u.checked }

// URL is an absolute http or https URL with a host.
type URL struct {
	raw     string
	checked bool
}

// ParseURL validates raw as an absolute http(s) URL.
func ParseURL(raw string) (URL, error) {
	if _, err := parseAbsolute("url", raw, "http", "https"); err != nil {
		return URL{}, err
	}
	return URL{raw: raw, checked: true}, nil
}

func (u URL) String() string { return u.raw }
func (u URL) Valid() bool    { return u.checked }

// Parsed returns the parsed form of the URL.
func (u URL) Parsed() (*url.URL, error) { return url.Parse(u.raw) }

// HTTPSURL is an absolute URL whose documented contract mandates the https
// scheme (profile, avatar and header URLs).
type HTTPSURL struct {
	raw     string
	checked bool
}

// ParseHTTPSURL validates raw as an absolute https URL. An http URL is
// rejected; it is never upgraded.
func ParseHTTPSURL(raw string) (HTTPSURL, error) {
	if _, err := parseAbsolute("https-url", raw, "https"); err != nil {
		return HTTPSURL{}, err
	}
	return HTTPSURL{raw: raw, checked: true}, nil
}

func (u HTTPSURL) String() string { return u.raw }
func (u HTTPSURL) Valid() bool    { return u.checked }

// Parsed returns the parsed form of the URL.
func (u HTTPSURL) Parsed() (*url.URL, error) { return url.Parse(u.raw) }

func parseAbsolute(format, raw string, schemes ...string) (*url.URL, error) {
	if raw == "" {
		return nil, &FormatError{Format: format, Raw: raw, Err: ErrEmpty}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &FormatError{Format: format, Raw: raw, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &FormatError{Format: format, Raw: raw, Reason: "not an absolute URL"}
	}
	for _, s := range schemes {
		if strings.EqualFold(u.Scheme, s) {
			return u, nil
		}
	}
	return nil, &FormatError{Format: format, Raw: raw, Reason: "scheme " + u.Scheme + " not allowed"}
}
