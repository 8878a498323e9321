package content

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is an ISO 639 language code such as "en" or "ja". A region or
// script subtag ("pt-BR") is tolerated as long as the whole tag is well
// formed.
type Language struct {
	raw     string
	base    string
	checked bool
}

// ParseLanguage validates raw as an ISO 639 code.
func ParseLanguage(raw string) (Language, error) {
	if raw == "" {
		return Language{}, &FormatError{Format: "iso-639", Raw: raw, Err: ErrEmpty}
	}
	head, _, hasSub := strings.Cut(raw, "-")
	b, err := language.ParseBase(head)
	if err != nil {
		return Language{}, &FormatError{Format: "iso-639", Raw: raw, Err: err}
	}
	if hasSub {
		if _, err := language.Parse(raw); err != nil {
			return Language{}, &FormatError{Format: "iso-639", Raw: raw, Err: err}
		}
	}
	return Language{raw: raw, base: b.String(), checked: true}, nil
}

func (l Language) String() string { return l.raw }
func (l Language) Valid() bool    { return l.checked }

// Base returns the canonical base language ("en" for "eng").
func (l Language) Base() string { return l.base }
