package content

import (
	"time"
)

// Datetime is an ISO-8601 timestamp. Accepted forms are RFC 3339 date-times
// (fractional seconds optional), the same with a "+0000" style offset, the
// basic format ("20240101T000000Z") and calendar dates ("2024-01-01", as
// servers send for last_status_at).
type Datetime struct {
	raw     string
	t       time.Time
	checked bool
}

var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"20060102T150405Z0700",
	"2006-01-02",
	"20060102",
}

// ParseDatetime validates raw as an ISO-8601 date or date-time.
func ParseDatetime(raw string) (Datetime, error) {
	if raw == "" {
		return Datetime{}, &FormatError{Format: "date-time", Raw: raw, Err: ErrEmpty}
	}
	t, err := parseISO8601(raw)
	if err != nil {
		return Datetime{}, &FormatError{Format: "date-time", Raw: raw, Err: err}
	}
	return Datetime{raw: raw, t: t, checked: true}, nil
}

// NewDatetime formats t canonically (UTC, RFC 3339 with trimmed fractional
// seconds).
func NewDatetime(t time.Time) Datetime {
	t = t.UTC()
	return Datetime{raw: t.Format(time.RFC3339Nano), t: t, checked: true}
}

func (d Datetime) String() string { return d.raw }
func (d Datetime) Valid() bool    { return d.checked }

// Time returns the parsed instant; the zero time for unvalidated values.
func (d Datetime) Time() time.Time { return d.t }

func parseISO8601(s string) (time.Time, error) {
	var first error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if first == nil {
			first = err
		}
	}
	return time.Time{}, first
}
