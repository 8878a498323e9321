package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/content"
)

func TestParseURLs(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		uri   bool
		url   bool
		https bool
	}{
		{"https", "https://x.example/@a", true, true, true},
		{"http", "http://x.example/@a", true, true, false},
		{"handle", "a@x.example", true, false, false},
		{"relative", "/@a", true, false, false},
		{"ftp", "ftp://x.example/a", true, false, false},
		{"space", "https://x.example/a b", false, false, false},
		{"empty", "", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := content.ParseURI(tc.raw); (err == nil) != tc.uri {
				t.Fatalf("ParseURI(%q) err=%v, want ok=%v", tc.raw, err, tc.uri)
			}
			if _, err := content.ParseURL(tc.raw); (err == nil) != tc.url {
				t.Fatalf("ParseURL(%q) err=%v, want ok=%v", tc.raw, err, tc.url)
			}
			if _, err := content.ParseHTTPSURL(tc.raw); (err == nil) != tc.https {
				t.Fatalf("ParseHTTPSURL(%q) err=%v, want ok=%v", tc.raw, err, tc.https)
			}
		})
	}
}

func TestParseHTTPSURL_KeepsRawString(t *testing.T) {
	u, err := content.ParseHTTPSURL("HTTPS://X.example/%7Ea")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.String() != "HTTPS://X.example/%7Ea" || !u.Valid() {
		t.Fatalf("unexpected value: %q valid=%v", u.String(), u.Valid())
	}
	p, err := u.Parsed()
	if err != nil || p.Host != "X.example" {
		t.Fatalf("parsed: %v %v", p, err)
	}
}

func TestParseDatetime(t *testing.T) {
	d, err := content.ParseDatetime("2024-01-01T00:00:00.120Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Time().Equal(time.Date(2024, 1, 1, 0, 0, 0, 120_000_000, time.UTC)) {
		t.Fatalf("unexpected time: %v", d.Time())
	}
	if d.String() != "2024-01-01T00:00:00.120Z" {
		t.Fatalf("raw not kept: %q", d.String())
	}
	if _, err := content.ParseDatetime("2024-01-01"); err != nil {
		t.Fatalf("date-only should be accepted: %v", err)
	}
	_, err = content.ParseDatetime("yesterday")
	var fe *content.FormatError
	if !errors.As(err, &fe) || fe.Format != "date-time" {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if got := content.NewDatetime(time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("x", 3600))); got.String() != "2024-05-06T06:08:09Z" {
		t.Fatalf("NewDatetime: %q", got.String())
	}
}

func TestParseDatetime_ISO8601Forms(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-01-01T00:00:00Z",
		"2024-01-01T00:00:00+00:00",
		"2024-01-01T00:00:00+0000",
		"2024-01-01T09:00:00.000+0900",
		"20240101T000000Z",
		"20240101T010000+0100",
		"20240101",
	} {
		d, err := content.ParseDatetime(raw)
		if err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if !d.Time().Equal(want) {
			t.Fatalf("%s: got %v", raw, d.Time())
		}
		if d.String() != raw {
			t.Fatalf("%s: raw not kept: %q", raw, d.String())
		}
	}
	for _, raw := range []string{"2024-13-01", "2024-01-01T25:00:00Z", "2024-01-01 00:00:00"} {
		if _, err := content.ParseDatetime(raw); err == nil {
			t.Fatalf("%s should be rejected", raw)
		}
	}
}

func TestParseBlurHash(t *testing.T) {
	b, err := content.ParseBlurHash("LEHV6nWB2yk8pyo0adR*.7kCMdnj")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if x, y := b.Components(); x != 4 || y != 3 {
		t.Fatalf("components = %d,%d", x, y)
	}
	if _, err := content.ParseBlurHash("LEHV6nWB2yk8"); err == nil {
		t.Fatalf("expected error for truncated hash")
	}
	if _, err := content.ParseBlurHash(""); !errors.Is(err, content.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestParseLanguage(t *testing.T) {
	for _, ok := range []string{"en", "ja", "pt-BR", "eng"} {
		if _, err := content.ParseLanguage(ok); err != nil {
			t.Fatalf("ParseLanguage(%q): %v", ok, err)
		}
	}
	if l, _ := content.ParseLanguage("eng"); l.Base() != "en" || l.String() != "eng" {
		t.Fatalf("base=%q raw=%q", l.Base(), l.String())
	}
	for _, bad := range []string{"", "e1", "english language"} {
		if _, err := content.ParseLanguage(bad); err == nil {
			t.Fatalf("ParseLanguage(%q) should fail", bad)
		}
	}
}

func TestHTML_Opaque(t *testing.T) {
	h, err := content.ParseHTML("<p>unclosed <b>")
	if err != nil || h.String() != "<p>unclosed <b>" {
		t.Fatalf("html: %q %v", h.String(), err)
	}
}

func TestText_StrictAndLenient(t *testing.T) {
	ctx := context.Background()
	s := fediskema.Text(content.HTTPSURLFormat)

	_, err := fediskema.Parse(ctx, s, "http://x.example/@a")
	iss, ok := fediskema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != fediskema.CodeInvalidFormat || iss[0].Raw != "http://x.example/@a" {
		t.Fatalf("expected invalid_format, got %v", err)
	}

	dm, err := fediskema.ParseFromWithMeta(ctx, s, fediskema.FromValue("http://x.example/@a"), fediskema.ParseOpt{Mode: fediskema.ModeLenient})
	if err != nil {
		t.Fatalf("lenient decode: %v", err)
	}
	if dm.Value.String() != "http://x.example/@a" || dm.Value.Valid() {
		t.Fatalf("lenient value: %q valid=%v", dm.Value.String(), dm.Value.Valid())
	}
	if !dm.Warnings.HasCode(fediskema.CodeInvalidFormat) {
		t.Fatalf("expected warning, got %v", dm.Warnings)
	}

	// Strict encode re-validates leniently admitted values.
	if _, err := fediskema.EncodeValue(ctx, s, dm.Value); !fediskema.HasCode(err, fediskema.CodeInvalidFormat) {
		t.Fatalf("strict encode should fail, got %v", err)
	}
	raw, err := fediskema.EncodeValue(ctx, s, dm.Value, fediskema.EncodeOpt{Mode: fediskema.ModeLenient})
	if err != nil || raw != "http://x.example/@a" {
		t.Fatalf("lenient encode: %v %v", raw, err)
	}
}

func TestText_TypeMismatch(t *testing.T) {
	_, err := fediskema.Parse(context.Background(), fediskema.Text(content.URIFormat), 12.0)
	iss, _ := fediskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != fediskema.CodeTypeMismatch || iss[0].Found != "number" {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
}
