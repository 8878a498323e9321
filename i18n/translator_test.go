package i18n

import (
	"sync"
	"testing"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type_mismatch", nil); msg == "type_mismatch" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("type_mismatch", map[string]string{"expected": "string", "found": "number"}); msg != "string が必要ですが number でした" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_FillsPlaceholders(t *testing.T) {
	got := T("missing_field", map[string]string{"entity": "Account", "field": "acct"})
	if got != "required field acct missing on Account" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code echo, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if got := T("parse_error", nil); got != "X:parse_error" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("parse_error", nil); got != "parse error" {
		t.Fatalf("expected reset to en, got %q", got)
	}
}

func TestSetLanguage_ConcurrentWithT(t *testing.T) {
	defer SetLanguage("en")
	en := "required field acct missing on Account"
	ja := "Account の必須フィールド acct がありません"
	data := map[string]string{"entity": "Account", "field": "acct"}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if j%2 == 0 {
					SetLanguage("ja")
				} else {
					SetLanguage("en")
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := T("missing_field", data); got != en && got != ja {
					t.Errorf("torn message %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
