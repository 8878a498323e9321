package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var catalog = map[string]map[string]string{
	"en": {
		"missing_field":            "required field {field} missing on {entity}",
		"type_mismatch":            "expected {expected}, found {found}",
		"invalid_format":           "value is not a valid {format}",
		"unknown_variant":          "unknown variant {value}",
		"recursion_limit_exceeded": "self-reference depth {depth} exceeds the limit",
		"unknown_key":              "unknown key {key}",
		"duplicate_key":            "duplicate key",
		"parse_error":              "parse error",
		"truncated":                "truncated",
	},
	"ja": {
		"missing_field":            "{entity} の必須フィールド {field} がありません",
		"type_mismatch":            "{expected} が必要ですが {found} でした",
		"invalid_format":           "{format} の形式ではありません",
		"unknown_variant":          "未知の値です: {value}",
		"recursion_limit_exceeded": "自己参照の深さ {depth} が上限を超えました",
		"unknown_key":              "未知のキーです: {key}",
		"duplicate_key":            "キーが重複しています",
		"parse_error":              "解析エラー",
		"truncated":                "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := catalog[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

type holder struct{ tr Translator }

// current is read by every decode; swaps are atomic so switching language
// while decodes run is safe.
var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
