package fediskema

import (
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/fediskema/i18n"
)

// MissingField reports a required field that is absent (or null) in the payload.
func MissingField(at Loc) Issue {
	return Issue{
		Path:    at.Path.Pointer(),
		Code:    CodeMissingField,
		Entity:  at.Entity,
		Field:   at.Field,
		Message: i18n.T(CodeMissingField, map[string]string{"entity": at.Entity, "field": at.Field}),
	}
}

// TypeMismatch reports a value whose JSON shape differs from the schema.
func TypeMismatch(at Loc, expected string, found any) Issue {
	f := KindOf(found)
	return Issue{
		Path:     at.Path.Pointer(),
		Code:     CodeTypeMismatch,
		Entity:   at.Entity,
		Field:    at.Field,
		Expected: expected,
		Found:    f,
		Message:  i18n.T(CodeTypeMismatch, map[string]string{"expected": expected, "found": f}),
	}
}

// InvalidFormat reports a value of the right shape that fails its format
// contract (content-typed strings, counters).
func InvalidFormat(at Loc, format, raw string, cause error) Issue {
	return Issue{
		Path:     at.Path.Pointer(),
		Code:     CodeInvalidFormat,
		Entity:   at.Entity,
		Field:    at.Field,
		Expected: format,
		Raw:      raw,
		Cause:    cause,
		Message:  i18n.T(CodeInvalidFormat, map[string]string{"format": format}),
	}
}

// UnknownVariant records an enumeration value outside the known repertoire.
// It is always a warning.
func UnknownVariant(at Loc, raw string) Issue {
	return Issue{
		Path:    at.Path.Pointer(),
		Code:    CodeUnknownVariant,
		Entity:  at.Entity,
		Field:   at.Field,
		Raw:     raw,
		Message: i18n.T(CodeUnknownVariant, map[string]string{"value": raw}),
	}
}

// RecursionLimitExceeded reports a self-referential chain deeper than the
// configured maximum.
func RecursionLimitExceeded(at Loc, depth int) Issue {
	return Issue{
		Path:    at.Path.Pointer(),
		Code:    CodeRecursionLimit,
		Entity:  at.Entity,
		Field:   at.Field,
		Depth:   depth,
		Message: i18n.T(CodeRecursionLimit, map[string]string{"depth": strconv.Itoa(depth)}),
	}
}

// UnknownKey reports a key the schema does not declare (UnknownStrict only).
func UnknownKey(at Loc, key string) Issue {
	return Issue{
		Path:    at.Path.Field(key).Pointer(),
		Code:    CodeUnknownKey,
		Entity:  at.Entity,
		Field:   key,
		Message: i18n.T(CodeUnknownKey, map[string]string{"key": key}),
	}
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg}) }

// KindOf names the JSON shape of a raw value.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32, uint64, uint32:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return "unknown"
	}
}
