package fediskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeMissingField   = "missing_field"
	CodeTypeMismatch   = "type_mismatch"
	CodeInvalidFormat  = "invalid_format"
	CodeUnknownVariant = "unknown_variant"
	CodeRecursionLimit = "recursion_limit_exceeded"
	CodeUnknownKey     = "unknown_key"
	CodeDuplicateKey   = "duplicate_key"
	CodeTruncated      = "truncated"
	CodeParseError     = "parse_error"
)

// Issue represents a single decode or encode finding.
type Issue struct {
	Path    string // JSON Pointer (for example: /moved/emojis/2/url).
	Code    string // One of the codes listed above.
	Message string

	// Entity and Field name the schema position the issue belongs to.
	Entity string
	Field  string

	// Expected and Found describe a type mismatch ("string", "number", ...).
	Expected string
	Found    string

	// Depth is the self-reference depth reached for recursion_limit_exceeded.
	Depth int

	// Raw carries the offending wire string for unknown_variant and
	// invalid_format.
	Raw string

	Cause error // Optional: underlying error.
}

func (it Issue) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	if it.Entity != "" && it.Field != "" {
		fmt.Fprintf(b, " (%s.%s)", it.Entity, it.Field)
	} else if it.Entity != "" {
		fmt.Fprintf(b, " (%s)", it.Entity)
	}
	if it.Message != "" {
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	return b.String()
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_field at /username
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	_, ok := iss.First(code)
	return ok
}

// First returns the first issue with the given code.
func (iss Issues) First(code string) (Issue, bool) {
	for _, it := range iss {
		if it.Code == code {
			return it, true
		}
	}
	return Issue{}, false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	return ok && iss.HasCode(code)
}
