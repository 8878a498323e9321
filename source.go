package fediskema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/fediskema/internal/engine"
)

// Source yields the raw value tree of one payload: map[string]any, []any,
// string, bool, numbers and nil. Sources apply the stream-level parts of
// ParseOpt (byte cap, duplicate keys, nesting) and forward non-fatal findings
// to warn.
type Source interface {
	Tree(opt ParseOpt, warn func(Issue)) (any, error)
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{data: b} }

// JSONReader wraps an io.Reader as a JSON Source. The reader is consumed on
// Tree; with MaxBytes set at most MaxBytes+1 bytes are read.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

type jsonSource struct {
	data []byte
	r    io.Reader
}

func (s jsonSource) Tree(opt ParseOpt, warn func(Issue)) (any, error) {
	data, err := s.bytes(opt.MaxBytes)
	if err != nil {
		return nil, err
	}
	src := eng.NewBytes(data)
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxNesting:  opt.maxNesting(),
	}
	if warn != nil {
		eo.IssueSink = func(si eng.SimpleIssue) {
			warn(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	v, err := eng.BuildTree(eng.WrapWithEnforcement(src, eo))
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

func (s jsonSource) bytes(maxBytes int64) ([]byte, error) {
	data := s.data
	if s.r != nil {
		r := s.r
		if maxBytes > 0 {
			r = io.LimitReader(r, maxBytes+1)
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		data = b
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return data, nil
}

// YAMLBytes wraps a YAML document as a Source. Mappings, sequences and
// scalars are normalized to the same shapes the JSON sources produce, which
// makes YAML convenient for fixtures and hand-written payloads.
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

type yamlSource struct{ data []byte }

func (s yamlSource) Tree(opt ParseOpt, warn func(Issue)) (any, error) {
	if opt.MaxBytes > 0 && int64(len(s.data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	dec := yaml.NewDecoder(bytes.NewReader(s.data))
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, singleIssue(CodeParseError, "multiple YAML documents")
	}
	n := yamlNormalizer{max: opt.maxNesting()}
	out := n.value(v, Root())
	if n.overflow != "" {
		return nil, AppendIssues(nil, Issue{Path: n.overflow, Code: CodeParseError, Message: "max nesting exceeded"})
	}
	return out, nil
}

// yamlNormalizer converts yaml.v3 output to JSON source shapes and stops at
// the first container nested deeper than max.
type yamlNormalizer struct {
	max      int
	depth    int
	overflow string
}

func (n *yamlNormalizer) value(v any, at PathRef) any {
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		if n.overflow != "" {
			return nil
		}
		if n.depth >= n.max {
			n.overflow = at.Pointer()
			return nil
		}
		n.depth++
		defer func() { n.depth-- }()
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = n.value(val, at.Field(k))
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key := fmt.Sprint(k)
			out[key] = n.value(val, at.Field(key))
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = n.value(val, at.Index(i))
		}
		return out
	case int:
		return int64(t)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}

// FromValue wraps an already-decoded tree as a Source.
func FromValue(v any) Source { return valueSource{v: v} }

type valueSource struct{ v any }

func (s valueSource) Tree(ParseOpt, func(Issue)) (any, error) { return s.v, nil }

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
}
