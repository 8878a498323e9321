package fediskema

import (
	"context"

	json "github.com/goccy/go-json"
)

// EncodeValue converts v into a raw tree using s: the structural inverse of
// Parse. Optional fields that are nil are omitted; unknown enumeration values
// are emitted as their original strings.
func EncodeValue[T any](ctx context.Context, s Schema[T], v T, opts ...EncodeOpt) (any, error) {
	raw, _, err := encodeValue(ctx, s, v, lastEncodeOpt(opts))
	return raw, err
}

// Encode converts v into JSON bytes using s.
func Encode[T any](ctx context.Context, s Schema[T], v T, opts ...EncodeOpt) ([]byte, error) {
	raw, _, err := encodeValue(ctx, s, v, lastEncodeOpt(opts))
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	return b, nil
}

// EncodeWithWarnings is Encode that also returns the warnings recorded in
// lenient mode.
func EncodeWithWarnings[T any](ctx context.Context, s Schema[T], v T, opts ...EncodeOpt) ([]byte, Issues, error) {
	raw, warnings, err := encodeValue(ctx, s, v, lastEncodeOpt(opts))
	if err != nil {
		return nil, warnings, err
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, warnings, singleIssue(CodeParseError, err.Error())
	}
	return b, warnings, nil
}

func encodeValue[T any](ctx context.Context, s Schema[T], v T, opt EncodeOpt) (any, Issues, error) {
	if s == nil {
		return nil, nil, singleIssue(CodeParseError, "nil schema")
	}
	st := newEncodeState(ctx, opt)
	raw, ok := s.Encode(st, Loc{Path: Root()}, v)
	if !ok || len(st.issues) > 0 {
		if len(st.issues) == 0 {
			return nil, st.warnings, singleIssue(CodeParseError, "encode failed without issues")
		}
		return nil, st.warnings, st.issues
	}
	return raw, st.warnings, nil
}
