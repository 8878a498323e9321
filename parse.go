package fediskema

import (
	"context"
)

// ParseFrom is the primary entry point. It reads the Source into a raw tree
// and decodes it with s. On failure the zero T is returned together with
// Issues; a partially decoded value is never exposed.
func ParseFrom[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (T, error) {
	dm, err := parseFrom(ctx, s, src, lastParseOpt(opts), false)
	return dm.Value, err
}

// ParseFromWithMeta is ParseFrom that also returns presence metadata and the
// warnings (unknown variants, lenient format failures, duplicate keys)
// recorded during the call.
func ParseFromWithMeta[T any](ctx context.Context, s Schema[T], src Source, opts ...ParseOpt) (Decoded[T], error) {
	return parseFrom(ctx, s, src, lastParseOpt(opts), true)
}

// Parse decodes an already-built raw tree.
func Parse[T any](ctx context.Context, s Schema[T], v any, opts ...ParseOpt) (T, error) {
	return ParseFrom(ctx, s, FromValue(v), opts...)
}

func parseFrom[T any](ctx context.Context, s Schema[T], src Source, opt ParseOpt, collect bool) (Decoded[T], error) {
	var zero Decoded[T]
	if s == nil {
		return zero, singleIssue(CodeParseError, "nil schema")
	}
	if src == nil {
		return zero, singleIssue(CodeParseError, "nil source")
	}
	st := newDecodeState(ctx, opt, collect)
	raw, err := src.Tree(opt, st.Warn)
	if err != nil {
		return zero, toIssues(err)
	}
	v, ok := s.Decode(st, Loc{Path: Root()}, raw)
	if !ok || len(st.issues) > 0 {
		if len(st.issues) == 0 {
			// Schemas must record why they failed; keep the contract visible.
			return zero, singleIssue(CodeParseError, "decode failed without issues")
		}
		return Decoded[T]{Warnings: st.warnings}, st.issues
	}
	return Decoded[T]{Value: v, Presence: st.presence, Warnings: st.warnings}, nil
}
