package fediskema

import (
	"context"
	"log/slog"
)

// State is the per-call bookkeeping shared by every schema taking part in one
// top-level decode or encode: issues, warnings, presence and the
// self-reference depth counter. It is never shared between calls.
type State struct {
	ctx      context.Context
	opt      ParseOpt
	encoding bool

	depth    int
	issues   Issues
	warnings Issues
	presence PresenceMap
	halted   bool
}

func newDecodeState(ctx context.Context, opt ParseOpt, collect bool) *State {
	st := &State{ctx: ctx, opt: opt}
	if collect {
		st.presence = PresenceMap{"/": PresenceSeen}
	}
	return st
}

func newEncodeState(ctx context.Context, opt EncodeOpt) *State {
	return &State{
		ctx:      ctx,
		opt:      ParseOpt{Mode: opt.Mode, MaxDepth: opt.MaxDepth, Logger: opt.Logger},
		encoding: true,
	}
}

// Context returns the context of the call.
func (st *State) Context() context.Context { return st.ctx }

// Mode returns the validation mode of the call.
func (st *State) Mode() Mode { return st.opt.Mode }

// Unknown returns the unknown-key policy of the call.
func (st *State) Unknown() UnknownPolicy { return st.opt.Unknown }

// Encoding reports whether the call is an encode.
func (st *State) Encoding() bool { return st.encoding }

// Fail records a fatal issue.
func (st *State) Fail(it Issue) {
	st.issues = append(st.issues, it)
	if st.opt.FailFast {
		st.halted = true
	}
}

// Warn records a non-fatal issue.
func (st *State) Warn(it Issue) {
	st.warnings = append(st.warnings, it)
	if l := st.opt.Logger; l != nil {
		l.LogAttrs(st.ctx, slog.LevelDebug, "fediskema.warning",
			slog.String("code", it.Code),
			slog.String("path", it.Path),
			slog.String("entity", it.Entity),
			slog.String("field", it.Field),
			slog.String("raw", it.Raw),
		)
	}
}

// Invalid records an invalid_format issue, downgraded to a warning in lenient
// mode. It reports whether the value may still be used.
func (st *State) Invalid(it Issue) bool {
	if st.opt.Mode == ModeLenient {
		st.Warn(it)
		return true
	}
	st.Fail(it)
	return false
}

// Halted reports whether the call stopped early (fail-fast or recursion
// limit). Schemas check it before doing more work.
func (st *State) Halted() bool { return st.halted }

// failures returns the number of fatal issues recorded so far.
func (st *State) failures() int { return len(st.issues) }

// Enter descends into a self-referential field. It returns false, records
// recursion_limit_exceeded and halts the call when the depth would exceed the
// configured maximum. Every successful Enter must be paired with Leave.
func (st *State) Enter(at Loc) bool {
	next := st.depth + 1
	if next > st.opt.maxDepth() {
		st.issues = append(st.issues, RecursionLimitExceeded(at, next))
		st.halted = true
		return false
	}
	st.depth = next
	return true
}

// Leave undoes one Enter.
func (st *State) Leave() {
	if st.depth > 0 {
		st.depth--
	}
}

// Depth returns the current self-reference depth.
func (st *State) Depth() int { return st.depth }

func (st *State) mark(at Loc, p Presence) {
	if st.presence == nil {
		return
	}
	st.presence[at.Path.Pointer()] |= p
}
