package fediskema

import "log/slog"

// Mode selects how content-typed string failures are treated.
type Mode int

const (
	ModeStrict  Mode = iota // invalid_format is a hard failure.
	ModeLenient             // Keep the raw string and record a warning.
)

func (m Mode) String() string {
	if m == ModeLenient {
		return "lenient"
	}
	return "strict"
}

// UnknownPolicy controls how keys the schema does not declare are handled.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys.
	UnknownPassthrough                      // Keep unknown keys in the entity's Extra bucket.
	UnknownStrict                           // Reject unknown keys with an error.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement on the raw JSON stream.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// DefaultMaxDepth bounds nested self-references (Account.moved,
// Status.reblog) when ParseOpt.MaxDepth is not set.
const DefaultMaxDepth = 8

// DefaultMaxNesting bounds raw object/array nesting when ParseOpt.MaxNesting
// is not set. The tree builder recurses per level, so the cap is always on.
const DefaultMaxNesting = 1000

// ParseOpt bundles decoding options.
type ParseOpt struct {
	Mode       Mode
	Unknown    UnknownPolicy
	Strictness Strictness
	// MaxDepth bounds nested self-references; <= 0 selects DefaultMaxDepth.
	MaxDepth int
	// MaxBytes caps the payload size; 0 disables the cap.
	MaxBytes int64
	// MaxNesting caps raw object/array nesting; <= 0 selects
	// DefaultMaxNesting.
	MaxNesting int
	FailFast   bool
	// Logger receives warning records; nil discards them.
	Logger *slog.Logger
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	Mode     Mode
	MaxDepth int
	Logger   *slog.Logger
}

func (o ParseOpt) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o ParseOpt) maxNesting() int {
	if o.MaxNesting <= 0 {
		return DefaultMaxNesting
	}
	return o.MaxNesting
}

func lastParseOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}

func lastEncodeOpt(opts []EncodeOpt) EncodeOpt {
	if len(opts) == 0 {
		return EncodeOpt{}
	}
	return opts[len(opts)-1]
}
