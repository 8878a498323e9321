// Package fediskema decodes and encodes the entities exchanged with a
// federated social-network server (accounts, statuses, notifications, ...)
// between raw wire payloads and typed, validated values.
//
//   - Schema[T] is the bidirectional contract; Object[E] declares an entity's
//     wire keys, their optionality and their value schemas in one place.
//   - Issues (JSON Pointer, code, entity, field) is the error model:
//     missing_field, type_mismatch, invalid_format, recursion_limit_exceeded.
//   - Open enumerations never fail a payload: unknown values are kept verbatim
//     and reported as unknown_variant warnings.
//   - Content-typed strings (URIs, HTTPS URLs, HTML, ISO-8601 datetimes,
//     BlurHash, language codes) are validated at decode time; ModeLenient keeps
//     failing raw strings and records warnings instead.
//   - Self-referential fields (Account.moved, Status.reblog) are depth-guarded.
//
// Design policy:
//   - Keep the codec engine in the root package; put entity declarations under
//     entity/, content-typed strings under content/ and the CLI under
//     cmd/fediskema.
//   - Every call is pure: no shared mutable state, no I/O beyond reading the
//     Source.
//
// Typical usage:
//
//	acct, err := fediskema.ParseFrom(ctx, entity.AccountSchema(), fediskema.JSONBytes(data))
//	dm, err := fediskema.ParseFromWithMeta(ctx, entity.StatusSchema(), fediskema.JSONBytes(data))
//
//	wire, err := fediskema.Encode(ctx, entity.AccountSchema(), acct)
package fediskema
