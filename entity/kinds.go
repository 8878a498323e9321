package entity

import (
	"context"
	"fmt"
	"sort"

	fediskema "github.com/reoring/fediskema"
	js "github.com/reoring/fediskema/jsonschema"
)

// Kind names an entity kind for dynamic dispatch ("account", "status", ...).
type Kind string

const (
	KindAccount              Kind = "account"
	KindActivity             Kind = "activity"
	KindAnnouncement         Kind = "announcement"
	KindAnnouncementReaction Kind = "announcement_reaction"
	KindApplication          Kind = "application"
	KindAttachment           Kind = "attachment"
	KindCard                 Kind = "card"
	KindContext              Kind = "context"
	KindConversation         Kind = "conversation"
	KindEmoji                Kind = "emoji"
	KindError                Kind = "error"
	KindFeaturedTag          Kind = "featured_tag"
	KindField                Kind = "field"
	KindFilter               Kind = "filter"
	KindHistory              Kind = "history"
	KindIdentityProof        Kind = "identity_proof"
	KindInstance             Kind = "instance"
	KindList                 Kind = "list"
	KindMarker               Kind = "marker"
	KindMention              Kind = "mention"
	KindNotification         Kind = "notification"
	KindPoll                 Kind = "poll"
	KindPreferences          Kind = "preferences"
	KindPushSubscription     Kind = "push_subscription"
	KindRelationship         Kind = "relationship"
	KindReport               Kind = "report"
	KindResults              Kind = "results"
	KindScheduledStatus      Kind = "scheduled_status"
	KindSource               Kind = "source"
	KindStatus               Kind = "status"
	KindTag                  Kind = "tag"
	KindToken                Kind = "token"
)

// entry erases the entity type of one registered schema.
type entry struct {
	object interface {
		Name() string
		Keys() []string
		RequiredKeys() []string
	}
	decode func(ctx context.Context, src fediskema.Source, opt fediskema.ParseOpt) (fediskema.Decoded[any], error)
	encode func(ctx context.Context, v any, opt fediskema.EncodeOpt) ([]byte, fediskema.Issues, error)
	schema func() *js.Schema
}

func register[E any](k Kind, o *fediskema.Object[E]) {
	registry[k] = entry{
		object: o,
		decode: func(ctx context.Context, src fediskema.Source, opt fediskema.ParseOpt) (fediskema.Decoded[any], error) {
			dm, err := fediskema.ParseFromWithMeta[E](ctx, o, src, opt)
			if err != nil {
				return fediskema.Decoded[any]{Warnings: dm.Warnings}, err
			}
			return fediskema.Decoded[any]{Value: dm.Value, Presence: dm.Presence, Warnings: dm.Warnings}, nil
		},
		encode: func(ctx context.Context, v any, opt fediskema.EncodeOpt) ([]byte, fediskema.Issues, error) {
			var val E
			switch t := v.(type) {
			case E:
				val = t
			case *E:
				if t == nil {
					return nil, nil, notEntity(o.Name(), v)
				}
				val = *t
			default:
				return nil, nil, notEntity(o.Name(), v)
			}
			return fediskema.EncodeWithWarnings[E](ctx, o, val, opt)
		},
		schema: func() *js.Schema { return fediskema.JSONSchemaOf[E](o) },
	}
}

func notEntity(name string, v any) fediskema.Issues {
	return fediskema.AppendIssues(nil, fediskema.Issue{
		Path:     "/",
		Code:     fediskema.CodeTypeMismatch,
		Entity:   name,
		Expected: name,
		Found:    fmt.Sprintf("%T", v),
		Message:  fmt.Sprintf("cannot encode %T as %s", v, name),
	})
}

var registry = map[Kind]entry{}

func init() {
	register(KindAccount, accountSchema)
	register(KindActivity, activitySchema)
	register(KindAnnouncement, announcementSchema)
	register(KindAnnouncementReaction, announcementReactionSchema)
	register(KindApplication, applicationSchema)
	register(KindAttachment, attachmentSchema)
	register(KindCard, cardSchema)
	register(KindContext, contextSchema)
	register(KindConversation, conversationSchema)
	register(KindEmoji, emojiSchema)
	register(KindError, errorSchema)
	register(KindFeaturedTag, featuredTagSchema)
	register(KindField, fieldSchema)
	register(KindFilter, filterSchema)
	register(KindHistory, historySchema)
	register(KindIdentityProof, identityProofSchema)
	register(KindInstance, instanceSchema)
	register(KindList, listSchema)
	register(KindMarker, markerSchema)
	register(KindMention, mentionSchema)
	register(KindNotification, notificationSchema)
	register(KindPoll, pollSchema)
	register(KindPreferences, preferencesSchema)
	register(KindPushSubscription, pushSubscriptionSchema)
	register(KindRelationship, relationshipSchema)
	register(KindReport, reportSchema)
	register(KindResults, resultsSchema)
	register(KindScheduledStatus, scheduledStatusSchema)
	register(KindSource, sourceSchema)
	register(KindStatus, statusSchema)
	register(KindTag, tagSchema)
	register(KindToken, tokenSchema)
}

// Kinds returns every registered kind in ascending order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Lookup resolves a kind by name.
func Lookup(name string) (Kind, bool) {
	_, ok := registry[Kind(name)]
	return Kind(name), ok
}

// Name returns the entity name of k ("Account" for KindAccount).
func (k Kind) Name() string {
	if e, ok := registry[k]; ok {
		return e.object.Name()
	}
	return ""
}

// Keys returns the declared wire keys of k.
func (k Kind) Keys() []string {
	if e, ok := registry[k]; ok {
		return e.object.Keys()
	}
	return nil
}

// RequiredKeys returns the required wire keys of k.
func (k Kind) RequiredKeys() []string {
	if e, ok := registry[k]; ok {
		return e.object.RequiredKeys()
	}
	return nil
}

func lookup(k Kind) (entry, error) {
	e, ok := registry[k]
	if !ok {
		return entry{}, fediskema.AppendIssues(nil, fediskema.Issue{
			Path:    "/",
			Code:    fediskema.CodeParseError,
			Message: fmt.Sprintf("unknown entity kind %q", string(k)),
		})
	}
	return e, nil
}

// Decode decodes a JSON payload as an entity of kind k. The value is the
// entity struct (for example Account, not *Account).
func Decode(ctx context.Context, k Kind, data []byte, opts ...fediskema.ParseOpt) (any, error) {
	dm, err := DecodeFrom(ctx, k, fediskema.JSONBytes(data), opts...)
	return dm.Value, err
}

// DecodeFrom is Decode over any Source, returning presence and warnings.
func DecodeFrom(ctx context.Context, k Kind, src fediskema.Source, opts ...fediskema.ParseOpt) (fediskema.Decoded[any], error) {
	e, err := lookup(k)
	if err != nil {
		return fediskema.Decoded[any]{}, err
	}
	var opt fediskema.ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return e.decode(ctx, src, opt)
}

// Encode encodes v, an entity of kind k or a pointer to one, as JSON.
func Encode(ctx context.Context, k Kind, v any, opts ...fediskema.EncodeOpt) ([]byte, error) {
	b, _, err := EncodeWithWarnings(ctx, k, v, opts...)
	return b, err
}

// EncodeWithWarnings is Encode that also returns lenient-mode warnings.
func EncodeWithWarnings(ctx context.Context, k Kind, v any, opts ...fediskema.EncodeOpt) ([]byte, fediskema.Issues, error) {
	e, err := lookup(k)
	if err != nil {
		return nil, nil, err
	}
	var opt fediskema.EncodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return e.encode(ctx, v, opt)
}

// JSONSchema returns the JSON Schema document of kind k.
func JSONSchema(k Kind) (*js.Schema, error) {
	e, err := lookup(k)
	if err != nil {
		return nil, err
	}
	return e.schema(), nil
}
