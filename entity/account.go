package entity

import (
	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/content"
)

// Account is a user profile. Moved points to the account the user migrated
// to; it is the same entity type and is decoded under the depth guard.
type Account struct {
	ID             string
	Username       string
	Acct           content.URI
	URL            content.HTTPSURL
	DisplayName    string
	Note           content.HTML
	Avatar         content.HTTPSURL
	AvatarStatic   content.HTTPSURL
	Header         content.HTTPSURL
	HeaderStatic   content.HTTPSURL
	Locked         bool
	Emojis         []Emoji
	Discoverable   bool
	CreatedAt      content.Datetime
	LastStatusAt   content.Datetime
	StatusesCount  uint32
	FollowersCount uint32
	FollowingCount uint32

	Moved         *Account
	Fields        *[]Field
	Bot           *bool
	Source        *Source
	Suspended     *bool
	MuteExpiresAt *content.Datetime

	// Extra holds undeclared keys under fediskema.UnknownPassthrough.
	Extra map[string]any
}

// Field is a profile metadata entry.
type Field struct {
	Name       string
	Value      content.HTML
	VerifiedAt *content.Datetime
	Extra      map[string]any
}

// Source carries the editable profile settings of the authenticated account.
type Source struct {
	Note                string
	Fields              []Field
	Privacy             *PostPrivacy
	Sensitive           *bool
	Language            *content.Language
	FollowRequestsCount *uint32
	Extra               map[string]any
}

// Emoji is a custom emoji.
type Emoji struct {
	Shortcode       string
	URL             content.URL
	StaticURL       content.URL
	VisibleInPicker bool
	Category        *string
	Extra           map[string]any
}

// IdentityProof links an account to an external identity.
type IdentityProof struct {
	Provider         string
	ProviderUsername string
	ProfileURL       content.URL
	ProofURL         content.URL
	UpdatedAt        content.Datetime
	Extra            map[string]any
}

// FeaturedTag is a hashtag pinned to a profile.
type FeaturedTag struct {
	ID            string
	Name          string
	URL           content.URL
	StatusesCount uint32
	LastStatusAt  content.Datetime
	Extra         map[string]any
}

// Relationship describes how the authenticated account relates to another.
type Relationship struct {
	ID                  string
	Following           bool
	Requested           bool
	Endorsed            bool
	FollowedBy          bool
	Muting              bool
	MutingNotifications bool
	ShowingReblogs      bool
	Notifying           bool
	Blocking            bool
	DomainBlocking      bool
	BlockedBy           bool
	Note                string
	Extra               map[string]any
}

var (
	accountSchema       = fediskema.NewObject[Account]("Account").WithExtra(func(e *Account) *map[string]any { return &e.Extra })
	fieldSchema         = fediskema.NewObject[Field]("Field").WithExtra(func(e *Field) *map[string]any { return &e.Extra })
	sourceSchema        = fediskema.NewObject[Source]("Source").WithExtra(func(e *Source) *map[string]any { return &e.Extra })
	emojiSchema         = fediskema.NewObject[Emoji]("Emoji").WithExtra(func(e *Emoji) *map[string]any { return &e.Extra })
	identityProofSchema = fediskema.NewObject[IdentityProof]("IdentityProof").WithExtra(func(e *IdentityProof) *map[string]any { return &e.Extra })
	featuredTagSchema   = fediskema.NewObject[FeaturedTag]("FeaturedTag").WithExtra(func(e *FeaturedTag) *map[string]any { return &e.Extra })
	relationshipSchema  = fediskema.NewObject[Relationship]("Relationship").WithExtra(func(e *Relationship) *map[string]any { return &e.Extra })
)

// AccountSchema returns the Account schema.
func AccountSchema() *fediskema.Object[Account] { return accountSchema }

// FieldSchema returns the Field schema.
func FieldSchema() *fediskema.Object[Field] { return fieldSchema }

// SourceSchema returns the Source schema.
func SourceSchema() *fediskema.Object[Source] { return sourceSchema }

// EmojiSchema returns the Emoji schema.
func EmojiSchema() *fediskema.Object[Emoji] { return emojiSchema }

// IdentityProofSchema returns the IdentityProof schema.
func IdentityProofSchema() *fediskema.Object[IdentityProof] { return identityProofSchema }

// FeaturedTagSchema returns the FeaturedTag schema.
func FeaturedTagSchema() *fediskema.Object[FeaturedTag] { return featuredTagSchema }

// RelationshipSchema returns the Relationship schema.
func RelationshipSchema() *fediskema.Object[Relationship] { return relationshipSchema }

func init() {
	accountSchema.Define(
		fediskema.Req("id", str, func(a *Account) *string { return &a.ID }),
		fediskema.Req("username", str, func(a *Account) *string { return &a.Username }),
		fediskema.Req("acct", uri, func(a *Account) *content.URI { return &a.Acct }),
		fediskema.Req("url", httpsURL, func(a *Account) *content.HTTPSURL { return &a.URL }),
		fediskema.Req("display_name", str, func(a *Account) *string { return &a.DisplayName }),
		fediskema.Req("note", html, func(a *Account) *content.HTML { return &a.Note }),
		fediskema.Req("avatar", httpsURL, func(a *Account) *content.HTTPSURL { return &a.Avatar }),
		fediskema.Req("avatar_static", httpsURL, func(a *Account) *content.HTTPSURL { return &a.AvatarStatic }),
		fediskema.Req("header", httpsURL, func(a *Account) *content.HTTPSURL { return &a.Header }),
		fediskema.Req("header_static", httpsURL, func(a *Account) *content.HTTPSURL { return &a.HeaderStatic }),
		fediskema.Req("locked", boolean, func(a *Account) *bool { return &a.Locked }),
		fediskema.Req("emojis", fediskema.List[Emoji](emojiSchema), func(a *Account) *[]Emoji { return &a.Emojis }),
		fediskema.Req("discoverable", boolean, func(a *Account) *bool { return &a.Discoverable }),
		fediskema.Req("created_at", datetime, func(a *Account) *content.Datetime { return &a.CreatedAt }),
		fediskema.Req("last_status_at", datetime, func(a *Account) *content.Datetime { return &a.LastStatusAt }),
		fediskema.Req("statuses_count", count, func(a *Account) *uint32 { return &a.StatusesCount }),
		fediskema.Req("followers_count", count, func(a *Account) *uint32 { return &a.FollowersCount }),
		fediskema.Req("following_count", count, func(a *Account) *uint32 { return &a.FollowingCount }),
		fediskema.Opt("moved", fediskema.Self(accountSchema), func(a *Account) **Account { return &a.Moved }),
		fediskema.Opt("fields", fediskema.List[Field](fieldSchema), func(a *Account) **[]Field { return &a.Fields }),
		fediskema.Opt("bot", boolean, func(a *Account) **bool { return &a.Bot }),
		fediskema.Opt("source", ref(sourceSchema), func(a *Account) **Source { return &a.Source }),
		fediskema.Opt("suspended", boolean, func(a *Account) **bool { return &a.Suspended }),
		fediskema.Opt("mute_expires_at", datetime, func(a *Account) **content.Datetime { return &a.MuteExpiresAt }),
	)

	fieldSchema.Define(
		fediskema.Req("name", str, func(f *Field) *string { return &f.Name }),
		fediskema.Req("value", html, func(f *Field) *content.HTML { return &f.Value }),
		fediskema.Opt("verified_at", datetime, func(f *Field) **content.Datetime { return &f.VerifiedAt }),
	)

	sourceSchema.Define(
		fediskema.Req("note", str, func(s *Source) *string { return &s.Note }),
		fediskema.Req("fields", fediskema.List[Field](fieldSchema), func(s *Source) *[]Field { return &s.Fields }),
		fediskema.Opt("privacy", fediskema.Enum(PrivacyPublic, PrivacyUnlisted, PrivacyPrivate, PrivacyDirect), func(s *Source) **PostPrivacy { return &s.Privacy }),
		fediskema.Opt("sensitive", boolean, func(s *Source) **bool { return &s.Sensitive }),
		fediskema.Opt("language", lang, func(s *Source) **content.Language { return &s.Language }),
		fediskema.Opt("follow_requests_count", count, func(s *Source) **uint32 { return &s.FollowRequestsCount }),
	)

	emojiSchema.Define(
		fediskema.Req("shortcode", str, func(e *Emoji) *string { return &e.Shortcode }),
		fediskema.Req("url", webURL, func(e *Emoji) *content.URL { return &e.URL }),
		fediskema.Req("static_url", webURL, func(e *Emoji) *content.URL { return &e.StaticURL }),
		fediskema.Req("visible_in_picker", boolean, func(e *Emoji) *bool { return &e.VisibleInPicker }),
		fediskema.Opt("category", str, func(e *Emoji) **string { return &e.Category }),
	)

	identityProofSchema.Define(
		fediskema.Req("provider", str, func(p *IdentityProof) *string { return &p.Provider }),
		fediskema.Req("provider_username", str, func(p *IdentityProof) *string { return &p.ProviderUsername }),
		fediskema.Req("profile_url", webURL, func(p *IdentityProof) *content.URL { return &p.ProfileURL }),
		fediskema.Req("proof_url", webURL, func(p *IdentityProof) *content.URL { return &p.ProofURL }),
		fediskema.Req("updated_at", datetime, func(p *IdentityProof) *content.Datetime { return &p.UpdatedAt }),
	)

	featuredTagSchema.Define(
		fediskema.Req("id", str, func(t *FeaturedTag) *string { return &t.ID }),
		fediskema.Req("name", str, func(t *FeaturedTag) *string { return &t.Name }),
		fediskema.Req("url", webURL, func(t *FeaturedTag) *content.URL { return &t.URL }),
		fediskema.Req("statuses_count", count, func(t *FeaturedTag) *uint32 { return &t.StatusesCount }),
		fediskema.Req("last_status_at", datetime, func(t *FeaturedTag) *content.Datetime { return &t.LastStatusAt }),
	)

	relationshipSchema.Define(
		fediskema.Req("id", str, func(r *Relationship) *string { return &r.ID }),
		fediskema.Req("following", boolean, func(r *Relationship) *bool { return &r.Following }),
		fediskema.Req("requested", boolean, func(r *Relationship) *bool { return &r.Requested }),
		fediskema.Req("endorsed", boolean, func(r *Relationship) *bool { return &r.Endorsed }),
		fediskema.Req("followed_by", boolean, func(r *Relationship) *bool { return &r.FollowedBy }),
		fediskema.Req("muting", boolean, func(r *Relationship) *bool { return &r.Muting }),
		fediskema.Req("muting_notifications", boolean, func(r *Relationship) *bool { return &r.MutingNotifications }),
		fediskema.Req("showing_reblogs", boolean, func(r *Relationship) *bool { return &r.ShowingReblogs }),
		fediskema.Req("notifying", boolean, func(r *Relationship) *bool { return &r.Notifying }),
		fediskema.Req("blocking", boolean, func(r *Relationship) *bool { return &r.Blocking }),
		fediskema.Req("domain_blocking", boolean, func(r *Relationship) *bool { return &r.DomainBlocking }),
		fediskema.Req("blocked_by", boolean, func(r *Relationship) *bool { return &r.BlockedBy }),
		fediskema.Req("note", str, func(r *Relationship) *string { return &r.Note }),
	)
}
