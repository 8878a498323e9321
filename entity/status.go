package entity

import (
	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/content"
)

// Status is a post. Reblog holds the boosted post, which is itself a Status
// and is decoded under the depth guard.
type Status struct {
	ID               string
	URI              content.URI
	CreatedAt        content.Datetime
	Account          Account
	Content          content.HTML
	Visibility       StatusVisibility
	Sensitive        bool
	SpoilerText      string
	MediaAttachments []Attachment
	Application      Application
	Mentions         []Mention
	Tags             []Tag
	Emojis           []Emoji
	ReblogsCount     uint32
	FavouritesCount  uint32
	RepliesCount     uint32

	URL                *content.URL
	InReplyToID        *string
	InReplyToAccountID *string
	Reblog             *Status
	Poll               *Poll
	Card               *Card
	Language           *content.Language
	Text               *string
	Favourited         *bool
	Reblogged          *bool
	Muted              *bool
	Bookmarked         *bool
	Pinned             *bool

	Extra map[string]any
}

// Attachment is a media file attached to a status.
type Attachment struct {
	ID          string
	Type        AttachmentType
	URL         content.URL
	PreviewURL  content.URL
	RemoteURL   *content.URL
	Meta        *map[string]any
	Description *string
	Blurhash    *content.BlurHash
	// TextURL is deprecated on the wire; kept so payloads still carrying it
	// round-trip.
	TextURL *content.URL
	Extra   map[string]any
}

// Card is a rich preview of a link found in a status.
type Card struct {
	URL          content.URL
	Title        string
	Description  string
	Type         CardType
	AuthorName   *string
	AuthorURL    *content.URL
	ProviderName *string
	ProviderURL  *content.URL
	HTML         *content.HTML
	Width        *uint32
	Height       *uint32
	Image        *content.URL
	EmbedURL     *content.URL
	Blurhash     *content.BlurHash
	Extra        map[string]any
}

// Poll is a poll attached to a status.
type Poll struct {
	ID          string
	ExpiresAt   *content.Datetime
	Expired     bool
	Multiple    bool
	VotesCount  uint32
	VotersCount *uint32
	Voted       *bool
	// OwnVotes is kept as raw mappings; the server's shape for them is not
	// modelled.
	OwnVotes []map[string]any
	Emojis   []Emoji
	Options  *[]PollOption
	Extra    map[string]any
}

// PollOption is one choice of a Poll.
type PollOption struct {
	Title      string
	VotesCount *uint32
	Extra      map[string]any
}

// Mention is an account mentioned in a status.
type Mention struct {
	ID       string
	Username string
	Acct     content.URI
	URL      content.URL
	Extra    map[string]any
}

// Tag is a hashtag with its usage history.
type Tag struct {
	ID      string
	URL     content.URL
	History []History
	Name    *string
	Extra   map[string]any
}

// History is one day bucket of hashtag usage. All values are strings on the
// wire (UNIX day timestamp, integer counters).
type History struct {
	Day      string
	Uses     string
	Accounts string
	Extra    map[string]any
}

// Application is the client that posted a status.
type Application struct {
	Name         string
	Website      *content.URL
	VapidKey     *string
	ClientID     string
	ClientSecret string
	Extra        map[string]any
}

// Context holds the thread around a status.
type Context struct {
	Ancestors   []Status
	Descendants []Status
	Extra       map[string]any
}

var (
	statusSchema      = fediskema.NewObject[Status]("Status").WithExtra(func(e *Status) *map[string]any { return &e.Extra })
	attachmentSchema  = fediskema.NewObject[Attachment]("Attachment").WithExtra(func(e *Attachment) *map[string]any { return &e.Extra })
	cardSchema        = fediskema.NewObject[Card]("Card").WithExtra(func(e *Card) *map[string]any { return &e.Extra })
	pollSchema        = fediskema.NewObject[Poll]("Poll").WithExtra(func(e *Poll) *map[string]any { return &e.Extra })
	pollOptionSchema  = fediskema.NewObject[PollOption]("PollOption").WithExtra(func(e *PollOption) *map[string]any { return &e.Extra })
	mentionSchema     = fediskema.NewObject[Mention]("Mention").WithExtra(func(e *Mention) *map[string]any { return &e.Extra })
	tagSchema         = fediskema.NewObject[Tag]("Tag").WithExtra(func(e *Tag) *map[string]any { return &e.Extra })
	historySchema     = fediskema.NewObject[History]("History").WithExtra(func(e *History) *map[string]any { return &e.Extra })
	applicationSchema = fediskema.NewObject[Application]("Application").WithExtra(func(e *Application) *map[string]any { return &e.Extra })
	contextSchema     = fediskema.NewObject[Context]("Context").WithExtra(func(e *Context) *map[string]any { return &e.Extra })
)

// StatusSchema returns the Status schema.
func StatusSchema() *fediskema.Object[Status] { return statusSchema }

// AttachmentSchema returns the Attachment schema.
func AttachmentSchema() *fediskema.Object[Attachment] { return attachmentSchema }

// CardSchema returns the Card schema.
func CardSchema() *fediskema.Object[Card] { return cardSchema }

// PollSchema returns the Poll schema.
func PollSchema() *fediskema.Object[Poll] { return pollSchema }

// MentionSchema returns the Mention schema.
func MentionSchema() *fediskema.Object[Mention] { return mentionSchema }

// TagSchema returns the Tag schema.
func TagSchema() *fediskema.Object[Tag] { return tagSchema }

// HistorySchema returns the History schema.
func HistorySchema() *fediskema.Object[History] { return historySchema }

// ApplicationSchema returns the Application schema.
func ApplicationSchema() *fediskema.Object[Application] { return applicationSchema }

// ContextSchema returns the Context schema.
func ContextSchema() *fediskema.Object[Context] { return contextSchema }

func init() {
	statusSchema.Define(
		fediskema.Req("id", str, func(s *Status) *string { return &s.ID }),
		fediskema.Req("uri", uri, func(s *Status) *content.URI { return &s.URI }),
		fediskema.Req("created_at", datetime, func(s *Status) *content.Datetime { return &s.CreatedAt }),
		fediskema.Req("account", ref(accountSchema), func(s *Status) *Account { return &s.Account }),
		fediskema.Req("content", html, func(s *Status) *content.HTML { return &s.Content }),
		fediskema.Req("visibility", fediskema.Enum(VisibilityPublic, VisibilityUnlisted, VisibilityPrivate, VisibilityDirect), func(s *Status) *StatusVisibility { return &s.Visibility }),
		fediskema.Req("sensitive", boolean, func(s *Status) *bool { return &s.Sensitive }),
		fediskema.Req("spoiler_text", str, func(s *Status) *string { return &s.SpoilerText }),
		fediskema.Req("media_attachments", fediskema.List[Attachment](attachmentSchema), func(s *Status) *[]Attachment { return &s.MediaAttachments }),
		fediskema.Req("application", ref(applicationSchema), func(s *Status) *Application { return &s.Application }),
		fediskema.Req("mentions", fediskema.List[Mention](mentionSchema), func(s *Status) *[]Mention { return &s.Mentions }),
		fediskema.Req("tags", fediskema.List[Tag](tagSchema), func(s *Status) *[]Tag { return &s.Tags }),
		fediskema.Req("emojis", fediskema.List[Emoji](emojiSchema), func(s *Status) *[]Emoji { return &s.Emojis }),
		fediskema.Req("reblogs_count", count, func(s *Status) *uint32 { return &s.ReblogsCount }),
		fediskema.Req("favourites_count", count, func(s *Status) *uint32 { return &s.FavouritesCount }),
		fediskema.Req("replies_count", count, func(s *Status) *uint32 { return &s.RepliesCount }),
		fediskema.Opt("url", webURL, func(s *Status) **content.URL { return &s.URL }),
		fediskema.Opt("in_reply_to_id", str, func(s *Status) **string { return &s.InReplyToID }),
		fediskema.Opt("in_reply_to_account_id", str, func(s *Status) **string { return &s.InReplyToAccountID }),
		fediskema.Opt("reblog", fediskema.Self(statusSchema), func(s *Status) **Status { return &s.Reblog }),
		fediskema.Opt("poll", ref(pollSchema), func(s *Status) **Poll { return &s.Poll }),
		fediskema.Opt("card", ref(cardSchema), func(s *Status) **Card { return &s.Card }),
		fediskema.Opt("language", lang, func(s *Status) **content.Language { return &s.Language }),
		fediskema.Opt("text", str, func(s *Status) **string { return &s.Text }),
		fediskema.Opt("favourited", boolean, func(s *Status) **bool { return &s.Favourited }),
		fediskema.Opt("reblogged", boolean, func(s *Status) **bool { return &s.Reblogged }),
		fediskema.Opt("muted", boolean, func(s *Status) **bool { return &s.Muted }),
		fediskema.Opt("bookmarked", boolean, func(s *Status) **bool { return &s.Bookmarked }),
		fediskema.Opt("pinned", boolean, func(s *Status) **bool { return &s.Pinned }),
	)

	attachmentSchema.Define(
		fediskema.Req("id", str, func(a *Attachment) *string { return &a.ID }),
		fediskema.Req("type", fediskema.Enum(AttachmentUnknown, AttachmentImage, AttachmentGifv, AttachmentVideo, AttachmentAudio), func(a *Attachment) *AttachmentType { return &a.Type }),
		fediskema.Req("url", webURL, func(a *Attachment) *content.URL { return &a.URL }),
		fediskema.Req("preview_url", webURL, func(a *Attachment) *content.URL { return &a.PreviewURL }),
		fediskema.Opt("remote_url", webURL, func(a *Attachment) **content.URL { return &a.RemoteURL }),
		fediskema.Opt("meta", opaque, func(a *Attachment) **map[string]any { return &a.Meta }),
		fediskema.Opt("description", str, func(a *Attachment) **string { return &a.Description }),
		fediskema.Opt("blurhash", blurhash, func(a *Attachment) **content.BlurHash { return &a.Blurhash }),
		fediskema.Opt("text_url", webURL, func(a *Attachment) **content.URL { return &a.TextURL }),
	)

	cardSchema.Define(
		fediskema.Req("url", webURL, func(c *Card) *content.URL { return &c.URL }),
		fediskema.Req("title", str, func(c *Card) *string { return &c.Title }),
		fediskema.Req("description", str, func(c *Card) *string { return &c.Description }),
		fediskema.Req("type", fediskema.Enum(CardLink, CardPhoto, CardVideo, CardRich), func(c *Card) *CardType { return &c.Type }),
		fediskema.Opt("author_name", str, func(c *Card) **string { return &c.AuthorName }),
		fediskema.Opt("author_url", webURL, func(c *Card) **content.URL { return &c.AuthorURL }),
		fediskema.Opt("provider_name", str, func(c *Card) **string { return &c.ProviderName }),
		fediskema.Opt("provider_url", webURL, func(c *Card) **content.URL { return &c.ProviderURL }),
		fediskema.Opt("html", html, func(c *Card) **content.HTML { return &c.HTML }),
		fediskema.Opt("width", count, func(c *Card) **uint32 { return &c.Width }),
		fediskema.Opt("height", count, func(c *Card) **uint32 { return &c.Height }),
		fediskema.Opt("image", webURL, func(c *Card) **content.URL { return &c.Image }),
		fediskema.Opt("embed_url", webURL, func(c *Card) **content.URL { return &c.EmbedURL }),
		fediskema.Opt("blurhash", blurhash, func(c *Card) **content.BlurHash { return &c.Blurhash }),
	)

	pollSchema.Define(
		fediskema.Req("id", str, func(p *Poll) *string { return &p.ID }),
		fediskema.Opt("expires_at", datetime, func(p *Poll) **content.Datetime { return &p.ExpiresAt }),
		fediskema.Req("expired", boolean, func(p *Poll) *bool { return &p.Expired }),
		fediskema.Req("multiple", boolean, func(p *Poll) *bool { return &p.Multiple }),
		fediskema.Req("votes_count", count, func(p *Poll) *uint32 { return &p.VotesCount }),
		fediskema.Opt("voters_count", count, func(p *Poll) **uint32 { return &p.VotersCount }),
		fediskema.Opt("voted", boolean, func(p *Poll) **bool { return &p.Voted }),
		fediskema.Req("own_votes", fediskema.List(opaque), func(p *Poll) *[]map[string]any { return &p.OwnVotes }),
		fediskema.Req("emojis", fediskema.List[Emoji](emojiSchema), func(p *Poll) *[]Emoji { return &p.Emojis }),
		fediskema.Opt("options", fediskema.List[PollOption](pollOptionSchema), func(p *Poll) **[]PollOption { return &p.Options }),
	)

	pollOptionSchema.Define(
		fediskema.Req("title", str, func(o *PollOption) *string { return &o.Title }),
		fediskema.Opt("votes_count", count, func(o *PollOption) **uint32 { return &o.VotesCount }),
	)

	mentionSchema.Define(
		fediskema.Req("id", str, func(m *Mention) *string { return &m.ID }),
		fediskema.Req("username", str, func(m *Mention) *string { return &m.Username }),
		fediskema.Req("acct", uri, func(m *Mention) *content.URI { return &m.Acct }),
		fediskema.Req("url", webURL, func(m *Mention) *content.URL { return &m.URL }),
	)

	tagSchema.Define(
		fediskema.Req("id", str, func(t *Tag) *string { return &t.ID }),
		fediskema.Req("url", webURL, func(t *Tag) *content.URL { return &t.URL }),
		fediskema.Req("history", fediskema.List[History](historySchema), func(t *Tag) *[]History { return &t.History }),
		fediskema.Opt("name", str, func(t *Tag) **string { return &t.Name }),
	)

	historySchema.Define(
		fediskema.Req("day", str, func(h *History) *string { return &h.Day }),
		fediskema.Req("uses", str, func(h *History) *string { return &h.Uses }),
		fediskema.Req("accounts", str, func(h *History) *string { return &h.Accounts }),
	)

	applicationSchema.Define(
		fediskema.Req("name", str, func(a *Application) *string { return &a.Name }),
		fediskema.Opt("website", webURL, func(a *Application) **content.URL { return &a.Website }),
		fediskema.Opt("vapid_key", str, func(a *Application) **string { return &a.VapidKey }),
		fediskema.Req("client_id", str, func(a *Application) *string { return &a.ClientID }),
		fediskema.Req("client_secret", str, func(a *Application) *string { return &a.ClientSecret }),
	)

	contextSchema.Define(
		fediskema.Req("ancestors", fediskema.List[Status](statusSchema), func(c *Context) *[]Status { return &c.Ancestors }),
		fediskema.Req("descendants", fediskema.List[Status](statusSchema), func(c *Context) *[]Status { return &c.Descendants }),
	)
}
