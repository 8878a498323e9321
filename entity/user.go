package entity

import (
	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/content"
)

// Notification is an event addressed to the authenticated account.
type Notification struct {
	ID        string
	Type      NotificationType
	CreatedAt content.Datetime
	Account   Account
	Status    *Status
	Extra     map[string]any
}

// Conversation is a direct-message thread.
type Conversation struct {
	ID         string
	Accounts   []Account
	Unread     bool
	LastStatus *Status
	Extra      map[string]any
}

// Filter hides statuses matching Phrase in the given contexts.
type Filter struct {
	ID           string
	Phrase       string
	Context      fediskema.Set[ContextFilter]
	ExpiresAt    *content.Datetime
	Irreversible bool
	WholeWord    bool
	Extra        map[string]any
}

// List is a user-defined timeline of followed accounts.
type List struct {
	ID            string
	Title         string
	RepliesPolicy RepliesPolicy
	Extra         map[string]any
}

// Marker holds the last read positions per timeline as raw mappings.
type Marker struct {
	Home          map[string]any
	Notifications map[string]any
	Extra         map[string]any
}

// Preferences are the account's posting and reading defaults.
type Preferences struct {
	PostingDefaultVisibility PostVisibility
	PostingDefaultSensitive  bool
	PostingDefaultLanguage   *content.Language
	ReadingExpandMedia       ExpandMediaSetting
	ReadingExpandSpoilers    bool
	Extra                    map[string]any
}

// PushSubscription is a Web Push subscription.
type PushSubscription struct {
	ID        string
	Endpoint  content.URL
	ServerKey string
	Alerts    map[string]any
	Extra     map[string]any
}

// Results is a search response.
type Results struct {
	Accounts []Account
	Statuses []Status
	Hashtags []Tag
	Extra    map[string]any
}

// Token is an OAuth token. CreatedAt is UNIX seconds.
type Token struct {
	AccessToken string
	TokenType   string
	Scope       string
	CreatedAt   uint32
	Extra       map[string]any
}

// Error is the body of a failed API call.
type Error struct {
	Error            string
	ErrorDescription *string
	Extra            map[string]any
}

// Report declares no fields yet; everything the server sends is reachable
// through Extra under fediskema.UnknownPassthrough.
type Report struct {
	Extra map[string]any
}

// ScheduledStatus declares no fields yet, see Report.
type ScheduledStatus struct {
	Extra map[string]any
}

var (
	notificationSchema     = fediskema.NewObject[Notification]("Notification").WithExtra(func(e *Notification) *map[string]any { return &e.Extra })
	conversationSchema     = fediskema.NewObject[Conversation]("Conversation").WithExtra(func(e *Conversation) *map[string]any { return &e.Extra })
	filterSchema           = fediskema.NewObject[Filter]("Filter").WithExtra(func(e *Filter) *map[string]any { return &e.Extra })
	listSchema             = fediskema.NewObject[List]("List").WithExtra(func(e *List) *map[string]any { return &e.Extra })
	markerSchema           = fediskema.NewObject[Marker]("Marker").WithExtra(func(e *Marker) *map[string]any { return &e.Extra })
	preferencesSchema      = fediskema.NewObject[Preferences]("Preferences").WithExtra(func(e *Preferences) *map[string]any { return &e.Extra })
	pushSubscriptionSchema = fediskema.NewObject[PushSubscription]("PushSubscription").WithExtra(func(e *PushSubscription) *map[string]any { return &e.Extra })
	resultsSchema          = fediskema.NewObject[Results]("Results").WithExtra(func(e *Results) *map[string]any { return &e.Extra })
	tokenSchema            = fediskema.NewObject[Token]("Token").WithExtra(func(e *Token) *map[string]any { return &e.Extra })
	errorSchema            = fediskema.NewObject[Error]("Error").WithExtra(func(e *Error) *map[string]any { return &e.Extra })
	reportSchema           = fediskema.NewObject[Report]("Report").WithExtra(func(e *Report) *map[string]any { return &e.Extra })
	scheduledStatusSchema  = fediskema.NewObject[ScheduledStatus]("ScheduledStatus").WithExtra(func(e *ScheduledStatus) *map[string]any { return &e.Extra })
)

// NotificationSchema returns the Notification schema.
func NotificationSchema() *fediskema.Object[Notification] { return notificationSchema }

// ConversationSchema returns the Conversation schema.
func ConversationSchema() *fediskema.Object[Conversation] { return conversationSchema }

// FilterSchema returns the Filter schema.
func FilterSchema() *fediskema.Object[Filter] { return filterSchema }

// ListSchema returns the List schema.
func ListSchema() *fediskema.Object[List] { return listSchema }

// MarkerSchema returns the Marker schema.
func MarkerSchema() *fediskema.Object[Marker] { return markerSchema }

// PreferencesSchema returns the Preferences schema.
func PreferencesSchema() *fediskema.Object[Preferences] { return preferencesSchema }

// PushSubscriptionSchema returns the PushSubscription schema.
func PushSubscriptionSchema() *fediskema.Object[PushSubscription] { return pushSubscriptionSchema }

// ResultsSchema returns the Results schema.
func ResultsSchema() *fediskema.Object[Results] { return resultsSchema }

// TokenSchema returns the Token schema.
func TokenSchema() *fediskema.Object[Token] { return tokenSchema }

// ErrorSchema returns the Error schema.
func ErrorSchema() *fediskema.Object[Error] { return errorSchema }

// ReportSchema returns the Report schema.
func ReportSchema() *fediskema.Object[Report] { return reportSchema }

// ScheduledStatusSchema returns the ScheduledStatus schema.
func ScheduledStatusSchema() *fediskema.Object[ScheduledStatus] { return scheduledStatusSchema }

func init() {
	notificationSchema.Define(
		fediskema.Req("id", str, func(n *Notification) *string { return &n.ID }),
		fediskema.Req("type", fediskema.Enum(NotificationFollow, NotificationFollowRequest, NotificationMention,
			NotificationReblog, NotificationFavourite, NotificationPoll, NotificationStatus),
			func(n *Notification) *NotificationType { return &n.Type }),
		fediskema.Req("created_at", datetime, func(n *Notification) *content.Datetime { return &n.CreatedAt }),
		fediskema.Req("account", ref(accountSchema), func(n *Notification) *Account { return &n.Account }),
		fediskema.Opt("status", ref(statusSchema), func(n *Notification) **Status { return &n.Status }),
	)

	conversationSchema.Define(
		fediskema.Req("id", str, func(c *Conversation) *string { return &c.ID }),
		fediskema.Req("accounts", fediskema.List[Account](accountSchema), func(c *Conversation) *[]Account { return &c.Accounts }),
		fediskema.Req("unread", boolean, func(c *Conversation) *bool { return &c.Unread }),
		fediskema.Opt("last_status", ref(statusSchema), func(c *Conversation) **Status { return &c.LastStatus }),
	)

	filterSchema.Define(
		fediskema.Req("id", str, func(f *Filter) *string { return &f.ID }),
		fediskema.Req("phrase", str, func(f *Filter) *string { return &f.Phrase }),
		fediskema.Req("context", fediskema.SetOf(fediskema.Enum(ContextHome, ContextNotifications, ContextPublic, ContextThread)),
			func(f *Filter) *fediskema.Set[ContextFilter] { return &f.Context }),
		fediskema.Opt("expires_at", datetime, func(f *Filter) **content.Datetime { return &f.ExpiresAt }),
		fediskema.Req("irreversible", boolean, func(f *Filter) *bool { return &f.Irreversible }),
		fediskema.Req("whole_word", boolean, func(f *Filter) *bool { return &f.WholeWord }),
	)

	listSchema.Define(
		fediskema.Req("id", str, func(l *List) *string { return &l.ID }),
		fediskema.Req("title", str, func(l *List) *string { return &l.Title }),
		fediskema.Req("replies_policy", fediskema.Enum(RepliesFollowed, RepliesList, RepliesNone), func(l *List) *RepliesPolicy { return &l.RepliesPolicy }),
	)

	markerSchema.Define(
		fediskema.Req("home", opaque, func(m *Marker) *map[string]any { return &m.Home }),
		fediskema.Req("notifications", opaque, func(m *Marker) *map[string]any { return &m.Notifications }),
	)

	preferencesSchema.Define(
		fediskema.Req("posting_default_visibility", fediskema.Enum(PostPublic, PostUnlisted, PostPrivate, PostDirect),
			func(p *Preferences) *PostVisibility { return &p.PostingDefaultVisibility }),
		fediskema.Req("posting_default_sensitive", boolean, func(p *Preferences) *bool { return &p.PostingDefaultSensitive }),
		fediskema.Opt("posting_default_language", lang, func(p *Preferences) **content.Language { return &p.PostingDefaultLanguage }),
		fediskema.Req("reading_expand_media", fediskema.Enum(ExpandMediaDefault, ExpandMediaShowAll, ExpandMediaHideAll),
			func(p *Preferences) *ExpandMediaSetting { return &p.ReadingExpandMedia }),
		fediskema.Req("reading_expand_spoilers", boolean, func(p *Preferences) *bool { return &p.ReadingExpandSpoilers }),
	)

	pushSubscriptionSchema.Define(
		fediskema.Req("id", str, func(p *PushSubscription) *string { return &p.ID }),
		fediskema.Req("endpoint", webURL, func(p *PushSubscription) *content.URL { return &p.Endpoint }),
		fediskema.Req("server_key", str, func(p *PushSubscription) *string { return &p.ServerKey }),
		fediskema.Req("alerts", opaque, func(p *PushSubscription) *map[string]any { return &p.Alerts }),
	)

	resultsSchema.Define(
		fediskema.Req("accounts", fediskema.List[Account](accountSchema), func(r *Results) *[]Account { return &r.Accounts }),
		fediskema.Req("statuses", fediskema.List[Status](statusSchema), func(r *Results) *[]Status { return &r.Statuses }),
		fediskema.Req("hashtags", fediskema.List[Tag](tagSchema), func(r *Results) *[]Tag { return &r.Hashtags }),
	)

	tokenSchema.Define(
		fediskema.Req("access_token", str, func(t *Token) *string { return &t.AccessToken }),
		fediskema.Req("token_type", str, func(t *Token) *string { return &t.TokenType }),
		fediskema.Req("scope", str, func(t *Token) *string { return &t.Scope }),
		fediskema.Req("created_at", count, func(t *Token) *uint32 { return &t.CreatedAt }),
	)

	errorSchema.Define(
		fediskema.Req("error", str, func(e *Error) *string { return &e.Error }),
		fediskema.Opt("error_description", str, func(e *Error) **string { return &e.ErrorDescription }),
	)
}
