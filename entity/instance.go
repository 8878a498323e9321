package entity

import (
	fediskema "github.com/reoring/fediskema"
	"github.com/reoring/fediskema/content"
)

// Instance describes the server.
type Instance struct {
	URI              string
	Title            string
	Description      string
	ShortDescription string
	Email            string
	Version          string
	Languages        []content.Language
	Registrations    bool
	ApprovalRequired bool
	InvitesEnabled   bool
	URLs             map[string]any
	Stats            map[string]any
	Thumbnail        *content.URL
	ContactAccount   *Account
	Extra            map[string]any
}

// Activity is one week of server activity. Every value is a string on the
// wire.
type Activity struct {
	Week          string
	Statuses      string
	Logins        string
	Registrations string
	Extra         map[string]any
}

// Announcement is an administrator notice.
type Announcement struct {
	ID          string
	Text        string
	Published   bool
	AllDay      bool
	CreatedAt   content.Datetime
	UpdatedAt   content.Datetime
	Read        bool
	Reactions   []AnnouncementReaction
	ScheduledAt *content.Datetime
	StartsAt    *content.Datetime
	EndsAt      *content.Datetime
	Extra       map[string]any
}

// AnnouncementReaction is an emoji reaction tally on an Announcement.
type AnnouncementReaction struct {
	Name      string
	Count     uint32
	Me        bool
	URL       content.URL
	StaticURL content.URL
	Extra     map[string]any
}

var (
	instanceSchema             = fediskema.NewObject[Instance]("Instance").WithExtra(func(e *Instance) *map[string]any { return &e.Extra })
	activitySchema             = fediskema.NewObject[Activity]("Activity").WithExtra(func(e *Activity) *map[string]any { return &e.Extra })
	announcementSchema         = fediskema.NewObject[Announcement]("Announcement").WithExtra(func(e *Announcement) *map[string]any { return &e.Extra })
	announcementReactionSchema = fediskema.NewObject[AnnouncementReaction]("AnnouncementReaction").WithExtra(func(e *AnnouncementReaction) *map[string]any { return &e.Extra })
)

// InstanceSchema returns the Instance schema.
func InstanceSchema() *fediskema.Object[Instance] { return instanceSchema }

// ActivitySchema returns the Activity schema.
func ActivitySchema() *fediskema.Object[Activity] { return activitySchema }

// AnnouncementSchema returns the Announcement schema.
func AnnouncementSchema() *fediskema.Object[Announcement] { return announcementSchema }

// AnnouncementReactionSchema returns the AnnouncementReaction schema.
func AnnouncementReactionSchema() *fediskema.Object[AnnouncementReaction] {
	return announcementReactionSchema
}

func init() {
	instanceSchema.Define(
		fediskema.Req("uri", str, func(i *Instance) *string { return &i.URI }),
		fediskema.Req("title", str, func(i *Instance) *string { return &i.Title }),
		fediskema.Req("description", str, func(i *Instance) *string { return &i.Description }),
		fediskema.Req("short_description", str, func(i *Instance) *string { return &i.ShortDescription }),
		fediskema.Req("email", str, func(i *Instance) *string { return &i.Email }),
		fediskema.Req("version", str, func(i *Instance) *string { return &i.Version }),
		fediskema.Req("languages", fediskema.List(lang), func(i *Instance) *[]content.Language { return &i.Languages }),
		fediskema.Req("registrations", boolean, func(i *Instance) *bool { return &i.Registrations }),
		fediskema.Req("approval_required", boolean, func(i *Instance) *bool { return &i.ApprovalRequired }),
		fediskema.Req("invites_enabled", boolean, func(i *Instance) *bool { return &i.InvitesEnabled }),
		fediskema.Req("urls", opaque, func(i *Instance) *map[string]any { return &i.URLs }),
		fediskema.Req("stats", opaque, func(i *Instance) *map[string]any { return &i.Stats }),
		fediskema.Opt("thumbnail", webURL, func(i *Instance) **content.URL { return &i.Thumbnail }),
		fediskema.Opt("contact_account", ref(accountSchema), func(i *Instance) **Account { return &i.ContactAccount }),
	)

	activitySchema.Define(
		fediskema.Req("week", str, func(a *Activity) *string { return &a.Week }),
		fediskema.Req("statuses", str, func(a *Activity) *string { return &a.Statuses }),
		fediskema.Req("logins", str, func(a *Activity) *string { return &a.Logins }),
		fediskema.Req("registrations", str, func(a *Activity) *string { return &a.Registrations }),
	)

	announcementSchema.Define(
		fediskema.Req("id", str, func(a *Announcement) *string { return &a.ID }),
		fediskema.Req("text", str, func(a *Announcement) *string { return &a.Text }),
		fediskema.Req("published", boolean, func(a *Announcement) *bool { return &a.Published }),
		fediskema.Req("all_day", boolean, func(a *Announcement) *bool { return &a.AllDay }),
		fediskema.Req("created_at", datetime, func(a *Announcement) *content.Datetime { return &a.CreatedAt }),
		fediskema.Req("updated_at", datetime, func(a *Announcement) *content.Datetime { return &a.UpdatedAt }),
		fediskema.Req("read", boolean, func(a *Announcement) *bool { return &a.Read }),
		fediskema.Req("reactions", fediskema.List[AnnouncementReaction](announcementReactionSchema), func(a *Announcement) *[]AnnouncementReaction { return &a.Reactions }),
		fediskema.Opt("scheduled_at", datetime, func(a *Announcement) **content.Datetime { return &a.ScheduledAt }),
		fediskema.Opt("starts_at", datetime, func(a *Announcement) **content.Datetime { return &a.StartsAt }),
		fediskema.Opt("ends_at", datetime, func(a *Announcement) **content.Datetime { return &a.EndsAt }),
	)

	announcementReactionSchema.Define(
		fediskema.Req("name", str, func(r *AnnouncementReaction) *string { return &r.Name }),
		fediskema.Req("count", count, func(r *AnnouncementReaction) *uint32 { return &r.Count }),
		fediskema.Req("me", boolean, func(r *AnnouncementReaction) *bool { return &r.Me }),
		fediskema.Req("url", webURL, func(r *AnnouncementReaction) *content.URL { return &r.URL }),
		fediskema.Req("static_url", webURL, func(r *AnnouncementReaction) *content.URL { return &r.StaticURL }),
	)
}
