package entity

// Open enumerations. Each is a string-backed type: a value the server
// introduced after this model was written decodes without error, keeps its
// wire string and reports Known() == false.

// AttachmentType is the media kind of an Attachment.
type AttachmentType string

const (
	AttachmentUnknown AttachmentType = "unknown"
	AttachmentImage   AttachmentType = "image"
	AttachmentGifv    AttachmentType = "gifv"
	AttachmentVideo   AttachmentType = "video"
	AttachmentAudio   AttachmentType = "audio"
)

func (t AttachmentType) Known() bool {
	switch t {
	case AttachmentUnknown, AttachmentImage, AttachmentGifv, AttachmentVideo, AttachmentAudio:
		return true
	}
	return false
}

// CardType is the kind of a preview Card.
type CardType string

const (
	CardLink  CardType = "link"
	CardPhoto CardType = "photo"
	CardVideo CardType = "video"
	CardRich  CardType = "rich"
)

func (t CardType) Known() bool {
	switch t {
	case CardLink, CardPhoto, CardVideo, CardRich:
		return true
	}
	return false
}

// ContextFilter is a timeline context a Filter applies to.
type ContextFilter string

const (
	ContextHome          ContextFilter = "home"
	ContextNotifications ContextFilter = "notifications"
	ContextPublic        ContextFilter = "public"
	ContextThread        ContextFilter = "thread"
)

func (c ContextFilter) Known() bool {
	switch c {
	case ContextHome, ContextNotifications, ContextPublic, ContextThread:
		return true
	}
	return false
}

// Visibility values shared by PostPrivacy, PostVisibility and
// StatusVisibility.
const (
	visibilityPublic   = "public"
	visibilityUnlisted = "unlisted"
	visibilityPrivate  = "private"
	visibilityDirect   = "direct"
)

func knownVisibility(s string) bool {
	switch s {
	case visibilityPublic, visibilityUnlisted, visibilityPrivate, visibilityDirect:
		return true
	}
	return false
}

// PostPrivacy is the default privacy in an account's Source.
type PostPrivacy string

const (
	PrivacyPublic   PostPrivacy = visibilityPublic
	PrivacyUnlisted PostPrivacy = visibilityUnlisted
	PrivacyPrivate  PostPrivacy = visibilityPrivate
	PrivacyDirect   PostPrivacy = visibilityDirect
)

func (p PostPrivacy) Known() bool { return knownVisibility(string(p)) }

// PostVisibility is the default visibility in Preferences.
type PostVisibility string

const (
	PostPublic   PostVisibility = visibilityPublic
	PostUnlisted PostVisibility = visibilityUnlisted
	PostPrivate  PostVisibility = visibilityPrivate
	PostDirect   PostVisibility = visibilityDirect
)

func (p PostVisibility) Known() bool { return knownVisibility(string(p)) }

// StatusVisibility is the visibility of a Status.
type StatusVisibility string

const (
	VisibilityPublic   StatusVisibility = visibilityPublic
	VisibilityUnlisted StatusVisibility = visibilityUnlisted
	VisibilityPrivate  StatusVisibility = visibilityPrivate
	VisibilityDirect   StatusVisibility = visibilityDirect
)

func (v StatusVisibility) Known() bool { return knownVisibility(string(v)) }

// ExpandMediaSetting controls whether sensitive media is shown.
type ExpandMediaSetting string

const (
	ExpandMediaDefault ExpandMediaSetting = "default"
	ExpandMediaShowAll ExpandMediaSetting = "show_all"
	ExpandMediaHideAll ExpandMediaSetting = "hide_all"
)

func (e ExpandMediaSetting) Known() bool {
	switch e {
	case ExpandMediaDefault, ExpandMediaShowAll, ExpandMediaHideAll:
		return true
	}
	return false
}

// RepliesPolicy selects which replies a List shows.
type RepliesPolicy string

const (
	RepliesFollowed RepliesPolicy = "followed"
	RepliesList     RepliesPolicy = "list"
	RepliesNone     RepliesPolicy = "none"
)

func (r RepliesPolicy) Known() bool {
	switch r {
	case RepliesFollowed, RepliesList, RepliesNone:
		return true
	}
	return false
}

// NotificationType tags a Notification.
type NotificationType string

const (
	NotificationFollow        NotificationType = "follow"
	NotificationFollowRequest NotificationType = "follow_request"
	NotificationMention       NotificationType = "mention"
	NotificationReblog        NotificationType = "reblog"
	NotificationFavourite     NotificationType = "favourite"
	NotificationPoll          NotificationType = "poll"
	NotificationStatus        NotificationType = "status"
)

func (n NotificationType) Known() bool {
	switch n {
	case NotificationFollow, NotificationFollowRequest, NotificationMention,
		NotificationReblog, NotificationFavourite, NotificationPoll, NotificationStatus:
		return true
	}
	return false
}
