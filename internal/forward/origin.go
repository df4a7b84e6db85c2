// Package forward classifies the forward origin of Telegram messages and
// renders the metadata reply text sent back to the requester.
package forward

import (
	"time"

	"github.com/go-telegram/bot/models"
)

// Kind identifies which forward category a message falls into.
type Kind int

const (
	// KindNone means the message carries no usable forward origin.
	KindNone Kind = iota
	// KindUser is a forward from a visible user account.
	KindUser
	// KindChat is a forward from a group chat or channel.
	KindChat
	// KindHidden is a forward whose origin user hides their account
	// behind privacy settings, leaving only a display name and date.
	KindHidden
)

// String returns the lowercase tag used in logs and counters.
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindChat:
		return "chat"
	case KindHidden:
		return "hidden"
	default:
		return "none"
	}
}

// UserOrigin carries the sender metadata of a forward from a visible user.
type UserOrigin struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	IsBot        bool
	LanguageCode string
}

// ChatOrigin carries the source metadata of a forward from a group or channel.
type ChatOrigin struct {
	ID       int64
	Type     string
	Title    string
	Username string
}

// HiddenOrigin carries what little Telegram exposes for privacy-restricted
// forwards: the sender's display name and the original send time.
type HiddenOrigin struct {
	SenderName string
	Date       time.Time
}

// Origin is the classified forward origin of a message. At most one of
// User, Chat and Hidden is set, matching Kind; the zero Origin means the
// message is not a forward.
type Origin struct {
	Kind   Kind
	User   *UserOrigin
	Chat   *ChatOrigin
	Hidden *HiddenOrigin
}

// FromMessage classifies the forward metadata of a Telegram message into
// exactly one Origin variant. The decision happens here, once, at the
// update boundary; nothing downstream re-inspects raw API fields. A nil
// message or a message without forward metadata yields the zero Origin.
//
// Telegram reports chat and channel origins as distinct variants; both
// collapse into ChatOrigin since they carry the same fields this bot shows.
func FromMessage(msg *models.Message) Origin {
	if msg == nil || msg.ForwardOrigin == nil {
		return Origin{}
	}

	fo := msg.ForwardOrigin
	switch {
	case fo.MessageOriginUser != nil:
		u := fo.MessageOriginUser.SenderUser
		return Origin{Kind: KindUser, User: &UserOrigin{
			ID:           u.ID,
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			IsBot:        u.IsBot,
			LanguageCode: u.LanguageCode,
		}}
	case fo.MessageOriginChat != nil:
		c := fo.MessageOriginChat.SenderChat
		return Origin{Kind: KindChat, Chat: &ChatOrigin{
			ID:       c.ID,
			Type:     string(c.Type),
			Title:    c.Title,
			Username: c.Username,
		}}
	case fo.MessageOriginChannel != nil:
		c := fo.MessageOriginChannel.Chat
		return Origin{Kind: KindChat, Chat: &ChatOrigin{
			ID:       c.ID,
			Type:     string(c.Type),
			Title:    c.Title,
			Username: c.Username,
		}}
	case fo.MessageOriginHiddenUser != nil:
		h := fo.MessageOriginHiddenUser
		return Origin{Kind: KindHidden, Hidden: &HiddenOrigin{
			SenderName: h.SenderUserName,
			Date:       time.Unix(int64(h.Date), 0).UTC(),
		}}
	}
	return Origin{}
}
