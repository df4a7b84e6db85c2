package forward

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-telegram/bot/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// handlePlaceholder substitutes for accounts without a public username.
const handlePlaceholder = "N/A"

// NotIdentifiableText is the fixed reply for messages with no usable
// forward origin.
const NotIdentifiableText = `ℹ️ Could not identify the original sender.

Possible reasons:
• this message is not a forward
• the sender restricts forwarding with privacy settings
• the message comes from a secret chat`

// minAccountCreation predates the first Telegram accounts; identifiers
// decoding to an earlier time carry no plausible creation timestamp.
var minAccountCreation = time.Date(2013, time.January, 1, 0, 0, 0, 0, time.UTC)

// Reply renders the reply for a classified origin, dispatching in fixed
// priority order: user, chat, hidden, none. Metadata blocks use Telegram
// HTML; the not-identifiable explanation is plain text (empty parse mode).
// Pure function of its inputs, safe for concurrent use.
func Reply(origin Origin, now time.Time) (string, models.ParseMode) {
	switch {
	case origin.Kind == KindUser && origin.User != nil:
		return userReply(*origin.User, now), models.ParseModeHTML
	case origin.Kind == KindChat && origin.Chat != nil:
		return chatReply(*origin.Chat), models.ParseModeHTML
	case origin.Kind == KindHidden && origin.Hidden != nil:
		return hiddenReply(*origin.Hidden), models.ParseModeHTML
	default:
		return NotIdentifiableText, ""
	}
}

// SelfReply renders the /myid block for the invoking user: identifier,
// display name, username and language tag. Telegram HTML.
func SelfReply(u *models.User) string {
	if u == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🆔 <b>Your ID</b>: <code>%d</code>\n", u.ID)
	fmt.Fprintf(&b, "👤 <b>Name</b>: %s\n", html.EscapeString(displayName(u)))
	fmt.Fprintf(&b, "🔗 <b>Username</b>: %s", handleOr(u.Username))
	if u.LanguageCode != "" {
		fmt.Fprintf(&b, "\n🌐 <b>Language</b>: %s", html.EscapeString(languageName(u.LanguageCode)))
	}
	return b.String()
}

// AccountCreated decodes the best-effort account creation time embedded in
// the high 32 bits of a Telegram user identifier. The encoding is an
// unverified platform heuristic, so any arithmetic or range failure
// (non-positive id, zero seconds, implausibly old, in the future) reports
// ok=false instead of a guess.
func AccountCreated(id int64, now time.Time) (time.Time, bool) {
	if id <= 0 {
		return time.Time{}, false
	}
	secs := id >> 32
	if secs <= 0 {
		return time.Time{}, false
	}
	created := time.Unix(secs, 0).UTC()
	if created.Before(minAccountCreation) || created.After(now) {
		return time.Time{}, false
	}
	return created, true
}

func userReply(u UserOrigin, now time.Time) string {
	lines := []string{
		fmt.Sprintf("ID: <code>%d</code>", u.ID),
		"Username: " + handleOr(u.Username),
	}
	if u.IsBot {
		lines = append(lines, "Bot: yes")
	}
	if u.LanguageCode != "" {
		lines = append(lines, "Language: "+html.EscapeString(languageName(u.LanguageCode)))
	}
	lines = append(lines, "Account created: "+accountCreatedLine(u.ID, now))

	var b strings.Builder
	b.WriteString("👤 <b>User Info</b>\n")
	writeTree(&b, lines)
	return b.String()
}

func chatReply(c ChatOrigin) string {
	lines := []string{
		fmt.Sprintf("ID: <code>%d</code>", c.ID),
		"Type: " + html.EscapeString(titleCase(c.Type)),
		"Title: " + html.EscapeString(c.Title),
	}
	if c.Username != "" {
		lines = append(lines, "Username: @"+html.EscapeString(c.Username))
	}

	var b strings.Builder
	b.WriteString("📢 <b>Chat Info</b>\n")
	writeTree(&b, lines)
	return b.String()
}

func hiddenReply(h HiddenOrigin) string {
	return fmt.Sprintf("👤 <b>Forwarded from</b>: %s\n🕒 <b>Date</b>: %s\n⚠️ More info hidden by privacy settings",
		html.EscapeString(h.SenderName), h.Date.Format("2006-01-02 15:04"))
}

func accountCreatedLine(id int64, now time.Time) string {
	created, ok := AccountCreated(id, now)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("≈ %s (%s)", created.Format("January 2006"), humanize.RelTime(created, now, "ago", "from now"))
}

// writeTree draws the branch prefixes used by the metadata blocks: every
// line gets ├ except the last, which closes the tree with └.
func writeTree(b *strings.Builder, lines []string) {
	for i, line := range lines {
		if i == len(lines)-1 {
			b.WriteString("└ ")
			b.WriteString(line)
			return
		}
		b.WriteString("├ ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func handleOr(username string) string {
	if username == "" {
		return handlePlaceholder
	}
	return "@" + html.EscapeString(username)
}

func displayName(u *models.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return handlePlaceholder
	}
	return name
}

// languageName resolves an IETF language tag to its English display name,
// e.g. "pt-BR" to "Brazilian Portuguese (pt-BR)". Unparseable or unnamed
// tags fall back to the raw code.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
