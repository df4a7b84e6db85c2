package forward

import (
	"strings"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestReplyUserOrigin(t *testing.T) {
	origin := Origin{Kind: KindUser, User: &UserOrigin{ID: 123456789, Username: "alice"}}

	text, mode := Reply(origin, testNow)

	if mode != models.ParseModeHTML {
		t.Errorf("mode = %q, want HTML", mode)
	}
	if !strings.Contains(text, "ID: <code>123456789</code>") {
		t.Errorf("reply missing identifier:\n%s", text)
	}
	if !strings.Contains(text, "@alice") {
		t.Errorf("reply missing handle:\n%s", text)
	}
}

func TestReplyUserWithoutUsername(t *testing.T) {
	origin := Origin{Kind: KindUser, User: &UserOrigin{ID: 42}}

	text, _ := Reply(origin, testNow)
	if !strings.Contains(text, "Username: N/A") {
		t.Errorf("reply missing N/A placeholder:\n%s", text)
	}
}

func TestReplyUserBotFlag(t *testing.T) {
	withFlag, _ := Reply(Origin{Kind: KindUser, User: &UserOrigin{ID: 42, IsBot: true}}, testNow)
	if !strings.Contains(withFlag, "Bot: yes") {
		t.Errorf("reply missing bot flag:\n%s", withFlag)
	}

	withoutFlag, _ := Reply(Origin{Kind: KindUser, User: &UserOrigin{ID: 42}}, testNow)
	if strings.Contains(withoutFlag, "Bot:") {
		t.Errorf("bot line must be omitted for non-bots:\n%s", withoutFlag)
	}
}

func TestReplyUserLanguage(t *testing.T) {
	origin := Origin{Kind: KindUser, User: &UserOrigin{ID: 42, LanguageCode: "de"}}

	text, _ := Reply(origin, testNow)
	if !strings.Contains(text, "German (de)") {
		t.Errorf("reply missing language name:\n%s", text)
	}
}

func TestReplyUserAccountAge(t *testing.T) {
	// Small identifiers carry no plausible timestamp in their high bits.
	small, _ := Reply(Origin{Kind: KindUser, User: &UserOrigin{ID: 123456789}}, testNow)
	if !strings.Contains(small, "Account created: unknown") {
		t.Errorf("malformed id must degrade to unknown:\n%s", small)
	}

	created := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
	id := created.Unix() << 32
	plausible, _ := Reply(Origin{Kind: KindUser, User: &UserOrigin{ID: id}}, testNow)
	if !strings.Contains(plausible, "June 2020") {
		t.Errorf("plausible id must render an estimate:\n%s", plausible)
	}
}

func TestReplyChatOrigin(t *testing.T) {
	origin := Origin{Kind: KindChat, Chat: &ChatOrigin{
		ID:       -1001234,
		Type:     "supergroup",
		Title:    "Some Group",
		Username: "somegroup",
	}}

	text, mode := Reply(origin, testNow)

	if mode != models.ParseModeHTML {
		t.Errorf("mode = %q, want HTML", mode)
	}
	for _, want := range []string{"ID: <code>-1001234</code>", "Type: Supergroup", "Title: Some Group", "@somegroup"} {
		if !strings.Contains(text, want) {
			t.Errorf("reply missing %q:\n%s", want, text)
		}
	}
}

func TestReplyChatWithoutUsername(t *testing.T) {
	origin := Origin{Kind: KindChat, Chat: &ChatOrigin{ID: -1, Type: "channel", Title: "T"}}

	text, _ := Reply(origin, testNow)
	if strings.Contains(text, "Username:") {
		t.Errorf("username line must be omitted when absent:\n%s", text)
	}
}

func TestReplyHiddenOrigin(t *testing.T) {
	date := time.Date(2024, time.November, 14, 22, 13, 0, 0, time.UTC)
	origin := Origin{Kind: KindHidden, Hidden: &HiddenOrigin{SenderName: "Hidden Person", Date: date}}

	text, mode := Reply(origin, testNow)

	if mode != models.ParseModeHTML {
		t.Errorf("mode = %q, want HTML", mode)
	}
	if !strings.Contains(text, "Hidden Person") {
		t.Errorf("reply missing sender name:\n%s", text)
	}
	if !strings.Contains(text, "2024-11-14 22:13") {
		t.Errorf("reply missing formatted date:\n%s", text)
	}
	if !strings.Contains(text, "hidden by privacy settings") {
		t.Errorf("reply missing privacy notice:\n%s", text)
	}
}

func TestReplyNotIdentifiable(t *testing.T) {
	text, mode := Reply(Origin{}, testNow)

	if text != NotIdentifiableText {
		t.Errorf("reply = %q, want fixed not-identifiable text", text)
	}
	if mode != "" {
		t.Errorf("mode = %q, want empty (plain text)", mode)
	}
}

func TestReplyMismatchedVariantFallsBack(t *testing.T) {
	// A kind without its matching payload must not panic.
	text, _ := Reply(Origin{Kind: KindUser}, testNow)
	if text != NotIdentifiableText {
		t.Errorf("reply = %q, want fixed not-identifiable text", text)
	}
}

func TestReplyEscapesHTML(t *testing.T) {
	origin := Origin{Kind: KindChat, Chat: &ChatOrigin{ID: 1, Type: "group", Title: `<b>Spicy & Co</b>`}}

	text, _ := Reply(origin, testNow)
	if !strings.Contains(text, "&lt;b&gt;Spicy &amp; Co&lt;/b&gt;") {
		t.Errorf("title must be escaped:\n%s", text)
	}

	hidden := Origin{Kind: KindHidden, Hidden: &HiddenOrigin{SenderName: "<i>x</i>", Date: testNow}}
	text, _ = Reply(hidden, testNow)
	if strings.Contains(text, "<i>x</i>") {
		t.Errorf("sender name must be escaped:\n%s", text)
	}
}

func TestSelfReply(t *testing.T) {
	u := &models.User{ID: 987, FirstName: "Carol", Username: "carol", LanguageCode: "en"}

	text := SelfReply(u)

	for _, want := range []string{"<code>987</code>", "Carol", "@carol", "English (en)"} {
		if !strings.Contains(text, want) {
			t.Errorf("self reply missing %q:\n%s", want, text)
		}
	}
}

func TestSelfReplyNilUser(t *testing.T) {
	if got := SelfReply(nil); got != "" {
		t.Errorf("SelfReply(nil) = %q, want empty", got)
	}
}

func TestAccountCreated(t *testing.T) {
	plausible := time.Date(2019, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		id     int64
		wantOK bool
	}{
		{"negative id", -5, false},
		{"zero id", 0, false},
		{"small id without timestamp bits", 123456789, false},
		{"timestamp before first accounts", time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() << 32, false},
		{"timestamp in the future", testNow.Add(24 * time.Hour).Unix() << 32, false},
		{"plausible timestamp", plausible.Unix() << 32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, ok := AccountCreated(tt.id, testNow)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !created.Equal(plausible) {
				t.Errorf("created = %v, want %v", created, plausible)
			}
			if !ok && !created.IsZero() {
				t.Errorf("created = %v, want zero time on failure", created)
			}
		})
	}
}
