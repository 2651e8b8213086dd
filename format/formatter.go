// Package format renders conversation events and alias tables as text.
package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"chat-cli/domain"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

const (
	// TimeLayout is used when the event falls on the same day as the previous one.
	TimeLayout = "3:04 PM"
	// DateTimeLayout is used when a date header is due.
	DateTimeLayout = "Mon Jan 2 2006, 3:04 PM"
)

// RenderedMessage is a display-ready event. Sender is empty for events whose
// actor is part of the body.
type RenderedMessage struct {
	Timestamp  time.Time
	DateHeader bool
	Sender     string
	Body       string
}

// Stamp returns the timestamp in the layout matching DateHeader.
func (m RenderedMessage) Stamp() string {
	if m.DateHeader {
		return m.Timestamp.Format(DateTimeLayout)
	}
	return m.Timestamp.Format(TimeLayout)
}

// Formatter turns events into RenderedMessages in a given time zone.
type Formatter struct {
	users domain.Directory
	loc   *time.Location
}

// NewFormatter uses time.Local when loc is nil.
func NewFormatter(users domain.Directory, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{users: users, loc: loc}
}

// Format renders event. previous is the event displayed just before it, or nil.
// The second result is false for event kinds that are not displayed.
func (f Formatter) Format(event, previous domain.ConversationEvent) (RenderedMessage, bool) {
	b := domain.VisitEvent[body](event, bodies{users: f.users})
	if !b.ok {
		return RenderedMessage{}, false
	}
	at := event.At().In(f.loc)
	return RenderedMessage{
		Timestamp:  at,
		DateHeader: previous == nil || !sameDay(previous.At().In(f.loc), at),
		Sender:     b.sender,
		Body:       b.text,
	}, true
}

// FormatAll renders events oldest first, dropping the kinds that are not
// displayed. Date headers compare against the last displayed event, so a
// hidden event never swallows a day change.
func (f Formatter) FormatAll(events []domain.ConversationEvent) []RenderedMessage {
	ordered := Chronological(events)
	messages := make([]RenderedMessage, 0, len(ordered))
	var previous domain.ConversationEvent
	for _, e := range ordered {
		m, ok := f.Format(e, previous)
		if !ok {
			continue
		}
		messages = append(messages, m)
		previous = e
	}
	return messages
}

// Chronological returns a copy of events sorted by timestamp. Ties keep
// their input order.
func Chronological(events []domain.ConversationEvent) []domain.ConversationEvent {
	ordered := make([]domain.ConversationEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].At().Before(ordered[j].At())
	})
	return ordered
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type body struct {
	sender string
	text   string
	ok     bool
}

type bodies struct {
	users domain.Directory
}

func (b bodies) ChatMessage(m domain.ChatMessage) body {
	text := m.Text()
	if m.Attachment != nil {
		text = strings.TrimSpace(text + " " + attachmentLabel(*m.Attachment))
	}
	return body{sender: b.users.User(m.SenderID).ShortName(), text: text, ok: true}
}

func (b bodies) Rename(r domain.Rename) body {
	actor := b.users.User(r.ActorID).ShortName()
	if r.NewName == "" {
		return body{text: fmt.Sprintf("%s cleared the conversation name", actor), ok: true}
	}
	return body{text: fmt.Sprintf("%s renamed the conversation to %s", actor, r.NewName), ok: true}
}

func (b bodies) MembershipChange(m domain.MembershipChange) body {
	names := strings.Join(lo.Map(m.UserIDs, func(id string, _ int) string {
		return b.users.User(id).DisplayName()
	}), ", ")
	switch m.Kind {
	case domain.MembershipJoin:
		actor := b.users.User(m.ActorID).ShortName()
		return body{text: fmt.Sprintf("%s added %s to the conversation", actor, names), ok: true}
	case domain.MembershipLeave:
		return body{text: fmt.Sprintf("%s left the conversation", names), ok: true}
	default:
		return body{}
	}
}

func (b bodies) Unknown(domain.UnknownEvent) body {
	return body{}
}

func attachmentLabel(a domain.Attachment) string {
	return fmt.Sprintf("[attachment: %s (%s, %s)]", a.Name, a.MimeType, humanize.Bytes(uint64(a.Size)))
}
