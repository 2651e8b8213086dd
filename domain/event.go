package domain

import (
	"fmt"
	"time"
)

// ConversationEvent is a timestamped occurrence within a conversation.
// The set of implementations is closed; use VisitEvent to dispatch on it.
type ConversationEvent interface {
	EventID() string
	ConversationID() string
	At() time.Time
	isConversationEvent()
}

// EventHeader carries the fields shared by every event kind.
type EventHeader struct {
	ID           string
	Conversation string
	Timestamp    time.Time
}

func (h EventHeader) EventID() string        { return h.ID }
func (h EventHeader) ConversationID() string { return h.Conversation }
func (h EventHeader) At() time.Time          { return h.Timestamp }

// ChatMessage is a message posted by a user.
type ChatMessage struct {
	EventHeader
	SenderID   string
	Segments   []Segment
	Attachment *Attachment
}

// Text returns the message body as plain text.
func (m ChatMessage) Text() string {
	return SegmentsText(m.Segments)
}

// Rename records a change of the conversation name. An empty NewName clears it.
type Rename struct {
	EventHeader
	ActorID string
	NewName string
}

type MembershipKind int

const (
	MembershipJoin MembershipKind = iota + 1
	MembershipLeave
)

func (k MembershipKind) String() string {
	switch k {
	case MembershipJoin:
		return "join"
	case MembershipLeave:
		return "leave"
	default:
		return fmt.Sprintf("membership(%d)", int(k))
	}
}

// MembershipChange records users joining or leaving a conversation.
type MembershipChange struct {
	EventHeader
	ActorID string
	Kind    MembershipKind
	UserIDs []string
}

// UnknownEvent stands for an event kind this client cannot render.
type UnknownEvent struct {
	EventHeader
	Kind string
}

func (ChatMessage) isConversationEvent()      {}
func (Rename) isConversationEvent()           {}
func (MembershipChange) isConversationEvent() {}
func (UnknownEvent) isConversationEvent()     {}

// EventVisitor has one method per event kind. Adding a kind to the union adds
// a method here, so every visitor has to handle it before the code compiles.
type EventVisitor[T any] interface {
	ChatMessage(ChatMessage) T
	Rename(Rename) T
	MembershipChange(MembershipChange) T
	Unknown(UnknownEvent) T
}

// VisitEvent dispatches e to the method of v matching its kind.
func VisitEvent[T any](e ConversationEvent, v EventVisitor[T]) T {
	switch evt := e.(type) {
	case ChatMessage:
		return v.ChatMessage(evt)
	case *ChatMessage:
		return v.ChatMessage(*evt)
	case Rename:
		return v.Rename(evt)
	case *Rename:
		return v.Rename(*evt)
	case MembershipChange:
		return v.MembershipChange(evt)
	case *MembershipChange:
		return v.MembershipChange(*evt)
	case UnknownEvent:
		return v.Unknown(evt)
	case *UnknownEvent:
		return v.Unknown(*evt)
	default:
		// unreachable: the interface is sealed
		panic(fmt.Sprintf("domain: unexpected conversation event %T", e))
	}
}
