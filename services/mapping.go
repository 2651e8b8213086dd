package services

import (
	"strings"

	"chat-cli/domain"
	"chat-cli/repositories"
)

func toDomainUser(u repositories.User) domain.User {
	user := domain.User{ID: u.ID, FullName: u.FullName, Email: u.Email}
	if fields := strings.Fields(u.FullName); len(fields) > 0 {
		user.FirstName = fields[0]
	}
	return user
}

func toDomainConversation(c repositories.Conversation) domain.Conversation {
	return domain.Conversation{
		ID:           c.ID,
		Name:         c.Name,
		Participants: c.Participants,
		LastModified: c.LastModified,
	}
}

func toDomainEvent(e repositories.DiskEvent) domain.ConversationEvent {
	header := domain.EventHeader{
		ID:           e.ID.String(),
		Conversation: e.Conversation,
		Timestamp:    e.At,
	}
	switch e.Kind {
	case repositories.EventMessage:
		message := domain.ChatMessage{
			EventHeader: header,
			SenderID:    e.Actor,
			Segments:    domain.ParseSegments(e.Text),
		}
		if a := e.Attachment; a != nil {
			message.Attachment = &domain.Attachment{Name: a.Name, MimeType: a.MimeType, Size: a.Size}
		}
		return message
	case repositories.EventRename:
		return domain.Rename{EventHeader: header, ActorID: e.Actor, NewName: e.Text}
	case repositories.EventJoin:
		return domain.MembershipChange{EventHeader: header, ActorID: e.Actor, Kind: domain.MembershipJoin, UserIDs: e.UserIDs}
	case repositories.EventLeave:
		return domain.MembershipChange{EventHeader: header, ActorID: e.Actor, Kind: domain.MembershipLeave, UserIDs: e.UserIDs}
	default:
		return domain.UnknownEvent{EventHeader: header, Kind: string(e.Kind)}
	}
}

func toDiskAttachment(a *domain.Attachment) *repositories.DiskAttachment {
	if a == nil {
		return nil
	}
	return &repositories.DiskAttachment{Name: a.Name, MimeType: a.MimeType, Size: a.Size}
}
