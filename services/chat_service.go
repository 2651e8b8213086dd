package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-cli/contract"
	"chat-cli/domain"
	"chat-cli/errors"
	"chat-cli/repositories"

	"github.com/samber/lo"
)

// ChatService is the chat backend behind contract.IChatClient, kept in the
// local store.
type ChatService struct {
	log           *slog.Logger
	auth          IAuthService
	credentials   contract.ICredentialProvider
	users         repositories.IUserRepository
	conversations repositories.IConversationRepository
	events        repositories.IEventRepository
	now           func() time.Time

	mu   sync.Mutex
	self *domain.User
}

var _ contract.IChatClient = (*ChatService)(nil)

func NewChatService(
	log *slog.Logger,
	auth IAuthService,
	credentials contract.ICredentialProvider,
	users repositories.IUserRepository,
	conversations repositories.IConversationRepository,
	events repositories.IEventRepository,
) *ChatService {
	return &ChatService{
		log:           log,
		auth:          auth,
		credentials:   credentials,
		users:         users,
		conversations: conversations,
		events:        events,
		now:           time.Now,
	}
}

// Connect authenticates the session user.
func (s *ChatService) Connect(ctx context.Context) error {
	token, err := s.credentials.Token(ctx)
	if err != nil {
		return err
	}
	userID, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	user, err := s.users.GetUser(userID)
	if err != nil {
		return err
	}
	self := toDomainUser(user)

	s.mu.Lock()
	s.self = &self
	s.mu.Unlock()
	s.log.Debug("Connected", "user", userID)
	return nil
}

func (s *ChatService) Roster(ctx context.Context) (domain.Roster, error) {
	self, err := s.session(ctx)
	if err != nil {
		return domain.Roster{}, err
	}
	users, err := s.users.ListUsers()
	if err != nil {
		return domain.Roster{}, fmt.Errorf("%w: list users: %v", errors.ErrTransport, err)
	}
	conversations, err := s.conversations.ListConversations(self.ID)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("%w: list conversations: %v", errors.ErrTransport, err)
	}
	return domain.Roster{
		Self:          self,
		Users:         lo.Map(users, func(u repositories.User, _ int) domain.User { return toDomainUser(u) }),
		Conversations: lo.Map(conversations, func(c repositories.Conversation, _ int) domain.Conversation { return toDomainConversation(c) }),
	}, nil
}

func (s *ChatService) Events(ctx context.Context, conversationID string, limit int) ([]domain.ConversationEvent, error) {
	self, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	if _, err = s.participating(self, conversationID); err != nil {
		return nil, err
	}
	events, err := s.events.GetEvents(conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: read events: %v", errors.ErrTransport, err)
	}
	return lo.Map(events, func(e repositories.DiskEvent, _ int) domain.ConversationEvent { return toDomainEvent(e) }), nil
}

func (s *ChatService) SendMessage(ctx context.Context, conversationID string, segments []domain.Segment, attachment *domain.Attachment) error {
	self, err := s.session(ctx)
	if err != nil {
		return err
	}
	conversation, err := s.participating(self, conversationID)
	if err != nil {
		return err
	}
	return s.record(conversation, repositories.DiskEvent{
		Kind:       repositories.EventMessage,
		Actor:      self.ID,
		Text:       domain.SegmentsText(segments),
		Attachment: toDiskAttachment(attachment),
	})
}

// CreateConversation starts a conversation between the session user and
// userIDs, every one of which must exist.
func (s *ChatService) CreateConversation(ctx context.Context, name string, userIDs []string) (domain.Conversation, error) {
	self, err := s.session(ctx)
	if err != nil {
		return domain.Conversation{}, err
	}
	invited := lo.Without(lo.Uniq(userIDs), self.ID)
	for _, id := range invited {
		if _, err = s.users.GetUser(id); err != nil {
			return domain.Conversation{}, fmt.Errorf("%w: %s", err, id)
		}
	}
	at := s.now()
	conversation, err := s.conversations.CreateConversation(name, append([]string{self.ID}, invited...), at)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: create conversation: %v", errors.ErrTransport, err)
	}
	if err = s.events.StoreEvent(repositories.DiskEvent{
		Conversation: conversation.ID,
		Kind:         repositories.EventJoin,
		Actor:        self.ID,
		UserIDs:      invited,
		At:           at,
	}); err != nil {
		return domain.Conversation{}, fmt.Errorf("%w: record event: %v", errors.ErrTransport, err)
	}
	s.log.Info("Conversation created", "conversation", conversation.ID, "participants", len(conversation.Participants))
	return toDomainConversation(conversation), nil
}

// RenameConversation sets the conversation name; an empty name clears it.
func (s *ChatService) RenameConversation(ctx context.Context, conversationID, name string) error {
	self, err := s.session(ctx)
	if err != nil {
		return err
	}
	conversation, err := s.participating(self, conversationID)
	if err != nil {
		return err
	}
	conversation.Name = name
	return s.record(conversation, repositories.DiskEvent{
		Kind:  repositories.EventRename,
		Actor: self.ID,
		Text:  name,
	})
}

func (s *ChatService) LeaveConversation(ctx context.Context, conversationID string) error {
	self, err := s.session(ctx)
	if err != nil {
		return err
	}
	conversation, err := s.participating(self, conversationID)
	if err != nil {
		return err
	}
	conversation.Participants = lo.Without(conversation.Participants, self.ID)
	return s.record(conversation, repositories.DiskEvent{
		Kind:    repositories.EventLeave,
		Actor:   self.ID,
		UserIDs: []string{self.ID},
	})
}

// Disconnect ends the session. It is safe to call when not connected.
func (s *ChatService) Disconnect(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.self != nil {
		s.log.Debug("Disconnected", "user", s.self.ID)
	}
	s.self = nil
	return nil
}

func (s *ChatService) session(ctx context.Context) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.self == nil {
		return domain.User{}, errors.ErrNotConnected
	}
	return *s.self, nil
}

func (s *ChatService) participating(self domain.User, conversationID string) (repositories.Conversation, error) {
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return repositories.Conversation{}, err
	}
	if !lo.Contains(conversation.Participants, self.ID) {
		return repositories.Conversation{}, errors.ErrNotParticipant
	}
	return conversation, nil
}

// record stores event in conversation and bumps its last-modified time.
func (s *ChatService) record(conversation repositories.Conversation, event repositories.DiskEvent) error {
	event.Conversation = conversation.ID
	event.At = s.now()
	if err := s.events.StoreEvent(event); err != nil {
		return fmt.Errorf("%w: record event: %v", errors.ErrTransport, err)
	}
	conversation.LastModified = event.At
	if err := s.conversations.UpdateConversation(conversation); err != nil {
		return fmt.Errorf("%w: update conversation: %v", errors.ErrTransport, err)
	}
	return nil
}
