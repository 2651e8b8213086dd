//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-cli/domain"
	"context"
)

// IChatClient is the chat service as this CLI consumes it. Every call may
// block; callers bound them with the context.
type IChatClient interface {
	Connect(ctx context.Context) error
	Roster(ctx context.Context) (domain.Roster, error)
	// Events returns at most limit events of the conversation, most recent first.
	Events(ctx context.Context, conversationID string, limit int) ([]domain.ConversationEvent, error)
	SendMessage(ctx context.Context, conversationID string, segments []domain.Segment, attachment *domain.Attachment) error
	CreateConversation(ctx context.Context, name string, userIDs []string) (domain.Conversation, error)
	RenameConversation(ctx context.Context, conversationID, name string) error
	LeaveConversation(ctx context.Context, conversationID string) error
	Disconnect(ctx context.Context) error
}

// ICredentialProvider acquires the session token, interactively if needed.
type ICredentialProvider interface {
	Token(ctx context.Context) (string, error)
}
