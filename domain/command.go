package domain

// DefaultEventCount bounds how many historical events "get" fetches.
const DefaultEventCount = 50

// Command is a resolved user request. Commands are built once from the
// command line and never mutated.
type Command interface {
	Name() string
	isCommand()
}

// GetCommand fetches and prints the most recent events of a conversation.
type GetCommand struct {
	ConversationAlias string
	ConversationID    string
	MaxEvents         int
}

// SendCommand posts a message to exactly one target.
type SendCommand struct {
	Target     Target
	Message    string
	Attachment *Attachment
}

// ListAllCommand prints the conversation alias table.
type ListAllCommand struct{}

// ListUsersCommand prints the user alias table.
type ListUsersCommand struct{}

// CreateCommand starts a conversation with the session user and UserIDs.
type CreateCommand struct {
	Title   string
	UserIDs []string
}

// RenameCommand changes or clears a conversation name.
type RenameCommand struct {
	ConversationAlias string
	ConversationID    string
	NewName           string
}

// LeaveCommand removes the session user from a conversation.
type LeaveCommand struct {
	ConversationAlias string
	ConversationID    string
}

func (GetCommand) Name() string       { return "get" }
func (SendCommand) Name() string      { return "send" }
func (ListAllCommand) Name() string   { return "list" }
func (ListUsersCommand) Name() string { return "users" }
func (CreateCommand) Name() string    { return "create" }
func (RenameCommand) Name() string    { return "rename" }
func (LeaveCommand) Name() string     { return "leave" }

func (GetCommand) isCommand()       {}
func (SendCommand) isCommand()      {}
func (ListAllCommand) isCommand()   {}
func (ListUsersCommand) isCommand() {}
func (CreateCommand) isCommand()    {}
func (RenameCommand) isCommand()    {}
func (LeaveCommand) isCommand()     {}

// Target is the destination of a SendCommand.
type Target interface {
	isTarget()
}

type ConversationTarget struct {
	Alias          string
	ConversationID string
}

type UserTarget struct {
	Alias  string
	UserID string
}

// NumberTarget is a raw phone number, kept as typed.
type NumberTarget struct {
	Raw string
}

func (ConversationTarget) isTarget() {}
func (UserTarget) isTarget()         {}
func (NumberTarget) isTarget()       {}
