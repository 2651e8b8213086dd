// Package resolver turns parsed command-line arguments into domain commands.
// Everything here runs before the chat service is contacted, so a usage
// error never leaves side effects behind.
package resolver

import (
	"fmt"
	"strings"

	"chat-cli/alias"
	"chat-cli/domain"
	"chat-cli/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	CommandList   = ""
	CommandGet    = "get"
	CommandSend   = "send"
	CommandUsers  = "users"
	CommandCreate = "create"
	CommandRename = "rename"
	CommandLeave  = "leave"
)

var validate = validator.New()

// Args holds the raw values of the command line, whichever subcommand set them.
type Args struct {
	Command      string
	Conversation string
	User         string
	Users        []string
	Number       string
	Message      string
	Count        int
	Attachment   string
	Title        string
}

// Aliases are the label to identifier mappings of both namespaces.
type Aliases struct {
	Conversations alias.Mapping
	Users         alias.Mapping
}

type getRequest struct {
	Count int `validate:"min=1,max=10000"`
}

type sendRequest struct {
	Message string `validate:"required,max=65536"`
}

type createRequest struct {
	Users []string `validate:"required,min=1,dive,required"`
}

// Resolve builds the command described by args.
func Resolve(args Args, aliases Aliases) (domain.Command, error) {
	switch args.Command {
	case CommandList:
		return domain.ListAllCommand{}, nil
	case CommandUsers:
		return domain.ListUsersCommand{}, nil
	case CommandGet:
		return resolveGet(args, aliases)
	case CommandSend:
		return resolveSend(args, aliases)
	case CommandCreate:
		return resolveCreate(args, aliases)
	case CommandRename:
		id, err := conversationID(args.Conversation, aliases)
		if err != nil {
			return nil, err
		}
		return domain.RenameCommand{
			ConversationAlias: args.Conversation,
			ConversationID:    id,
			NewName:           strings.TrimSpace(args.Title),
		}, nil
	case CommandLeave:
		id, err := conversationID(args.Conversation, aliases)
		if err != nil {
			return nil, err
		}
		return domain.LeaveCommand{ConversationAlias: args.Conversation, ConversationID: id}, nil
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errors.ErrUsage, args.Command)
	}
}

func resolveGet(args Args, aliases Aliases) (domain.Command, error) {
	count := args.Count
	if err := validate.Struct(getRequest{Count: count}); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidArguments, err)
	}
	id, err := conversationID(args.Conversation, aliases)
	if err != nil {
		return nil, err
	}
	return domain.GetCommand{
		ConversationAlias: args.Conversation,
		ConversationID:    id,
		MaxEvents:         count,
	}, nil
}

func resolveSend(args Args, aliases Aliases) (domain.Command, error) {
	selected := lo.Count([]bool{args.Number != "", args.User != "", args.Conversation != ""}, true)
	switch {
	case selected == 0:
		return nil, errors.ErrNoTarget
	case selected > 1:
		return nil, errors.ErrAmbiguousTarget
	}
	if err := validate.Struct(sendRequest{Message: args.Message}); err != nil {
		return nil, fmt.Errorf("%w: a message is required: %v", errors.ErrInvalidArguments, err)
	}

	var target domain.Target
	switch {
	case args.Conversation != "":
		id, err := conversationID(args.Conversation, aliases)
		if err != nil {
			return nil, err
		}
		target = domain.ConversationTarget{Alias: args.Conversation, ConversationID: id}
	case args.User != "":
		id, ok := aliases.Users.Lookup(args.User)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownUser, args.User)
		}
		target = domain.UserTarget{Alias: args.User, UserID: id}
	default:
		target = domain.NumberTarget{Raw: args.Number}
	}

	cmd := domain.SendCommand{Target: target, Message: args.Message}
	if args.Attachment != "" {
		attachment, err := domain.NewAttachment(args.Attachment)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidAttachment, err)
		}
		cmd.Attachment = &attachment
	}
	return cmd, nil
}

func resolveCreate(args Args, aliases Aliases) (domain.Command, error) {
	if err := validate.Struct(createRequest{Users: args.Users}); err != nil {
		return nil, fmt.Errorf("%w: at least one user is required: %v", errors.ErrInvalidArguments, err)
	}
	ids := make([]string, 0, len(args.Users))
	for _, label := range lo.Uniq(args.Users) {
		id, ok := aliases.Users.Lookup(label)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownUser, label)
		}
		ids = append(ids, id)
	}
	return domain.CreateCommand{Title: strings.TrimSpace(args.Title), UserIDs: ids}, nil
}

func conversationID(label string, aliases Aliases) (string, error) {
	if label == "" {
		return "", errors.ErrMissingConversation
	}
	id, ok := aliases.Conversations.Lookup(label)
	if !ok {
		return "", fmt.Errorf("%w: %s", errors.ErrUnknownConversation, label)
	}
	return id, nil
}
