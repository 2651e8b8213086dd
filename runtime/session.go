// Package runtime executes one resolved command against the chat service.
package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"chat-cli/alias"
	"chat-cli/contract"
	"chat-cli/domain"
	"chat-cli/errors"
	"chat-cli/format"
)

// DefaultRequestTimeout bounds every call to the chat service.
const DefaultRequestTimeout = 30 * time.Second

type Config struct {
	RequestTimeout time.Duration
	// RefreshCaches rewrites both alias caches from the roster at the end of the run.
	RefreshCaches bool
	Location      *time.Location
}

// Session is the state of a single run: the chat client, the alias caches and
// the output. It is built once per process and runs one command.
type Session struct {
	log           *slog.Logger
	client        contract.IChatClient
	printer       format.Printer
	conversations alias.Store
	users         alias.Store
	cfg           Config
}

func NewSession(log *slog.Logger, client contract.IChatClient, printer format.Printer, conversations, users alias.Store, cfg Config) *Session {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	return &Session{
		log:           log,
		client:        client,
		printer:       printer,
		conversations: conversations,
		users:         users,
		cfg:           cfg,
	}
}

// Run connects, fetches the roster, executes cmd, refreshes the caches and
// disconnects. The disconnect happens whenever the connect succeeded, even if
// the command failed.
func (s *Session) Run(ctx context.Context, cmd domain.Command) (err error) {
	if send, ok := cmd.(domain.SendCommand); ok {
		if err = checkTarget(send.Target); err != nil {
			return err
		}
	}

	if err = s.call(ctx, "connect", s.client.Connect); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		// The caller's context may already be done; disconnect gets its own.
		disconnectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RequestTimeout)
		defer cancel()
		if dErr := s.client.Disconnect(disconnectCtx); dErr != nil {
			s.log.Warn("Disconnect failed", "error", dErr)
			if err == nil {
				err = fmt.Errorf("disconnect: %w", dErr)
			}
		}
	}()

	roster, err := s.roster(ctx)
	if err != nil {
		return err
	}
	s.log.Debug("Roster fetched", "users", len(roster.Users), "conversations", len(roster.Conversations))

	runErr := s.execute(ctx, cmd, roster)
	if runErr != nil {
		s.log.Error("Command failed", "command", cmd.Name(), "error", runErr)
	}

	if s.cfg.RefreshCaches {
		if mutates(cmd) && runErr == nil {
			if fresh, rErr := s.roster(ctx); rErr == nil {
				roster = fresh
			} else {
				s.log.Warn("Roster refresh failed, caching the previous one", "error", rErr)
			}
		}
		s.refresh(roster)
	}
	return runErr
}

func (s *Session) execute(ctx context.Context, cmd domain.Command, roster domain.Roster) error {
	switch c := cmd.(type) {
	case domain.GetCommand:
		return s.get(ctx, c, roster)
	case domain.SendCommand:
		return s.send(ctx, c)
	case domain.ListAllCommand:
		// Built from the roster of this run. -U skips the cache rewrite, not the fetch.
		s.printer.AliasTable("Conversation", alias.ConversationEntries(roster))
		return nil
	case domain.ListUsersCommand:
		s.printer.AliasTable("User", alias.UserEntries(roster))
		return nil
	case domain.CreateCommand:
		return s.create(ctx, c, roster)
	case domain.RenameCommand:
		return s.rename(ctx, c)
	case domain.LeaveCommand:
		return s.leave(ctx, c)
	default:
		return fmt.Errorf("%w: unsupported command %q", errors.ErrUsage, cmd.Name())
	}
}

func (s *Session) get(ctx context.Context, c domain.GetCommand, roster domain.Roster) error {
	var events []domain.ConversationEvent
	err := s.call(ctx, "events", func(ctx context.Context) error {
		var err error
		events, err = s.client.Events(ctx, c.ConversationID, c.MaxEvents)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch events of %s: %w", c.ConversationAlias, err)
	}
	s.log.Debug("Events fetched", "conversation", c.ConversationID, "count", len(events))
	return s.printer.Messages(format.NewFormatter(roster, s.cfg.Location).FormatAll(events))
}

func (s *Session) send(ctx context.Context, c domain.SendCommand) error {
	target, ok := c.Target.(domain.ConversationTarget)
	if !ok {
		return checkTarget(c.Target)
	}
	err := s.call(ctx, "send", func(ctx context.Context) error {
		return s.client.SendMessage(ctx, target.ConversationID, domain.ParseSegments(c.Message), c.Attachment)
	})
	if err != nil {
		return fmt.Errorf("send to %s: %w", target.Alias, err)
	}
	return s.printer.Notice("Message sent to %s", target.Alias)
}

func (s *Session) create(ctx context.Context, c domain.CreateCommand, roster domain.Roster) error {
	var conversation domain.Conversation
	err := s.call(ctx, "create", func(ctx context.Context) error {
		var err error
		conversation, err = s.client.CreateConversation(ctx, c.Title, c.UserIDs)
		return err
	})
	if err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return s.printer.Notice("Conversation created: %s", conversation.DisplayName(roster.Self.ID, roster))
}

func (s *Session) rename(ctx context.Context, c domain.RenameCommand) error {
	err := s.call(ctx, "rename", func(ctx context.Context) error {
		return s.client.RenameConversation(ctx, c.ConversationID, c.NewName)
	})
	if err != nil {
		return fmt.Errorf("rename %s: %w", c.ConversationAlias, err)
	}
	if c.NewName == "" {
		return s.printer.Notice("Name of %s cleared", c.ConversationAlias)
	}
	return s.printer.Notice("%s renamed to %s", c.ConversationAlias, c.NewName)
}

func (s *Session) leave(ctx context.Context, c domain.LeaveCommand) error {
	err := s.call(ctx, "leave", func(ctx context.Context) error {
		return s.client.LeaveConversation(ctx, c.ConversationID)
	})
	if err != nil {
		return fmt.Errorf("leave %s: %w", c.ConversationAlias, err)
	}
	return s.printer.Notice("Left %s", c.ConversationAlias)
}

func (s *Session) roster(ctx context.Context) (domain.Roster, error) {
	var roster domain.Roster
	err := s.call(ctx, "roster", func(ctx context.Context) error {
		var err error
		roster, err = s.client.Roster(ctx)
		return err
	})
	if err != nil {
		return domain.Roster{}, fmt.Errorf("fetch roster: %w", err)
	}
	return roster, nil
}

// refresh rewrites the caches. They can always be rebuilt, so failures are
// only logged.
func (s *Session) refresh(roster domain.Roster) {
	if err := s.conversations.Save(alias.ConversationEntries(roster)); err != nil {
		s.log.Warn("Conversation cache not saved", "error", err)
	}
	if err := s.users.Save(alias.UserEntries(roster)); err != nil {
		s.log.Warn("User cache not saved", "error", err)
	}
}

// call runs one chat service operation under RequestTimeout. A timeout is
// reported as a transport error.
func (s *Session) call(ctx context.Context, op string, fn func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()
	err := fn(callCtx)
	if err != nil && stderrors.Is(err, context.DeadlineExceeded) && !stderrors.Is(err, errors.ErrTransport) {
		s.log.Error("Chat service call timed out", "operation", op, "timeout", s.cfg.RequestTimeout)
		return fmt.Errorf("%w: %s timed out after %s", errors.ErrTransport, op, s.cfg.RequestTimeout)
	}
	return err
}

func checkTarget(target domain.Target) error {
	switch t := target.(type) {
	case domain.ConversationTarget:
		return nil
	case domain.UserTarget:
		return fmt.Errorf("%w: sending to user %s", errors.ErrNotImplemented, t.Alias)
	case domain.NumberTarget:
		return fmt.Errorf("%w: sending to number %s", errors.ErrNotImplemented, t.Raw)
	default:
		return errors.ErrNoTarget
	}
}

func mutates(cmd domain.Command) bool {
	switch cmd.(type) {
	case domain.CreateCommand, domain.RenameCommand, domain.LeaveCommand:
		return true
	default:
		return false
	}
}
