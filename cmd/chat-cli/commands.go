package main

import (
	"fmt"
	"strings"

	"chat-cli/errors"
	"chat-cli/resolver"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "chat-cli",
		Short: "Read and send chat messages from the command line",
		Long: `chat-cli reads and sends messages of a chat service.

Conversations and users are addressed by alias. Every run refreshes the alias
caches, which feed shell completion. Without a subcommand the known
conversations are listed.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), resolver.Args{Command: resolver.CommandList})
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errors.ErrUsage, err)
	})

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.cfg.Debug, "debug", "d", a.cfg.Debug, "log detailed debugging messages")
	flags.StringVar(&a.cfg.LogPath, "log", a.cfg.LogPath, "log file path")
	flags.StringVar(&a.cfg.TokenPath, "token", a.cfg.TokenPath, "session token storage path")
	flags.StringVar(&a.cfg.StorePath, "store", a.cfg.StorePath, "chat store directory")
	flags.BoolVarP(&a.noUpdate, "update", "U", false, "do not refresh the alias caches")
	flags.BoolVar(&a.noColour, "no-color", false, "disable coloured output")

	root.AddCommand(
		newGetCommand(a),
		newSendCommand(a),
		newUsersCommand(a),
		newCreateCommand(a),
		newRenameCommand(a),
		newLeaveCommand(a),
		newRegisterCommand(a),
		newInspectCommand(a),
	)
	return root
}

func newGetCommand(a *app) *cobra.Command {
	args := resolver.Args{Command: resolver.CommandGet}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the most recent events of a conversation",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&args.Conversation, "conversation", "c", "", "conversation alias")
	cmd.Flags().IntVarP(&args.Count, "count", "n", a.cfg.DefaultEventCount, "number of events to fetch")
	a.completeConversations(cmd, "conversation")
	return cmd
}

func newSendCommand(a *app) *cobra.Command {
	args := resolver.Args{Command: resolver.CommandSend}
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to a conversation, a user or a number",
		Long: `Send a message. Exactly one of --conversation, --user and --number selects the
destination; only conversations can receive messages for now.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&args.Conversation, "conversation", "c", "", "conversation alias")
	cmd.Flags().StringVarP(&args.User, "user", "u", "", "user alias")
	cmd.Flags().StringVarP(&args.Number, "number", "n", "", "phone number")
	cmd.Flags().StringVarP(&args.Message, "message", "m", "", "message text")
	cmd.Flags().StringVarP(&args.Attachment, "attach", "a", "", "file to attach")
	a.completeConversations(cmd, "conversation")
	a.completeUsers(cmd, "user")
	return cmd
}

func newUsersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the known users",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), resolver.Args{Command: resolver.CommandUsers})
		},
	}
}

func newCreateCommand(a *app) *cobra.Command {
	args := resolver.Args{Command: resolver.CommandCreate}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a conversation with one or more users",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&args.Title, "name", "", "conversation name")
	cmd.Flags().StringSliceVarP(&args.Users, "user", "u", nil, "user alias, repeatable")
	a.completeUsers(cmd, "user")
	return cmd
}

func newRenameCommand(a *app) *cobra.Command {
	args := resolver.Args{Command: resolver.CommandRename}
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a conversation, or clear its name with an empty --name",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&args.Conversation, "conversation", "c", "", "conversation alias")
	cmd.Flags().StringVar(&args.Title, "name", "", "new conversation name")
	a.completeConversations(cmd, "conversation")
	return cmd
}

func newLeaveCommand(a *app) *cobra.Command {
	args := resolver.Args{Command: resolver.CommandLeave}
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Leave a conversation",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&args.Conversation, "conversation", "c", "", "conversation alias")
	a.completeConversations(cmd, "conversation")
	return cmd
}

func newRegisterCommand(a *app) *cobra.Command {
	var email, fullName string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account; the password is asked for",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("%w: --email is required", errors.ErrInvalidArguments)
			}
			return a.register(cmd.Context(), email, fullName)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account e-mail")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	return cmd
}

func (a *app) completeConversations(cmd *cobra.Command, flag string) {
	lo.Must0(cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return withPrefix(a.labels(a.cfg.ConversationCachePath()), toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

func (a *app) completeUsers(cmd *cobra.Command, flag string) {
	lo.Must0(cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return withPrefix(a.labels(a.cfg.UserCachePath()), toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

func withPrefix(labels []string, prefix string) []string {
	return lo.Filter(labels, func(label string, _ int) bool {
		return strings.HasPrefix(label, prefix)
	})
}

// usageArgs reports positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrUsage, err)
		}
		return nil
	}
}
